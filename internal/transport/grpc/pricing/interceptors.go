package pricing

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/murkotick/configurable-price-service/internal/pkg/logger"
	"github.com/murkotick/configurable-price-service/internal/pkg/metrics"
)

// CorrelationIDHeader carries the request correlation id in both directions.
const CorrelationIDHeader = "x-correlation-id"

// UnaryServerInterceptor attaches l and a correlation id to the context, and
// records one log line and metric sample per call. m may be nil.
func UnaryServerInterceptor(l *slog.Logger, m *metrics.Metrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()

		id := incomingCorrelationID(ctx)
		if id == "" {
			id = uuid.New().String()
		}
		ctx = logger.WithCorrelationID(logger.NewContext(ctx, l), id)
		_ = grpc.SetHeader(ctx, metadata.Pairs(CorrelationIDHeader, id))

		resp, err := handler(ctx, req)

		code := status.Code(err)
		elapsed := time.Since(start)
		if m != nil {
			m.RPCs.WithLabelValues(info.FullMethod, code.String()).Inc()
			m.RPCDuration.WithLabelValues(info.FullMethod).Observe(elapsed.Seconds())
		}

		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelWarn
		}
		logger.FromContext(ctx).Log(ctx, level, "rpc handled",
			slog.String("method", info.FullMethod),
			slog.String("code", code.String()),
			slog.Duration("duration", elapsed),
		)
		return resp, err
	}
}

func incomingCorrelationID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if vals := md.Get(CorrelationIDHeader); len(vals) > 0 {
		return vals[0]
	}
	return ""
}
