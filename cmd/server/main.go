package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc"

	"github.com/murkotick/configurable-price-service/internal/app/pricing/domain/services"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/queries"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/repo"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/usecases/resolve_display_price"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/usecases/sync_catalog"
	"github.com/murkotick/configurable-price-service/internal/config"
	"github.com/murkotick/configurable-price-service/internal/pkg/clock"
	committer "github.com/murkotick/configurable-price-service/internal/pkg/committer"
	"github.com/murkotick/configurable-price-service/internal/pkg/logger"
	"github.com/murkotick/configurable-price-service/internal/pkg/metrics"
	grpcpricing "github.com/murkotick/configurable-price-service/internal/transport/grpc/pricing"
	httptransport "github.com/murkotick/configurable-price-service/internal/transport/http"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.New(cfg.ServiceName, cfg.LogLevel)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Info("shutdown signal received")
		cancel()
	}()

	traceLog, traceFile, err := logger.OpenTraceFile(cfg.ServiceName, cfg.PriceTraceFile)
	if err != nil {
		return err
	}
	defer traceFile.Close()

	client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		return err
	}
	defer client.Close()

	reg := metrics.NewRegistry()
	m := metrics.New(reg)

	clk := clock.RealClock{}
	readModel := queries.NewSpannerReadModel(client)
	selector := services.NewPriceSelector(services.WithLogger(traceLog))

	cmds := grpcpricing.Commands{
		Sync: sync_catalog.NewInteractor(readModel, repo.NewProductRepo(), repo.NewVariantRepo(), repo.NewOutboxRepo(),
			committer.NewAdapter(client), clk),
	}
	qrys := grpcpricing.Queries{
		Resolve: resolve_display_price.NewInteractor(readModel, selector, clk, m),
	}

	// gRPC server
	grpcSrv := grpc.NewServer(grpc.UnaryInterceptor(grpcpricing.UnaryServerInterceptor(log, m)))
	grpcpricing.RegisterPricingServiceServer(grpcSrv, grpcpricing.NewHandler(cmds, qrys, cfg.DefaultStoreID))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}

	// HTTP server
	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httptransport.NewRouter(qrys.Resolve, reg, m, log, cfg.DefaultStoreID),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("gRPC server listening", slog.String("addr", cfg.GRPCAddr))
		if err := grpcSrv.Serve(lis); err != nil {
			log.Error("grpc serve", slog.String("error", err.Error()))
			cancel()
		}
	}()
	go func() {
		log.Info("HTTP server listening", slog.String("addr", cfg.HTTPAddr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http serve", slog.String("error", err.Error()))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown", slog.String("error", err.Error()))
	}

	stopped := make(chan struct{})
	go func() {
		grpcSrv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		grpcSrv.Stop()
	}

	log.Info("server stopped")
	return nil
}
