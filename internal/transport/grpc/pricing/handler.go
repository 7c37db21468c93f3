package pricing

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/configurable-price-service/internal/app/pricing/domain"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/usecases/resolve_display_price"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/usecases/sync_catalog"
)

// Commands groups write interactors.
type Commands struct {
	Sync *sync_catalog.Interactor
}

// Queries groups read interactors.
type Queries struct {
	Resolve *resolve_display_price.Interactor
}

// Handler is a thin gRPC transport adapter.
// It validates input, maps Struct <-> application types and delegates.
type Handler struct {
	commands     Commands
	queries      Queries
	defaultStore int64
}

var _ PricingServiceServer = (*Handler)(nil)

func NewHandler(cmd Commands, qry Queries, defaultStore int64) *Handler {
	return &Handler{commands: cmd, queries: qry, defaultStore: defaultStore}
}

func (h *Handler) GetDisplayPrice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := validateGetDisplayPrice(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	appReq, err := mapGetDisplayPriceRequest(req, h.defaultStore)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	out, err := h.queries.Resolve.Execute(ctx, appReq)
	if err != nil {
		return nil, mapError(err)
	}

	reply, err := mapDisplayPriceReply(out)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return reply, nil
}

// SelectDisplayPrice runs the override rule over variants supplied by the caller.
func (h *Handler) SelectDisplayPrice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := validateSelectDisplayPrice(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	variants, now, err := mapSelectRequest(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	price, ok := h.queries.Resolve.SelectAt(variants, now)

	reply, err := mapSelectReply(price, ok)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return reply, nil
}

func (h *Handler) SyncCatalog(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := validateSyncCatalog(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	appReq, err := mapSyncCatalogRequest(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	id, err := h.commands.Sync.Execute(ctx, appReq)
	if err != nil {
		return nil, mapError(err)
	}

	return structpb.NewStruct(map[string]interface{}{
		"product_id": domain.FormatProductID(id),
	})
}
