package resolve_display_price

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	contracts "github.com/murkotick/configurable-price-service/internal/app/pricing/contracts"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/domain"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/domain/services"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/dto"
	shared "github.com/murkotick/configurable-price-service/internal/app/pricing/usecases/shared"
	"github.com/murkotick/configurable-price-service/internal/pkg/clock"
	"github.com/murkotick/configurable-price-service/internal/pkg/logger"
	"github.com/murkotick/configurable-price-service/internal/pkg/metrics"
)

// Request identifies the configurable product and the store to price it for.
type Request struct {
	ProductID string
	StoreID   int64
}

// Interactor resolves the display price of a configurable product in two
// steps: the catalog's own lowest-price rule runs first, then the
// highest-variant selector overrides it whenever it yields a price.
type Interactor struct {
	Catalog  contracts.CatalogReader
	Baseline *services.LowestPriceResolver
	Selector *services.PriceSelector
	Clock    clock.Clock
	Metrics  *metrics.Metrics
}

// NewInteractor constructs the interactor. m may be nil.
func NewInteractor(catalog contracts.CatalogReader, selector *services.PriceSelector, clk clock.Clock, m *metrics.Metrics) *Interactor {
	return &Interactor{
		Catalog:  catalog,
		Baseline: services.NewLowestPriceResolver(),
		Selector: selector,
		Clock:    clk,
		Metrics:  m,
	}
}

// Execute never fails for missing or unsuitable products; those keep the
// baseline price and report why. Only catalog read errors are returned.
func (it *Interactor) Execute(ctx context.Context, req Request) (*dto.DisplayPriceDTO, error) {
	now := it.Clock.Now()
	log := logger.FromContext(ctx).With(
		slog.String("product_id", req.ProductID),
		slog.Int64("store_id", req.StoreID),
	)

	out := &dto.DisplayPriceDTO{
		ProductID: req.ProductID,
		StoreID:   req.StoreID,
	}

	// 1. Load candidate variants from the catalog
	infos, err := it.loadVariants(ctx, req)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvalidParent):
		out.Reason = dto.ReasonInvalidParent
	case errors.Is(err, domain.ErrProductNotFound):
		out.Reason = dto.ReasonNotFound
	case errors.Is(err, domain.ErrNoVariants):
		out.Reason = dto.ReasonNoVariants
	default:
		it.Metrics.ObserveResolution(metrics.OutcomeError, 0)
		log.Error("load variants failed", slog.String("error", err.Error()))
		return nil, err
	}
	out.VariantCount = len(infos)

	// 2. Baseline: the catalog's default lowest price
	baseline, ok := it.Baseline.ResolvePrice(infos, now)
	if !ok {
		baseline = domain.Zero()
	}
	out.BaselinePrice = baseline.String()

	// 3. Override with the highest variant price
	display, ok := it.Selector.SelectDisplayPrice(infos, now)
	if ok {
		out.DisplayPrice = display.String()
		out.Overridden = true
		out.Reason = dto.ReasonOverride
	} else {
		out.DisplayPrice = out.BaselinePrice
	}

	it.Metrics.ObserveResolution(out.Reason, out.VariantCount)
	log.Debug("display price resolved",
		slog.String("display_price", out.DisplayPrice),
		slog.String("baseline_price", out.BaselinePrice),
		slog.String("reason", out.Reason),
	)
	return out, nil
}

func (it *Interactor) loadVariants(ctx context.Context, req Request) ([]domain.VariantPriceInfo, error) {
	productID, err := domain.ParseProductID(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidParent, err)
	}

	product, err := it.Catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if domain.ProductType(product.TypeID) != domain.ProductTypeConfigurable {
		return nil, fmt.Errorf("%w: product %d has type %q", domain.ErrInvalidParent, productID, product.TypeID)
	}

	rows, err := it.Catalog.ListSaleableVariants(ctx, productID, req.StoreID)
	if err != nil {
		return nil, err
	}

	infos, err := shared.VariantPriceInfos(rows)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("product %d: %w", productID, domain.ErrNoVariants)
	}
	return infos, nil
}

// SelectAt runs only the override step over variants the caller already holds.
// A zero now means the interactor's clock.
func (it *Interactor) SelectAt(variants []domain.VariantPriceInfo, now time.Time) (*domain.Money, bool) {
	if now.IsZero() {
		now = it.Clock.Now()
	}
	return it.Selector.SelectDisplayPrice(variants, now)
}
