package sync_catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	contracts "github.com/murkotick/configurable-price-service/internal/app/pricing/contracts"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/domain"
	shared "github.com/murkotick/configurable-price-service/internal/app/pricing/usecases/shared"
	"github.com/murkotick/configurable-price-service/internal/models/m_outbox"
	"github.com/murkotick/configurable-price-service/internal/pkg/clock"
	commitplan "github.com/murkotick/configurable-price-service/internal/pkg/committer"
)

// Product is the parent entry of a sync request.
type Product struct {
	ID     int64
	SKU    string
	Name   string
	TypeID string
}

// Variant is one child entry. Prices are decimal strings.
type Variant struct {
	ID           int64
	StoreID      int64
	SKU          string
	Saleable     bool
	BasePrice    string
	SpecialPrice *string
	SpecialFrom  *time.Time
	SpecialTo    *time.Time
}

// Request carries a product and its full set of variants. Variants stored
// for the product but missing from the request are deleted.
type Request struct {
	Product  Product
	Variants []Variant
}

// Interactor writes a product, its variants and a synced outbox event in one commit.
type Interactor struct {
	Catalog     contracts.CatalogReader
	ProductRepo contracts.ProductRepo
	VariantRepo contracts.VariantRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	Clock       clock.Clock
}

func NewInteractor(catalog contracts.CatalogReader, prodRepo contracts.ProductRepo, variantRepo contracts.VariantRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		Catalog:     catalog,
		ProductRepo: prodRepo,
		VariantRepo: variantRepo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		Clock:       clk,
	}
}

// Execute validates the request and commits it. Returns the product id.
func (it *Interactor) Execute(ctx context.Context, req Request) (int64, error) {
	now := it.Clock.Now()

	// 1. Build domain objects
	product, err := domain.NewCatalogProduct(req.Product.ID, req.Product.SKU, req.Product.Name,
		domain.ProductType(req.Product.TypeID), now)
	if err != nil {
		return 0, err
	}

	variants := make([]*domain.Variant, 0, len(req.Variants))
	for _, in := range req.Variants {
		v, err := buildVariant(product.ID(), in)
		if err != nil {
			return 0, fmt.Errorf("variant %d: %w", in.ID, err)
		}
		variants = append(variants, v)
	}

	// 2. Domain call
	if err := product.Sync(variants, now); err != nil {
		return 0, err
	}

	// 3. Build commit plan
	exists, err := it.productExists(ctx, product.ID())
	if err != nil {
		return 0, err
	}

	plan := commitplan.NewPlan()
	if exists {
		plan.Add(it.ProductRepo.UpdateMut(product))
	} else {
		plan.Add(it.ProductRepo.InsertMut(product))
	}
	plan.Add(it.VariantRepo.DeleteByParentMut(product.ID()))
	for _, v := range variants {
		plan.Add(it.VariantRepo.UpsertMut(v, now))
	}

	// 4. Outbox events
	for _, ev := range product.DomainEvents() {
		payload, err := shared.MarshalDomainEventPayload(ev)
		if err != nil {
			return 0, err
		}
		plan.Add(it.OutboxRepo.InsertMut(&contracts.OutboxEvent{
			EventID:      uuid.New().String(),
			EventType:    ev.EventType(),
			AggregateID:  ev.AggregateID(),
			PayloadJSON:  payload,
			Status:       m_outbox.StatusPending,
			CreatedAtUTC: now,
		}))
	}

	// 5. Apply plan
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return 0, err
	}
	return product.ID(), nil
}

func (it *Interactor) productExists(ctx context.Context, id int64) (bool, error) {
	_, err := it.Catalog.GetProduct(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrProductNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("look up product %d: %w", id, err)
	}
}

func buildVariant(parentID int64, in Variant) (*domain.Variant, error) {
	base, err := domain.NewMoneyFromDecimal(in.BasePrice)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPrice, err)
	}

	var special *domain.Money
	if in.SpecialPrice != nil && *in.SpecialPrice != "" {
		special, err = domain.NewMoneyFromDecimal(*in.SpecialPrice)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPrice, err)
		}
	}

	price, err := domain.NewVariantPriceInfo(base, special, in.SpecialFrom, in.SpecialTo)
	if err != nil {
		return nil, err
	}
	return domain.NewVariant(in.ID, parentID, in.StoreID, in.SKU, in.Saleable, price)
}
