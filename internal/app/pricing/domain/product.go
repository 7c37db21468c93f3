package domain

import (
	"strings"
	"time"
)

// ProductType is the catalog type code of a product.
type ProductType string

const (
	ProductTypeSimple       ProductType = "simple"
	ProductTypeVirtual      ProductType = "virtual"
	ProductTypeConfigurable ProductType = "configurable"
)

// Valid reports whether t is a known type code.
func (t ProductType) Valid() bool {
	switch t {
	case ProductTypeSimple, ProductTypeVirtual, ProductTypeConfigurable:
		return true
	}
	return false
}

// CatalogProduct is a catalog entry. Configurable products carry no price
// of their own; their children do.
type CatalogProduct struct {
	id        int64
	sku       string
	name      string
	typeID    ProductType
	createdAt time.Time
	updatedAt time.Time
	events    []DomainEvent
}

// NewCatalogProduct validates and creates a product as seen at now.
func NewCatalogProduct(id int64, sku, name string, typeID ProductType, now time.Time) (*CatalogProduct, error) {
	if id <= 0 {
		return nil, ErrInvalidProductID
	}
	if strings.TrimSpace(sku) == "" {
		return nil, ErrEmptySKU
	}
	if !typeID.Valid() {
		return nil, ErrUnknownProductType
	}
	return &CatalogProduct{
		id:        id,
		sku:       strings.TrimSpace(sku),
		name:      strings.TrimSpace(name),
		typeID:    typeID,
		createdAt: now,
		updatedAt: now,
		events:    make([]DomainEvent, 0),
	}, nil
}

func (p *CatalogProduct) ID() int64 {
	return p.id
}

func (p *CatalogProduct) SKU() string {
	return p.sku
}

func (p *CatalogProduct) Name() string {
	return p.name
}

func (p *CatalogProduct) TypeID() ProductType {
	return p.typeID
}

func (p *CatalogProduct) CreatedAt() time.Time {
	return p.createdAt
}

func (p *CatalogProduct) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *CatalogProduct) DomainEvents() []DomainEvent {
	return p.events
}

// IsConfigurable reports whether the product's price comes from its variants.
func (p *CatalogProduct) IsConfigurable() bool {
	return p.typeID == ProductTypeConfigurable
}

// Sync attaches the given variants as the product's current children and
// records a synced event. Only configurable products may own variants.
func (p *CatalogProduct) Sync(variants []*Variant, now time.Time) error {
	if len(variants) > 0 && !p.IsConfigurable() {
		return ErrNotConfigurable
	}
	ids := make([]int64, 0, len(variants))
	for _, v := range variants {
		if v == nil {
			continue
		}
		if v.ParentID != p.id {
			return ErrVariantParentMismatch
		}
		ids = append(ids, v.ID)
	}

	p.updatedAt = now
	p.events = append(p.events, &CatalogProductSyncedEvent{
		ProductID:  p.id,
		SKU:        p.sku,
		TypeID:     p.typeID,
		VariantIDs: ids,
		SyncedAt:   now,
	})
	return nil
}
