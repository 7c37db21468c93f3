package domain

import "time"

// DomainEvent is a marker interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// CatalogProductSyncedEvent is raised when a product and its variants were
// written by a catalog sync.
type CatalogProductSyncedEvent struct {
	ProductID  int64
	SKU        string
	TypeID     ProductType
	VariantIDs []int64
	SyncedAt   time.Time
}

func (e *CatalogProductSyncedEvent) EventType() string {
	return "catalog.product.synced"
}

func (e *CatalogProductSyncedEvent) AggregateID() string {
	return FormatProductID(e.ProductID)
}

func (e *CatalogProductSyncedEvent) OccurredAt() time.Time {
	return e.SyncedAt
}
