package shared

import (
	"encoding/json"
	"fmt"

	"github.com/murkotick/configurable-price-service/internal/app/pricing/domain"
)

// MarshalDomainEventPayload converts a domain event into a JSON payload suitable for the outbox.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	switch e := ev.(type) {
	case *domain.CatalogProductSyncedEvent:
		payload := map[string]interface{}{
			"product_id":  e.ProductID,
			"sku":         e.SKU,
			"type_id":     string(e.TypeID),
			"variant_ids": e.VariantIDs,
			"synced_at":   e.SyncedAt,
			"occurred_at": e.OccurredAt(),
		}
		b, err := json.Marshal(payload)
		return string(b), err

	default:
		return "", fmt.Errorf("unsupported domain event type: %T", ev)
	}
}
