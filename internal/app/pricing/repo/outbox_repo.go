package repo

import (
	"cloud.google.com/go/spanner"

	contracts "github.com/murkotick/configurable-price-service/internal/app/pricing/contracts"
	"github.com/murkotick/configurable-price-service/internal/models/m_outbox"
)

// OutboxRepo is the Spanner implementation of the transactional outbox repository.
type OutboxRepo struct{}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{}
}

func (r *OutboxRepo) InsertMut(e *contracts.OutboxEvent) *spanner.Mutation {
	if e == nil {
		return nil
	}
	return m_outbox.InsertMutation(m_outbox.Row{
		EventID:     e.EventID,
		EventType:   e.EventType,
		AggregateID: e.AggregateID,
		Payload:     e.PayloadJSON,
		Status:      e.Status,
		CreatedAt:   e.CreatedAtUTC,
	})
}
