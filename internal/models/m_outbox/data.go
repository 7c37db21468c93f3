package m_outbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Row is one outbox_events record.
type Row struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string
	Status      string
	CreatedAt   time.Time
}

// InsertMutation constructs an insert for the outbox table.
// processed_at always starts NULL; an empty status defaults to pending.
func InsertMutation(r Row) *spanner.Mutation {
	status := r.Status
	if status == "" {
		status = StatusPending
	}
	return spanner.Insert(TableName,
		[]string{ColEventID, ColEventType, ColAggregateID, ColPayload, ColStatus, ColCreatedAt, ColProcessedAt},
		[]interface{}{r.EventID, r.EventType, r.AggregateID, r.Payload, status, r.CreatedAt.UTC(), nil},
	)
}
