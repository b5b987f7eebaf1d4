package event

import (
	"context"
	"time"

	"github.com/vietanh2810/inventory-api/internal/domain"
)

const TransactionRecorded = "inventory.transaction.recorded"

// Publisher forwards committed ledger entries to the outside world.
type Publisher interface {
	PublishTransaction(ctx context.Context, transaction domain.Transaction) error
	Close() error
}

type TransactionEvent struct {
	EventID     string             `json:"event_id"`
	EventType   string             `json:"event_type"`
	OccurredAt  time.Time          `json:"occurred_at"`
	Transaction domain.Transaction `json:"transaction"`
}

type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (NoopPublisher) PublishTransaction(context.Context, domain.Transaction) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
