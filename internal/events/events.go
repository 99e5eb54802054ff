// Package events announces ledger changes so other sessions of the same owner
// know to refetch. Delivery is best effort and never blocks a request.
package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/baharkarakas/credit-ledger/internal/metrics"
	"github.com/baharkarakas/credit-ledger/internal/worker"
)

const (
	ClientCreated      = "client.created"
	ClientUpdated      = "client.updated"
	ClientDeleted      = "client.deleted"
	TransactionCreated = "transaction.created"
	TransactionDeleted = "transaction.deleted"
)

type Event struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	UserID        string    `json:"user_id"`
	ClientID      string    `json:"client_id,omitempty"`
	TransactionID string    `json:"transaction_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Publisher delivers one message; routingKey is the event type.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body any) error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }

// Dispatcher hands events to the worker pool for publishing.
type Dispatcher struct {
	pub     Publisher
	pool    *worker.Pool
	timeout time.Duration
}

func NewDispatcher(pub Publisher, pool *worker.Pool) *Dispatcher {
	if pub == nil {
		pub = NopPublisher{}
	}
	return &Dispatcher{pub: pub, pool: pool, timeout: 5 * time.Second}
}

// Emit is safe on a nil Dispatcher.
func (d *Dispatcher) Emit(e Event) {
	if d == nil {
		return
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	ok := d.pool.TrySubmit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.pub.Publish(ctx, e.Type, e); err != nil {
			metrics.EventsDropped.Inc()
			slog.Warn("publish event", "type", e.Type, "event_id", e.ID, "err", err)
		}
	})
	if !ok {
		metrics.EventsDropped.Inc()
		slog.Warn("event queue full, dropping", "type", e.Type, "event_id", e.ID)
	}
}
