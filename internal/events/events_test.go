package events

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/credit-ledger/internal/worker"
)

type recorder struct {
	mu   sync.Mutex
	keys []string
	got  []Event
	err  error
}

func (r *recorder) Publish(_ context.Context, key string, body any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = append(r.keys, key)
	r.got = append(r.got, body.(Event))
	return r.err
}

func TestDispatcherPublishesWithTypeAsRoutingKey(t *testing.T) {
	rec := &recorder{}
	pool := worker.NewPool(1, 8)
	d := NewDispatcher(rec, pool)

	d.Emit(Event{Type: TransactionCreated, UserID: "u1", ClientID: "c1", TransactionID: "t1"})
	d.Emit(Event{Type: ClientDeleted, UserID: "u1", ClientID: "c1"})
	pool.Stop()

	require.Len(t, rec.got, 2)
	assert.Equal(t, []string{TransactionCreated, ClientDeleted}, rec.keys)
	assert.NotEmpty(t, rec.got[0].ID)
	assert.False(t, rec.got[0].OccurredAt.IsZero())
	assert.Equal(t, "t1", rec.got[0].TransactionID)
}

func TestDispatcherSwallowsPublishErrors(t *testing.T) {
	rec := &recorder{err: errors.New("broker down")}
	pool := worker.NewPool(1, 8)
	d := NewDispatcher(rec, pool)

	assert.NotPanics(t, func() { d.Emit(Event{Type: ClientCreated, UserID: "u1"}) })
	pool.Stop()
	assert.Len(t, rec.got, 1)
}

func TestNilDispatcherIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Emit(Event{Type: ClientCreated}) })
}
