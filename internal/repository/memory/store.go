// Package memory is an in-process implementation of the repositories. It backs
// STORE_DRIVER=memory for local runs and the HTTP tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/baharkarakas/credit-ledger/internal/models"
	"github.com/baharkarakas/credit-ledger/internal/repository"
)

type Store struct {
	mu      sync.RWMutex
	users   map[string]models.User
	clients map[string]models.Client
	txns    map[string]models.Transaction
	last    time.Time
}

func New() *Store {
	return &Store{
		users:   map[string]models.User{},
		clients: map[string]models.Client{},
		txns:    map[string]models.Transaction{},
	}
}

func NewRepositories() repository.Set {
	s := New()
	return repository.Set{
		Users:        usersRepo{s},
		Clients:      clientsRepo{s},
		Transactions: transactionsRepo{s},
	}
}

// now is strictly increasing so created_at ordering is deterministic. Caller holds mu.
func (s *Store) now() time.Time {
	t := time.Now().UTC()
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t
	return t
}

type usersRepo struct{ s *Store }

func (r usersRepo) Create(_ context.Context, email, hash string) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return models.User{}, repository.ErrConflict
		}
	}
	u := models.User{ID: uuid.NewString(), Email: email, PasswordHash: hash, CreatedAt: r.s.now()}
	r.s.users[u.ID] = u
	return u, nil
}

func (r usersRepo) GetByID(_ context.Context, id string) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (r usersRepo) GetByEmail(_ context.Context, email string) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

type clientsRepo struct{ s *Store }

func (r clientsRepo) List(_ context.Context, ownerID string) ([]models.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		if c.UserID == ownerID {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b models.Client) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out, nil
}

func (r clientsRepo) Get(_ context.Context, ownerID, id string) (models.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.clients[id]
	if !ok || c.UserID != ownerID {
		return models.Client{}, repository.ErrNotFound
	}
	return c, nil
}

func (r clientsRepo) Create(_ context.Context, c models.Client) (models.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if _, exists := r.s.clients[c.ID]; exists {
		return models.Client{}, repository.ErrConflict
	}
	c.CreatedAt = r.s.now()
	c.UpdatedAt = c.CreatedAt
	r.s.clients[c.ID] = c
	return c, nil
}

func (r clientsRepo) Update(_ context.Context, ownerID, id, name string, phone *string) (models.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok || c.UserID != ownerID {
		return models.Client{}, repository.ErrNotFound
	}
	c.Name, c.Phone, c.UpdatedAt = name, phone, r.s.now()
	r.s.clients[id] = c
	return c, nil
}

func (r clientsRepo) Delete(_ context.Context, ownerID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok || c.UserID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.s.clients, id)
	for tid, t := range r.s.txns {
		if t.ClientID == id {
			delete(r.s.txns, tid)
		}
	}
	return nil
}

type transactionsRepo struct{ s *Store }

func (r transactionsRepo) List(_ context.Context, ownerID string, f repository.TxnFilter) ([]models.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Transaction, 0, len(r.s.txns))
	for _, t := range r.s.txns {
		if t.UserID != ownerID || (f.ClientID != "" && t.ClientID != f.ClientID) {
			continue
		}
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b models.Transaction) int {
		if f.NewestFirst {
			return b.CreatedAt.Compare(a.CreatedAt)
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out, nil
}

func (r transactionsRepo) Create(_ context.Context, tx models.Transaction) (models.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[tx.ClientID]
	if !ok || c.UserID != tx.UserID {
		return models.Transaction{}, repository.ErrNotFound
	}
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	tx.CreatedAt = r.s.now()
	r.s.txns[tx.ID] = tx
	return tx, nil
}

func (r transactionsRepo) Delete(_ context.Context, ownerID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.txns[id]
	if !ok || t.UserID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.s.txns, id)
	return nil
}
