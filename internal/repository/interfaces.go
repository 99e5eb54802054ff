package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/credit-ledger/internal/models"
)

var (
	// ErrNotFound covers rows that do not exist and rows owned by someone else.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
	// ErrUnavailable wraps failures of the underlying store (network, timeouts, server errors).
	ErrUnavailable = errors.New("store unavailable")
)

type Users interface {
	Create(ctx context.Context, email, passwordHash string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

// Clients is scoped to a single owner on every call.
type Clients interface {
	List(ctx context.Context, ownerID string) ([]models.Client, error)
	Get(ctx context.Context, ownerID, id string) (models.Client, error)
	Create(ctx context.Context, c models.Client) (models.Client, error)
	Update(ctx context.Context, ownerID, id, name string, phone *string) (models.Client, error)
	// Delete removes the client and all of its transactions.
	Delete(ctx context.Context, ownerID, id string) error
}

type TxnFilter struct {
	ClientID    string // empty: all clients
	NewestFirst bool
}

type Transactions interface {
	List(ctx context.Context, ownerID string, f TxnFilter) ([]models.Transaction, error)
	// Create returns ErrNotFound when the client does not exist for the owner.
	Create(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// Set bundles the repositories a backend provides.
type Set struct {
	Users        Users
	Clients      Clients
	Transactions Transactions
}
