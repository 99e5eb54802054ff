package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/baharkarakas/credit-ledger/internal/api/validate"
	"github.com/baharkarakas/credit-ledger/internal/events"
	"github.com/baharkarakas/credit-ledger/internal/metrics"
	"github.com/baharkarakas/credit-ledger/internal/models"
	repo "github.com/baharkarakas/credit-ledger/internal/repository"
)

type TransactionInput struct {
	Type   models.TransactionType `json:"type"`
	Amount decimal.Decimal        `json:"amount"`
}

type TransactionService struct {
	clients repo.Clients
	r       repo.Transactions
	events  *events.Dispatcher
}

func NewTransactionService(c repo.Clients, r repo.Transactions, ev *events.Dispatcher) *TransactionService {
	return &TransactionService{clients: c, r: r, events: ev}
}

// List returns a client's transactions, newest first. A client the owner does
// not have is ErrNotFound, never an empty history.
func (s *TransactionService) List(ctx context.Context, ownerID, clientID string) ([]models.Transaction, error) {
	if _, err := s.clients.Get(ctx, ownerID, clientID); err != nil {
		return nil, observe(err)
	}
	txs, err := s.r.List(ctx, ownerID, repo.TxnFilter{ClientID: clientID, NewestFirst: true})
	return txs, observe(err)
}

// Create records a credit or payment. Invalid input never reaches the store.
func (s *TransactionService) Create(ctx context.Context, ownerID, clientID string, in TransactionInput) (models.Transaction, error) {
	if err := validate.Collect(
		validate.OneOf("type", string(in.Type), string(models.TxnCredit), string(models.TxnPayment)),
		validate.Amount("amount", in.Amount),
	); err != nil {
		return models.Transaction{}, err
	}

	tx, err := s.r.Create(ctx, models.Transaction{
		UserID:   ownerID,
		ClientID: clientID,
		Amount:   in.Amount.Round(2),
		Type:     in.Type,
	})
	if err != nil {
		return models.Transaction{}, observe(err)
	}
	metrics.TransactionsTotal.WithLabelValues(string(tx.Type)).Inc()
	s.events.Emit(events.Event{Type: events.TransactionCreated, UserID: ownerID, ClientID: tx.ClientID, TransactionID: tx.ID})
	return tx, nil
}

func (s *TransactionService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.r.Delete(ctx, ownerID, id); err != nil {
		return observe(err)
	}
	metrics.TransactionsDeleted.Inc()
	s.events.Emit(events.Event{Type: events.TransactionDeleted, UserID: ownerID, TransactionID: id})
	return nil
}
