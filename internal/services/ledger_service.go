package services

import (
	"context"

	"github.com/baharkarakas/credit-ledger/internal/ledger"
	"github.com/baharkarakas/credit-ledger/internal/models"
	repo "github.com/baharkarakas/credit-ledger/internal/repository"
)

// LedgerService fetches a fresh snapshot from the store and aggregates it.
// A failed fetch returns an error and no partial view.
type LedgerService struct {
	clients repo.Clients
	txns    repo.Transactions
}

func NewLedgerService(c repo.Clients, t repo.Transactions) *LedgerService {
	return &LedgerService{clients: c, txns: t}
}

func (s *LedgerService) Dashboard(ctx context.Context, ownerID, query string) (ledger.Summary, error) {
	clients, err := s.clients.List(ctx, ownerID)
	if err != nil {
		return ledger.Summary{}, observe(err)
	}
	txns, err := s.txns.List(ctx, ownerID, repo.TxnFilter{})
	if err != nil {
		return ledger.Summary{}, observe(err)
	}
	return ledger.Summarize(clients, txns, query), nil
}

type ClientDetail struct {
	Client       models.ClientBalance `json:"client"`
	Transactions []models.Transaction `json:"transactions"`
}

func (s *LedgerService) ClientDetail(ctx context.Context, ownerID, clientID string) (ClientDetail, error) {
	c, err := s.clients.Get(ctx, ownerID, clientID)
	if err != nil {
		return ClientDetail{}, observe(err)
	}
	txns, err := s.txns.List(ctx, ownerID, repo.TxnFilter{ClientID: clientID, NewestFirst: true})
	if err != nil {
		return ClientDetail{}, observe(err)
	}
	balances := ledger.ComputeBalances([]models.Client{c}, txns)
	return ClientDetail{Client: balances[0], Transactions: txns}, nil
}
