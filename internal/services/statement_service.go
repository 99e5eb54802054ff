package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/baharkarakas/credit-ledger/internal/reports"
)

type StatementService struct {
	ledger   *LedgerService
	currency string
	now      func() time.Time
}

func NewStatementService(l *LedgerService, currency string) *StatementService {
	return &StatementService{ledger: l, currency: currency, now: time.Now}
}

// Render builds the PDF statement for one client. The document is rendered
// fully in memory so a failure never leaves a truncated response.
func (s *StatementService) Render(ctx context.Context, ownerID, clientID string) ([]byte, error) {
	d, err := s.ledger.ClientDetail(ctx, ownerID, clientID)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = reports.WriteStatementPDF(&buf, reports.Statement{
		Client:       d.Client,
		Transactions: d.Transactions,
		Currency:     s.currency,
		GeneratedAt:  s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("render statement: %w", err)
	}
	return buf.Bytes(), nil
}
