package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TxnCredit  TransactionType = "credit"
	TxnPayment TransactionType = "payment"
)

// Transaction is a single credit or payment recorded against a client.
// It is never updated in place; CreatedAt is assigned by the store.
type Transaction struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	ClientID  string          `json:"client_id"`
	Amount    decimal.Decimal `json:"amount"`
	Type      TransactionType `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
}
