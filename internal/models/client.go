package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Client struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PhoneOrEmpty returns the phone number or "" when none is set.
func (c Client) PhoneOrEmpty() string {
	if c.Phone == nil {
		return ""
	}
	return *c.Phone
}

// ClientBalance is derived on every read and never persisted.
type ClientBalance struct {
	Client
	TotalCredit  decimal.Decimal `json:"total_credit"`
	TotalPayment decimal.Decimal `json:"total_payment"`
	Balance      decimal.Decimal `json:"balance"`
}
