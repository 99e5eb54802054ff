// Package ledger derives client balances from raw clients and transactions.
//
// Everything here is a pure function of its inputs. Balances are recomputed
// from a full snapshot on every call; nothing is cached between calls.
package ledger

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/baharkarakas/credit-ledger/internal/models"
)

type totals struct {
	credit  decimal.Decimal
	payment decimal.Decimal
}

// ComputeBalances returns one ClientBalance per client, in input order.
// Transactions whose client is not in clients are ignored.
func ComputeBalances(clients []models.Client, txns []models.Transaction) []models.ClientBalance {
	byClient := make(map[string]*totals, len(clients))
	for _, c := range clients {
		byClient[c.ID] = &totals{credit: decimal.Zero, payment: decimal.Zero}
	}

	for _, t := range txns {
		tt, ok := byClient[t.ClientID]
		if !ok {
			continue
		}
		switch t.Type {
		case models.TxnCredit:
			tt.credit = tt.credit.Add(t.Amount)
		case models.TxnPayment:
			tt.payment = tt.payment.Add(t.Amount)
		}
	}

	out := make([]models.ClientBalance, 0, len(clients))
	for _, c := range clients {
		tt := byClient[c.ID]
		out = append(out, models.ClientBalance{
			Client:       c,
			TotalCredit:  tt.credit,
			TotalPayment: tt.payment,
			Balance:      tt.credit.Sub(tt.payment),
		})
	}
	return out
}

// Matches reports whether a client is selected by a free-text query.
// Names match case-insensitively, phone numbers literally.
func Matches(c models.Client, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.Name), strings.ToLower(query)) {
		return true
	}
	return c.Phone != nil && strings.Contains(*c.Phone, query)
}

// RankAndFilter keeps the balances matching query and orders them by balance,
// highest first. Equal balances keep their input order. The input is not modified.
func RankAndFilter(balances []models.ClientBalance, query string) []models.ClientBalance {
	out := make([]models.ClientBalance, 0, len(balances))
	for _, b := range balances {
		if Matches(b.Client, query) {
			out = append(out, b)
		}
	}
	slices.SortStableFunc(out, func(a, b models.ClientBalance) int {
		return b.Balance.Cmp(a.Balance)
	})
	return out
}

// GlobalOutstanding sums the positive part of every balance. A client who
// overpaid contributes zero.
func GlobalOutstanding(balances []models.ClientBalance) decimal.Decimal {
	sum := decimal.Zero
	for _, b := range balances {
		if b.Balance.IsPositive() {
			sum = sum.Add(b.Balance)
		}
	}
	return sum
}

type Summary struct {
	Outstanding decimal.Decimal        `json:"outstanding"`
	ClientCount int                    `json:"client_count"`
	Clients     []models.ClientBalance `json:"clients"`
}

// Summarize computes the dashboard view. Outstanding and ClientCount cover
// every client; Clients holds only the ones matching query.
func Summarize(clients []models.Client, txns []models.Transaction, query string) Summary {
	balances := ComputeBalances(clients, txns)
	return Summary{
		Outstanding: GlobalOutstanding(balances),
		ClientCount: len(balances),
		Clients:     RankAndFilter(balances, query),
	}
}
