package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/baharkarakas/credit-ledger/internal/models"
	"github.com/baharkarakas/credit-ledger/internal/repository"
)

type transactionsRepo struct{ pool *pgxpool.Pool }

// amounts travel as text so NUMERIC never passes through float64
const txnCols = `id::text, user_id::text, client_id::text, amount::text, type, created_at`

func scanTxn(row pgx.Row) (models.Transaction, error) {
	var (
		tx     models.Transaction
		amount string
	)
	if err := row.Scan(&tx.ID, &tx.UserID, &tx.ClientID, &amount, &tx.Type, &tx.CreatedAt); err != nil {
		return tx, err
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return tx, fmt.Errorf("transaction %s amount %q: %w", tx.ID, amount, err)
	}
	tx.Amount = d
	return tx, nil
}

func (r *transactionsRepo) List(ctx context.Context, ownerID string, f repository.TxnFilter) ([]models.Transaction, error) {
	q := `SELECT ` + txnCols + ` FROM transactions WHERE user_id=$1`
	args := []any{ownerID}
	if f.ClientID != "" {
		q += ` AND client_id=$2`
		args = append(args, f.ClientID)
	}
	if f.NewestFirst {
		q += ` ORDER BY created_at DESC, id`
	} else {
		q += ` ORDER BY created_at, id`
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := make([]models.Transaction, 0, 64)
	for rows.Next() {
		tx, err := scanTxn(rows)
		if err != nil {
			return nil, mapErr(err)
		}
		out = append(out, tx)
	}
	return out, mapErr(rows.Err())
}

// Create inserts only when the client belongs to the same owner; otherwise no
// row comes back and the caller gets ErrNotFound.
func (r *transactionsRepo) Create(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	const q = `
INSERT INTO transactions (id, user_id, client_id, amount, type)
SELECT $1::uuid, c.user_id, c.id, $4::numeric, $5
  FROM clients c
 WHERE c.id = $3 AND c.user_id = $2
RETURNING ` + txnCols
	out, err := scanTxn(r.pool.QueryRow(ctx, q,
		tx.ID, tx.UserID, tx.ClientID, tx.Amount.String(), string(tx.Type),
	))
	return out, mapErr(err)
}

func (r *transactionsRepo) Delete(ctx context.Context, ownerID, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id=$1 AND user_id=$2`, id, ownerID)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return mapErr(pgx.ErrNoRows)
	}
	return nil
}
