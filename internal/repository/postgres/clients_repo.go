package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/credit-ledger/internal/models"
)

type clientsRepo struct{ pool *pgxpool.Pool }

const clientCols = `id::text, user_id::text, name, phone, created_at, updated_at`

func scanClient(row pgx.Row) (models.Client, error) {
	var c models.Client
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *clientsRepo) List(ctx context.Context, ownerID string) ([]models.Client, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+clientCols+`
		   FROM clients
		  WHERE user_id=$1
		  ORDER BY created_at, id`,
		ownerID,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := make([]models.Client, 0, 32)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, mapErr(err)
		}
		out = append(out, c)
	}
	return out, mapErr(rows.Err())
}

func (r *clientsRepo) Get(ctx context.Context, ownerID, id string) (models.Client, error) {
	c, err := scanClient(r.pool.QueryRow(ctx,
		`SELECT `+clientCols+` FROM clients WHERE id=$1 AND user_id=$2`,
		id, ownerID,
	))
	return c, mapErr(err)
}

func (r *clientsRepo) Create(ctx context.Context, c models.Client) (models.Client, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	out, err := scanClient(r.pool.QueryRow(ctx,
		`INSERT INTO clients(id, user_id, name, phone) VALUES($1,$2,$3,$4)
		 RETURNING `+clientCols,
		c.ID, c.UserID, c.Name, c.Phone,
	))
	return out, mapErr(err)
}

func (r *clientsRepo) Update(ctx context.Context, ownerID, id, name string, phone *string) (models.Client, error) {
	c, err := scanClient(r.pool.QueryRow(ctx,
		`UPDATE clients
		    SET name=$3, phone=$4, updated_at=now()
		  WHERE id=$1 AND user_id=$2
		  RETURNING `+clientCols,
		id, ownerID, name, phone,
	))
	return c, mapErr(err)
}

// Transactions go with the client through ON DELETE CASCADE.
func (r *clientsRepo) Delete(ctx context.Context, ownerID, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id=$1 AND user_id=$2`, id, ownerID)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return mapErr(pgx.ErrNoRows)
	}
	return nil
}
