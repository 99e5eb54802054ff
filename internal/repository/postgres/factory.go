package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	repo "github.com/baharkarakas/credit-ledger/internal/repository"
)

func NewRepositories(pool *pgxpool.Pool) repo.Set {
	return repo.Set{
		Users:        &usersRepo{pool},
		Clients:      &clientsRepo{pool},
		Transactions: &transactionsRepo{pool},
	}
}

// mapErr translates driver errors into repository sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repo.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return repo.ErrConflict
		case "22P02", "23503": // malformed uuid, foreign key
			return repo.ErrNotFound
		}
	}
	return fmt.Errorf("%w: %w", repo.ErrUnavailable, err)
}
