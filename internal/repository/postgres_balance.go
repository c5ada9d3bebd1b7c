package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresBalanceRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBalanceRepository(db *pgxpool.Pool) *PostgresBalanceRepository {
	return &PostgresBalanceRepository{
		db: db,
	}
}

// GetBalance returns the user's point balance. Users without a balance row have zero points.
func (p *PostgresBalanceRepository) GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	query := `SELECT points FROM user_balances WHERE user_id = $1`

	var points decimal.Decimal

	err := p.db.QueryRow(ctx, query, userID).Scan(&points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}

		return decimal.Zero, err
	}

	return points, nil
}
