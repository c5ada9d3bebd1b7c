package repository

import (
	"context"
	"errors"

	"github.com/ecopoints/movie-booking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresScreeningRepository struct {
	db *pgxpool.Pool
}

func NewPostgresScreeningRepository(db *pgxpool.Pool) *PostgresScreeningRepository {
	return &PostgresScreeningRepository{
		db: db,
	}
}

func (p *PostgresScreeningRepository) GetByID(ctx context.Context, id int) (*domain.Screening, error) {
	query := `
		SELECT
			id,
			movie_id,
			movie_title,
			venue,
			show_time,
			price_platinum,
			price_gold,
			price_silver,
			price_bronze
		FROM screenings
		WHERE id = $1
	`

	var screening domain.Screening

	err := p.db.QueryRow(ctx, query, id).Scan(
		&screening.ID,
		&screening.MovieID,
		&screening.MovieTitle,
		&screening.Venue,
		&screening.ShowTime,
		&screening.Prices.Platinum,
		&screening.Prices.Gold,
		&screening.Prices.Silver,
		&screening.Prices.Bronze,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrScreeningNotFound
		}

		return nil, err
	}

	return &screening, nil
}
