package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecopoints/movie-booking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const ledgerReasonMovieBooking = "movie_booking"

type PostgresBookingRepository struct {
	db     *pgxpool.Pool
	layout domain.TierLayout
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db:     db,
		layout: domain.DefaultTierLayout,
	}
}

func (p *PostgresBookingRepository) GetTakenSeats(ctx context.Context, screeningID int) ([]string, error) {
	query := `
		SELECT seat_label
		FROM bookings
		WHERE screening_id = $1 AND status = 'confirmed'
		ORDER BY seat_label
	`

	rows, err := p.db.Query(ctx, query, screeningID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	labels := make([]string, 0)

	for rows.Next() {
		var label string

		if err = rows.Scan(&label); err != nil {
			return nil, err
		}

		labels = append(labels, label)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return labels, nil
}

// Purchase runs the whole purchase in one transaction: the authoritative price
// is recomputed from the seat label, the balance row is locked, and the seat
// is claimed through the partial unique index on confirmed bookings.
func (p *PostgresBookingRepository) Purchase(ctx context.Context, req domain.PurchaseRequest) (*domain.Booking, error) {
	booking := domain.Booking{
		ScreeningID: req.ScreeningID,
		SeatLabel:   req.SeatLabel,
		UserID:      req.UserID,
		Status:      domain.BookingStatusConfirmed,
	}

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		price, err := p.seatPrice(ctx, tx, req.ScreeningID, req.SeatLabel)
		if err != nil {
			return err
		}

		if !price.Equal(req.Price) {
			return fmt.Errorf("%w: requested %s, current %s", domain.ErrPriceMismatch, req.Price, price)
		}

		booking.Price = price

		query := `SELECT points FROM user_balances WHERE user_id = $1 FOR UPDATE`

		var balance decimal.Decimal

		err = tx.QueryRow(ctx, query, req.UserID).Scan(&balance)
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return err
			}

			balance = decimal.Zero
		}

		query = `
			SELECT EXISTS (
				SELECT 1 FROM bookings
				WHERE screening_id = $1 AND seat_label = $2 AND status = 'confirmed'
			)
		`

		var taken bool

		err = tx.QueryRow(ctx, query, req.ScreeningID, req.SeatLabel).Scan(&taken)
		if err != nil {
			return err
		}

		if taken {
			return domain.ErrSeatAlreadyTaken
		}

		if balance.LessThan(price) {
			return domain.ErrInsufficientBalance
		}

		query = `
			INSERT INTO bookings (screening_id, seat_label, price, user_id, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`

		err = tx.QueryRow(
			ctx,
			query,
			booking.ScreeningID,
			booking.SeatLabel,
			booking.Price,
			booking.UserID,
			string(booking.Status)).Scan(&booking.ID, &booking.CreatedAt)

		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return domain.ErrSeatAlreadyTaken
			}

			return err
		}

		query = `
			UPDATE user_balances
			SET points = points - $1, updated_at = NOW()
			WHERE user_id = $2
		`

		_, err = tx.Exec(ctx, query, price, req.UserID)
		if err != nil {
			return err
		}

		query = `
			INSERT INTO points_ledger (user_id, delta, reason, booking_id)
			VALUES ($1, $2, $3, $4)
		`

		_, err = tx.Exec(ctx, query, req.UserID, price.Neg(), ledgerReasonMovieBooking, booking.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (p *PostgresBookingRepository) seatPrice(ctx context.Context, tx pgx.Tx, screeningID int, label string) (decimal.Decimal, error) {
	query := `
		SELECT price_platinum, price_gold, price_silver, price_bronze
		FROM screenings
		WHERE id = $1
	`

	var prices domain.TierPrices

	err := tx.QueryRow(ctx, query, screeningID).Scan(
		&prices.Platinum,
		&prices.Gold,
		&prices.Silver,
		&prices.Bronze,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrScreeningNotFound
		}

		return decimal.Zero, err
	}

	tier, err := p.layout.TierForSeat(label)
	if err != nil {
		return decimal.Zero, err
	}

	return prices.PriceFor(tier)
}

func (p *PostgresBookingRepository) GetSummariesByUserID(ctx context.Context, userID uuid.UUID) ([]domain.BookingSummary, error) {
	query := `
		SELECT
			b.id,
			s.movie_title,
			s.venue,
			s.show_time,
			b.seat_label,
			b.price,
			b.created_at
		FROM bookings b
		JOIN screenings s ON b.screening_id = s.id
		WHERE b.user_id = $1 AND b.status = 'confirmed'
		ORDER BY b.created_at DESC
	`

	rows, err := p.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]domain.BookingSummary, 0)

	for rows.Next() {
		var summary domain.BookingSummary

		err := rows.Scan(
			&summary.BookingID,
			&summary.MovieTitle,
			&summary.Venue,
			&summary.ShowTime,
			&summary.SeatLabel,
			&summary.Price,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
