package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID          uuid.UUID
	ScreeningID int
	SeatLabel   string
	Price       decimal.Decimal
	UserID      uuid.UUID
	Status      BookingStatus
	CreatedAt   time.Time
}

// PurchaseRequest is the input of the atomic purchase operation.
type PurchaseRequest struct {
	ScreeningID int
	SeatLabel   string
	Price       decimal.Decimal
	UserID      uuid.UUID
}

// BookingSummary is a confirmed booking joined with its screening, for listings.
type BookingSummary struct {
	BookingID  uuid.UUID
	MovieTitle string
	Venue      string
	ShowTime   time.Time
	SeatLabel  string
	Price      decimal.Decimal
	CreatedAt  time.Time
}

type BookingRepository interface {
	// GetTakenSeats returns the labels of confirmed bookings of a screening.
	GetTakenSeats(ctx context.Context, screeningID int) ([]string, error)

	// Purchase atomically verifies seat availability and balance, deducts the
	// price and records the booking. Structured refusals are reported with
	// ErrSeatAlreadyTaken, ErrInsufficientBalance, ErrPriceMismatch,
	// ErrUnknownSeat or ErrScreeningNotFound.
	Purchase(ctx context.Context, req PurchaseRequest) (*Booking, error)

	GetSummariesByUserID(ctx context.Context, userID uuid.UUID) ([]BookingSummary, error)
}

type BalanceRepository interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

type User struct {
	ID    uuid.UUID
	Email string
	Name  string
}

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}
