package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const BookingConfirmedQueue = "booking.confirmed"

// BookingConfirmedEvent is emitted after a booking has been committed.
type BookingConfirmedEvent struct {
	EventID     uuid.UUID       `json:"eventId"`
	BookingID   uuid.UUID       `json:"bookingId"`
	UserID      uuid.UUID       `json:"userId"`
	ScreeningID int             `json:"screeningId"`
	SeatLabel   string          `json:"seatLabel"`
	Price       decimal.Decimal `json:"price"`
	ConfirmedAt time.Time       `json:"confirmedAt"`
}

type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error
}
