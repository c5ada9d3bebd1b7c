package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ecopoints/movie-booking/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Navigator leaves the booking view once a booking has been confirmed.
type Navigator interface {
	AfterBooking(b *domain.Booking)
}

type NavigatorFunc func(b *domain.Booking)

func (f NavigatorFunc) AfterBooking(b *domain.Booking) {
	f(b)
}

type Deps struct {
	Screenings domain.ScreeningRepository
	Bookings   domain.BookingRepository
	Balances   domain.BalanceRepository
	Layout     domain.TierLayout
	Navigator  Navigator
}

type Option func(*View)

// WithBalance seeds the view with a last-known balance instead of fetching it.
func WithBalance(balance decimal.Decimal) Option {
	return func(v *View) {
		v.balance = balance
		v.balanceKnown = true
	}
}

// View owns the state of one user's booking flow for one screening. All
// selection changes go through Dispatch.
type View struct {
	mu sync.Mutex

	deps      Deps
	userID    uuid.UUID
	screening domain.Screening
	seatMap   *domain.SeatMap
	selection domain.Selection

	balance      decimal.Decimal
	balanceKnown bool

	inFlight bool
	stale    bool
}

// Open loads the screening and its taken seats and builds the seat map. A
// screening with unusable prices fails with domain.ErrInvalidScreening.
func Open(ctx context.Context, deps Deps, screeningID int, userID uuid.UUID, opts ...Option) (*View, error) {
	if deps.Layout == nil {
		deps.Layout = domain.DefaultTierLayout
	}

	v := &View{
		deps:   deps,
		userID: userID,
	}

	for _, opt := range opts {
		opt(v)
	}

	screening, err := deps.Screenings.GetByID(ctx, screeningID)
	if err != nil {
		return nil, err
	}

	taken, err := deps.Bookings.GetTakenSeats(ctx, screeningID)
	if err != nil {
		return nil, fmt.Errorf("fetch taken seats: %w", err)
	}

	seatMap, err := domain.BuildSeatMap(*screening, deps.Layout, taken)
	if err != nil {
		return nil, err
	}

	v.screening = *screening
	v.seatMap = seatMap

	if !v.balanceKnown {
		balance, err := deps.Balances.GetBalance(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("fetch balance: %w", err)
		}

		v.balance = balance
		v.balanceKnown = true
	}

	return v, nil
}

func (v *View) Screening() domain.Screening {
	return v.screening
}

// SeatMap returns the current seat map. Callers must treat it as read-only.
func (v *View) SeatMap() *domain.SeatMap {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.seatMap
}

func (v *View) Balance() decimal.Decimal {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.balance
}

// Stale reports whether a submission revealed that the seat map is out of date.
func (v *View) Stale() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.stale
}

func (v *View) InFlight() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.inFlight
}

// Dispatch applies a selection event and returns the resulting checkout summary.
func (v *View) Dispatch(ev domain.SelectionEvent) domain.CheckoutSummary {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.selection.Handle(v.seatMap, ev)

	return v.selection.Summarize(v.balance)
}

// Restore re-selects a previously persisted seat label. It is a no-op when
// the seat is no longer available or something is already selected.
func (v *View) Restore(label string) domain.CheckoutSummary {
	v.mu.Lock()
	defer v.mu.Unlock()

	if label != "" && v.selection.State() == domain.SelectionEmpty {
		v.selection.Handle(v.seatMap, domain.SeatClicked{Label: label})
	}

	return v.selection.Summarize(v.balance)
}

func (v *View) Summary() domain.CheckoutSummary {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.selection.Summarize(v.balance)
}

// Leave resets the selection when the user navigates away from the view.
func (v *View) Leave() {
	v.Dispatch(domain.NavigatedAway{})
}

// Submit sends exactly one purchase request for the selected seat. Only one
// submission may be in flight per view. Structured rejections are returned
// as-is with the selection kept; any other failure is wrapped with
// domain.ErrPurchaseUnavailable and no state change is assumed.
func (v *View) Submit(ctx context.Context) (*domain.Booking, error) {
	v.mu.Lock()

	seat, ok := v.selection.Seat()
	if !ok {
		v.mu.Unlock()
		return nil, domain.ErrNoSelection
	}

	if v.inFlight {
		v.mu.Unlock()
		return nil, domain.ErrSubmissionInFlight
	}

	v.inFlight = true

	req := domain.PurchaseRequest{
		ScreeningID: v.screening.ID,
		SeatLabel:   seat.Label,
		Price:       seat.Price,
		UserID:      v.userID,
	}

	v.mu.Unlock()

	booking, err := v.deps.Bookings.Purchase(ctx, req)

	v.mu.Lock()
	v.inFlight = false

	if err != nil {
		defer v.mu.Unlock()

		switch {
		case errors.Is(err, domain.ErrSeatAlreadyTaken):
			v.stale = true
			return nil, err
		case domain.IsPurchaseRejection(err):
			return nil, err
		default:
			return nil, fmt.Errorf("%w: %w", domain.ErrPurchaseUnavailable, err)
		}
	}

	v.seatMap.MarkTaken(seat.Label)
	v.selection.Handle(v.seatMap, domain.BookingSucceeded{})
	v.balance = v.balance.Sub(seat.Price)
	v.mu.Unlock()

	if v.deps.Navigator != nil {
		v.deps.Navigator.AfterBooking(booking)
	}

	return booking, nil
}

// Reconcile re-fetches the taken seats and rebuilds the map. A selection whose
// seat has been taken in the meantime is dropped.
func (v *View) Reconcile(ctx context.Context) (domain.CheckoutSummary, error) {
	taken, err := v.deps.Bookings.GetTakenSeats(ctx, v.screening.ID)
	if err != nil {
		return domain.CheckoutSummary{}, fmt.Errorf("fetch taken seats: %w", err)
	}

	seatMap, err := domain.BuildSeatMap(v.screening, v.deps.Layout, taken)
	if err != nil {
		return domain.CheckoutSummary{}, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.seatMap = seatMap
	v.stale = false

	if seat, ok := v.selection.Seat(); ok {
		if current, found := seatMap.Seat(seat.Label); !found || !current.Available {
			v.selection.Handle(seatMap, domain.NavigatedAway{})
		}
	}

	return v.selection.Summarize(v.balance), nil
}
