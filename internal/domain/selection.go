package domain

import "github.com/shopspring/decimal"

type SelectionState string

const (
	SelectionEmpty    SelectionState = "empty"
	SelectionSelected SelectionState = "selected"
)

const (
	ActionBookSeat           = "Book seat"
	ActionInsufficientPoints = "Insufficient points"
	ActionSelectSeat         = "Select a seat"
)

// SelectionEvent is anything that can move the selection state machine.
type SelectionEvent interface {
	selectionEvent()
}

// SeatClicked is a click on the seat with the given label.
type SeatClicked struct {
	Label string
}

// BookingSucceeded is emitted once the purchase operation confirmed a booking.
type BookingSucceeded struct{}

// NavigatedAway is emitted when the booking view is left.
type NavigatedAway struct{}

func (SeatClicked) selectionEvent()      {}
func (BookingSucceeded) selectionEvent() {}
func (NavigatedAway) selectionEvent()    {}

// Selection holds at most one seat. The zero value is the empty selection.
type Selection struct {
	seat *Seat
}

func (s Selection) State() SelectionState {
	if s.seat == nil {
		return SelectionEmpty
	}

	return SelectionSelected
}

// Seat returns the selected seat, if any.
func (s Selection) Seat() (Seat, bool) {
	if s.seat == nil {
		return Seat{}, false
	}

	return *s.seat, true
}

// Handle applies ev against seatMap and reports whether the selection changed.
// Clicks on taken or unknown seats are ignored.
func (s *Selection) Handle(seatMap *SeatMap, ev SelectionEvent) bool {
	switch ev := ev.(type) {
	case SeatClicked:
		seat, ok := seatMap.Seat(ev.Label)
		if !ok || !seat.Available {
			return false
		}

		if s.seat != nil && s.seat.Label == seat.Label {
			s.seat = nil
			return true
		}

		s.seat = &seat
		return true

	case BookingSucceeded, NavigatedAway:
		changed := s.seat != nil
		s.seat = nil
		return changed
	}

	return false
}

// CheckoutSummary is the affordability hint shown for the current selection.
type CheckoutSummary struct {
	State       SelectionState
	SeatLabel   string
	Tier        Tier
	Price       decimal.Decimal
	Balance     decimal.Decimal
	CanSubmit   bool
	ActionLabel string
}

// Summarize computes the checkout summary for the selection against the
// last-known balance. It never fails: an unaffordable seat only disables submission.
func (s Selection) Summarize(balance decimal.Decimal) CheckoutSummary {
	seat, ok := s.Seat()
	if !ok {
		return CheckoutSummary{
			State:       SelectionEmpty,
			Balance:     balance,
			ActionLabel: ActionSelectSeat,
		}
	}

	summary := CheckoutSummary{
		State:     SelectionSelected,
		SeatLabel: seat.Label,
		Tier:      seat.Tier,
		Price:     seat.Price,
		Balance:   balance,
		CanSubmit: balance.GreaterThanOrEqual(seat.Price),
	}

	if summary.CanSubmit {
		summary.ActionLabel = ActionBookSeat
	} else {
		summary.ActionLabel = ActionInsufficientPoints
	}

	return summary
}
