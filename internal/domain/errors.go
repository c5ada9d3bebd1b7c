package domain

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrScreeningNotFound   = errors.New("screening not found")
	ErrInvalidScreening    = errors.New("screening is not configured for booking")
	ErrUnknownSeat         = errors.New("seat does not exist")
	ErrNoSelection         = errors.New("no seat is selected")
	ErrSeatAlreadyTaken    = errors.New("this seat has already been booked, please pick another seat")
	ErrInsufficientBalance = errors.New("insufficient points to book this seat")
	ErrPriceMismatch       = errors.New("seat price has changed, please review your selection")
	ErrSubmissionInFlight  = errors.New("a booking submission is already in progress")
	ErrPurchaseUnavailable = errors.New("booking could not be completed, please try again")
)

// IsPurchaseRejection reports whether err is a structured refusal of the purchase
// operation, as opposed to a transport or unexpected failure.
func IsPurchaseRejection(err error) bool {
	return errors.Is(err, ErrSeatAlreadyTaken) ||
		errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrPriceMismatch) ||
		errors.Is(err, ErrUnknownSeat) ||
		errors.Is(err, ErrScreeningNotFound) ||
		errors.Is(err, ErrInvalidScreening)
}
