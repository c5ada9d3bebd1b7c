package validator

import (
	"fmt"

	"github.com/ecopoints/movie-booking/internal/domain"
	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired       = "is required"
	ErrInvalidSeat    = "must be a seat label between A1 and J10"
	ErrMinLength      = "must be at least %s characters long"
	ErrMaxLength      = "must be at most %s characters long"
	ErrDefaultInvalid = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seat_label", validateSeatLabel)

	return validator
}

// validateSeatLabel accepts labels that exist on the seat grid.
func validateSeatLabel(fl validator.FieldLevel) bool {
	_, _, err := domain.ParseSeatLabel(fl.Field().String())
	return err == nil
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "seat_label":
		return ErrInvalidSeat
	default:
		return ErrDefaultInvalid
	}
}
