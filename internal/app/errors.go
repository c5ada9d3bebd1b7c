package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/ecopoints/movie-booking/api"
	"github.com/ecopoints/movie-booking/internal/domain"
	appvalidator "github.com/ecopoints/movie-booking/internal/validator"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

const (
	ErrInternalServer   = "The server encountered a problem and could not process your request"
	ErrNotFound         = "The requested resource not found"
	ErrMethodNotAllowed = "The method is not supported for this resource"
	ErrUnauthorized     = "You must be authenticated to access this resource"
	ErrFailedValidation = "One or more fields are invalid"
)

func (app *Application) logError(r *http.Request, err error) {
	app.contextGetLogger(r).Error(err.Error())
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) notFoundResponseWithErr(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusNotFound, err.Error())
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, ErrMethodNotAllowed)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// invalidParamResponse reports parameters the generated server could not bind.
func (app *Application) invalidParamResponse(w http.ResponseWriter, r *http.Request, err error) {
	var paramErr *api.InvalidParamFormatError
	if errors.As(err, &paramErr) && paramErr.ParamName == "screeningId" {
		app.badRequestResponse(w, r, errInvalidScreeningParam)
		return
	}

	app.badRequestResponse(w, r, err)
}

func (app *Application) unauthorizedAccessResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	app.errorResponse(w, r, http.StatusUnauthorized, ErrUnauthorized)
}

func (app *Application) editConflictResponseWithErr(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusConflict, err.Error())
}

func (app *Application) unprocessableEntityResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
}

func (app *Application) serviceUnavailableResponse(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("Retry-After", "1")
	app.errorResponse(w, r, http.StatusServiceUnavailable, message)
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		app.badRequestResponse(w, r, err)
		return
	}

	resp := api.ValidationErrorResponse{
		Message:          ErrFailedValidation,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: make([]api.ValidationError, 0, len(validationErrs)),
	}

	for _, fieldErr := range validationErrs {
		resp.ValidationErrors = append(resp.ValidationErrors, api.ValidationError{
			Field: fieldErr.Field(),
			Issue: appvalidator.ValidationMessage(fieldErr),
		})
	}

	err = app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// bookingErrorResponse maps errors of opening a booking view or submitting a
// purchase. Refusals are reported with their own message.
func (app *Application) bookingErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrScreeningNotFound):
		app.notFoundResponseWithErr(w, r, domain.ErrScreeningNotFound)
	case errors.Is(err, domain.ErrInvalidScreening):
		app.contextGetLogger(r).Error("screening is misconfigured", "error", err)
		app.unprocessableEntityResponse(w, r, err)
	case errors.Is(err, domain.ErrSeatAlreadyTaken),
		errors.Is(err, domain.ErrSubmissionInFlight):
		app.editConflictResponseWithErr(w, r, err)
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrPriceMismatch),
		errors.Is(err, domain.ErrUnknownSeat):
		app.unprocessableEntityResponse(w, r, err)
	case errors.Is(err, domain.ErrNoSelection):
		app.badRequestResponse(w, r, err)
	case errors.Is(err, domain.ErrPurchaseUnavailable):
		app.logError(r, err)
		app.serviceUnavailableResponse(w, r, domain.ErrPurchaseUnavailable.Error())
	default:
		app.serverErrorResponse(w, r, err)
	}
}
