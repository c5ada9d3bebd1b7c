package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ecopoints/movie-booking/api"
	"github.com/ecopoints/movie-booking/internal/booking"
	"github.com/ecopoints/movie-booking/internal/domain"
	"github.com/ecopoints/movie-booking/internal/events"
	"github.com/ecopoints/movie-booking/internal/mailer"
	"github.com/google/uuid"
)

// CreateBookingHandler submits the purchase of the selected seat. At most one
// submission per user is processed at a time.
func (app *Application) CreateBookingHandler(w http.ResponseWriter, r *http.Request, screeningID int) {
	if screeningID < 1 {
		app.badRequestResponse(w, r, errInvalidScreeningID)
		return
	}

	userID := app.contextGetUserID(r)

	// the purchase must run to completion once it has been sent
	ctx := context.WithoutCancel(r.Context())

	token, err := app.acquireSubmissionLock(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionInFlight) {
			app.bookingErrorResponse(w, r, err)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}
	defer app.releaseSubmissionLock(ctx, userID, token)

	var confirmed *domain.Booking
	nav := booking.NavigatorFunc(func(b *domain.Booking) {
		confirmed = b
	})

	view, dropped, err := app.openView(r, screeningID, false, nav)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	seatLabel := view.Summary().SeatLabel
	if dropped != "" {
		seatLabel = dropped
	}

	ctx, span := app.instruments.startSubmit(ctx, screeningID, seatLabel)
	defer span.End()

	// the stored seat was booked by someone else since it was selected
	if dropped != "" {
		err = domain.ErrSeatAlreadyTaken
	} else {
		_, err = view.Submit(ctx)
	}
	if err != nil {
		app.instruments.recordRejection(ctx, span, rejectionReason(err), err)

		if errors.Is(err, domain.ErrInsufficientBalance) {
			app.dropBalanceHint(r.Context())
		}

		app.bookingErrorResponse(w, r, err)
		return
	}

	app.putSessionSelection(r.Context(), screeningID, "")
	app.putBalanceHint(r.Context(), view.Balance())

	app.contextGetLogger(r).Info("booking confirmed",
		"booking_id", confirmed.ID.String(),
		"seat_label", confirmed.SeatLabel,
		"price", confirmed.Price.String(),
	)

	app.notifyBookingConfirmed(ctx, view.Screening(), *confirmed)

	resp := api.BookingResponse{
		Booking:     toApiBooking(confirmed),
		RedirectUrl: app.config.Booking.RedirectURL,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// notifyBookingConfirmed publishes the confirmation event and mails the
// receipt in the background.
func (app *Application) notifyBookingConfirmed(ctx context.Context, screening domain.Screening, b domain.Booking) {
	app.wg.Add(1)

	go func() {
		defer app.wg.Done()

		logger := app.loggerFrom(ctx)

		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic occurred during booking confirmation", "panic", err)
			}
		}()

		if app.publisher != nil {
			event := events.BookingConfirmedEvent{
				EventID:     uuid.New(),
				BookingID:   b.ID,
				UserID:      b.UserID,
				ScreeningID: b.ScreeningID,
				SeatLabel:   b.SeatLabel,
				Price:       b.Price,
				ConfirmedAt: b.CreatedAt,
			}

			err := app.publisher.PublishBookingConfirmed(ctx, event)
			if err != nil {
				logger.Error("failed to publish booking confirmed event", "error", err)
			}
		}

		user, err := app.userRepo.GetByID(ctx, b.UserID)
		if err != nil {
			logger.Error("failed to fetch user for booking confirmation", "error", err)
			return
		}

		data := map[string]any{
			"name":       user.Name,
			"movieTitle": screening.MovieTitle,
			"venue":      screening.Venue,
			"showTime":   screening.ShowTime.Format(time.RFC1123),
			"seatLabel":  b.SeatLabel,
			"price":      b.Price.String(),
			"bookingID":  b.ID.String(),
		}

		err = app.mailer.Send(user.Email, mailer.TemplateBookingConfirmed, data)
		if err != nil {
			logger.Error("failed to send booking confirmation email", "error", err)
		} else {
			logger.Info("booking confirmation email sent successfully")
		}
	}()
}

func (app *Application) GetUserBookingsHandler(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUserID(r)

	summaries, err := app.bookingRepo.GetSummariesByUserID(r.Context(), userID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserBookingsResponse{
		Bookings: make([]api.BookingSummary, len(summaries)),
	}

	for i, s := range summaries {
		resp.Bookings[i] = api.BookingSummary{
			BookingId:  s.BookingID,
			MovieTitle: s.MovieTitle,
			Venue:      s.Venue,
			ShowTime:   s.ShowTime,
			SeatLabel:  s.SeatLabel,
			Price:      s.Price,
			CreatedAt:  s.CreatedAt,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiBooking(b *domain.Booking) api.Booking {
	return api.Booking{
		Id:          b.ID,
		ScreeningId: b.ScreeningID,
		SeatLabel:   b.SeatLabel,
		Price:       b.Price,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoSelection):
		return "no_selection"
	case errors.Is(err, domain.ErrSeatAlreadyTaken):
		return "seat_taken"
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, domain.ErrPriceMismatch):
		return "price_mismatch"
	case errors.Is(err, domain.ErrUnknownSeat):
		return "unknown_seat"
	case errors.Is(err, domain.ErrScreeningNotFound):
		return "screening_not_found"
	case errors.Is(err, domain.ErrInvalidScreening):
		return "invalid_screening"
	default:
		return "unavailable"
	}
}
