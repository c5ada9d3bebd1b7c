package app

import (
	"errors"
	"net/http"

	"github.com/ecopoints/movie-booking/api"
	"github.com/ecopoints/movie-booking/internal/booking"
	"github.com/ecopoints/movie-booking/internal/domain"
)

var (
	errInvalidScreeningID    = errors.New("screening ID must be greater than zero")
	errInvalidScreeningParam = errors.New("invalid screening ID")
)

// openView rebuilds the caller's booking view from the backend and restores
// the selection kept in the session. With freshBalance the balance is
// re-fetched instead of taken from the session hint. The returned label is a
// stored selection that could not be restored because its seat is gone.
func (app *Application) openView(r *http.Request, screeningID int, freshBalance bool, nav booking.Navigator) (*booking.View, string, error) {
	ctx := r.Context()

	var opts []booking.Option
	if !freshBalance {
		if hint, ok := app.balanceHint(ctx); ok {
			opts = append(opts, booking.WithBalance(hint))
		}
	}

	view, err := booking.Open(ctx, app.bookingDeps(nav), screeningID, app.contextGetUserID(r), opts...)
	if err != nil {
		return nil, "", err
	}

	app.putBalanceHint(ctx, view.Balance())

	stored := app.sessionSelection(ctx, screeningID)
	if stored == "" {
		return view, "", nil
	}

	if summary := view.Restore(stored); summary.SeatLabel != stored {
		app.contextGetLogger(r).Info("dropped selection of a seat that is no longer available", "seat_label", stored)
		app.putSessionSelection(ctx, screeningID, "")
		return view, stored, nil
	}

	return view, "", nil
}

func (app *Application) GetSeatMapHandler(w http.ResponseWriter, r *http.Request, screeningID int) {
	if screeningID < 1 {
		app.badRequestResponse(w, r, errInvalidScreeningID)
		return
	}

	view, _, err := app.openView(r, screeningID, true, nil)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	resp := api.SeatMapResponse{
		Screening: toApiScreening(view.Screening()),
		SeatRows:  toApiSeatRows(view.SeatMap()),
		Checkout:  toApiCheckoutSummary(view.Summary()),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetCheckoutHandler(w http.ResponseWriter, r *http.Request, screeningID int) {
	if screeningID < 1 {
		app.badRequestResponse(w, r, errInvalidScreeningID)
		return
	}

	view, _, err := app.openView(r, screeningID, false, nil)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiCheckoutSummary(view.Summary()), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// SelectSeatHandler applies a seat click. Clicks on taken or unknown seats
// leave the selection unchanged.
func (app *Application) SelectSeatHandler(w http.ResponseWriter, r *http.Request, screeningID int) {
	if screeningID < 1 {
		app.badRequestResponse(w, r, errInvalidScreeningID)
		return
	}

	var input api.SelectSeatRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	view, _, err := app.openView(r, screeningID, false, nil)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	summary := view.Dispatch(domain.SeatClicked{Label: input.SeatLabel})
	app.putSessionSelection(r.Context(), screeningID, summary.SeatLabel)

	err = app.writeJSON(w, http.StatusOK, toApiCheckoutSummary(summary), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// ClearSelectionHandler is called when the user leaves the booking view.
func (app *Application) ClearSelectionHandler(w http.ResponseWriter, r *http.Request, screeningID int) {
	if screeningID < 1 {
		app.badRequestResponse(w, r, errInvalidScreeningID)
		return
	}

	app.putSessionSelection(r.Context(), screeningID, "")

	w.WriteHeader(http.StatusNoContent)
}

func toApiScreening(s domain.Screening) api.Screening {
	return api.Screening{
		Id:         s.ID,
		MovieId:    s.MovieID,
		MovieTitle: s.MovieTitle,
		Venue:      s.Venue,
		ShowTime:   s.ShowTime,
	}
}

func toApiSeatRows(seatMap *domain.SeatMap) []api.SeatRow {
	rows := make([]api.SeatRow, len(seatMap.Rows))

	for i, row := range seatMap.Rows {
		rows[i] = api.SeatRow{
			Row:       row.Letter,
			Tier:      api.SeatTier(row.Tier),
			Price:     row.Price,
			LeftWing:  toApiSeats(row.Left),
			RightWing: toApiSeats(row.Right),
		}
	}

	return rows
}

func toApiSeats(seats []domain.Seat) []api.Seat {
	apiSeats := make([]api.Seat, len(seats))

	for i, seat := range seats {
		apiSeats[i] = api.Seat{
			Label:     seat.Label,
			Row:       seat.Row,
			Column:    seat.Column,
			Tier:      api.SeatTier(seat.Tier),
			Price:     seat.Price,
			Available: seat.Available,
		}
	}

	return apiSeats
}

func toApiCheckoutSummary(summary domain.CheckoutSummary) api.CheckoutSummary {
	resp := api.CheckoutSummary{
		State:       api.SelectionState(summary.State),
		SeatLabel:   summary.SeatLabel,
		Balance:     summary.Balance,
		CanSubmit:   summary.CanSubmit,
		ActionLabel: summary.ActionLabel,
	}

	if summary.State == domain.SelectionSelected {
		tier := api.SeatTier(summary.Tier)
		price := summary.Price
		resp.Tier = &tier
		resp.Price = &price
	}

	return resp
}
