package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecopoints/movie-booking/api"
	"github.com/ecopoints/movie-booking/internal/domain"
	"github.com/ecopoints/movie-booking/internal/events"
	"github.com/ecopoints/movie-booking/internal/mailer"
	"github.com/ecopoints/movie-booking/internal/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BookingsTestSuite struct {
	suite.Suite
	app           *Application
	screeningRepo *mocks.MockScreeningRepo
	bookingRepo   *mocks.MockBookingRepo
	balanceRepo   *mocks.MockBalanceRepo
	userRepo      *mocks.MockUserRepo
	redisClient   *mocks.MockRedisClient
	mailer        *mailer.MockMailer
	publisher     *events.MockPublisher
}

func (s *BookingsTestSuite) SetupTest() {
	s.screeningRepo = new(mocks.MockScreeningRepo)
	s.bookingRepo = new(mocks.MockBookingRepo)
	s.balanceRepo = new(mocks.MockBalanceRepo)
	s.redisClient = new(mocks.MockRedisClient)
	s.mailer = mailer.NewMockMailer()
	s.publisher = events.NewMockPublisher()
	s.userRepo = &mocks.MockUserRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{ID: id, Email: "student@campus.edu", Name: "Sam"}, nil
		},
	}

	s.app = newTestApplication(func(a *Application) {
		a.screeningRepo = s.screeningRepo
		a.bookingRepo = s.bookingRepo
		a.balanceRepo = s.balanceRepo
		a.userRepo = s.userRepo
		a.redis = s.redisClient
		a.mailer = s.mailer
		a.publisher = s.publisher
	})
}

func TestBookingsSuite(t *testing.T) {
	suite.Run(t, new(BookingsTestSuite))
}

func (s *BookingsTestSuite) expectLockAcquire(result any, err error) {
	s.redisClient.On("EvalSha", mock.Anything, acquireSubmissionLockScript.Hash(),
		[]string{submissionLockKey(testUserID)}, mock.Anything, mock.Anything).
		Return(redis.NewCmdResult(result, err)).Once()
}

func (s *BookingsTestSuite) expectLockRelease() {
	s.redisClient.On("EvalSha", mock.Anything, releaseSubmissionLockScript.Hash(),
		[]string{submissionLockKey(testUserID)}, mock.Anything).
		Return(redis.NewCmdResult(int64(1), nil)).Once()
}

func (s *BookingsTestSuite) expectView(taken ...string) {
	if taken == nil {
		taken = []string{}
	}

	s.screeningRepo.On("GetByID", mock.Anything, 1).Return(testScreening(1), nil)
	s.bookingRepo.On("GetTakenSeats", mock.Anything, 1).Return(taken, nil)
}

func purchaseOf(seat string, price int64) any {
	return mock.MatchedBy(func(req domain.PurchaseRequest) bool {
		return req.ScreeningID == 1 &&
			req.SeatLabel == seat &&
			req.UserID == testUserID &&
			req.Price.Equal(decimal.NewFromInt(price))
	})
}

func (s *BookingsTestSuite) TestCreateBookingHandlerFailures() {
	tests := []struct {
		name              string
		screeningID       int
		storedSeat        string
		setupMocks        func()
		wantStatus        int
		wantErrMessage    string
		wantStoredSeat    string
		wantBalanceHint   bool
		wantRetryAfterHdr bool
	}{
		{
			name:            "should fail when screening ID is zero or negative",
			screeningID:     -1,
			wantStatus:      http.StatusBadRequest,
			wantErrMessage:  "screening ID must be greater than zero",
			wantBalanceHint: true,
		},
		{
			name:        "should fail when another submission holds the lock",
			screeningID: 1,
			storedSeat:  "C7",
			setupMocks: func() {
				s.expectLockAcquire(int64(0), nil)
			},
			wantStatus:      http.StatusConflict,
			wantErrMessage:  domain.ErrSubmissionInFlight.Error(),
			wantStoredSeat:  "C7",
			wantBalanceHint: true,
		},
		{
			name:        "should fail when the lock script errors",
			screeningID: 1,
			setupMocks: func() {
				s.expectLockAcquire(nil, errors.New("redis error"))
			},
			wantStatus:      http.StatusInternalServerError,
			wantErrMessage:  ErrInternalServer,
			wantBalanceHint: true,
		},
		{
			name:        "should fail when nothing is selected",
			screeningID: 1,
			setupMocks: func() {
				s.expectLockAcquire(int64(1), nil)
				s.expectLockRelease()
				s.expectView()
			},
			wantStatus:      http.StatusBadRequest,
			wantErrMessage:  domain.ErrNoSelection.Error(),
			wantBalanceHint: true,
		},
		{
			name:        "should report a seat taken by someone else",
			screeningID: 1,
			storedSeat:  "C7",
			setupMocks: func() {
				s.expectLockAcquire(int64(1), nil)
				s.expectLockRelease()
				s.expectView()
				s.bookingRepo.On("Purchase", mock.Anything, purchaseOf("C7", 160)).
					Return(nil, domain.ErrSeatAlreadyTaken)
			},
			wantStatus:      http.StatusConflict,
			wantErrMessage:  domain.ErrSeatAlreadyTaken.Error(),
			wantStoredSeat:  "C7",
			wantBalanceHint: true,
		},
		{
			name:        "should report a stored seat that was booked since it was selected",
			screeningID: 1,
			storedSeat:  "C7",
			setupMocks: func() {
				s.expectLockAcquire(int64(1), nil)
				s.expectLockRelease()
				s.expectView("C7")
			},
			wantStatus:      http.StatusConflict,
			wantErrMessage:  domain.ErrSeatAlreadyTaken.Error(),
			wantBalanceHint: true,
		},
		{
			name:        "should report insufficient balance and drop the balance hint",
			screeningID: 1,
			storedSeat:  "A1",
			setupMocks: func() {
				s.expectLockAcquire(int64(1), nil)
				s.expectLockRelease()
				s.expectView()
				s.bookingRepo.On("Purchase", mock.Anything, purchaseOf("A1", 200)).
					Return(nil, domain.ErrInsufficientBalance)
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: domain.ErrInsufficientBalance.Error(),
			wantStoredSeat: "A1",
		},
		{
			name:        "should report a changed price",
			screeningID: 1,
			storedSeat:  "J10",
			setupMocks: func() {
				s.expectLockAcquire(int64(1), nil)
				s.expectLockRelease()
				s.expectView()
				s.bookingRepo.On("Purchase", mock.Anything, purchaseOf("J10", 80)).
					Return(nil, domain.ErrPriceMismatch)
			},
			wantStatus:      http.StatusUnprocessableEntity,
			wantErrMessage:  domain.ErrPriceMismatch.Error(),
			wantStoredSeat:  "J10",
			wantBalanceHint: true,
		},
		{
			name:        "should report a generic failure when the purchase cannot be reached",
			screeningID: 1,
			storedSeat:  "C7",
			setupMocks: func() {
				s.expectLockAcquire(int64(1), nil)
				s.expectLockRelease()
				s.expectView()
				s.bookingRepo.On("Purchase", mock.Anything, purchaseOf("C7", 160)).
					Return(nil, fmt.Errorf("connection reset by peer"))
			},
			wantStatus:        http.StatusServiceUnavailable,
			wantErrMessage:    domain.ErrPurchaseUnavailable.Error(),
			wantStoredSeat:    "C7",
			wantBalanceHint:   true,
			wantRetryAfterHdr: true,
		},
		{
			name:        "should fail when screening does not exist",
			screeningID: 2,
			storedSeat:  "C7",
			setupMocks: func() {
				s.expectLockAcquire(int64(1), nil)
				s.expectLockRelease()
				s.screeningRepo.On("GetByID", mock.Anything, 2).Return(nil, domain.ErrScreeningNotFound)
			},
			wantStatus:      http.StatusNotFound,
			wantErrMessage:  domain.ErrScreeningNotFound.Error(),
			wantStoredSeat:  "C7",
			wantBalanceHint: true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.redisClient.AssertExpectations(s.T())
			defer s.bookingRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, fmt.Sprintf("/v1/screenings/%d/bookings", tt.screeningID), nil)
			r = setupTestSession(s.T(), s.app, r, testUserID)
			s.app.putBalanceHint(r.Context(), decimal.NewFromInt(1000))

			if tt.storedSeat != "" {
				s.app.putSessionSelection(r.Context(), tt.screeningID, tt.storedSeat)
			}

			s.app.CreateBookingHandler(w, r, tt.screeningID)
			s.app.wg.Wait()

			s.Equal(tt.wantStatus, w.Code)

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})

			s.Equal(tt.wantStoredSeat, sessionString(s.app, r, selectionSessionKey(tt.screeningID)))

			_, hasHint := s.app.balanceHint(r.Context())
			s.Equal(tt.wantBalanceHint, hasHint)

			if tt.wantRetryAfterHdr {
				s.Equal("1", w.Header().Get("Retry-After"))
			}

			s.Empty(s.mailer.GetSentEmails())
			s.Empty(s.publisher.Published())
		})
	}
}

func (s *BookingsTestSuite) TestCreateBookingHandlerSuccess() {
	bookingID := uuid.New()
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s.expectLockAcquire(int64(1), nil)
	s.expectLockRelease()
	s.expectView("A1")
	s.bookingRepo.On("Purchase", mock.Anything, purchaseOf("C7", 160)).Return(&domain.Booking{
		ID:          bookingID,
		ScreeningID: 1,
		SeatLabel:   "C7",
		Price:       decimal.NewFromInt(160),
		UserID:      testUserID,
		Status:      domain.BookingStatusConfirmed,
		CreatedAt:   createdAt,
	}, nil)

	w, r := executeRequest(s.T(), http.MethodPost, "/v1/screenings/1/bookings", nil)
	r = setupTestSession(s.T(), s.app, r, testUserID)
	s.app.putBalanceHint(r.Context(), decimal.NewFromInt(1000))
	s.app.putSessionSelection(r.Context(), 1, "C7")

	s.app.CreateBookingHandler(w, r, 1)
	s.app.wg.Wait()

	s.Require().Equal(http.StatusCreated, w.Code)

	var resp api.BookingResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))

	want := api.BookingResponse{
		Booking: api.Booking{
			Id:          bookingID,
			ScreeningId: 1,
			SeatLabel:   "C7",
			Price:       decimal.NewFromInt(160),
			Status:      "confirmed",
			CreatedAt:   createdAt,
		},
		RedirectUrl: "/v1/users/me/bookings",
	}

	diff := cmp.Diff(want, resp, decimalComparer)
	s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)

	s.Empty(sessionString(s.app, r, selectionSessionKey(1)))

	balance, ok := s.app.balanceHint(r.Context())
	s.True(ok)
	s.True(balance.Equal(decimal.NewFromInt(840)), "balance = %s", balance)

	published := s.publisher.Published()
	s.Require().Len(published, 1)
	s.Equal(bookingID, published[0].BookingID)
	s.Equal("C7", published[0].SeatLabel)
	s.Equal(testUserID, published[0].UserID)

	emails := s.mailer.GetSentEmails()
	s.Require().Len(emails, 1)
	s.Equal("student@campus.edu", emails[0].Recipient)
	s.Equal(mailer.TemplateBookingConfirmed, emails[0].TemplateFile)

	data, ok := emails[0].Data.(map[string]any)
	s.Require().True(ok)
	s.Equal("C7", data["seatLabel"])
	s.Equal("160", data["price"])
	s.Equal(bookingID.String(), data["bookingID"])

	s.redisClient.AssertExpectations(s.T())
	s.bookingRepo.AssertExpectations(s.T())
}

func (s *BookingsTestSuite) TestCreateBookingHandlerNotifiesEvenWhenPublishFails() {
	s.publisher.Err = errors.New("broker unavailable")

	s.expectLockAcquire(int64(1), nil)
	s.expectLockRelease()
	s.expectView()
	s.bookingRepo.On("Purchase", mock.Anything, purchaseOf("H4", 120)).Return(&domain.Booking{
		ID:          uuid.New(),
		ScreeningID: 1,
		SeatLabel:   "H4",
		Price:       decimal.NewFromInt(120),
		UserID:      testUserID,
		Status:      domain.BookingStatusConfirmed,
		CreatedAt:   time.Now(),
	}, nil)

	w, r := executeRequest(s.T(), http.MethodPost, "/v1/screenings/1/bookings", nil)
	r = setupTestSession(s.T(), s.app, r, testUserID)
	s.app.putBalanceHint(r.Context(), decimal.NewFromInt(120))
	s.app.putSessionSelection(r.Context(), 1, "H4")

	s.app.CreateBookingHandler(w, r, 1)
	s.app.wg.Wait()

	s.Equal(http.StatusCreated, w.Code)
	s.Empty(s.publisher.Published())
	s.Len(s.mailer.GetSentEmails(), 1)
}

func (s *BookingsTestSuite) TestCreateBookingHandlerSucceedsWhenMailFails() {
	s.mailer.Err = errors.New("smtp: connection refused")

	s.expectLockAcquire(int64(1), nil)
	s.expectLockRelease()
	s.expectView()
	s.bookingRepo.On("Purchase", mock.Anything, purchaseOf("D2", 160)).Return(&domain.Booking{
		ID:          uuid.New(),
		ScreeningID: 1,
		SeatLabel:   "D2",
		Price:       decimal.NewFromInt(160),
		UserID:      testUserID,
		Status:      domain.BookingStatusConfirmed,
		CreatedAt:   time.Now(),
	}, nil)

	w, r := executeRequest(s.T(), http.MethodPost, "/v1/screenings/1/bookings", nil)
	r = setupTestSession(s.T(), s.app, r, testUserID)
	s.app.putBalanceHint(r.Context(), decimal.NewFromInt(200))
	s.app.putSessionSelection(r.Context(), 1, "D2")

	s.app.CreateBookingHandler(w, r, 1)
	s.app.wg.Wait()

	s.Equal(http.StatusCreated, w.Code)
	s.Len(s.publisher.Published(), 1)
	s.Empty(s.mailer.GetSentEmails())
}

func (s *BookingsTestSuite) TestGetUserBookingsHandler() {
	showTime := time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	bookingID := uuid.New()

	tests := []struct {
		name           string
		setupMocks     func()
		wantStatus     int
		wantResponse   *api.UserBookingsResponse
		wantErrMessage string
	}{
		{
			name: "should fail when bookings cannot be fetched",
			setupMocks: func() {
				s.bookingRepo.On("GetSummariesByUserID", mock.Anything, testUserID).
					Return(nil, errors.New("database error"))
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name: "should return an empty list",
			setupMocks: func() {
				s.bookingRepo.On("GetSummariesByUserID", mock.Anything, testUserID).
					Return([]domain.BookingSummary{}, nil)
			},
			wantStatus:   http.StatusOK,
			wantResponse: &api.UserBookingsResponse{Bookings: []api.BookingSummary{}},
		},
		{
			name: "should return booking summaries",
			setupMocks: func() {
				s.bookingRepo.On("GetSummariesByUserID", mock.Anything, testUserID).
					Return([]domain.BookingSummary{
						{
							BookingID:  bookingID,
							MovieTitle: "Test Movie",
							Venue:      "Main Auditorium",
							ShowTime:   showTime,
							SeatLabel:  "B2",
							Price:      decimal.NewFromInt(200),
							CreatedAt:  createdAt,
						},
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.UserBookingsResponse{
				Bookings: []api.BookingSummary{
					{
						BookingId:  bookingID,
						MovieTitle: "Test Movie",
						Venue:      "Main Auditorium",
						ShowTime:   showTime,
						SeatLabel:  "B2",
						Price:      decimal.NewFromInt(200),
						CreatedAt:  createdAt,
					},
				},
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.bookingRepo.AssertExpectations(s.T())

			tt.setupMocks()

			w, r := executeRequest(s.T(), http.MethodGet, "/v1/users/me/bookings", nil)
			r = setupTestSession(s.T(), s.app, r, testUserID)

			s.app.GetUserBookingsHandler(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.UserBookingsResponse
				s.Require().NoError(json.NewDecoder(w.Body).Decode(&response))

				diff := cmp.Diff(tt.wantResponse, &response, decimalComparer)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
