package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/ecopoints/movie-booking/api"
	"github.com/ecopoints/movie-booking/internal/domain"
	"github.com/ecopoints/movie-booking/internal/events"
	"github.com/ecopoints/movie-booking/internal/mailer"
	"github.com/ecopoints/movie-booking/internal/mocks"
	"github.com/ecopoints/movie-booking/internal/validator"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const testJWTSecret = "test-secret-with-enough-entropy"

var testUserID = uuid.MustParse("5f0c2c1e-6f55-4a8e-9d0a-0d5c8e1b7a01")

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		config: Config{
			Env: "test",
			JWT: JWTConfig{Secret: testJWTSecret},
			Booking: BookingConfig{
				RedirectURL:       "/v1/users/me/bookings",
				SubmissionLockTTL: 30 * time.Second,
			},
		},
		validator:      validator.NewValidator(),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionManager: scs.New(),
		instruments:    newBookingInstruments(),
		mailer:         mailer.NewMockMailer(),
		publisher:      events.NewMockPublisher(),
		userRepo:       &mocks.MockUserRepo{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// setupTestSession loads an empty session into the request and authenticates it as userID.
func setupTestSession(t *testing.T, app *Application, r *http.Request, userID uuid.UUID) *http.Request {
	ctx, err := app.sessionManager.Load(r.Context(), "")
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	app.sessionManager.Put(ctx, SessionKeyUserID.String(), userID.String())
	ctx = contextSetUserID(ctx, userID)

	return r.WithContext(ctx)
}

func signTestToken(t *testing.T, subject string, expiresAt time.Time, secret string) string {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	return token
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader = http.NoBody

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		if len(validationResp.ValidationErrors) == 0 {
			if tt.wantErrMessage != "" && validationResp.Message != tt.wantErrMessage {
				t.Errorf("Error message = %v, want %v", validationResp.Message, tt.wantErrMessage)
			}
			return
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func testScreening(id int) *domain.Screening {
	return &domain.Screening{
		ID:         id,
		MovieID:    7,
		MovieTitle: "Test Movie",
		Venue:      "Main Auditorium",
		ShowTime:   time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC),
		Prices: domain.TierPrices{
			Platinum: decimal.NewNullDecimal(decimal.NewFromInt(200)),
			Gold:     decimal.NewNullDecimal(decimal.NewFromInt(160)),
			Silver:   decimal.NewNullDecimal(decimal.NewFromInt(120)),
			Bronze:   decimal.NewNullDecimal(decimal.NewFromInt(80)),
		},
	}
}

func sessionString(app *Application, r *http.Request, key string) string {
	return app.sessionManager.GetString(r.Context(), key)
}

func ptr[T any](v T) *T {
	return &v
}
