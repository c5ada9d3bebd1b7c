package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
	"id":        {},
	"bookingId": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k, v := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}

		switch nested := v.(type) {
		case map[string]any:
			cleanMap(nested)
		case []any:
			for _, item := range nested {
				if itemMap, ok := item.(map[string]any); ok {
					cleanMap(itemMap)
				}
			}
		}
	}
}

func decodeJSON[T any](t testing.TB, res *http.Response) T {
	var v T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&v))
	return v
}

func jsonBody(t testing.TB, v any) io.Reader {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(data))
}

func bearerToken(t testing.TB, userID uuid.UUID) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(TestJWTSecret))
	require.NoError(t, err)

	return token
}

func authHeader(t testing.TB, userID uuid.UUID) map[string]string {
	return map[string]string{"Authorization": "Bearer " + bearerToken(t, userID)}
}

// resetState truncates all tables, flushes redis and seeds two users and two screenings.
func resetState(t testing.TB, app *TestApp) {
	ctx := context.Background()

	_, err := app.DB.Exec(ctx, `
		TRUNCATE points_ledger, bookings, user_balances, users, screenings RESTART IDENTITY CASCADE
	`)
	require.NoError(t, err)

	require.NoError(t, app.RedisClient.FlushAll(ctx).Err())

	app.Mailer.Reset()
	app.Publisher.Reset()

	seedUser(t, app, TestUserID, TestUserEmail, TestUserName, "500")
	seedUser(t, app, TestOtherUserID, TestOtherUserEmail, TestOtherUserName, "1000")

	_, err = app.DB.Exec(ctx, `
		INSERT INTO screenings (movie_id, movie_title, venue, show_time, price_platinum, price_gold, price_silver, price_bronze)
		VALUES
			(7, $1, $2, '2026-03-14T19:30:00Z', 200, 160, 120, 80),
			(8, 'Unpriced Movie', $2, '2026-03-15T19:30:00Z', 200, NULL, 120, 80)
	`, TestMovieTitle, TestVenue)
	require.NoError(t, err)
}

func seedUser(t testing.TB, app *TestApp, id uuid.UUID, email, name, points string) {
	ctx := context.Background()

	_, err := app.DB.Exec(ctx, `INSERT INTO users (id, email, name) VALUES ($1, $2, $3)`, id, email, name)
	require.NoError(t, err)

	_, err = app.DB.Exec(ctx, `INSERT INTO user_balances (user_id, points) VALUES ($1, $2)`, id, decimal.RequireFromString(points))
	require.NoError(t, err)
}

func seedBooking(t testing.TB, app *TestApp, userID uuid.UUID, screeningID int, seatLabel, price string) {
	_, err := app.DB.Exec(context.Background(), `
		INSERT INTO bookings (screening_id, seat_label, price, user_id, status)
		VALUES ($1, $2, $3, $4, 'confirmed')
	`, screeningID, seatLabel, decimal.RequireFromString(price), userID)
	require.NoError(t, err)
}

func userPoints(t testing.TB, app *TestApp, userID uuid.UUID) string {
	var points string

	err := app.DB.QueryRow(context.Background(),
		`SELECT points::text FROM user_balances WHERE user_id = $1`, userID).Scan(&points)
	require.NoError(t, err)

	return points
}

func bookingCount(t testing.TB, app *TestApp, screeningID int, seatLabel string) int {
	var count int

	err := app.DB.QueryRow(context.Background(), `
		SELECT COUNT(*) FROM bookings
		WHERE screening_id = $1 AND seat_label = $2 AND status = 'confirmed'
	`, screeningID, seatLabel).Scan(&count)
	require.NoError(t, err)

	return count
}
