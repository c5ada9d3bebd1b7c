package integration_test

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecopoints/movie-booking/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

const (
	dbName         = "movie_booking"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"
)

type BaseSuite struct {
	suite.Suite
	app            *TestApp
	dbContainer    *PostgresContainer
	cacheContainer *RedisContainer
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	postgresContainer, err := getDbContainer(ctx)
	if err != nil {
		s.T().Fatalf("failed to start container: %s", err)
	}

	redisContainer, err := getCacheContainer(ctx)
	if err != nil {
		s.T().Fatalf("failed to start container: %s", err)
	}

	s.dbContainer = postgresContainer
	s.cacheContainer = redisContainer

	cfg := app.Config{
		Port: 3000,
		Env:  "test",
		DB: app.DBConfig{
			DSN:          postgresContainer.ConnectionString,
			MaxOpenConns: 25,
			MaxIdleTime:  2 * time.Minute,
		},
		Redis: app.RedisConfig{
			URL:          redisContainer.ConnectionString,
			MaxOpenConns: 10,
			MaxIdleConns: 10,
			MaxIdleTime:  2 * time.Minute,
		},
		JWT: app.JWTConfig{
			Secret: TestJWTSecret,
		},
		Booking: app.BookingConfig{
			RedirectURL:       "/v1/users/me/bookings",
			SubmissionLockTTL: 30 * time.Second,
		},
	}

	testApp, err := newTestApp(cfg)
	if err != nil {
		s.T().Fatalf("cannot initialize app: %s", err)
	}

	s.app = testApp
}

func (s *BaseSuite) TearDownSuite() {
	if s.app != nil {
		s.app.DB.Close()
		s.app.RedisClient.Close()
	}
	if s.dbContainer != nil {
		if err := testcontainers.TerminateContainer(s.dbContainer.Container); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
	if s.cacheContainer != nil {
		if err := testcontainers.TerminateContainer(s.cacheContainer.Container); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
}

func (s *BaseSuite) SetupTest() {
	resetState(s.T(), s.app)
}

type Scenario struct {
	Name             string
	Method           string
	URL              string
	Body             io.Reader
	Headers          map[string]string
	Cookies          []*http.Cookie
	ExpectedStatus   int
	ExpectedResponse string
	BeforeTestFunc   func(t testing.TB, app *TestApp)
	AfterTestFunc    func(t testing.TB, app *TestApp, res *http.Response)
}

func (s Scenario) Run(t *testing.T, testApp *TestApp) {
	t.Run(s.Name, func(t *testing.T) {
		resetState(t, testApp)

		if s.BeforeTestFunc != nil {
			s.BeforeTestFunc(t, testApp)
		}

		req := prepareRequest(s.Method, s.URL, s.Body, s.Headers, s.Cookies)

		rec := httptest.NewRecorder()
		testApp.App.Routes().ServeHTTP(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		assert.Equal(t, s.ExpectedStatus, res.StatusCode)

		if s.ExpectedResponse != "" {
			compareResponse(t, res.Body, s.ExpectedResponse)
		}

		if s.AfterTestFunc != nil {
			s.AfterTestFunc(t, testApp, res)
		}
	})
}

// Client replays requests of one user, carrying the session cookie between them.
type Client struct {
	t       testing.TB
	app     *TestApp
	token   string
	cookies []*http.Cookie
}

func newClient(t testing.TB, app *TestApp, token string) *Client {
	return &Client{t: t, app: app, token: token}
}

func (c *Client) Do(method, url string, body io.Reader) *http.Response {
	headers := map[string]string{"Authorization": "Bearer " + c.token}

	req := prepareRequest(method, url, body, headers, c.cookies)

	rec := httptest.NewRecorder()
	c.app.App.Routes().ServeHTTP(rec, req)

	res := rec.Result()
	if cookies := res.Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}

	c.t.Cleanup(func() { res.Body.Close() })

	require.NotNil(c.t, res)
	return res
}
