package integration_test

import (
	"log/slog"
	"os"

	"github.com/ecopoints/movie-booking/internal/app"
	"github.com/ecopoints/movie-booking/internal/events"
	"github.com/ecopoints/movie-booking/internal/mailer"
	"github.com/ecopoints/movie-booking/internal/repository"
	appvalidator "github.com/ecopoints/movie-booking/internal/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App         *app.Application
	Config      app.Config
	DB          *pgxpool.Pool
	RedisClient *redis.Client
	Mailer      *mailer.MockMailer
	Publisher   *events.MockPublisher
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	mailer := mailer.NewMockMailer()
	publisher := events.NewMockPublisher()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mailer,
		publisher,
		sessionManager,
		repository.NewPostgresScreeningRepository(db),
		repository.NewPostgresBookingRepository(db),
		repository.NewPostgresBalanceRepository(db),
		repository.NewPostgresUserRepository(db),
	)

	return &TestApp{
		App:         application,
		Config:      cfg,
		DB:          db,
		RedisClient: redisClient,
		Mailer:      mailer,
		Publisher:   publisher,
	}, nil
}
