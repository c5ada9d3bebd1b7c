package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/ecopoints/movie-booking/internal/booking"
	"github.com/ecopoints/movie-booking/internal/domain"
	"github.com/ecopoints/movie-booking/internal/events"
	"github.com/ecopoints/movie-booking/internal/mailer"
	"github.com/ecopoints/movie-booking/internal/repository"
	appvalidator "github.com/ecopoints/movie-booking/internal/validator"
	"github.com/ecopoints/movie-booking/internal/vcs"
	"github.com/ecopoints/movie-booking/migrations"
	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

var (
	version = vcs.Version()
)

type Application struct {
	config         Config
	logger         *slog.Logger
	db             *pgxpool.Pool
	redis          redis.UniversalClient
	validator      *validator.Validate
	mailer         mailer.Mailer
	publisher      events.Publisher
	sessionManager *scs.SessionManager
	instruments    *bookingInstruments
	wg             sync.WaitGroup

	screeningRepo domain.ScreeningRepository
	bookingRepo   domain.BookingRepository
	balanceRepo   domain.BalanceRepository
	userRepo      domain.UserRepository
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redis redis.UniversalClient,
	validator *validator.Validate,
	mailer mailer.Mailer,
	publisher events.Publisher,
	sessionManager *scs.SessionManager,
	screeningRepo domain.ScreeningRepository,
	bookingRepo domain.BookingRepository,
	balanceRepo domain.BalanceRepository,
	userRepo domain.UserRepository,
) *Application {
	return &Application{
		config:         cfg,
		logger:         logger,
		db:             db,
		redis:          redis,
		validator:      validator,
		mailer:         mailer,
		publisher:      publisher,
		sessionManager: sessionManager,
		instruments:    newBookingInstruments(),
		screeningRepo:  screeningRepo,
		bookingRepo:    bookingRepo,
		balanceRepo:    balanceRepo,
		userRepo:       userRepo,
	}
}

func Run() error {
	cfg, displayVersion, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	if displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		return nil
	}

	textHandler := slog.NewTextHandler(os.Stdout, nil)
	logger := slog.New(textHandler)

	app := &Application{config: cfg, logger: logger}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(NewMultiHandler(textHandler, otelslog.NewHandler(serviceName)))
	}

	if cfg.DB.Migrate {
		err = migrations.Up(cfg.DB.DSN)
		if err != nil {
			return err
		}

		logger.Info("database migrations applied")
	}

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	var publisher events.Publisher
	if cfg.AMQP.URL != "" {
		publisher = events.NewAMQPPublisher(cfg.AMQP.URL)
	}

	app = NewApp(
		cfg,
		logger,
		db,
		redisClient,
		appvalidator.NewValidator(),
		mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender),
		publisher,
		NewSessionManager(redisClient),
		repository.NewPostgresScreeningRepository(db),
		repository.NewPostgresBookingRepository(db),
		repository.NewPostgresBalanceRepository(db),
		repository.NewPostgresUserRepository(db),
	)

	return app.run()
}

func NewSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb))
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// bookingDeps wires the repositories into a booking view. The navigator
// receives the confirmed booking on success.
func (app *Application) bookingDeps(nav booking.Navigator) booking.Deps {
	return booking.Deps{
		Screenings: app.screeningRepo,
		Bookings:   app.bookingRepo,
		Balances:   app.balanceRepo,
		Layout:     domain.DefaultTierLayout,
		Navigator:  nav,
	}
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		app.logger.Info("completing background tasks", "addr", srv.Addr)

		app.wg.Wait()
		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "version", version)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
