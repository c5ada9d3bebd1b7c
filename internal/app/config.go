package app

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             int
	Env              string
	DB               DBConfig
	Redis            RedisConfig
	SMTP             SMTPConfig
	AMQP             AMQPConfig
	JWT              JWTConfig
	Booking          BookingConfig
	OtelCollectorUrl string
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
	Migrate      bool
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

type AMQPConfig struct {
	URL string
}

type JWTConfig struct {
	Secret string
}

type BookingConfig struct {
	// RedirectURL is where clients are sent after a confirmed booking.
	RedirectURL string
	// SubmissionLockTTL bounds how long a crashed submission can block the user.
	SubmissionLockTTL time.Duration
}

// loadConfig reads an optional .env file and parses the command line. Every
// flag defaults to its environment variable.
func loadConfig(args []string) (Config, bool, error) {
	var cfg Config

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, false, err
	}

	fset := flag.NewFlagSet("api", flag.ContinueOnError)

	fset.IntVar(&cfg.Port, "port", envInt("PORT", 3000), "server port")
	fset.StringVar(&cfg.Env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod)")

	fset.StringVar(&cfg.DB.DSN, "db-dsn", envString("DB_DSN", ""), "PostgreSQL DSN")
	fset.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", envInt("DB_MAX_OPEN_CONNS", 25), "PostgreSQL max open connections")
	fset.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", envDuration("DB_MAX_IDLE_TIME", 15*time.Minute), "PostgreSQL max idle time for connections")
	fset.BoolVar(&cfg.DB.Migrate, "db-migrate", envBool("DB_MIGRATE", false), "Apply database migrations on startup")

	fset.StringVar(&cfg.Redis.URL, "redis-url", envString("REDIS_URL", ""), "Redis URL")
	fset.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", envInt("REDIS_MAX_OPEN_CONNS", 25), "Redis max open connections")
	fset.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", envInt("REDIS_MAX_IDLE_CONNS", 10), "Redis max idle connections")
	fset.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", envDuration("REDIS_MAX_IDLE_TIME", 2*time.Minute), "Redis max idle time for connections")

	fset.StringVar(&cfg.SMTP.Host, "smtp-host", envString("SMTP_HOST", "sandbox.smtp.mailtrap.io"), "SMTP host")
	fset.IntVar(&cfg.SMTP.Port, "smtp-port", envInt("SMTP_PORT", 2525), "SMTP port")
	fset.StringVar(&cfg.SMTP.Username, "smtp-username", envString("SMTP_USERNAME", ""), "SMTP username")
	fset.StringVar(&cfg.SMTP.Password, "smtp-password", envString("SMTP_PASSWORD", ""), "SMTP password")
	fset.StringVar(&cfg.SMTP.Sender, "smtp-sender", envString("SMTP_SENDER", "EcoPoints Cinema <no-reply@ecopoints.campus>"), "SMTP sender")

	fset.StringVar(&cfg.AMQP.URL, "amqp-url", envString("AMQP_URL", ""), "RabbitMQ URL, events are disabled when empty")

	fset.StringVar(&cfg.JWT.Secret, "jwt-secret", envString("JWT_SECRET", ""), "HS256 secret of access tokens")

	fset.StringVar(&cfg.Booking.RedirectURL, "bookings-url", envString("BOOKINGS_URL", "/v1/users/me/bookings"), "Redirect target after a confirmed booking")
	fset.DurationVar(&cfg.Booking.SubmissionLockTTL, "submission-lock-ttl", envDuration("SUBMISSION_LOCK_TTL", 30*time.Second), "Upper bound of a booking submission lock")

	fset.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", envString("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector gRPC endpoint")

	displayVersion := fset.Bool("version", false, "Display version and exit")

	if err := fset.Parse(args); err != nil {
		return cfg, false, err
	}

	if !*displayVersion && cfg.JWT.Secret == "" {
		return cfg, false, errors.New("jwt secret must be provided")
	}

	return cfg, *displayVersion, nil
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}

	return fallback
}

func envBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}

	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}

	return fallback
}
