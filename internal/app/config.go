package app

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":5000"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// PGDSN wins over the individual PG* settings when set.
	PGDSN      string `envconfig:"PG_DSN"`
	PGUser     string `envconfig:"PGUSER" default:"postgres"`
	PGPassword string `envconfig:"PGPASSWORD"`
	PGHost     string `envconfig:"PGHOST" default:"localhost"`
	PGPort     int    `envconfig:"PGPORT" default:"5432"`
	PGDatabase string `envconfig:"PGDATABASE"`
	PGSSLMode  string `envconfig:"PGSSLMODE" default:"disable"`
	PGMaxConns int32  `envconfig:"PG_MAX_CONNS" default:"10"`

	AutoMigrate bool `envconfig:"AUTO_MIGRATE" default:"false"`

	RedisAddr      string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	RedisPassword  string `envconfig:"REDIS_PASSWORD"`
	RedisDB        int    `envconfig:"REDIS_DB" default:"0"`
	NotifyPayments bool   `envconfig:"NOTIFY_PAYMENTS" default:"false"`

	WorkerConcurrency int    `envconfig:"WORKER_CONCURRENCY" default:"5"`
	WorkerMetricsAddr string `envconfig:"WORKER_METRICS_ADDR" default:":9091"`

	RateLimitPerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120"`
}

const (
	defaultDatabase = "biztime"
	testDatabase    = "biztime_test"
)

// LoadConfig reads configuration from a .env file, when present, and the
// process environment. Variables already set in the environment win.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.AppEnv {
	case "development", "test", "production":
	default:
		return fmt.Errorf("unknown APP_ENV %q", c.AppEnv)
	}
	if c.PGDSN == "" && c.PGHost == "" {
		return errors.New("either PG_DSN or PGHOST must be provided")
	}
	if c.RateLimitPerMinute < 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	return nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// IsTest returns true when the application runs against the test database.
func (c *Config) IsTest() bool {
	return c != nil && c.AppEnv == "test"
}

// RedisOptions returns the asynq connection settings for the job queue.
func (c *Config) RedisOptions() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: c.RedisAddr, Password: c.RedisPassword, DB: c.RedisDB}
}

// DatabaseName returns PGDATABASE, or the environment's default database.
func (c *Config) DatabaseName() string {
	if c.PGDatabase != "" {
		return c.PGDatabase
	}
	if c.IsTest() {
		return testDatabase
	}
	return defaultDatabase
}

// DatabaseURL returns the Postgres connection string.
func (c *Config) DatabaseURL() string {
	if c.PGDSN != "" {
		return c.PGDSN
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.PGHost, strconv.Itoa(c.PGPort)),
		Path:   "/" + c.DatabaseName(),
	}
	if c.PGUser != "" {
		if c.PGPassword != "" {
			u.User = url.UserPassword(c.PGUser, c.PGPassword)
		} else {
			u.User = url.User(c.PGUser)
		}
	}
	if c.PGSSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.PGSSLMode}}.Encode()
	}
	return u.String()
}
