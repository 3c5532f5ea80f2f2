package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, windows, etc.), standard settings
//
// Payment keys are intentionally NOT required: their absence degrades the
// deposit/webhook endpoints to a configuration error instead of crashing boot.
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Payment PaymentConfig
	Worker  WorkerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Africa/Nairobi"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Stripe-Signature"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type PaymentConfig struct {
	// Stripe secret key; empty means intent creation is disabled.
	SecretKey string `envconfig:"STRIPE_SECRET_KEY" default:""`
	// Shared webhook signing secret; empty means webhook ingestion is disabled.
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" default:""`
	// Default currency for deposits when the client does not send one.
	DefaultCurrency string `envconfig:"PAYMENT_DEFAULT_CURRENCY" default:"KES"`
	// Timeout applied to the synchronous create-intent call in the booking path.
	IntentTimeout time.Duration `envconfig:"PAYMENT_INTENT_TIMEOUT" default:"15s"`
}

type WorkerConfig struct {
	// Poll interval for the job queue workers.
	PollInterval time.Duration `envconfig:"WORKER_POLL_INTERVAL" default:"5s"`
	// How long a claimed job may be held before another worker may steal it.
	LockTTL   time.Duration `envconfig:"WORKER_LOCK_TTL" default:"2m"`
	BatchSize int           `envconfig:"WORKER_BATCH_SIZE" default:"20"`
	// Interval between reconciliation sweeps and the trailing window each sweep covers.
	ReconcileInterval time.Duration `envconfig:"RECONCILE_INTERVAL" default:"24h"`
	ReconcileWindow   time.Duration `envconfig:"RECONCILE_WINDOW" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Africa/Nairobi",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		Payment: PaymentConfig{
			DefaultCurrency: "KES",
			IntentTimeout:   15 * time.Second,
		},
		Worker: WorkerConfig{
			PollInterval:      100 * time.Millisecond,
			LockTTL:           time.Minute,
			BatchSize:         20,
			ReconcileInterval: time.Hour,
			ReconcileWindow:   24 * time.Hour,
		},
	}
}
