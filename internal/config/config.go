// Package config loads the service configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the API server binds to.
	ServerHost string
	// ServerPort is the port the API server listens on.
	ServerPort int
	// ShutdownTimeout bounds how long graceful shutdown may take.
	ShutdownTimeout time.Duration

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	RateLimitEnabled        bool
	RateLimitRequestsPerSec float64
	RateLimitBurst          int

	// CORSEnabled turns on CORS for browser checkouts calling the API directly.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins.
	CORSAllowOrigins string

	MetricsEnabled   bool
	MetricsNamespace string
	MetricsPort      int

	// CardExpiryMode selects the expiry month comparison, "strict" or "legacy".
	CardExpiryMode string
	// CardTimezone is the IANA zone in which the current month is read.
	CardTimezone string
	// CardFingerprintKey keys the digests logged in place of card numbers.
	CardFingerprintKey string
}

// Load reads configuration from the environment after loading the nearest .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		ServerHost:      env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:      env.GetInt("SERVER_PORT", 8080),
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		LogLevel: env.GetString("LOG_LEVEL", "info"),

		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 20.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 40),

		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "cardcheck"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),

		CardExpiryMode:     env.GetString("CARD_EXPIRY_MODE", string(cardDomain.ExpiryModeStrict)),
		CardTimezone:       env.GetString("CARD_TIMEZONE", "UTC"),
		CardFingerprintKey: env.GetString("CARD_FINGERPRINT_KEY", ""),
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ServerPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.ShutdownTimeout, validation.Min(time.Duration(0))),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.RateLimitRequestsPerSec,
			validation.When(c.RateLimitEnabled, validation.Min(0.0).Exclusive()),
		),
		validation.Field(&c.RateLimitBurst,
			validation.When(c.RateLimitEnabled, validation.Required, validation.Min(1)),
		),
		validation.Field(&c.MetricsNamespace, validation.When(c.MetricsEnabled, validation.Required)),
		validation.Field(&c.MetricsPort,
			validation.When(c.MetricsEnabled, validation.Required, validation.Min(1), validation.Max(65535)),
		),
		validation.Field(&c.CardExpiryMode, validation.By(func(any) error {
			_, err := cardDomain.ParseExpiryMode(c.CardExpiryMode)
			return err
		})),
		validation.Field(&c.CardTimezone, validation.By(func(any) error {
			_, err := c.Location()
			return err
		})),
		validation.Field(&c.CardFingerprintKey, validation.Length(0, 64)),
	)
}

// ExpiryMode parses CardExpiryMode. Invalid values fall back to strict; Validate
// reports them.
func (c *Config) ExpiryMode() cardDomain.ExpiryMode {
	mode, err := cardDomain.ParseExpiryMode(c.CardExpiryMode)
	if err != nil {
		return cardDomain.ExpiryModeStrict
	}
	return mode
}

// Location loads CardTimezone. An empty value means UTC.
func (c *Config) Location() (*time.Location, error) {
	if c.CardTimezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.CardTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.CardTimezone, err)
	}
	return loc, nil
}

// GetGinMode returns gin's debug mode for debug logging and release mode otherwise.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// loadDotEnv loads the first .env file found walking up from the working directory.
func loadDotEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}

	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
