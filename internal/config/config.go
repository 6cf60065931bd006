package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/terraincognita07/dayledger/internal/db"
	"github.com/terraincognita07/dayledger/internal/services"
)

const EnvPrefix = "DAYLEDGER"

const minAuthSecretLength = 32

// Config holds the service configuration.
// Environment variables are parsed from the DAYLEDGER_ prefix.
type Config struct {
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	DBDriver    string `envconfig:"DB_DRIVER" default:"sqlite"`
	DBPath      string `envconfig:"DB_PATH" default:""`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	TZ           string `envconfig:"TZ" default:"UTC"`
	DefaultOwner string `envconfig:"DEFAULT_OWNER" default:"me"`
	AuthSecret   string `envconfig:"AUTH_SECRET" default:""`

	InvoicePrefix string `envconfig:"INVOICE_PREFIX" default:"INV"`
	BaseCurrency  string `envconfig:"BASE_CURRENCY" default:"USD"`
	WeekStartsOn  string `envconfig:"WEEK_STARTS_ON" default:"sunday"`

	// Empty disables the overdue sweep.
	OverdueSweepSpec string `envconfig:"OVERDUE_SWEEP_SPEC" default:""`

	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`

	Location *time.Location `ignored:"true"`
	Weekday  time.Weekday   `ignored:"true"`
}

// Load reads an optional .env file and then the environment.
// Variables already set in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return New()
}

// New creates a Config from DAYLEDGER_ environment variables only.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolveDefaults validates the raw values and derives the typed ones.
func (c *Config) ResolveDefaults() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT: %d", c.HTTPPort)
	}

	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	switch c.DBDriver {
	case db.DriverSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			c.DBPath = filepath.Join("data", "dayledger.db")
		}
	case db.DriverPostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			return errors.New("POSTGRES_DSN is required when DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}

	location, err := time.LoadLocation(strings.TrimSpace(c.TZ))
	if err != nil {
		return fmt.Errorf("invalid TZ %q: %w", c.TZ, err)
	}
	c.Location = location

	weekday, ok := services.ParseWeekday(c.WeekStartsOn)
	if !ok {
		return fmt.Errorf("invalid WEEK_STARTS_ON: %s", c.WeekStartsOn)
	}
	c.Weekday = weekday

	c.DefaultOwner = strings.TrimSpace(c.DefaultOwner)
	if c.DefaultOwner == "" {
		return errors.New("DEFAULT_OWNER must not be empty")
	}

	if c.AuthSecret != "" && len(c.AuthSecret) < minAuthSecretLength {
		return fmt.Errorf("AUTH_SECRET must be at least %d characters", minAuthSecretLength)
	}

	currency, err := services.NormalizeCurrency(c.BaseCurrency)
	if err != nil {
		return fmt.Errorf("invalid BASE_CURRENCY: %s", c.BaseCurrency)
	}
	c.BaseCurrency = currency

	c.InvoicePrefix = strings.TrimSpace(c.InvoicePrefix)
	if c.InvoicePrefix == "" {
		c.InvoicePrefix = services.DefaultInvoicePrefix
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %s", c.LogLevel)
	}
	return nil
}

func (c *Config) DBOptions() db.Options {
	return db.Options{
		Driver:      c.DBDriver,
		SQLitePath:  c.DBPath,
		PostgresDSN: c.PostgresDSN,
	}
}

func (c *Config) ListenAddress() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// LogFields adds the non-secret settings to a startup log event.
func (c *Config) LogFields(event *zerolog.Event) *zerolog.Event {
	return event.
		Str("db_driver", c.DBDriver).
		Str("db_path", c.DBPath).
		Bool("postgres_dsn_present", c.PostgresDSN != "").
		Int("port", c.HTTPPort).
		Str("tz", c.Location.String()).
		Str("week_starts_on", c.Weekday.String()).
		Str("invoice_prefix", c.InvoicePrefix).
		Str("base_currency", c.BaseCurrency).
		Bool("auth_enabled", c.AuthSecret != "").
		Bool("metrics_enabled", c.MetricsEnabled).
		Str("overdue_sweep", c.OverdueSweepSpec)
}
