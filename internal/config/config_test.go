package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT", "DB_DRIVER", "DB_PATH", "POSTGRES_DSN", "TZ", "DEFAULT_OWNER", "AUTH_SECRET",
		"INVOICE_PREFIX", "BASE_CURRENCY", "WEEK_STARTS_ON", "OVERDUE_SWEEP_SPEC", "METRICS_ENABLED", "LOG_LEVEL",
	} {
		t.Setenv(EnvPrefix+"_"+key, "")
		require.NoError(t, os.Unsetenv(EnvPrefix+"_"+key))
	}
}

func TestNewDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, filepath.Join("data", "dayledger.db"), cfg.DBPath)
	assert.Equal(t, "me", cfg.DefaultOwner)
	assert.Equal(t, "INV", cfg.InvoicePrefix)
	assert.Equal(t, "USD", cfg.BaseCurrency)
	assert.Equal(t, time.Sunday, cfg.Weekday)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.True(t, cfg.MetricsEnabled)
	assert.Empty(t, cfg.OverdueSweepSpec)
	assert.Equal(t, ":8080", cfg.ListenAddress())
}

func TestNewEnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("DAYLEDGER_HTTP_PORT", "9090")
	t.Setenv("DAYLEDGER_WEEK_STARTS_ON", "Monday")
	t.Setenv("DAYLEDGER_BASE_CURRENCY", "eur")
	t.Setenv("DAYLEDGER_INVOICE_PREFIX", "DL")
	t.Setenv("DAYLEDGER_TZ", "Europe/Berlin")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, time.Monday, cfg.Weekday)
	assert.Equal(t, "EUR", cfg.BaseCurrency)
	assert.Equal(t, "DL", cfg.InvoicePrefix)
	assert.Equal(t, "Europe/Berlin", cfg.Location.String())
}

func TestNewRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"DAYLEDGER_HTTP_PORT":      "70000",
		"DAYLEDGER_DB_DRIVER":      "mysql",
		"DAYLEDGER_TZ":             "Mars/Olympus",
		"DAYLEDGER_WEEK_STARTS_ON": "someday",
		"DAYLEDGER_AUTH_SECRET":    "too-short-secret",
		"DAYLEDGER_BASE_CURRENCY":  "QQQ",
		"DAYLEDGER_LOG_LEVEL":      "loud",
		"DAYLEDGER_DEFAULT_OWNER":  "   ",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := New()
			assert.Error(t, err)
		})
	}
}

func TestPostgresRequiresDSN(t *testing.T) {
	clearEnv(t)
	t.Setenv("DAYLEDGER_DB_DRIVER", "postgres")
	_, err := New()
	require.Error(t, err)

	t.Setenv("DAYLEDGER_POSTGRES_DSN", "postgres://localhost/dayledger")
	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBOptions().Driver)
}

func TestLoadReadsDotEnvWithoutOverridingEnvironment(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DAYLEDGER_INVOICE_PREFIX=ACME\nDAYLEDGER_HTTP_PORT=7070\n"), 0o600))
	t.Setenv("DAYLEDGER_HTTP_PORT", "6060")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ACME", cfg.InvoicePrefix)
	assert.Equal(t, 6060, cfg.HTTPPort)
	require.NoError(t, os.Unsetenv("DAYLEDGER_INVOICE_PREFIX"))
}

func TestLoadIgnoresMissingDotEnv(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
