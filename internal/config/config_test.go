package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/onm/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	for _, key := range []string{"ONM_LEDGER_DIR", "PLAID_CLIENT_ID", "PLAID_ENV", "ONM_LINK_PORT", "ONM_LOG_LEVEL", "ONM_HTTP_TIMEOUT"} {
		// Setenv restores the previous value on cleanup.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".onm", "ledger"), cfg.Ledger.Dir)
	assert.Equal(t, "sandbox", cfg.Plaid.Env)
	assert.Equal(t, 30*time.Second, cfg.Plaid.Timeout)
	assert.Equal(t, "127.0.0.1:3000", cfg.LinkAddr())
	assert.False(t, cfg.PlaidEnabled())

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ONM_LEDGER_DIR", "/srv/ledger")
	t.Setenv("ONM_SOURCES_PATH", "/etc/onm/sources.toml")
	t.Setenv("PLAID_CLIENT_ID", "client")
	t.Setenv("PLAID_SECRET", "secret")
	t.Setenv("PLAID_ENV", "production")
	t.Setenv("ONM_LINK_PORT", "8765")
	t.Setenv("ONM_LOG_LEVEL", "debug")
	t.Setenv("ONM_HTTP_TIMEOUT", "5s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/ledger", cfg.Ledger.Dir)
	assert.Equal(t, "/etc/onm/sources.toml", cfg.Ledger.SourcesPath)
	assert.True(t, cfg.PlaidEnabled())
	assert.Equal(t, "production", cfg.Plaid.Env)
	assert.Equal(t, 5*time.Second, cfg.Plaid.Timeout)
	assert.Equal(t, "127.0.0.1:8765", cfg.LinkAddr())

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("ONM_LINK_PORT", "not-a-port")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestConfig_LogLevel_Invalid(t *testing.T) {
	var cfg config.Config
	cfg.Log.Level = "loud"

	_, err := cfg.LogLevel()
	assert.Error(t, err)
}
