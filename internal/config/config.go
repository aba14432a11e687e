package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Ledger struct {
		Dir              string `envconfig:"ONM_LEDGER_DIR" default:"~/.onm/ledger"`
		AccountsPath     string `envconfig:"ONM_ACCOUNTS_PATH"`
		TransactionsPath string `envconfig:"ONM_TRANSACTIONS_PATH"`
		CursorsPath      string `envconfig:"ONM_CURSORS_PATH"`
		SourcesPath      string `envconfig:"ONM_SOURCES_PATH"`
	}

	Plaid struct {
		ClientID string        `envconfig:"PLAID_CLIENT_ID"`
		Secret   string        `envconfig:"PLAID_SECRET"`
		Env      string        `envconfig:"PLAID_ENV" default:"sandbox"`
		Timeout  time.Duration `envconfig:"ONM_HTTP_TIMEOUT" default:"30s"`
	}

	Link struct {
		Port int `envconfig:"ONM_LINK_PORT" default:"3000"`
	}

	Log struct {
		Level string `envconfig:"ONM_LOG_LEVEL" default:"info"`
	}
}

// PlaidEnabled reports whether aggregator credentials were provided.
func (c *Config) PlaidEnabled() bool {
	return c.Plaid.ClientID != ""
}

// LinkAddr is the loopback address the link callback server listens on.
func (c *Config) LinkAddr() string {
	return fmt.Sprintf("127.0.0.1:%d", c.Link.Port)
}

func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}

	return level, nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	dir, err := expandHome(cfg.Ledger.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ledger dir: %w", err)
	}

	cfg.Ledger.Dir = dir

	return &cfg, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
