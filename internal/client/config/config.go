package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/payscope/internal/flagx"
	"github.com/dmitrijs2005/payscope/internal/logging"
)

// Config holds runtime settings for the payscope client.
type Config struct {
	// APIBaseURL is the root of the review/salary REST API, e.g.
	// https://api.example.com/api. Resource paths are appended to it.
	APIBaseURL string `env:"API_BASE_URL"`

	// RequestTimeout bounds a single HTTP round trip.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DatabasePath is the SQLite file holding the persisted token pair.
	DatabasePath string `env:"DATABASE_PATH"`

	// Ephemeral keeps tokens in memory only; nothing survives the process.
	Ephemeral bool `env:"EPHEMERAL"`

	Log LogConfig `envPrefix:"LOG_"`
}

// LogConfig mirrors logging.Options.
type LogConfig struct {
	Backend string `env:"BACKEND"`
	Format  string `env:"FORMAT"`
	Level   string `env:"LEVEL"`
}

// Options converts c to logging.Options.
func (c LogConfig) Options() logging.Options {
	return logging.Options{Backend: c.Backend, Format: c.Format, Level: c.Level}
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "payscope.db"
	c.Ephemeral = false
	c.Log = LogConfig{Backend: "slog", Format: "text", Level: "warn"}
}

// Load builds a Config from defaults, then the config file named by -c or
// --config in args (if any), then PAYSCOPE_* environment variables. Flags are
// applied afterwards by the command layer via BindFlags.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := flagx.ConfigFileFlag(args); path != "" {
		if err := parseFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports settings the client cannot run with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("invalid api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api base url must be http or https, got %q", c.APIBaseURL)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	if !c.Ephemeral && c.DatabasePath == "" {
		return errors.New("database path is required unless running ephemeral")
	}
	return nil
}
