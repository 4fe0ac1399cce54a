package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// DefaultAPIBaseURL is the production ERP endpoint.
const DefaultAPIBaseURL = "https://aapsuj.accevate.co/flutter-api"

// Config holds runtime settings for the ERP client.
//
// Fields:
//   - APIBaseURL: root of the ERP API; endpoint names are appended to it.
//   - DatabaseDSN: SQLite file holding the persisted session.
//   - RequestTimeout: deadline applied to every API request.
//   - ResendInterval: how long the OTP screen waits before allowing "resend".
//   - LogLevel, LogFormat: passed to logging.New.
type Config struct {
	APIBaseURL     string        `env:"ERP_API_URL"`
	DatabaseDSN    string        `env:"ERP_DATABASE_DSN"`
	RequestTimeout time.Duration `env:"ERP_REQUEST_TIMEOUT"`
	ResendInterval time.Duration `env:"ERP_RESEND_INTERVAL"`
	LogLevel       string        `env:"ERP_LOG_LEVEL"`
	LogFormat      string        `env:"ERP_LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.DatabaseDSN = "erpclient.db"
	c.RequestTimeout = 15 * time.Second
	c.ResendInterval = 60 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file (if any), the environment and command-line flags. Later
// sources take precedence over earlier ones. The result is validated.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the API URL is absolute http(s) and that durations
// are positive.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("api base url is required")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("api base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api base url %q must be an absolute http(s) url", c.APIBaseURL)
	}
	if c.DatabaseDSN == "" {
		return errors.New("database dsn is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.ResendInterval <= 0 {
		return fmt.Errorf("resend interval must be positive, got %s", c.ResendInterval)
	}
	return nil
}
