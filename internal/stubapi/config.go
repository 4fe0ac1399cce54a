package stubapi

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config describes the stub server. Every field can be set from the
// environment.
type Config struct {
	Addr     string        `env:"STUB_ADDR" envDefault:"127.0.0.1:8080"`
	OTP      string        `env:"STUB_OTP" envDefault:"123456"`
	TokenTTL time.Duration `env:"STUB_TOKEN_TTL" envDefault:"30m"`
	// Users maps login ids to passwords, e.g. "admin:secret,clerk:clerk".
	Users map[string]string `env:"STUB_USERS" envDefault:"admin:admin" envSeparator:"," envKeyValSeparator:":"`
	Color string            `env:"STUB_COLOR" envDefault:"#1E88E5"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
