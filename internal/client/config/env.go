package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays Config with ERP_* environment variables. Unset variables
// leave the current value alone.
func parseEnv(cfg *Config) error {
	return env.Parse(cfg)
}
