package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/erpclient/internal/flagx"
	"github.com/dmitrijs2005/erpclient/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is a DTO used exclusively for file decoding. Durations go
// through timex.Duration so they may be written as "15s" or as integer
// nanoseconds. Pointer fields distinguish "absent" from "zero".
type fileConfig struct {
	APIBaseURL     *string         `json:"api_base_url" yaml:"api_base_url"`
	DatabaseDSN    *string         `json:"database_dsn" yaml:"database_dsn"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	ResendInterval *timex.Duration `json:"resend_interval" yaml:"resend_interval"`
	LogLevel       *string         `json:"log_level" yaml:"log_level"`
	LogFormat      *string         `json:"log_format" yaml:"log_format"`
}

// parseFile overlays Config with the file named by -c or -config. Files
// ending in .yaml or .yml are read as YAML, anything else as JSON. Unknown
// keys are an error in YAML files.
func parseFile(cfg *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&fc); err != nil {
			return err
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return err
		}
	}

	fc.apply(cfg)
	return nil
}

func (fc fileConfig) apply(cfg *Config) {
	if fc.APIBaseURL != nil {
		cfg.APIBaseURL = *fc.APIBaseURL
	}
	if fc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *fc.DatabaseDSN
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.ResendInterval != nil {
		cfg.ResendInterval = fc.ResendInterval.Duration
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
}
