package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"testbin"}, args...)
}

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, DefaultAPIBaseURL, c.APIBaseURL)
	assert.Equal(t, "erpclient.db", c.DatabaseDSN)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, 60*time.Second, c.ResendInterval)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	setArgs(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), *cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "api_base_url: http://file.local\nrequest_timeout: 7s\nlog_level: debug\n")
	t.Setenv("ERP_API_URL", "http://env.local")
	t.Setenv("ERP_RESEND_INTERVAL", "5s")
	setArgs(t, "-c", path, "-t", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	want := defaults()
	want.APIBaseURL = "http://env.local"
	want.RequestTimeout = 3 * time.Second
	want.ResendInterval = 5 * time.Second
	want.LogLevel = "debug"
	assert.Empty(t, cmp.Diff(want, *cfg))
}

func TestLoadConfig_InvalidResult(t *testing.T) {
	setArgs(t, "-a", "ftp://nope")

	_, err := LoadConfig()
	require.ErrorContains(t, err, "http(s)")
}

func TestParseFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name: "json with string durations",
			file: "cfg.json",
			body: `{"api_base_url":"http://json.local","request_timeout":"2s","database_dsn":"x.db"}`,
			mutate: func(c *Config) {
				c.APIBaseURL = "http://json.local"
				c.RequestTimeout = 2 * time.Second
				c.DatabaseDSN = "x.db"
			},
		},
		{
			name:   "json with nanoseconds",
			file:   "cfg.json",
			body:   `{"resend_interval":1000000000}`,
			mutate: func(c *Config) { c.ResendInterval = time.Second },
		},
		{
			name:   "yaml",
			file:   "cfg.yml",
			body:   "log_format: json\nresend_interval: 30s\n",
			mutate: func(c *Config) { c.LogFormat = "json"; c.ResendInterval = 30 * time.Second },
		},
		{name: "yaml unknown key", file: "cfg.yaml", body: "bogus: 1\n", wantErr: true},
		{name: "invalid json", file: "cfg.json", body: `{ this is not valid json`, wantErr: true},
		{name: "bad duration", file: "cfg.json", body: `{"request_timeout":"soon"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setArgs(t, "-config", writeFile(t, tt.file, tt.body))

			cfg := defaults()
			err := parseFile(&cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := defaults()
			tt.mutate(&want)
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}

func TestParseFile_NoFlag_NoChanges(t *testing.T) {
	setArgs(t)

	cfg := defaults()
	require.NoError(t, parseFile(&cfg))
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestParseFile_MissingFile(t *testing.T) {
	setArgs(t, "-c", filepath.Join(t.TempDir(), "absent.json"))

	cfg := defaults()
	require.Error(t, parseFile(&cfg))
}

func TestParseEnv(t *testing.T) {
	t.Setenv("ERP_DATABASE_DSN", "env.db")
	t.Setenv("ERP_REQUEST_TIMEOUT", "250ms")
	t.Setenv("ERP_LOG_FORMAT", "json")

	cfg := defaults()
	require.NoError(t, parseEnv(&cfg))

	want := defaults()
	want.DatabaseDSN = "env.db"
	want.RequestTimeout = 250 * time.Millisecond
	want.LogFormat = "json"
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("ERP_REQUEST_TIMEOUT", "later")

	cfg := defaults()
	require.Error(t, parseEnv(&cfg))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected func(*Config)
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://127.0.0.1:8080", "-d", "s.db", "-t", "10", "-l", "warn"},
			expected: func(c *Config) {
				c.APIBaseURL = "http://127.0.0.1:8080"
				c.DatabaseDSN = "s.db"
				c.RequestTimeout = 10 * time.Second
				c.LogLevel = "warn"
			},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"-c", "cfg.json", "-x", "1", "-l", "error"},
			expected: func(c *Config) { c.LogLevel = "error" },
		},
		{name: "incorrect timeout", args: []string{"-t", "abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setArgs(t, tt.args...)

			cfg := defaults()
			err := parseFlags(&cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := defaults()
			tt.expected(&want)
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty url", mutate: func(c *Config) { c.APIBaseURL = "" }},
		{name: "relative url", mutate: func(c *Config) { c.APIBaseURL = "/flutter-api" }},
		{name: "bad scheme", mutate: func(c *Config) { c.APIBaseURL = "ftp://host" }},
		{name: "empty dsn", mutate: func(c *Config) { c.DatabaseDSN = "" }},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }},
		{name: "negative resend", mutate: func(c *Config) { c.ResendInterval = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
