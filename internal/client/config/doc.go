// Package config loads runtime configuration for the ERP client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected via flags: -c or -config.
//  3. ERP_* environment variables.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   ERP API base url
//	-d string   local session database path
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # File schema
//
// Durations use timex.Duration, so values can be either strings like "15s"
// or integer nanoseconds:
//
//	api_base_url: https://aapsuj.accevate.co/flutter-api
//	database_dsn: erpclient.db
//	request_timeout: 15s
//	resend_interval: 60s
//	log_level: info
//	log_format: text
//
// # Environment
//
//	ERP_API_URL, ERP_DATABASE_DSN, ERP_REQUEST_TIMEOUT,
//	ERP_RESEND_INTERVAL, ERP_LOG_LEVEL, ERP_LOG_FORMAT
package config
