// Package config loads runtime configuration for the payscope client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or --config. Files ending in
//     .yaml or .yml are decoded as YAML, anything else as JSON.
//  3. Environment variables with the PAYSCOPE_ prefix (a .env file in the
//     working directory is loaded by the entry point before this step).
//  4. Command-line flags registered by BindFlags.
//
// # File schema
//
// Durations accept strings like "15s" or integer nanoseconds:
//
//	api_base_url: https://api.example.com/api
//	request_timeout: 15s
//	database_path: payscope.db
//	ephemeral: false
//	log:
//	  backend: slog
//	  format: text
//	  level: warn
//
// # Environment
//
//	PAYSCOPE_API_BASE_URL, PAYSCOPE_REQUEST_TIMEOUT, PAYSCOPE_DATABASE_PATH,
//	PAYSCOPE_EPHEMERAL, PAYSCOPE_LOG_BACKEND, PAYSCOPE_LOG_FORMAT,
//	PAYSCOPE_LOG_LEVEL
package config
