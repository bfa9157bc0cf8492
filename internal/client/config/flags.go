package config

import "github.com/spf13/pflag"

// BindFlags registers command-line flags on fs that write straight into cfg.
// Defaults are cfg's current values, so flags only override what is given.
//
//	-c, --config string      config file (consumed by Load, registered here for help output)
//	    --api string         API base URL
//	    --timeout duration   per-request timeout
//	    --db string          SQLite file for persisted tokens
//	    --ephemeral          keep tokens in memory only
//	    --log-level string   debug|info|warn|error
//	    --log-format string  text|json
//	    --log-backend string slog|zap
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringP("config", "c", "", "path to a JSON or YAML config file")
	fs.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "API base URL")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "SQLite file for persisted tokens")
	fs.BoolVar(&cfg.Ephemeral, "ephemeral", cfg.Ephemeral, "keep tokens in memory only")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug|info|warn|error")
	fs.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "log format: text|json")
	fs.StringVar(&cfg.Log.Backend, "log-backend", cfg.Log.Backend, "log backend: slog|zap")
}
