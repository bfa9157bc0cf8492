package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the logger backend and its output shape.
//
//	Backend: "slog" (default) or "zap"
//	Format:  "text" (default) or "json"
//	Level:   "debug", "info" (default), "warn", "error"
type Options struct {
	Backend string
	Format  string
	Level   string
}

// New builds a Logger writing to w according to opts.
func New(w io.Writer, opts Options) (Logger, error) {
	switch strings.ToLower(opts.Backend) {
	case "", "slog":
		return newSlog(w, opts)
	case "zap":
		return newZap(w, opts)
	default:
		return nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}

func newSlog(w io.Writer, opts Options) (Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelOrDefault(opts.Level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	ho := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", "text":
		h = slog.NewTextHandler(w, ho)
	case "json":
		h = slog.NewJSONHandler(w, ho)
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}
	return NewSlogLogger(slog.New(h)), nil
}

func newZap(w io.Writer, opts Options) (Logger, error) {
	level, err := zapcore.ParseLevel(levelOrDefault(opts.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch strings.ToLower(opts.Format) {
	case "", "text":
		enc = zapcore.NewConsoleEncoder(ec)
	case "json":
		enc = zapcore.NewJSONEncoder(ec)
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return NewZapLogger(zap.New(core)), nil
}

func levelOrDefault(l string) string {
	if l == "" {
		return "info"
	}
	return strings.ToLower(l)
}
