package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SlogJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Options{Format: "json", Level: "warn"})
	require.NoError(t, err)

	l.Info(context.Background(), "hidden")
	l.Warn(context.Background(), "shown", "status", 401)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"status":401`)
}

func TestNew_ZapConsole(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Options{Backend: "zap", Level: "debug"})
	require.NoError(t, err)

	l.With("op", "login").Debug(context.Background(), "dbg", "k", "v")

	out := buf.String()
	assert.Contains(t, out, "dbg")
	assert.Contains(t, out, "login")
	assert.Contains(t, out, "k")
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"backend", Options{Backend: "logrus"}},
		{"slog level", Options{Level: "loud"}},
		{"zap level", Options{Backend: "zap", Level: "loud"}},
		{"slog format", Options{Format: "xml"}},
		{"zap format", Options{Backend: "zap", Format: "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(&bytes.Buffer{}, tt.opts)
			require.Error(t, err)
		})
	}
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop()
	ctx := context.Background()
	l.Debug(ctx, "a")
	l.Info(ctx, "b")
	l.With("k", "v").Warn(ctx, "c")
	l.Error(ctx, "d")
}
