package logging

import (
	"io"
	"log/slog"
)

// NewNopLogger creates a logger that discards everything. It is the default
// for services constructed without an explicit logger.
func NewNopLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError + 1, // Higher than any real level = silent
	}
	return slog.New(slog.NewTextHandler(io.Discard, opts))
}

// NewTestLogger creates a silent logger for tests.
func NewTestLogger() *slog.Logger {
	return NewNopLogger()
}
