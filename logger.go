package kdgo

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with kdgo-specific defaults.
// Query and build paths never log; only the persistence paths do, and
// only when a logger is configured.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses the default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewNopLogger creates a Logger that discards everything. It is the
// default for Save and Load.
func NewNopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
