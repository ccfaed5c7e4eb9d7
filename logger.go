package cliffgo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with cliffgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithSignature adds a signature field to the logger.
func (l *Logger) WithSignature(key string) *Logger {
	return &Logger{
		Logger: l.Logger.With("signature", key),
	}
}

// LogTableBuild logs the resolution of a Cayley table that required a build.
func (l *Logger) LogTableBuild(ctx context.Context, key string, blades int, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "table build failed",
			"signature", key,
			"blades", blades,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "table built",
		"signature", key,
		"blades", blades,
		"duration", d,
	)
}

// LogTableUnavailable logs a table that could not be resolved without
// running a build in this call.
func (l *Logger) LogTableUnavailable(ctx context.Context, key string, err error) {
	l.WarnContext(ctx, "table unavailable",
		"signature", key,
		"error", err,
	)
}

// LogTableHit logs the resolution of an already resident table.
func (l *Logger) LogTableHit(ctx context.Context, key string) {
	l.DebugContext(ctx, "table reused", "signature", key)
}

// LogTableLoad logs a snapshot load.
func (l *Logger) LogTableLoad(ctx context.Context, key string, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "table load failed",
			"signature", key,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "table loaded",
		"signature", key,
		"duration", d,
	)
}
