package ttgo

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

// Logger wraps slog.Logger with ttgo-specific context.
// This provides structured logging with consistent field names.
//
// Only maintenance operations log; the probe/store hot path never does.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithSearch adds a search correlation ID to the logger.
func (l *Logger) WithSearch(id uuid.UUID) *Logger {
	return &Logger{
		Logger: l.Logger.With("search_id", id.String()),
	}
}

// LogResize logs a hash table resize.
func (l *Logger) LogResize(ctx context.Context, megabytes int, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "hash resize failed",
			"megabytes", megabytes,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "hash resized",
			"megabytes", megabytes,
			"duration", d,
		)
	}
}

// LogClear logs a full table clear.
func (l *Logger) LogClear(ctx context.Context, d time.Duration) {
	l.InfoContext(ctx, "hash cleared",
		"duration", d,
	)
}

// LogNewSearch logs the start of a search and its generation stamp.
func (l *Logger) LogNewSearch(ctx context.Context, id uuid.UUID, generation uint8) {
	l.DebugContext(ctx, "new search",
		"search_id", id.String(),
		"generation", generation,
	)
}

// LogHashfull logs a hash usage sample.
func (l *Logger) LogHashfull(ctx context.Context, permille int) {
	l.DebugContext(ctx, "hashfull sampled",
		"permille", permille,
	)
}
