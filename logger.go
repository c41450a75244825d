package slimefinder

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/slimefinder/internal/bitgrid"
)

// Logger wraps slog.Logger with search-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithWorker adds a worker index field to the logger.
func (l *Logger) WithWorker(worker int) *Logger {
	return &Logger{
		Logger: l.Logger.With("worker", worker),
	}
}

// WithBand adds the column range of a band to the logger.
func (l *Logger) WithBand(b Band) *Logger {
	return &Logger{
		Logger: l.Logger.With("band_start", b.Start, "band_width", b.Width),
	}
}

// LogSearch logs a completed search.
func (l *Logger) LogSearch(ctx context.Context, q Query, results int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"seed", q.Seed,
			"workers", q.Workers,
			"elapsed", elapsed,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "search completed",
			"seed", q.Seed,
			"workers", q.Workers,
			"results", results,
			"elapsed", elapsed,
			"hw_popcount", bitgrid.PopcountAccelerated(),
		)
	}
}

// LogWorker logs the end of one band scan.
func (l *Logger) LogWorker(ctx context.Context, steps int64, candidates int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "worker failed",
			"steps", steps,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "worker completed",
			"steps", steps,
			"candidates", candidates,
		)
	}
}

// LogProgress logs one progress poll.
func (l *Logger) LogProgress(ctx context.Context, completed, total int64, eta time.Duration) {
	l.DebugContext(ctx, "search progress",
		"completed", completed,
		"total", total,
		"eta", eta,
	)
}
