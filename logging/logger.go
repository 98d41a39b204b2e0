package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with bluenoise-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. A nil handler logs
// text at info level to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger writing human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger writing JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(1000)}))
}

// WithRun tags every record with a run identifier.
func (l *Logger) WithRun(id string) *Logger {
	return &Logger{Logger: l.Logger.With("run", id)}
}

// LogSampleStart records the parameters of a sampling call.
func (l *Logger) LogSampleStart(ctx context.Context, points, candidates, target int) {
	l.DebugContext(ctx, "sampling started",
		"points", points,
		"candidates", candidates,
		"target", target,
	)
}

// LogSample records the outcome of a sampling call.
func (l *Logger) LogSample(ctx context.Context, accepted int, fastPath bool, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sampling failed",
			"accepted", accepted,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "sampling completed",
		"accepted", accepted,
		"fast_path", fastPath,
		"elapsed", elapsed,
	)
}
