// Package logging provides a small keyed-value logging facade so the rest of
// the code is not tied to a concrete logging backend.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps the backend logger with a component name.
type Logger struct {
	inner *slog.Logger
}

// New creates a named logger at info level writing to stderr
func New(name string) *Logger {
	return NewWithOptions(name, "info", os.Stderr)
}

// NewWithOptions creates a named logger with an explicit level and output
func NewWithOptions(name, level string, output io.Writer) *Logger {
	handler := slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return &Logger{slog.New(handler).With("component", name)}
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.inner.Debug(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.inner.Info(msg, keysAndValues...)
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.inner.Warn(msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.inner.Error(msg, keysAndValues...)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
