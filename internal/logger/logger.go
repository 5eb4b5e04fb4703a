// Package logger provides the run-scoped logger used by every pipeline stage.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger writes timestamped, leveled lines to stdout and to an append-only
// log file. It is passed explicitly into each stage; there is no package
// global.
type Logger struct {
	internal *slog.Logger
	level    *slog.LevelVar
	file     *os.File
}

// New creates a logger at the given level writing to stdout and logPath.
// The log file is opened in append mode so reruns accumulate history.
func New(level, logPath string) (*Logger, error) {
	lvl := new(slog.LevelVar)

	switch strings.ToLower(level) {
	case "debug":
		lvl.Set(slog.LevelDebug)
	case "info":
		lvl.Set(slog.LevelInfo)
	case "warn":
		lvl.Set(slog.LevelWarn)
	case "error":
		lvl.Set(slog.LevelError)
	default:
		lvl.Set(slog.LevelInfo)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}

	opts := &slog.HandlerOptions{
		Level: lvl,
	}

	handler := slog.NewTextHandler(io.MultiWriter(os.Stdout, file), opts)

	return &Logger{
		internal: slog.New(handler),
		level:    lvl,
		file:     file,
	}, nil
}

// Discard returns a logger that drops everything. Intended for tests.
func Discard() *Logger {
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelError)
	return &Logger{
		internal: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: lvl})),
		level:    lvl,
	}
}

// Info logs an info level message.
func (l *Logger) Info(msg string, args ...any) {
	l.internal.Info(msg, args...)
}

// Error logs an error level message.
func (l *Logger) Error(msg string, args ...any) {
	l.internal.Error(msg, args...)
}

// Debug logs a debug level message.
func (l *Logger) Debug(msg string, args ...any) {
	l.internal.Debug(msg, args...)
}

// Warn logs a warning level message.
func (l *Logger) Warn(msg string, args ...any) {
	l.internal.Warn(msg, args...)
}

// With creates a child logger with the given attributes. The child shares
// the parent's sinks and level.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		internal: l.internal.With(args...),
		level:    l.level,
		file:     l.file,
	}
}

// Close releases the underlying log file. Only the logger returned by New
// should be closed; children share the same file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
