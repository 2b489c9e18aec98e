// Package logger wraps log/slog with the handler setup shared by the binaries.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is a slog.Logger with a text handler
type Logger struct {
	*slog.Logger
}

// New returns a Logger writing to stderr at the given level
func New(level slog.Level) *Logger {
	return NewLogger(level, os.Stderr)
}

// NewLogger returns a Logger writing to w at the given level
func NewLogger(level slog.Level, w io.Writer) *Logger {
	return &Logger{slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

// NewFileLogger returns a Logger appending to the file at path, creating
// parent directories as needed. The caller closes the returned file.
func NewFileLogger(level slog.Level, path string) (*Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return NewLogger(level, f), f, nil
}

// Discard returns a Logger that drops everything
func Discard() *Logger {
	return NewLogger(slog.LevelError+1, io.Discard)
}

// Err returns an error attribute
func Err(err error) slog.Attr {
	return slog.Any("error", err)
}
