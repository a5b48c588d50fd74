package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// New returns a JSON logger appending to path. The terminal is owned by the
// TUI, so nothing is ever written to stdout or stderr. When the file cannot
// be opened the logger discards everything.
func New(path string, level slog.Level) (*slog.Logger, io.Closer) {
	if path == "" {
		return Discard(), nopCloser{}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Discard(), nopCloser{}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Discard(), nopCloser{}
	}

	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
