// Package logging builds the charmbracelet loggers used across ztapz.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w with timestamps and the given prefix.
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// ParseLevel converts a --log-level flag value. Empty means info.
func ParseLevel(s string) (log.Level, error) {
	if strings.TrimSpace(s) == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(s))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}

// Open returns a logger appending to path. The TUI owns stdout while a game
// runs, so local play logs to a file or nowhere. An empty path discards
// output. The returned closer must be called on exit.
func Open(path, prefix string, level log.Level) (*log.Logger, io.Closer, error) {
	if path == "" {
		return New(io.Discard, prefix, level), io.NopCloser(nil), nil
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: open %s: %w", path, err)
	}
	return New(f, prefix, level), f, nil
}
