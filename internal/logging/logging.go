// Package logging builds the slog logger shared by the TUI and the CLI.
// The TUI owns the terminal, so records go to a file unless told otherwise.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/urlscout/urlscout-cli/pkg/models"
)

const (
	// Disabled turns logging off when used as the log file
	Disabled = "none"
	// Stderr sends records to standard error
	Stderr = "stderr"
)

// ParseLevel maps a settings level name to a slog level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %q (must be: debug, info, warn or error)", level)
	}
}

// NewWriter returns a tint logger writing to w. Color is used only when w
// is a terminal.
func NewWriter(w io.Writer, level slog.Level) *slog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		NoColor:    noColor,
		TimeFormat: time.DateTime,
		Level:      level,
	}))
}

// New builds the logger described by settings. The returned close func
// releases the log file and is always safe to call.
func New(settings models.LoggingSettings) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }

	level, err := ParseLevel(settings.Level)
	if err != nil {
		return nil, noop, err
	}

	switch settings.File {
	case "", Disabled:
		return slog.New(slog.DiscardHandler), noop, nil
	case Stderr:
		return NewWriter(os.Stderr, level), noop, nil
	}

	if dir := filepath.Dir(settings.File); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, noop, fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(settings.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to open log file %s: %w", settings.File, err)
	}
	return NewWriter(f, level), f.Close, nil
}
