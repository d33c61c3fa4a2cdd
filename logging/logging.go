// Package logging sets up the debug log. The terminal belongs to the UI, so records go to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/adrg/xdg"
)

var (
	logFile       = "termsweep/debug.log"
	defaultLogger *slog.Logger
)

// Init opens the debug log under the XDG state directory and installs it as the default logger.
// The returned Closer closes the log file.
func Init(level string) (io.Closer, error) {
	path, err := xdg.StateFile(logFile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve log path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	Set(New(f, level))
	return f, nil
}

// New builds a text logger writing to w at the named level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

// Set replaces the default logger.
func Set(l *slog.Logger) {
	defaultLogger = l
	slog.SetDefault(l)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Get returns the default logger, or one that discards everything if Init was never called.
func Get() *slog.Logger {
	if defaultLogger == nil {
		return New(io.Discard, "error")
	}
	return defaultLogger
}
