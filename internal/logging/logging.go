// Package logging configures the structured slog logger used by the service.
//
// Logs are JSON on stderr. The level comes from LOG_LEVEL (debug, info,
// warn/warning, error) and defaults to info; every record carries the module
// name and build version.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps a level name onto slog.Level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a JSON logger writing to w
func New(w io.Writer, module, version, level string) *slog.Logger {
	lvl := ParseLevel(level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})
	return slog.New(handler).With("module", module, "version", version)
}

// SetDefault installs a stderr logger as the slog default and returns it
func SetDefault(module, version, level string) *slog.Logger {
	logger := New(os.Stderr, module, version, level)
	slog.SetDefault(logger)
	return logger
}
