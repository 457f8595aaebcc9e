// Package observability provides structured logging and database metrics.
package observability

import (
	"log/slog"
	"os"
	"strings"
)

// GlobalLogger is the default structured logger for the application. It
// writes JSON to stdout.
var GlobalLogger *slog.Logger

func init() {
	GlobalLogger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// ParseLevel maps a configuration string to a slog level. Unknown values
// fall back to info.
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

// ConfigureLogger replaces the global logger with one honoring the given level.
func ConfigureLogger(level string) {
	GlobalLogger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}
