package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger returns a slog.Logger for cfg writing to stdout.
// Production uses JSON handler; otherwise text handler.
// LOG_LEVEL may be: debug, info, warn, error (default: info).
func NewLogger(cfg *Config) *slog.Logger {
	return newLogger(os.Stdout, cfg.IsProduction(), cfg.LogLevel)
}

func newLogger(w io.Writer, production bool, levelName string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(levelName)}
	if production {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
