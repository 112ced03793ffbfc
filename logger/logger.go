// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// L is the global logger instance. It defaults to a text handler on stderr
// so library code can log before Init runs (tests, for instance).
var L = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Init initializes the global logger with the given level.
// Call once at application startup, after loading config.
func Init(levelStr string) {
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
		slog.Warn("invalid log level, defaulting to info", "configured", levelStr)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	L = slog.New(handler)
	slog.SetDefault(L)
}

// Discard routes the global logger to nowhere. Tests use it to keep
// expected-failure paths quiet.
func Discard() {
	L = slog.New(slog.NewTextHandler(io.Discard, nil))
}
