package log

import (
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/mistweaverco/jokester/internal/lib/version"
)

var logLevel slog.Level = slog.LevelDebug

// NewLogger builds the application logger writing to w.
// JOKESTER_DEBUG selects the level, JOKESTER_LOG_FORMAT=json switches to JSON records.
func NewLogger(w io.Writer) *slog.Logger {
	logLevel = slog.LevelError
	if version.VERSION == "dev" {
		logLevel = slog.LevelInfo
	}
	switch os.Getenv("JOKESTER_DEBUG") {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	if os.Getenv("JOKESTER_LOG_FORMAT") == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel}))
	}

	handler := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		Level:           charmLevel(logLevel),
	})
	return slog.New(handler)
}

func charmLevel(level slog.Level) charmlog.Level {
	switch {
	case level <= slog.LevelDebug:
		return charmlog.DebugLevel
	case level <= slog.LevelInfo:
		return charmlog.InfoLevel
	case level <= slog.LevelWarn:
		return charmlog.WarnLevel
	default:
		return charmlog.ErrorLevel
	}
}
