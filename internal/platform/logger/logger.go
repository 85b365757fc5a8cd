package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New builds the process logger. Format and level come from the environment:
// MODBOT_LOG_FORMAT (text|json, default text) and MODBOT_LOG_LEVEL
// (debug|info|warn|error, default info). Gate skip decisions are logged at
// debug, so debug is the level to run when diagnosing moderation behavior.
func New() *slog.Logger {
	opts := &slog.HandlerOptions{Level: level()}

	var handler slog.Handler
	if strings.EqualFold(os.Getenv("MODBOT_LOG_FORMAT"), "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}

func level() slog.Level {
	switch strings.ToLower(os.Getenv("MODBOT_LOG_LEVEL")) {
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
