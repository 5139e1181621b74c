package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/heartmarshall/coursetrack-backend/internal/config"
)

// serviceName is attached to every record so ledger logs can be told apart
// from the content and auth services in a shared sink.
const serviceName = "coursetrack"

// NewLogger builds the process logger from LogConfig and installs it as the
// slog default. "json" is for production; anything else falls back to text
// with source positions. Unknown levels mean info.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		opts.AddSource = true
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler).With(
		slog.String("service", serviceName),
		slog.String("version", Version),
	)
	slog.SetDefault(logger)

	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
