package cli

import (
	"io"
	"log/slog"
	"strings"
)

// newLogger builds the slog logger for CLI diagnostics. Results go to
// stdout separately; the logger only carries progress and warnings on
// stderr.
func newLogger(w io.Writer, cfg Config) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
