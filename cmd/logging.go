package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pterm/pterm"
)

func parseLogLevel(level string) pterm.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn", "warning":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	case "off", "disabled", "none":
		return pterm.LogLevelDisabled
	default:
		return pterm.LogLevelInfo
	}
}

// newLogger builds a slog logger on top of the pterm logger. A nil writer
// keeps pterm's default output.
func newLogger(level string, w io.Writer) *slog.Logger {
	logger := pterm.DefaultLogger.WithLevel(parseLogLevel(level))
	if w != nil {
		logger = logger.WithWriter(w)
	}
	return slog.New(pterm.NewSlogHandler(logger))
}
