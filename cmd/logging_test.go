package main

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want pterm.LogLevel
	}{
		{"trace", pterm.LogLevelTrace},
		{"DEBUG", pterm.LogLevelDebug},
		{" warn ", pterm.LogLevelWarn},
		{"error", pterm.LogLevelError},
		{"off", pterm.LogLevelDisabled},
		{"", pterm.LogLevelInfo},
		{"verbose", pterm.LogLevelInfo},
	}
	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLogger_WritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("warn", &buf)

	logger.Info("hidden")
	require.Empty(t, buf.String())

	logger.Warn("structure not loaded", "file", "sunday.csv")
	require.Contains(t, buf.String(), "structure not loaded")
	require.Contains(t, buf.String(), "sunday.csv")
}
