//go:build !integration

package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		pretty   bool
		expected zerolog.Level
	}{
		{name: "debug level", level: "debug", expected: zerolog.DebugLevel},
		{name: "info level", level: "info", expected: zerolog.InfoLevel},
		{name: "warn level", level: "warn", expected: zerolog.WarnLevel},
		{name: "error level", level: "error", expected: zerolog.ErrorLevel},
		{name: "invalid level defaults to info", level: "chatty", expected: zerolog.InfoLevel},
		{name: "pretty output", level: "info", pretty: true, expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, tt.pretty)
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestLogger_EventChaining(t *testing.T) {
	Init("info", false)

	l := Logger()
	assert.NotNil(t, l)

	// Warn/Error take a pointer receiver; chaining straight off
	// Logger() must work at every call site.
	l.Warn().Str("component", "test").Msg("chained warn")
	Logger().Error().Msg("chained error")

	assert.Same(t, l, Logger())
}

func TestWithRequest(t *testing.T) {
	Init("info", false)
	logger := WithRequest("req-123", "translate")
	assert.NotNil(t, logger)
}
