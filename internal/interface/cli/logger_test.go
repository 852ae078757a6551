package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YoshitsuguKoike/filerepo/internal/app"
)

func TestLogLevelFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{" error ", LogLevelError},
		{"", LogLevelWarn},
		{"verbose", LogLevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, LogLevelFromString(tt.input))
		})
	}
}

func TestLogger_FiltersBelowMinLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(LogLevelWarn, buf)

	logger.Debug("hidden %d", 1)
	logger.Info("hidden %d", 2)
	logger.Warn("shown %d", 3)
	logger.Error("shown %d", 4)

	assert.Equal(t, "WARN: shown 3\nERROR: shown 4\n", buf.String())
}

func TestLogger_SetLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(LogLevelError, buf)

	logger.SetLevel(LogLevelDebug)
	assert.Equal(t, LogLevelDebug, logger.GetLevel())

	logger.Debug("now visible")
	assert.Equal(t, "DEBUG: now visible\n", buf.String())
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "debug", LogLevelDebug.String())
	assert.Equal(t, "error", LogLevelError.String())
	assert.Equal(t, "unknown", LogLevel(42).String())
}

func TestInitializeLoggers_RoutesAppLayer(t *testing.T) {
	prev := app.GetLogger()
	defer app.SetLogger(prev)

	buf := &bytes.Buffer{}
	InitializeLoggers(NewLogger(LogLevelInfo, buf))

	app.GetLogger().Debug("dropped")
	app.GetLogger().Info("from app layer")

	assert.Equal(t, "INFO: from app layer\n", buf.String())
}

func TestGetLogger_DefaultsToWarn(t *testing.T) {
	globalMu.Lock()
	prev := globalLogger
	globalLogger = nil
	globalMu.Unlock()
	defer func() {
		globalMu.Lock()
		globalLogger = prev
		globalMu.Unlock()
	}()

	assert.Equal(t, LogLevelWarn, GetLogger().GetLevel())
}
