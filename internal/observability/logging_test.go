package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/tmhigienizacao/site-api/internal/config"
)

func TestLoggerConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.LoggerConfig
		encoding string
		level    zapcore.Level
	}{
		{"defaults", config.LoggerConfig{}, "json", zapcore.InfoLevel},
		{"debug console", config.LoggerConfig{Level: "DEBUG", Format: "console"}, "console", zapcore.DebugLevel},
		{"unknown level falls back", config.LoggerConfig{Level: "chatty", Format: "json"}, "json", zapcore.InfoLevel},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			zapCfg, err := loggerConfig(tc.cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.encoding, zapCfg.Encoding)
			assert.Equal(t, tc.level, zapCfg.Level.Level())
		})
	}
}

func TestLoggerConfigRejectsUnknownFormat(t *testing.T) {
	_, err := loggerConfig(config.LoggerConfig{Format: "xml"})
	require.Error(t, err)
}

func TestNewLoggerTagsService(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "error", Service: "site-api"})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
