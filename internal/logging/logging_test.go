package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"sankalp/internal/config"
)

func TestNewHonoursLevel(t *testing.T) {
	logger, err := New(config.AppConfig{Name: "test", Version: "0"}, config.LogConfig{Level: "warn"})
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewDebugBuildsDevelopmentLogger(t *testing.T) {
	logger, err := New(config.AppConfig{Name: "test", Debug: true}, config.LogConfig{Level: "debug"})
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(config.AppConfig{}, config.LogConfig{Level: "chatty"})
	assert.Error(t, err)
}
