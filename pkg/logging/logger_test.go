package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "WARNING", "Error", "bogus", ""} {
		logger := New(level)
		require.NotNil(t, logger)
		require.NotNil(t, logger.Logger)
	}
}

func TestDebugLevelEnabled(t *testing.T) {
	logger := New("debug")
	assert.True(t, logger.Enabled(nil, slog.LevelDebug))

	logger = New("error")
	assert.False(t, logger.Enabled(nil, slog.LevelInfo))

	logger = New(" WARN ")
	assert.True(t, logger.Enabled(nil, slog.LevelWarn))
	assert.False(t, logger.Enabled(nil, slog.LevelInfo))
}

func TestComponent(t *testing.T) {
	logger := Default()
	child := logger.Component("triage")
	require.NotNil(t, child)
	assert.NotSame(t, logger, child)
}
