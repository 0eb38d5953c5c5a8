package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.base)
	assert.NotNil(t, logger.sugar)
}

func TestNewWithLevel(t *testing.T) {
	logger, err := NewWithLevel("DEBUG")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewWithLevel("loud")
	assert.Error(t, err)
}

func TestLogger_Formatting(t *testing.T) {
	logger := NewNop()

	// none of these may panic
	logger.Debug("debug %d", 1)
	logger.Info("User %s uploaded %d bytes", "john", 123)
	logger.Warn("Warning: %s count is %d", "items", 5)
	logger.Error("Failed to process request %d: %s", 500, "boom")
}

func TestWith(t *testing.T) {
	logger := NewNop().With("reference", "abc")
	assert.NotNil(t, logger.Zap())
	logger.Info("child logger works")
}
