package logging_test

import (
	"testing"

	"fulfillment/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("honours explicit level", func(t *testing.T) {
		logger, err := logging.New("debug")
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("falls back to info", func(t *testing.T) {
		logger, err := logging.New("loud")
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	})
}

func TestComponent_NilLogger(t *testing.T) {
	logger := logging.Component(nil, "engine")
	require.NotNil(t, logger)
	logger.Info("does not panic")
}
