package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, l)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	logger, err := New(LevelWarn)
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))
}

func TestToZapLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, toZapLevel(LevelDebug))
	assert.Equal(t, zap.InfoLevel, toZapLevel(LevelInfo))
	assert.Equal(t, zap.ErrorLevel, toZapLevel(LevelError))
	assert.Equal(t, zap.InfoLevel, toZapLevel(Level("unknown")))
}
