package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestVerbosityToLevel(t *testing.T) {
	assert.Equal(t, zapcore.InfoLevel, VerbosityToLevel(VerbosityUser))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(VerbosityDebug))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(5))
}

func TestInitialize(t *testing.T) {
	err := Initialize(false, 0)
	assert.NoError(t, err)
	assert.NotNil(t, Logger)

	err = Initialize(true, 1)
	assert.NoError(t, err)
	assert.True(t, JSONOutput)
}

func TestHelpersSafeBeforeInitialize(t *testing.T) {
	// The package-load no-op logger makes these safe to call early
	Infof("no-op %d", 1)
	Warnw("no-op", "key", "value")
	Errorf("no-op")
	Debugw("no-op")
}
