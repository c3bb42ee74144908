package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelWrapping(t *testing.T) {
	err := NewNotFoundError("no keycap named %q", "doesNotExist")
	assert.True(t, Is(err, ErrNotFound))
	assert.True(t, IsNotFoundError(err))
	assert.Contains(t, err.Error(), "doesNotExist")

	// Further wrapping preserves the sentinel
	wrapped := Wrap(err, "resolving requested names")
	assert.True(t, IsNotFoundError(wrapped))
}

func TestInvalidConfigSentinel(t *testing.T) {
	err := NewInvalidConfigError("unsupported file type %q", "obj")
	assert.True(t, IsInvalidConfigError(err))
	assert.False(t, IsNotFoundError(err))
	assert.Contains(t, err.Error(), "obj")
}

func TestNilSafety(t *testing.T) {
	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsInvalidConfigError(nil))
}
