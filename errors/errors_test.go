package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestSentinels(t *testing.T) {
	err := Wrapf(ErrNotComposable, "no composite for pair (%s, %s)", "m", "n")
	assert.True(t, IsNotComposableError(err))
	assert.False(t, IsNotFoundError(err))

	err = NewNotFoundError("morphism type %q", "m")
	assert.True(t, IsNotFoundError(err))
	assert.Contains(t, err.Error(), `morphism type "m"`)
}

func TestIsNilSafe(t *testing.T) {
	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsNotComposableError(nil))
}
