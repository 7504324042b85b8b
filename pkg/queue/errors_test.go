package queue

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnrecoverable(t *testing.T) {
	base := errors.New("agent binary not found")

	err := Unrecoverable(base)
	require.Error(t, err)
	assert.True(t, IsUnrecoverable(err))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, base.Error(), err.Error())
}

func TestUnrecoverableNil(t *testing.T) {
	assert.NoError(t, Unrecoverable(nil))
}

func TestIsUnrecoverableThroughWrapping(t *testing.T) {
	inner := Unrecoverable(errors.New("usage limit exceeded"))
	wrapped := fmt.Errorf("stage one failed: %w", inner)

	assert.True(t, IsUnrecoverable(wrapped))
}

func TestIsUnrecoverablePlainError(t *testing.T) {
	assert.False(t, IsUnrecoverable(errors.New("transient network error")))
}
