package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrActivityNotFound))
	assert.True(t, IsNotFound(ErrRecordNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrActivityNotFound)))
	assert.False(t, IsNotFound(ErrStorageCorrupt))
	assert.False(t, IsNotFound(nil))
}

func TestUserErrorMessage(t *testing.T) {
	plain := NewUserError("Activity name cannot be empty", "Provide a non-empty name")
	assert.Equal(t, "Activity name cannot be empty", plain.Error())

	withField := NewUserErrorWithField("color", "green", "Invalid color format", "Use hex format")
	assert.Equal(t, "Invalid color format: 'green'", withField.Error())
	assert.Equal(t, "color", withField.Field)
	assert.Equal(t, "Use hex format", withField.Suggestion)
}

func TestSystemErrorUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := NewSystemErrorWithOp("save activities", "database write failed", cause)

	assert.Equal(t, "database write failed during save activities", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewSystemError("database write failed", cause)
	assert.Equal(t, "database write failed", bare.Error())
}

func TestCorruption(t *testing.T) {
	cause := stderrors.New("invalid character '{'")
	err := Corruption("activities", cause)

	assert.ErrorIs(t, err, ErrStorageCorrupt)

	var sysErr *SystemError
	require.ErrorAs(t, err, &sysErr)
	assert.Contains(t, sysErr.Message, "activities")
}
