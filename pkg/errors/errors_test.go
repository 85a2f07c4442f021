package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationKeepsEveryDetail(t *testing.T) {
	err := Validation([]string{"Name must be at least 2 characters long", "Invalid email format"})

	assert.True(t, IsValidation(err))
	assert.Equal(t, "Name must be at least 2 characters long, Invalid email format", err.Detail())
	assert.Contains(t, err.Error(), "VALIDATION_ERROR")
	assert.Contains(t, err.Error(), "Invalid email format")
}

func TestCodeOfUnwrapsChains(t *testing.T) {
	base := Storage(fs.ErrPermission)
	wrapped := fmt.Errorf("submit contact: %w", base)

	assert.True(t, IsStorage(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.True(t, stderrors.Is(wrapped, fs.ErrPermission))

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Same(t, base, appErr)
}

func TestCodeOfForeignError(t *testing.T) {
	err := stderrors.New("boom")

	assert.Equal(t, ErrCodeInternalError, CodeOf(err))
	assert.False(t, IsNotFound(err))
	assert.False(t, IsDuplicate(nil))
}

func TestNewAndWrap(t *testing.T) {
	assert.True(t, IsDuplicate(New(ErrCodeDuplicate, "Email already subscribed")))
	assert.True(t, IsNotFound(New(ErrCodeNotFound, "review not found")))
	assert.Equal(t, "NOT_FOUND: review not found", New(ErrCodeNotFound, "review not found").Error())

	w := Wrap(ErrCodeInternalError, "internal error", fs.ErrNotExist)
	assert.Equal(t, "INTERNAL_ERROR: internal error (file does not exist)", w.Error())
}
