package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelMatching(t *testing.T) {
	assert.ErrorIs(t, Validation("text", "text is required"), ErrValidation)
	assert.ErrorIs(t, Conflict("username taken"), ErrConflict)
	assert.ErrorIs(t, Auth("not the owner"), ErrAuth)
	assert.ErrorIs(t, NotFound("user", 42), ErrNotFound)
}

func TestWrappedSentinelMatching(t *testing.T) {
	err := fmt.Errorf("signing up: %w", Conflict("email taken"))
	assert.ErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestAppErrorMessageAndField(t *testing.T) {
	err := Validation("email", "email is required")
	assert.Equal(t, "email is required", err.Error())
	assert.Equal(t, "email", err.Field)

	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
}
