package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "bug"}
		assert.Equal(t, "bug not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "bug"}
		err2 := &NotFoundError{Entity: "bug"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "bug"}
		err2 := &NotFoundError{Entity: "test case"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to load: %w", ErrTestCaseNotFound)
		assert.True(t, errors.Is(wrapped, ErrTestCaseNotFound))
		assert.False(t, errors.Is(wrapped, ErrBugNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrProjectNotFound))
		assert.False(t, IsNotFound(ErrInvalidStatus))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "member already exists in this project", ErrMemberExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "project"}
		assert.Equal(t, "project already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrStepsStatusMismatch))
		assert.True(t, IsValidation(fmt.Errorf("wrapped: %w", ErrAssigneeNotMember)))
		assert.False(t, IsValidation(ErrBugNotFound))
	})
}

func TestAccessErrors(t *testing.T) {
	assert.True(t, IsAuthorization(ErrNotProjectMember))
	assert.True(t, IsAuthorization(ErrOnlyAdminGrantsAdmin))
	assert.True(t, IsAuthorization(ErrCannotRemoveAdmin))
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.False(t, IsAuthentication(ErrNotProjectMember))
	assert.True(t, IsConfiguration(ErrDirectoryNotConfigured))
}

func TestConflictError(t *testing.T) {
	err := fmt.Errorf("update bug: %w", NewConflictError("cannot move bug from closed to in_progress"))
	assert.True(t, IsConflict(err))
	assert.Contains(t, err.Error(), "closed to in_progress")
	assert.False(t, IsConflict(ErrInvalidStatus))
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}
