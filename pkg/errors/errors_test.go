package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/evelinastr/trainingclub/pkg/errors"
)

func TestTypeOf(t *testing.T) {
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(apperrors.NewNotFoundError("missing")))
	assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.TypeOf(apperrors.NewConflictError("dup")))
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, apperrors.TypeOf(apperrors.NewUnauthorizedError("no")))
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(apperrors.NewValidationError("bad")))

	t.Run("plain errors classify as internal", func(t *testing.T) {
		assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.TypeOf(stderrors.New("plain")))
	})

	t.Run("sees through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("outer: %w", apperrors.NewNotFoundError("missing"))
		assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(wrapped))
	})
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := apperrors.NewInternalError("write failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "write failed")
	assert.Contains(t, err.Error(), "disk full")
}
