package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("scansion[0]", "stress pattern is empty")

	assert.Equal(t, "validation: scansion[0]: stress pattern is empty", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "scansion[0]", Message: "stress pattern is empty"},
		{Field: "scansion[3]", Message: "stress pattern may only contain '/' and 'u': /x"},
	})

	assert.Equal(t, "validation: 2 errors", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
	assert.Len(t, err.Errors, 2)
}

func TestValidationError_As(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("record: %w", NewValidationError("scansion[1]", "bad"))

	var ve *ValidationError
	require.ErrorAs(t, wrapped, &ve)
	assert.Equal(t, "scansion[1]", ve.Errors[0].Field)
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotFound, ErrAlreadyExists, ErrValidation,
		ErrMisalignedScansion, ErrUnknownAlgorithm,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.False(t, errors.Is(a, b), "sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
