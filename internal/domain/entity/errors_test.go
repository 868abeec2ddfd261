package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "blank text",
			field:    "text",
			message:  "must not be empty",
			expected: "validation error on field 'text': must not be empty",
		},
		{
			name:     "missing text",
			field:    "text",
			message:  "is required",
			expected: "validation error on field 'text': is required",
		},
		{
			name:     "empty field name",
			field:    "",
			message:  "test message",
			expected: "validation error on field '': test message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{Field: tt.field, Message: tt.message}
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	err := &ValidationError{Field: "text", Message: "must not be empty", Err: ErrEmptyInput}

	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.NotErrorIs(t, err, ErrMissingField)

	wrapped := fmt.Errorf("uppercase: %w", err)
	assert.ErrorIs(t, wrapped, ErrEmptyInput)
	assert.True(t, IsValidationError(wrapped))
}

func TestValidationError_WithoutSentinel(t *testing.T) {
	err := &ValidationError{Field: "text", Message: "bad"}

	assert.Nil(t, errors.Unwrap(err))
	assert.True(t, IsValidationError(err))
	assert.False(t, IsValidationError(errors.New("plain")))
	assert.False(t, IsValidationError(nil))
}
