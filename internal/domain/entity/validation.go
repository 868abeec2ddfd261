package entity

import textutil "text-api/internal/utils/text"

// ValidateNonBlank rejects values made only of whitespace, using the same
// separator set as word counting.
// The returned *ValidationError wraps ErrEmptyInput.
func ValidateNonBlank(field, value string) error {
	if textutil.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "must not be empty", Err: ErrEmptyInput}
	}
	return nil
}

// ValidateRequired rejects a missing (nil) value.
// The returned *ValidationError wraps ErrMissingField.
func ValidateRequired(field string, value *string) error {
	if value == nil {
		return &ValidationError{Field: field, Message: "is required", Err: ErrMissingField}
	}
	return nil
}
