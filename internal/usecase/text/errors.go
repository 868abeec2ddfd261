// Package text provides the text analysis use cases behind the HTTP
// endpoints. It validates input, delegates the computation to the analyzer
// primitives and records spans and business metrics for every call.
package text

import (
	"errors"

	"text-api/internal/domain/entity"
)

// validationReason maps a validation failure to a stable metrics label.
func validationReason(err error) string {
	switch {
	case errors.Is(err, entity.ErrEmptyInput):
		return "empty"
	case errors.Is(err, entity.ErrMissingField):
		return "missing"
	default:
		return "invalid"
	}
}
