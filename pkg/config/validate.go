package config

import (
	"fmt"
	"time"
)

// ValidatePositiveDuration rejects zero and negative durations.
//
// Example:
//
//	if err := ValidatePositiveDuration(timeout); err != nil {
//	    return fmt.Errorf("invalid timeout: %w", err)
//	}
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}

// ValidateDurationRange checks min <= d <= max.
func ValidateDurationRange(d, min, max time.Duration) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%v) cannot be greater than max (%v)", min, max)
	}
	if d < min {
		return fmt.Errorf("duration %v is below minimum %v", d, min)
	}
	if d > max {
		return fmt.Errorf("duration %v exceeds maximum %v", d, max)
	}
	return nil
}

// ValidateMinInt checks n >= min.
func ValidateMinInt(n, min int64) error {
	if n < min {
		return fmt.Errorf("value must be at least %d, got %d", min, n)
	}
	return nil
}

// ValidateFloatRange checks min <= f <= max.
func ValidateFloatRange(f, min, max float64) error {
	if !(f >= min && f <= max) {
		return fmt.Errorf("value must be between %g and %g, got %g", min, max, f)
	}
	return nil
}

// ValidatePositiveFloat rejects zero, negative and NaN values.
func ValidatePositiveFloat(f float64) error {
	if !(f > 0) {
		return fmt.Errorf("value must be positive, got %g", f)
	}
	return nil
}
