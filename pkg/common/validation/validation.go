// Package validation provides common validation utilities for the floodgate library.
package validation

import (
	"math"
	"time"

	gferrors "github.com/vnykmshr/floodgate/pkg/common/errors"
)

// ValidateRange validates that value lies in the half-open range [min, max).
// Returns an ArgumentError carrying the offending value and both bounds.
func ValidateRange(module, field string, value, min, max int) error {
	if value < min || value >= max {
		return gferrors.NewArgumentError(module, field, value, min, max)
	}
	return nil
}

// ValidatePositive validates that an integer value is positive (> 0).
// Returns a ValidationError if the value is not positive.
func ValidatePositive(module, field string, value int) error {
	if value <= 0 {
		return gferrors.NewValidationError(module, field, value, "must be positive").
			WithHint("value must be greater than 0")
	}
	return nil
}

// ValidateNonNegative validates that a numeric value is non-negative (>= 0).
// Returns a ValidationError if the value is negative.
func ValidateNonNegative(module, field string, value float64) error {
	if value < 0 {
		return gferrors.NewValidationError(module, field, value, "cannot be negative").
			WithHint("use 0 or a positive value")
	}
	return nil
}

// ValidateProbability validates that value is a probability in [0, 1].
func ValidateProbability(module, field string, value float64) error {
	if math.IsNaN(value) || value < 0 || value > 1 {
		return gferrors.NewValidationError(module, field, value, "must be within [0, 1]").
			WithHint("0 never succeeds, 1 always succeeds")
	}
	return nil
}

// ValidateWholeSeconds validates that d is positive and a whole number of seconds.
func ValidateWholeSeconds(module, field string, d time.Duration) error {
	if d <= 0 {
		return gferrors.NewValidationError(module, field, d, "must be positive").
			WithHint("durations are expressed like 30m or 12h")
	}
	if d%time.Second != 0 {
		return gferrors.NewValidationError(module, field, d, "must be a whole number of seconds")
	}
	return nil
}
