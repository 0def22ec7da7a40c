package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the floodgate library

var (
	// ErrClosed indicates that an operation was attempted on a closed resource
	ErrClosed = errors.New("resource is closed")

	// ErrCanceled indicates that an operation stopped because its context was done
	ErrCanceled = errors.New("operation canceled")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidArgument indicates a value outside the range an operation accepts
	ErrInvalidArgument = errors.New("invalid argument")
)

// ValidationError describes a configuration value that was rejected.
// It always unwraps to ErrInvalidConfiguration.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError without a hint.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a remediation hint and returns the same error for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap returns ErrInvalidConfiguration.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// ArgumentError reports a value outside the half-open range [Min, Max).
// It always unwraps to ErrInvalidArgument.
type ArgumentError struct {
	Module string
	Field  string
	Value  int
	Min    int
	Max    int
}

// NewArgumentError creates an ArgumentError for value against [min, max).
func NewArgumentError(module, field string, value, min, max int) *ArgumentError {
	return &ArgumentError{
		Module: module,
		Field:  field,
		Value:  value,
		Min:    min,
		Max:    max,
	}
}

// Bound returns the limit that Value violated.
func (e *ArgumentError) Bound() int {
	if e.Value < e.Min {
		return e.Min
	}
	return e.Max
}

func (e *ArgumentError) Error() string {
	if e.Value < e.Min {
		return fmt.Sprintf("%s: %s=%d must be >= %d", e.Module, e.Field, e.Value, e.Min)
	}
	return fmt.Sprintf("%s: %s=%d must be < %d", e.Module, e.Field, e.Value, e.Max)
}

// Unwrap returns ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// OperationError wraps a failure of a named operation.
type OperationError struct {
	Module    string
	Operation string
	Cause     error
	Context   string
}

// NewOperationError creates an OperationError for the given cause.
func NewOperationError(module, operation string, cause error) *OperationError {
	return &OperationError{
		Module:    module,
		Operation: operation,
		Cause:     cause,
	}
}

// WithContext attaches extra detail and returns the same error for chaining.
func (e *OperationError) WithContext(context string) *OperationError {
	e.Context = context
	return e
}

func (e *OperationError) Error() string {
	msg := fmt.Sprintf("%s.%s failed: %v", e.Module, e.Operation, e.Cause)
	if e.Context != "" {
		msg += " (" + e.Context + ")"
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *OperationError) Unwrap() error {
	return e.Cause
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsArgumentError reports whether err is or wraps an *ArgumentError.
func IsArgumentError(err error) bool {
	var a *ArgumentError
	return errors.As(err, &a)
}

// IsCanceled returns true if the error was caused by a done context.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}
