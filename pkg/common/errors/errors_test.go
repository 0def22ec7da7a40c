package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestCommonErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrClosed", ErrClosed, "resource is closed"},
		{"ErrCanceled", ErrCanceled, "operation canceled"},
		{"ErrInvalidConfiguration", ErrInvalidConfiguration, "invalid configuration"},
		{"ErrInvalidArgument", ErrInvalidArgument, "invalid argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "without hint",
			err: &ValidationError{
				Module: "simulation",
				Field:  "runs",
				Value:  0,
				Reason: "must be positive",
			},
			want: "simulation: invalid runs=0 (must be positive)",
		},
		{
			name: "with hint",
			err: &ValidationError{
				Module: "simulation",
				Field:  "hearing_probability",
				Value:  1.5,
				Reason: "must be within [0, 1]",
				Hint:   "use 0.6 for the reference mesh",
			},
			want: "simulation: invalid hearing_probability=1.5 (must be within [0, 1]) - use 0.6 for the reference mesh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	verr := NewValidationError("test", "field", 0, "test").WithHint("hint")

	if !errors.Is(verr, ErrInvalidConfiguration) {
		t.Error("ValidationError should wrap ErrInvalidConfiguration")
	}
	if errors.Is(verr, ErrInvalidArgument) {
		t.Error("ValidationError should not wrap ErrInvalidArgument")
	}
	if verr.Hint != "hint" {
		t.Errorf("Hint = %q, want %q", verr.Hint, "hint")
	}
}

func TestArgumentError(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		wantBound int
		wantMsg   string
	}{
		{"below range", -1, 0, "budget: address=-1 must be >= 0"},
		{"at upper bound", 255, 255, "budget: address=255 must be < 255"},
		{"above upper bound", 300, 255, "budget: address=300 must be < 255"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewArgumentError("budget", "address", tt.value, 0, 255)
			if got := err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := err.Bound(); got != tt.wantBound {
				t.Errorf("Bound() = %d, want %d", got, tt.wantBound)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Error("ArgumentError should wrap ErrInvalidArgument")
			}
		})
	}
}

func TestIsArgumentError(t *testing.T) {
	wrapped := fmt.Errorf("constructing mesh: %w", NewArgumentError("budget", "capacity", 255, 0, 255))

	if !IsArgumentError(wrapped) {
		t.Error("IsArgumentError should see through wrapping")
	}
	if IsArgumentError(NewValidationError("m", "f", 1, "r")) {
		t.Error("ValidationError is not an ArgumentError")
	}
	if IsArgumentError(nil) {
		t.Error("nil is not an ArgumentError")
	}

	var argErr *ArgumentError
	if !errors.As(wrapped, &argErr) {
		t.Fatal("errors.As should extract ArgumentError")
	}
	if argErr.Field != "capacity" || argErr.Value != 255 {
		t.Errorf("got field=%s value=%d", argErr.Field, argErr.Value)
	}
}

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{
			name: "without context",
			err: &OperationError{
				Module:    "simulation",
				Operation: "Run",
				Cause:     errors.New("boom"),
			},
			want: "simulation.Run failed: boom",
		},
		{
			name: "with context",
			err: &OperationError{
				Module:    "simulation",
				Operation: "Run",
				Cause:     errors.New("boom"),
				Context:   "run 2 at step 40",
			},
			want: "simulation.Run failed: boom (run 2 at step 40)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperationError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("%w: %w", ErrCanceled, context.Canceled)
	opErr := NewOperationError("simulation", "Run", cause).WithContext("step 3")

	if !errors.Is(opErr, context.Canceled) {
		t.Error("OperationError should wrap context.Canceled")
	}
	if !IsCanceled(opErr) {
		t.Error("IsCanceled should report true")
	}
	if IsCanceled(errors.New("other")) {
		t.Error("IsCanceled should report false for unrelated errors")
	}
}
