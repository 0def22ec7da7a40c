package validation

import (
	stderrors "errors"
	"math"
	"testing"
	"time"

	"github.com/vnykmshr/floodgate/pkg/common/errors"
)

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		wantError bool
	}{
		{"lower bound", 0, false},
		{"inside", 128, false},
		{"last valid", 254, false},
		{"below", -1, true},
		{"upper bound", 255, true},
		{"far above", 1000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange("budget", "address", tt.value, 0, 255)

			if tt.wantError {
				if !errors.IsArgumentError(err) {
					t.Fatalf("expected ArgumentError, got %T", err)
				}
				var argErr *errors.ArgumentError
				stderrors.As(err, &argErr)
				if argErr.Value != tt.value || argErr.Min != 0 || argErr.Max != 255 {
					t.Errorf("unexpected error details: %+v", argErr)
				}
			} else if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		wantError bool
	}{
		{"positive value", 10, false},
		{"one", 1, false},
		{"zero value", 0, true},
		{"negative value", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositive("test", "runs", tt.value)

			if tt.wantError {
				if !errors.IsValidationError(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			} else if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateNonNegative(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		wantError bool
	}{
		{"positive value", 10.5, false},
		{"zero value", 0.0, false},
		{"negative value", -1.5, true},
		{"small negative", -0.001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNonNegative("test", "escape_cost", tt.value)

			if tt.wantError {
				if !errors.IsValidationError(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			} else if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateProbability(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		wantError bool
	}{
		{"never", 0, false},
		{"reference", 0.6, false},
		{"always", 1, false},
		{"negative", -0.1, true},
		{"above one", 1.01, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProbability("simulation", "hearing_probability", tt.value)

			if tt.wantError {
				if !errors.IsValidationError(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			} else if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateWholeSeconds(t *testing.T) {
	tests := []struct {
		name      string
		value     time.Duration
		wantError bool
	}{
		{"half hour", 30 * time.Minute, false},
		{"one second", time.Second, false},
		{"zero", 0, true},
		{"negative", -time.Hour, true},
		{"fractional", 1500 * time.Millisecond, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWholeSeconds("simulation", "step", tt.value)

			if tt.wantError {
				if !errors.IsValidationError(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			} else if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidationErrorWrapping(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want error
	}{
		{"ValidateRange", ValidateRange("test", "field", -1, 0, 10), errors.ErrInvalidArgument},
		{"ValidatePositive", ValidatePositive("test", "field", -1), errors.ErrInvalidConfiguration},
		{"ValidateNonNegative", ValidateNonNegative("test", "field", -1.0), errors.ErrInvalidConfiguration},
		{"ValidateProbability", ValidateProbability("test", "field", 2), errors.ErrInvalidConfiguration},
		{"ValidateWholeSeconds", ValidateWholeSeconds("test", "field", 0), errors.ErrInvalidConfiguration},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !stderrors.Is(tc.err, tc.want) {
				t.Errorf("%v should wrap %v", tc.err, tc.want)
			}
		})
	}
}
