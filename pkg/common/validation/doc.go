// Package validation provides common validation utilities for configuration
// parameters across the floodgate library.
//
// Range checks on budget capacities and addresses return an
// errors.ArgumentError; the remaining helpers return an errors.ValidationError
// so callers can tell bad arguments from bad configuration.
package validation
