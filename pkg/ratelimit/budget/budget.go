package budget

import (
	"github.com/vnykmshr/floodgate/pkg/common/validation"
)

const (
	// AddressSpace is the number of originator addresses a budget tracks.
	AddressSpace = 256

	// Bound is the exclusive upper bound for capacities and addresses.
	// 255 is reserved, so valid values are 0..254.
	Bound = 255
)

// Limiter enforces "at most Capacity takes per address between resets".
type Limiter interface {
	// TryTake consumes one token for address. It reports false, without
	// mutating anything, once the address has no tokens left. An address
	// outside [0, Bound) returns an *errors.ArgumentError.
	TryTake(address int) (bool, error)

	// Reset restores every address to Capacity tokens.
	Reset()

	// Tokens returns the tokens left for address.
	Tokens(address int) (int, error)

	// Capacity returns the number of tokens granted per reset.
	Capacity() int
}

// UsageBudget is a fixed-window token budget keyed by an 8-bit address.
// Each address gets capacity tokens; Reset starts a new window.
//
// UsageBudget is not safe for concurrent use. A simulation run owns its
// budgets and mutates them from a single goroutine.
type UsageBudget struct {
	capacity uint8
	tokens   [AddressSpace]uint8
}

// New creates a budget granting capacity tokens per address per window.
// Capacity must satisfy 0 <= capacity < Bound.
func New(capacity int) (*UsageBudget, error) {
	if err := validation.ValidateRange("budget", "capacity", capacity, 0, Bound); err != nil {
		return nil, err
	}

	b := &UsageBudget{capacity: uint8(capacity)}
	b.Reset()
	return b, nil
}

// Reset restores every address back to the full capacity.
func (b *UsageBudget) Reset() {
	for i := range b.tokens {
		b.tokens[i] = b.capacity
	}
}

// TryTake takes one token for address. False means there are no tokens left
// in this window.
func (b *UsageBudget) TryTake(address int) (bool, error) {
	if err := checkAddress(address); err != nil {
		return false, err
	}

	if b.tokens[address] > 0 {
		b.tokens[address]--
		return true, nil
	}
	return false, nil
}

// Tokens returns the tokens left for address in the current window.
func (b *UsageBudget) Tokens(address int) (int, error) {
	if err := checkAddress(address); err != nil {
		return 0, err
	}
	return int(b.tokens[address]), nil
}

// Capacity returns the number of tokens granted per address per window.
func (b *UsageBudget) Capacity() int {
	return int(b.capacity)
}

func checkAddress(address int) error {
	return validation.ValidateRange("budget", "address", address, 0, Bound)
}
