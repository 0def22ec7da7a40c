package simulation

import (
	"math/rand/v2"
)

// Source supplies uniform draws in [0, 1) for the hearing decision.
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic PCG source for seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
