package simulation

import (
	"github.com/vnykmshr/floodgate/pkg/ratelimit/budget"
)

// Repeater is one mesh node and the budget it applies to advertisements it
// repeats for other originators. The budget is keyed by the originator.
type Repeater struct {
	Address  uint8
	BadActor bool
	Budget   budget.Limiter
}

// Mesh is the fixed set of repeaters of one run. Positions and budgets are
// assigned at construction and never change; only budget counters do.
type Mesh struct {
	repeaters []Repeater
}

// WrapFunc lets callers decorate each repeater's budget, e.g. with metrics.
type WrapFunc func(address uint8, limiter budget.Limiter) budget.Limiter

// NewMesh builds a mesh with one fresh budget of capacity per address. The
// first badActors addresses are bad actors.
func NewMesh(addresses []uint8, badActors, capacity int, wrap WrapFunc) (*Mesh, error) {
	if err := validateRepeaters(addresses); err != nil {
		return nil, err
	}

	repeaters := make([]Repeater, len(addresses))
	for i, addr := range addresses {
		b, err := budget.New(capacity)
		if err != nil {
			return nil, err
		}

		var limiter budget.Limiter = b
		if wrap != nil {
			limiter = wrap(addr, b)
		}

		repeaters[i] = Repeater{
			Address:  addr,
			BadActor: i < badActors,
			Budget:   limiter,
		}
	}

	return &Mesh{repeaters: repeaters}, nil
}

// Len returns the number of repeaters.
func (m *Mesh) Len() int {
	return len(m.repeaters)
}

// Repeater returns the repeater at position i.
func (m *Mesh) Repeater(i int) Repeater {
	return m.repeaters[i]
}

// Reset starts a new window on every repeater's budget.
func (m *Mesh) Reset() {
	for i := range m.repeaters {
		m.repeaters[i].Budget.Reset()
	}
}

// FirstGoodActor returns the address of the first well-behaved repeater.
// ok is false when every repeater is a bad actor.
func (m *Mesh) FirstGoodActor() (address uint8, ok bool) {
	for _, r := range m.repeaters {
		if !r.BadActor {
			return r.Address, true
		}
	}
	return 0, false
}
