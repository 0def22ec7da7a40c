package simulation

import (
	"time"

	gferrors "github.com/vnykmshr/floodgate/pkg/common/errors"
	"github.com/vnykmshr/floodgate/pkg/common/validation"
	"github.com/vnykmshr/floodgate/pkg/ratelimit/budget"
)

const module = "simulation"

// Reference scenario values.
const (
	DefaultCapacity           = 3
	DefaultResetPeriod        = 12 * time.Hour
	DefaultBadActors          = 0
	DefaultHearingProbability = 0.6
	DefaultDuration           = 30 * 24 * time.Hour
	DefaultStepDuration       = 30 * time.Minute
	DefaultGoodActorPeriod    = 12 * time.Hour
	DefaultEscapeCost         = 15
	DefaultRuns               = 3
)

// DefaultRepeaters returns the ten repeater addresses of the reference mesh.
func DefaultRepeaters() []uint8 {
	return []uint8{0xB1, 0xB2, 0xB3, 0xB4, 0xB5, 0xB6, 0xB7, 0xB8, 0xB9, 0xBA}
}

// Config describes one simulation scenario.
type Config struct {
	// Capacity is the per-originator budget each repeater grants per window.
	Capacity int

	// ResetPeriod is the simulated time between budget resets. It is rounded
	// up to a whole number of steps.
	ResetPeriod time.Duration

	// ResetSchedule, when set, is a cron expression (robfig/cron standard
	// syntax, e.g. "@every 6h" or "0 */8 * * *") evaluated on the simulated
	// clock. It replaces ResetPeriod.
	ResetSchedule string

	// BadActors is how many repeaters at the front of Repeaters transmit on
	// every step. Values past the end make every repeater a bad actor.
	BadActors int

	// HearingProbability is the chance that a listener hears an advertisement.
	HearingProbability float64

	// Duration is the simulated time covered by one run.
	Duration time.Duration

	// StepDuration is the simulated time of one loop; bad actors advertise
	// once per step. Must be a whole number of seconds.
	StepDuration time.Duration

	// GoodActorPeriod is how often well-behaved repeaters advertise.
	GoodActorPeriod time.Duration

	// EscapeCost is the average number of extra packets an advertisement
	// costs once it escapes the local cluster.
	EscapeCost int

	// Repeaters lists the mesh addresses in order. Each must be below 255.
	Repeaters []uint8

	// Runs is the number of independent runs per invocation.
	Runs int

	// Seed seeds run i with Seed+i.
	Seed uint64

	// Parallelism bounds concurrent runs. Zero picks min(Runs, GOMAXPROCS).
	Parallelism int
}

// DefaultConfig returns the reference scenario.
func DefaultConfig() Config {
	return Config{
		Capacity:           DefaultCapacity,
		ResetPeriod:        DefaultResetPeriod,
		BadActors:          DefaultBadActors,
		HearingProbability: DefaultHearingProbability,
		Duration:           DefaultDuration,
		StepDuration:       DefaultStepDuration,
		GoodActorPeriod:    DefaultGoodActorPeriod,
		EscapeCost:         DefaultEscapeCost,
		Repeaters:          DefaultRepeaters(),
		Runs:               DefaultRuns,
	}
}

// Validate checks every field. Capacity violations are reported as
// *errors.ArgumentError, everything else as *errors.ValidationError.
func (c Config) Validate() error {
	if err := validation.ValidateRange("budget", "capacity", c.Capacity, 0, budget.Bound); err != nil {
		return err
	}
	if err := validation.ValidateWholeSeconds(module, "step_duration", c.StepDuration); err != nil {
		return err
	}
	if c.ResetSchedule != "" {
		if _, err := parseSchedule(c.ResetSchedule); err != nil {
			return gferrors.NewValidationError(module, "reset_schedule", c.ResetSchedule, err.Error()).
				WithHint(`use a standard cron expression or a descriptor such as "@every 12h"`)
		}
	} else if err := validation.ValidateWholeSeconds(module, "reset_period", c.ResetPeriod); err != nil {
		return err
	}
	if err := validation.ValidateNonNegative(module, "bad_actors", float64(c.BadActors)); err != nil {
		return err
	}
	if err := validation.ValidateProbability(module, "hearing_probability", c.HearingProbability); err != nil {
		return err
	}
	if c.Duration <= 0 {
		return gferrors.NewValidationError(module, "duration", c.Duration, "must be positive")
	}
	if c.GoodActorPeriod <= 0 {
		return gferrors.NewValidationError(module, "good_actor_period", c.GoodActorPeriod, "must be positive")
	}
	if err := validation.ValidateNonNegative(module, "escape_cost", float64(c.EscapeCost)); err != nil {
		return err
	}
	if err := validateRepeaters(c.Repeaters); err != nil {
		return err
	}
	if err := validation.ValidatePositive(module, "runs", c.Runs); err != nil {
		return err
	}
	return validation.ValidateNonNegative(module, "parallelism", float64(c.Parallelism))
}

func validateRepeaters(addresses []uint8) error {
	if len(addresses) == 0 {
		return gferrors.NewValidationError(module, "repeaters", addresses, "cannot be empty").
			WithHint("list at least one repeater address")
	}

	var seen [budget.AddressSpace]bool
	for _, addr := range addresses {
		if int(addr) >= budget.Bound {
			return gferrors.NewArgumentError(module, "repeater", int(addr), 0, budget.Bound)
		}
		if seen[addr] {
			return gferrors.NewValidationError(module, "repeaters", addr, "duplicate address")
		}
		seen[addr] = true
	}
	return nil
}

// FinalStep is the last loop index; loops run 0..FinalStep inclusive.
func (c Config) FinalStep() int {
	return stepsIn(c.Duration, c.StepDuration)
}

// ResetSteps is the reset period expressed in whole steps.
func (c Config) ResetSteps() int {
	return stepsIn(c.ResetPeriod, c.StepDuration)
}

// NormalSteps is the good-actor transmit period in whole steps, at least 1.
func (c Config) NormalSteps() int {
	return max(1, stepsIn(c.GoodActorPeriod, c.StepDuration))
}

// stepsIn returns ceil(d / step).
func stepsIn(d, step time.Duration) int {
	if step <= 0 || d <= 0 {
		return 0
	}
	return int((d + step - 1) / step)
}
