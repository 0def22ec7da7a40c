package simulation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	gferrors "github.com/vnykmshr/floodgate/pkg/common/errors"
	"github.com/vnykmshr/floodgate/pkg/metrics"
	"github.com/vnykmshr/floodgate/pkg/ratelimit/budget"
)

// Advertisement describes what happened to one original transmission.
type Advertisement struct {
	Run        int
	Loop       int
	Advertiser uint8
	Heard      int
	Repeated   int
	Dropped    int
}

// Observer receives every advertisement of a run, in order. With parallel
// runs it may be called from several goroutines at once.
type Observer func(Advertisement)

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Simulator) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records budget and run metrics in registry.
func WithMetrics(registry *metrics.Registry) Option {
	return func(s *Simulator) {
		s.registry = registry
	}
}

// WithObserver registers fn to receive each advertisement.
func WithObserver(fn Observer) Option {
	return func(s *Simulator) {
		s.observer = fn
	}
}

// Simulator runs propagation scenarios. It holds only configuration; every
// run builds its own mesh, window and counters.
type Simulator struct {
	config   Config
	logger   *zap.Logger
	registry *metrics.Registry
	observer Observer
}

// New validates config and returns a Simulator.
func New(config Config, opts ...Option) (*Simulator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Repeaters = append([]uint8(nil), config.Repeaters...)
	s := &Simulator{
		config: config,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Config returns the validated configuration.
func (s *Simulator) Config() Config {
	c := s.config
	c.Repeaters = append([]uint8(nil), c.Repeaters...)
	return c
}

// Run executes run number run. A nil src uses NewSource(Seed+run).
// The context is checked between steps.
func (s *Simulator) Run(ctx context.Context, run int, src Source) (*Report, error) {
	cfg := s.config
	seed := cfg.Seed + uint64(run)
	if src == nil {
		src = NewSource(seed)
	}

	mesh, err := NewMesh(cfg.Repeaters, cfg.BadActors, cfg.Capacity, s.wrapBudget())
	if err != nil {
		return nil, err
	}
	window, err := NewWindow(cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	finalStep := cfg.FinalStep()
	normalSteps := cfg.NormalSteps()
	fields := []zap.Field{
		zap.Int("run", run),
		zap.Uint64("seed", seed),
		zap.Int("steps", finalStep+1),
		zap.Int("repeaters", mesh.Len()),
	}
	if addr, ok := mesh.FirstGoodActor(); ok {
		fields = append(fields, zap.String("first_good_actor", fmt.Sprintf("0x%02X", addr)))
	}
	if next := window.Next(); !next.IsZero() {
		fields = append(fields, zap.Duration("first_reset", next.Sub(Epoch)))
	}
	s.logger.Debug("Starting simulation run", fields...)

	var counters Counters
	resets := 0
	for loop := 0; loop <= finalStep; loop++ {
		if err := ctx.Err(); err != nil {
			return nil, gferrors.NewOperationError(module, "Run", fmt.Errorf("%w: %w", gferrors.ErrCanceled, err)).
				WithContext(fmt.Sprintf("run %d at step %d", run, loop))
		}

		if loop > 0 && window.Due(stepTime(loop, cfg.StepDuration)) {
			mesh.Reset()
			resets++
		}

		normalInterval := loop%normalSteps == 0
		for i := 0; i < mesh.Len(); i++ {
			advertiser := mesh.Repeater(i)
			if !normalInterval && !advertiser.BadActor {
				continue
			}

			ad, err := s.broadcast(mesh, i, src)
			if err != nil {
				return nil, gferrors.NewOperationError(module, "Run", err).
					WithContext(fmt.Sprintf("run %d at step %d", run, loop))
			}

			counters.Originals++
			counters.Repeated += ad.Repeated
			counters.Dropped += ad.Dropped
			counters.WouldRepeat += ad.Heard
			if ad.Repeated > 0 {
				counters.Escaped++
			}
			if ad.Heard > 0 {
				counters.WouldEscape++
			}

			if s.observer != nil {
				ad.Run = run
				ad.Loop = loop
				s.observer(ad)
			}
		}
	}

	report := newReport(counters, cfg.EscapeCost)
	report.Run = run
	report.Seed = seed
	report.Steps = finalStep + 1
	report.Resets = resets

	s.record(report, time.Since(start))
	s.logger.Debug("Finished simulation run",
		zap.Int("run", run),
		zap.Int("originals", counters.Originals),
		zap.Int("actual", report.Actual),
		zap.Int("counterfactual", report.Counterfactual),
		zap.Float64("reduction", report.Reduction))

	return report, nil
}

// broadcast offers advertiser i's transmission to every other repeater.
func (s *Simulator) broadcast(mesh *Mesh, i int, src Source) (Advertisement, error) {
	advertiser := mesh.Repeater(i)
	ad := Advertisement{Advertiser: advertiser.Address}

	for j := 0; j < mesh.Len(); j++ {
		if j == i {
			continue
		}
		if src.Float64() >= s.config.HearingProbability {
			continue
		}

		ad.Heard++
		ok, err := mesh.Repeater(j).Budget.TryTake(int(advertiser.Address))
		if err != nil {
			return ad, err
		}
		if ok {
			ad.Repeated++
		} else {
			ad.Dropped++
		}
	}

	return ad, nil
}

func (s *Simulator) wrapBudget() WrapFunc {
	if s.registry == nil {
		return nil
	}
	return func(address uint8, limiter budget.Limiter) budget.Limiter {
		return budget.NewWithMetrics(limiter, fmt.Sprintf("0x%02X", address), s.registry)
	}
}

func (s *Simulator) record(r *Report, elapsed time.Duration) {
	if s.registry == nil {
		return
	}

	run := strconv.Itoa(r.Run)
	adverts := s.registry.SimulationAdverts
	adverts.WithLabelValues(run, "original").Add(float64(r.Counters.Originals))
	adverts.WithLabelValues(run, "repeated").Add(float64(r.Counters.Repeated))
	adverts.WithLabelValues(run, "dropped").Add(float64(r.Counters.Dropped))
	adverts.WithLabelValues(run, "escaped").Add(float64(r.Counters.Escaped))
	adverts.WithLabelValues(run, "would_repeat").Add(float64(r.Counters.WouldRepeat))
	adverts.WithLabelValues(run, "would_escape").Add(float64(r.Counters.WouldEscape))

	s.registry.SimulationSteps.WithLabelValues(run).Add(float64(r.Steps))
	s.registry.SimulationReduction.WithLabelValues(run).Set(r.Reduction)
	s.registry.SimulationRunDuration.WithLabelValues(run).Observe(elapsed.Seconds())
}
