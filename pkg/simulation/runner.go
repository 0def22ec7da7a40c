package simulation

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/vnykmshr/floodgate/pkg/scheduling/workerpool"
)

// RunAll executes Runs independent runs on a worker pool and returns their
// reports indexed by run number. Runs share nothing, so the result does not
// depend on Parallelism.
func (s *Simulator) RunAll(ctx context.Context) ([]*Report, error) {
	runs := s.config.Runs
	workers := min(s.config.Parallelism, runs)
	if workers == 0 {
		workers = min(runs, runtime.GOMAXPROCS(0))
	}

	config := workerpool.Config{
		WorkerCount:     workers,
		QueueSize:       runs,
		BufferedResults: true,
	}

	var (
		pool workerpool.Pool
		err  error
	)
	if s.registry != nil {
		pool, err = workerpool.NewWithMetrics(config, "simulation", s.registry)
	} else {
		pool, err = workerpool.NewWithConfig(config)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Dispatching simulation runs",
		zap.Int("runs", runs),
		zap.Int("workers", workers))

	reports := make([]*Report, runs)
	var errs []error
	for i := 0; i < runs; i++ {
		run := i
		task := workerpool.TaskFunc(func(ctx context.Context) error {
			r, err := s.Run(ctx, run, nil)
			if err != nil {
				return err
			}
			reports[run] = r
			return nil
		})
		if err := pool.SubmitWithContext(ctx, task); err != nil {
			errs = append(errs, fmt.Errorf("submit run %d: %w", run, err))
			break
		}
	}

	<-pool.Shutdown()
	for result := range pool.Results() {
		if result.Error != nil {
			errs = append(errs, result.Error)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return reports, nil
}
