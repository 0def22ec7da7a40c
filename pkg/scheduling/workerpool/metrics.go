package workerpool

import (
	"github.com/vnykmshr/floodgate/pkg/metrics"
)

// NewWithMetrics creates a worker pool that reports its size, activity and
// task outcomes under pool_name=name. Hooks already set on config still run.
// A nil registry falls back to metrics.DefaultRegistry.
func NewWithMetrics(config Config, name string, registry *metrics.Registry) (Pool, error) {
	if registry == nil {
		registry = metrics.DefaultRegistry
	}

	var pool Pool
	userStart := config.OnTaskStart
	userComplete := config.OnTaskComplete

	config.OnTaskStart = func(workerID int, task Task) {
		registry.WorkerPoolActive.WithLabelValues(name).Set(float64(pool.ActiveWorkers()))
		registry.WorkerPoolQueued.WithLabelValues(name).Set(float64(pool.QueueSize()))
		if userStart != nil {
			userStart(workerID, task)
		}
	}

	config.OnTaskComplete = func(workerID int, result Result) {
		registry.TaskExecutionDuration.WithLabelValues(name).Observe(result.Duration.Seconds())
		if result.Error != nil {
			registry.TasksFailed.WithLabelValues(name).Inc()
		} else {
			registry.TasksCompleted.WithLabelValues(name).Inc()
		}
		registry.WorkerPoolActive.WithLabelValues(name).Set(float64(pool.ActiveWorkers()))
		if userComplete != nil {
			userComplete(workerID, result)
		}
	}

	p, err := NewWithConfig(config)
	if err != nil {
		return nil, err
	}
	pool = p

	registry.WorkerPoolSize.WithLabelValues(name).Set(float64(config.WorkerCount))
	return pool, nil
}
