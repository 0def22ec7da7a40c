// Package metrics provides Prometheus instrumentation for floodgate components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for floodgate components.
type Registry struct {
	// Rate Limiting Metrics
	RateLimitRequests *prometheus.CounterVec
	RateLimitAllowed  *prometheus.CounterVec
	RateLimitDenied   *prometheus.CounterVec
	RateLimitResets   *prometheus.CounterVec
	RateLimitTokens   *prometheus.GaugeVec

	// Simulation Metrics
	SimulationAdverts     *prometheus.CounterVec
	SimulationSteps       *prometheus.CounterVec
	SimulationReduction   *prometheus.GaugeVec
	SimulationRunDuration *prometheus.HistogramVec

	// Worker Pool Metrics
	WorkerPoolSize        *prometheus.GaugeVec
	WorkerPoolActive      *prometheus.GaugeVec
	WorkerPoolQueued      *prometheus.GaugeVec
	TasksCompleted        *prometheus.CounterVec
	TasksFailed           *prometheus.CounterVec
	TaskExecutionDuration *prometheus.HistogramVec
}

// DefaultRegistry is the default metrics registry used by floodgate components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer
// and the default namespace.
func NewRegistry(reg prometheus.Registerer) *Registry {
	return New(Config{Enabled: true, Registry: reg})
}

// New creates a metrics registry from config. Collectors are registered once;
// registering two Registries against the same registerer panics.
func New(config Config) *Registry {
	reg := config.Registry
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	ns := config.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	factory := promauto.With(reg)

	return &Registry{
		RateLimitRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "ratelimit",
				Name:        "requests_total",
				Help:        "Total number of rate limit requests",
				ConstLabels: config.Labels,
			},
			[]string{"limiter_type", "limiter_name"},
		),

		RateLimitAllowed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "ratelimit",
				Name:        "allowed_total",
				Help:        "Total number of allowed requests",
				ConstLabels: config.Labels,
			},
			[]string{"limiter_type", "limiter_name"},
		),

		RateLimitDenied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "ratelimit",
				Name:        "denied_total",
				Help:        "Total number of denied requests",
				ConstLabels: config.Labels,
			},
			[]string{"limiter_type", "limiter_name"},
		),

		RateLimitResets: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "ratelimit",
				Name:        "resets_total",
				Help:        "Total number of window resets",
				ConstLabels: config.Labels,
			},
			[]string{"limiter_type", "limiter_name"},
		),

		RateLimitTokens: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   ns,
				Subsystem:   "ratelimit",
				Name:        "tokens_available",
				Help:        "Number of tokens left for the most recently checked key",
				ConstLabels: config.Labels,
			},
			[]string{"limiter_type", "limiter_name"},
		),

		SimulationAdverts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "simulation",
				Name:        "adverts_total",
				Help:        "Advertisements counted by a simulation run, by outcome",
				ConstLabels: config.Labels,
			},
			[]string{"run", "outcome"},
		),

		SimulationSteps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "simulation",
				Name:        "steps_total",
				Help:        "Simulated time steps processed",
				ConstLabels: config.Labels,
			},
			[]string{"run"},
		),

		SimulationReduction: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   ns,
				Subsystem:   "simulation",
				Name:        "reduction_ratio",
				Help:        "Relative traffic reduction of the last completed run",
				ConstLabels: config.Labels,
			},
			[]string{"run"},
		),

		SimulationRunDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   ns,
				Subsystem:   "simulation",
				Name:        "run_duration_seconds",
				Help:        "Wall-clock time spent executing a simulation run",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: config.Labels,
			},
			[]string{"run"},
		),

		WorkerPoolSize: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   ns,
				Subsystem:   "workerpool",
				Name:        "size",
				Help:        "Current worker pool size",
				ConstLabels: config.Labels,
			},
			[]string{"pool_name"},
		),

		WorkerPoolActive: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   ns,
				Subsystem:   "workerpool",
				Name:        "active_workers",
				Help:        "Number of active workers",
				ConstLabels: config.Labels,
			},
			[]string{"pool_name"},
		),

		WorkerPoolQueued: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   ns,
				Subsystem:   "workerpool",
				Name:        "queued_tasks",
				Help:        "Number of queued tasks",
				ConstLabels: config.Labels,
			},
			[]string{"pool_name"},
		),

		TasksCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "workerpool",
				Name:        "tasks_completed_total",
				Help:        "Total number of tasks completed successfully",
				ConstLabels: config.Labels,
			},
			[]string{"pool_name"},
		),

		TasksFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "workerpool",
				Name:        "tasks_failed_total",
				Help:        "Total number of tasks that failed",
				ConstLabels: config.Labels,
			},
			[]string{"pool_name"},
		),

		TaskExecutionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   ns,
				Subsystem:   "workerpool",
				Name:        "task_duration_seconds",
				Help:        "Time spent executing tasks",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: config.Labels,
			},
			[]string{"pool_name"},
		),
	}
}
