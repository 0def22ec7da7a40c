// Package metrics provides Prometheus instrumentation for floodgate components.
//
// # Overview
//
// The metrics package instruments:
//   - Usage budgets (takes, allows, denies, window resets, tokens left)
//   - Simulation runs (advertisements by outcome, steps, reduction, wall time)
//   - Worker pools (pool size, active workers, queued tasks, task outcomes)
//
// # Quick Start
//
// Build one Registry per Prometheus registerer and hand it to components:
//
//	reg := prometheus.NewRegistry()
//	m := metrics.NewRegistry(reg)
//
//	b, _ := budget.New(3)
//	limiter := budget.NewWithMetrics(b, "b1", m)
//
// Expose the registerer over HTTP with promhttp, or dump it after a batch run.
//
// # Available Metrics
//
//   - floodgate_ratelimit_requests_total{limiter_type,limiter_name}
//   - floodgate_ratelimit_allowed_total{limiter_type,limiter_name}
//   - floodgate_ratelimit_denied_total{limiter_type,limiter_name}
//   - floodgate_ratelimit_resets_total{limiter_type,limiter_name}
//   - floodgate_ratelimit_tokens_available{limiter_type,limiter_name}
//   - floodgate_simulation_adverts_total{run,outcome}
//   - floodgate_simulation_steps_total{run}
//   - floodgate_simulation_reduction_ratio{run}
//   - floodgate_simulation_run_duration_seconds{run}
//   - floodgate_workerpool_size{pool_name}
//   - floodgate_workerpool_active_workers{pool_name}
//   - floodgate_workerpool_queued_tasks{pool_name}
//   - floodgate_workerpool_tasks_completed_total{pool_name}
//   - floodgate_workerpool_tasks_failed_total{pool_name}
//   - floodgate_workerpool_task_duration_seconds{pool_name}
//
// Outcome labels on adverts_total are "original", "repeated", "dropped",
// "escaped", "would_repeat" and "would_escape".
//
// # Configuration
//
//	config := metrics.Config{
//		Enabled:   true,
//		Registry:  prometheus.NewRegistry(),
//		Namespace: "mesh",
//		Labels:    prometheus.Labels{"site": "north"},
//	}
//	m := metrics.New(config)
package metrics
