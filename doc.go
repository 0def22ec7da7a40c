/*
Package floodgate models fixed-window usage budgets for advertisement
flooding in mesh networks and measures how much traffic they save.

Rate Limiting (pkg/ratelimit):
  - budget: Per-address token budget with explicit window resets

Simulation (pkg/simulation):
  - Time-stepped propagation of advertisements across a mesh of repeaters
  - Counterfactual accounting of what an unlimited mesh would transmit
  - Parallel independent runs and summary statistics

Task Scheduling (pkg/scheduling):
  - workerpool: Background task processing

Metrics (pkg/metrics):
  - Prometheus collectors for budgets, runs and worker pools

Example usage:

	import (
		"github.com/vnykmshr/floodgate/pkg/simulation"
	)

	config := simulation.DefaultConfig()
	config.BadActors = 2

	sim, _ := simulation.New(config)
	reports, _ := sim.RunAll(ctx)
	summary := simulation.Summarize(reports)

The floodsim command (cmd/floodsim) wraps the same API for the terminal.
*/
package floodgate
