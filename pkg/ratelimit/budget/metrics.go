package budget

import (
	"github.com/vnykmshr/floodgate/pkg/metrics"
)

const limiterType = "usage_budget"

// MetricsBudget wraps a Limiter with Prometheus metrics collection.
type MetricsBudget struct {
	limiter  Limiter
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics wraps limiter so that every take and reset is recorded
// under limiter_name=name. A nil registry falls back to metrics.DefaultRegistry.
func NewWithMetrics(limiter Limiter, name string, registry *metrics.Registry) *MetricsBudget {
	if registry == nil {
		registry = metrics.DefaultRegistry
	}
	return &MetricsBudget{
		limiter:  limiter,
		name:     name,
		registry: registry,
		enabled:  true,
	}
}

// TryTake takes one token for address and records the outcome.
func (mb *MetricsBudget) TryTake(address int) (bool, error) {
	ok, err := mb.limiter.TryTake(address)
	if err != nil || !mb.enabled {
		return ok, err
	}

	mb.registry.RateLimitRequests.WithLabelValues(limiterType, mb.name).Inc()
	if ok {
		mb.registry.RateLimitAllowed.WithLabelValues(limiterType, mb.name).Inc()
	} else {
		mb.registry.RateLimitDenied.WithLabelValues(limiterType, mb.name).Inc()
	}

	if left, err := mb.limiter.Tokens(address); err == nil {
		mb.registry.RateLimitTokens.WithLabelValues(limiterType, mb.name).Set(float64(left))
	}

	return ok, nil
}

// Reset restores the wrapped budget and counts the window rollover.
func (mb *MetricsBudget) Reset() {
	mb.limiter.Reset()

	if mb.enabled {
		mb.registry.RateLimitResets.WithLabelValues(limiterType, mb.name).Inc()
		mb.registry.RateLimitTokens.WithLabelValues(limiterType, mb.name).Set(float64(mb.limiter.Capacity()))
	}
}

// Tokens returns the tokens left for address.
func (mb *MetricsBudget) Tokens(address int) (int, error) {
	return mb.limiter.Tokens(address)
}

// Capacity returns the wrapped budget's capacity.
func (mb *MetricsBudget) Capacity() int {
	return mb.limiter.Capacity()
}

// EnableMetrics enables metrics collection, switching to registry when non-nil.
func (mb *MetricsBudget) EnableMetrics(registry *metrics.Registry) {
	if registry != nil {
		mb.registry = registry
	}
	mb.enabled = true
}

// DisableMetrics disables metrics collection.
func (mb *MetricsBudget) DisableMetrics() {
	mb.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (mb *MetricsBudget) MetricsEnabled() bool {
	return mb.enabled
}

var _ metrics.Instrumentable = (*MetricsBudget)(nil)
