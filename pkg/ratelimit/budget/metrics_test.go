package budget

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vnykmshr/floodgate/internal/testutil"
	"github.com/vnykmshr/floodgate/pkg/metrics"
)

func newTestBudget(t *testing.T, capacity int) (*MetricsBudget, *metrics.Registry) {
	t.Helper()
	b, err := New(capacity)
	testutil.AssertNoError(t, err)

	registry := metrics.NewRegistry(prometheus.NewRegistry())
	return NewWithMetrics(b, "b2", registry), registry
}

func TestMetricsBudgetCounts(t *testing.T) {
	mb, registry := newTestBudget(t, 2)

	for i := 0; i < 3; i++ {
		_, err := mb.TryTake(0xB1)
		testutil.AssertNoError(t, err)
	}

	requests := promtest.ToFloat64(registry.RateLimitRequests.WithLabelValues(limiterType, "b2"))
	allowed := promtest.ToFloat64(registry.RateLimitAllowed.WithLabelValues(limiterType, "b2"))
	denied := promtest.ToFloat64(registry.RateLimitDenied.WithLabelValues(limiterType, "b2"))
	tokens := promtest.ToFloat64(registry.RateLimitTokens.WithLabelValues(limiterType, "b2"))

	testutil.AssertEqual(t, requests, 3.0)
	testutil.AssertEqual(t, allowed, 2.0)
	testutil.AssertEqual(t, denied, 1.0)
	testutil.AssertEqual(t, tokens, 0.0)

	mb.Reset()
	testutil.AssertEqual(t, promtest.ToFloat64(registry.RateLimitResets.WithLabelValues(limiterType, "b2")), 1.0)
	testutil.AssertEqual(t, promtest.ToFloat64(registry.RateLimitTokens.WithLabelValues(limiterType, "b2")), 2.0)

	left, err := mb.Tokens(0xB1)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, left, 2)
	testutil.AssertEqual(t, mb.Capacity(), 2)
}

func TestMetricsBudgetInvalidAddressNotCounted(t *testing.T) {
	mb, registry := newTestBudget(t, 2)

	_, err := mb.TryTake(255)
	testutil.AssertError(t, err)

	testutil.AssertEqual(t, promtest.CollectAndCount(registry.RateLimitRequests), 0)
}

func TestMetricsBudgetToggle(t *testing.T) {
	mb, registry := newTestBudget(t, 1)

	mb.DisableMetrics()
	testutil.AssertEqual(t, mb.MetricsEnabled(), false)

	ok, err := mb.TryTake(7)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, promtest.CollectAndCount(registry.RateLimitRequests), 0)

	other := metrics.NewRegistry(prometheus.NewRegistry())
	mb.EnableMetrics(other)
	testutil.AssertEqual(t, mb.MetricsEnabled(), true)

	ok, err = mb.TryTake(7)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, ok, false)
	testutil.AssertEqual(t, promtest.ToFloat64(other.RateLimitDenied.WithLabelValues(limiterType, "b2")), 1.0)
	testutil.AssertEqual(t, promtest.CollectAndCount(registry.RateLimitDenied), 0)
}
