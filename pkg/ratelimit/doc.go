/*
Package ratelimit groups the rate limiting primitives used by floodgate.

  - budget: Fixed-window usage budget keyed by a one-byte address

A usage budget grants every address the same number of tokens per window.
Tokens are only restored by an explicit Reset, so the caller decides when a
window ends:

	b, _ := budget.New(3) // 3 tokens per address per window
	if ok, _ := b.TryTake(0xB1); ok {
		// Repeat the advertisement
	}

	// At the window boundary
	b.Reset()

Wrap a budget with budget.NewWithMetrics to export requests, grants,
denials and resets to Prometheus.
*/
package ratelimit
