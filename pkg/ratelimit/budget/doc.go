/*
Package budget provides a fixed-window, per-address token budget.

A UsageBudget hands out a fixed number of tokens to each of 256 possible
8-bit originator addresses. Every successful TryTake consumes one token for
that address; once an address is exhausted TryTake reports false until the
owner calls Reset, which refills every address at once. This is the quota a
mesh repeater applies before rebroadcasting an advertisement on behalf of
another node.

	b, err := budget.New(3)
	if err != nil {
		return err
	}

	ok, err := b.TryTake(0xAB) // true, true, true, then false
	if err != nil {
		return err
	}
	if !ok {
		// drop the advertisement
	}

	b.Reset() // new window

Capacities and addresses must lie in [0, 255). The value 255 is reserved;
out-of-range values produce an *errors.ArgumentError that carries the
offending value and the violated bound.

Counters are independent per address and the sequence of results depends
only on the capacity and the number of calls per address since the last
Reset.

Use NewWithMetrics to record takes, denies and resets in Prometheus.

UsageBudget holds no lock. It is meant to be owned by a single goroutine.
*/
package budget
