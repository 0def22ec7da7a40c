package testutil

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestEventually(t *testing.T) {
	t.Run("condition met immediately", func(t *testing.T) {
		called := false
		Eventually(t, func() bool {
			called = true
			return true
		}, 100*time.Millisecond, 10*time.Millisecond)

		if !called {
			t.Error("condition function should be called")
		}
	})

	t.Run("condition met after delay", func(t *testing.T) {
		var counter int32
		go func() {
			time.Sleep(30 * time.Millisecond)
			atomic.StoreInt32(&counter, 1)
		}()

		Eventually(t, func() bool {
			return atomic.LoadInt32(&counter) == 1
		}, time.Second, 5*time.Millisecond)
	})
}

func TestSequenceSource(t *testing.T) {
	src := NewSequenceSource(0.1, 0.9)

	got := []float64{src.Float64(), src.Float64(), src.Float64()}
	AssertSliceEqual(t, got, []float64{0.1, 0.9, 0.1})
	AssertEqual(t, src.Calls(), 3)

	zero := NewSequenceSource()
	AssertEqual(t, zero.Float64(), 0.0)
}

func TestMockWriter(t *testing.T) {
	w := NewMockWriter()

	n, err := w.Write([]byte("hello"))
	AssertNoError(t, err)
	AssertEqual(t, n, 5)
	AssertEqual(t, w.String(), "hello")

	boom := errors.New("boom")
	w.SetAlwaysError(boom)
	_, err = w.Write([]byte("again"))
	AssertErrorIs(t, err, boom)
	AssertEqual(t, w.WriteCount(), 2)
	AssertEqual(t, w.String(), "hello")
}
