package benchmark

import (
	"context"
	"fmt"
	"testing"

	"github.com/vnykmshr/floodgate/pkg/ratelimit/budget"
	"github.com/vnykmshr/floodgate/pkg/scheduling/workerpool"
	"github.com/vnykmshr/floodgate/pkg/simulation"
)

func workerLabel(workers int) string {
	return fmt.Sprintf("workers-%d", workers)
}

// BenchmarkWorkerPoolSubmit measures task submission performance.
func BenchmarkWorkerPoolSubmit(b *testing.B) {
	workerCounts := []int{2, 4, 8}

	for _, workers := range workerCounts {
		b.Run(workerLabel(workers), func(b *testing.B) {
			pool, err := workerpool.New(workers, 1000)
			if err != nil {
				b.Fatalf("failed to create pool: %v", err)
			}

			done := make(chan struct{})
			go func() {
				defer close(done)
				for range pool.Results() {
				}
			}()

			task := workerpool.TaskFunc(func(_ context.Context) error {
				return nil
			})

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = pool.Submit(task)
			}
			b.StopTimer()

			<-pool.Shutdown()
			<-done
		})
	}
}

// BenchmarkSimulationRun measures one reference run of the mesh.
func BenchmarkSimulationRun(b *testing.B) {
	for _, badActors := range []int{0, 2, 10} {
		b.Run(fmt.Sprintf("bad-actors-%d", badActors), func(b *testing.B) {
			config := simulation.DefaultConfig()
			config.BadActors = badActors
			sim, err := simulation.New(config)
			if err != nil {
				b.Fatal(err)
			}

			ctx := context.Background()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := sim.Run(ctx, i, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSimulationRunAll measures parallel runs at different pool sizes.
func BenchmarkSimulationRunAll(b *testing.B) {
	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(workerLabel(workers), func(b *testing.B) {
			config := simulation.DefaultConfig()
			config.BadActors = 2
			config.Runs = 8
			config.Parallelism = workers
			sim, err := simulation.New(config)
			if err != nil {
				b.Fatal(err)
			}

			ctx := context.Background()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := sim.RunAll(ctx); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkBudgetMetrics measures the cost of instrumenting a budget.
func BenchmarkBudgetMetrics(b *testing.B) {
	plain, err := budget.New(254)
	if err != nil {
		b.Fatal(err)
	}
	instrumented := budget.NewWithMetrics(plain, "bench", nil)

	for _, tc := range []struct {
		name    string
		limiter budget.Limiter
	}{
		{"plain", plain},
		{"metrics", instrumented},
	} {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if i%254 == 0 {
					tc.limiter.Reset()
				}
				_, _ = tc.limiter.TryTake(i % budget.Bound)
			}
		})
	}
}
