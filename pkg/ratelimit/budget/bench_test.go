package budget

import "testing"

func BenchmarkTryTake(b *testing.B) {
	budget, _ := New(254)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		addr := i % Bound
		if ok, _ := budget.TryTake(addr); !ok {
			budget.Reset()
		}
	}
}

func BenchmarkReset(b *testing.B) {
	budget, _ := New(3)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		budget.Reset()
	}
}
