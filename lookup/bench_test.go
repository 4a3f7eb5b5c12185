package lookup_test

import "testing"

// BenchmarkZToRBatch measures a 10k-element forward lookup.
func BenchmarkZToRBatch(b *testing.B) {
	ip := planck(b)
	zs := make([]float64, 10000)
	for i := range zs {
		zs[i] = 3 * float64(i) / float64(len(zs))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ip.ZToRBatch(zs); err != nil {
			b.Fatalf("ZToRBatch failed: %v", err)
		}
	}
}

// BenchmarkRToZ measures the scalar inverse path.
func BenchmarkRToZ(b *testing.B) {
	ip := planck(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ip.RToZ(1318.8); err != nil {
			b.Fatalf("RToZ failed: %v", err)
		}
	}
}
