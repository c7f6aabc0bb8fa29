package fastdtwbd_test

import (
	"testing"

	"github.com/arborwave/forcedalign/dtwbd"
	"github.com/arborwave/forcedalign/fastdtwbd"
)

func benchmarkFastDTWBD(b *testing.B, n, m, radius int, opts dtwbd.Options) {
	s := make([][]float64, n)
	for i := range s {
		s[i] = []float64{float64(i)}
	}
	ti := make([][]float64, m)
	for j := range ti {
		ti[j] = []float64{float64(j)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := fastdtwbd.FastDTWBD(s, ti, opts, radius)
		if err != nil {
			b.Fatalf("FastDTWBD failed: %v", err)
		}
	}
}

// BenchmarkFastDTWBD_Medium benchmarks the recursive driver on
// 2000x2000 sequences with a narrow radius, the regime FastDTWBD is
// built for.
func BenchmarkFastDTWBD_Medium(b *testing.B) {
	opts := dtwbd.DefaultOptions()
	opts.ReturnPath = true
	benchmarkFastDTWBD(b, 2000, 2000, 5, opts)
}

// BenchmarkFastDTWBD_WideRadius benchmarks the same sequences with a
// wider radius, showing the cost/accuracy tradeoff invariant 6 governs.
func BenchmarkFastDTWBD_WideRadius(b *testing.B) {
	opts := dtwbd.DefaultOptions()
	opts.ReturnPath = true
	benchmarkFastDTWBD(b, 2000, 2000, 20, opts)
}

// BenchmarkFastDTWBD_DistanceOnly benchmarks skipping path
// reconstruction at the finest level.
func BenchmarkFastDTWBD_DistanceOnly(b *testing.B) {
	opts := dtwbd.DefaultOptions()
	opts.ReturnPath = false
	benchmarkFastDTWBD(b, 2000, 2000, 5, opts)
}
