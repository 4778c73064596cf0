package slidex_test

import (
	"cmp"
	"testing"

	"github.com/katalvlaran/slider/slidex"
)

// BenchmarkSlideIndex_Sweep measures the monotone sweep plus application
// over 10k irregularly spaced elements.
func BenchmarkSlideIndex_Sweep(b *testing.B) {
	n := 10_000
	x := make([]float64, n)
	idx := make([]int, n)
	for i := range x {
		x[i] = float64(i)
		idx[i] = i*3 + i%2 // uneven spacing
	}
	sum := func(w []float64) (float64, error) {
		s := 0.0
		for _, v := range w {
			s += v
		}

		return s, nil
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := slidex.SlideIndex(x, idx, cmp.Compare[int], sum, slidex.WithBefore(slidex.Back(30))); err != nil {
			b.Fatal(err)
		}
	}
}
