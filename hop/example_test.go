package hop_test

import (
	"fmt"

	"github.com/katalvlaran/slider/core"
	"github.com/katalvlaran/slider/hop"
)

// ExampleHop demonstrates the raw engine: explicit boundary pairs, a mean
// over each window, out-of-range values clamped rather than rejected.
func ExampleHop() {
	x := []float64{2, 4, 6, 8}

	mean := func(w []float64) (float64, error) {
		s := 0.0
		for _, v := range w {
			s += v
		}

		return s / float64(len(w)), nil
	}

	// Three windows: the first reaches past the left edge and clamps.
	out, err := hop.Hop(x, []int{-2, 1, 2}, []int{1, 2, 3}, mean)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out)
	// Output:
	// [3 5 7]
}

// ExampleHopVec demonstrates the type-stable path: heterogeneous numeric
// scalars widen to one float64 vector.
func ExampleHopVec() {
	x := []int{1, 2, 3}

	out, err := hop.HopVec(x, []int{0, 1, 2}, []int{0, 1, 2}, func(w []int) (any, error) {
		return w[0] * 10, nil
	}, core.AsFloat64)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out)
	// Output:
	// [10 20 30]
}
