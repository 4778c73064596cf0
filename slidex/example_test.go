package slidex_test

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/slider/slidex"
)

// ExampleSlideIndex demonstrates a 2-day lookback over an irregular day
// index: gaps in the index shrink the windows automatically.
func ExampleSlideIndex() {
	sales := []float64{100, 120, 90, 110}
	days := []int{0, 1, 5, 6} // Thu, Fri, then the following Tue, Wed

	out, err := slidex.SlideIndex(sales, days, cmp.Compare[int], func(w []float64) (float64, error) {
		s := 0.0
		for _, v := range w {
			s += v
		}

		return s, nil
	}, slidex.WithBefore(slidex.Back(2)))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out)
	// Output:
	// [100 220 90 200]
}
