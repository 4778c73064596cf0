package slide

import (
	"fmt"

	"github.com/katalvlaran/slider/core"
	"github.com/katalvlaran/slider/hop"
)

// Slide2 is the two-sequence Slide: x and y are recycled to one common
// size, every position's boundary pair slices both, and f receives the two
// windows in input order.
func Slide2[T1, T2, R any](x []T1, y []T2, f func(wx []T1, wy []T2) (R, error), opts ...Option) ([]R, error) {
	if f == nil {
		return nil, hop.ErrNilFunc
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n, err := core.RecycleLen(len(x), len(y))
	if err != nil {
		return nil, fmt.Errorf("slide: sequences: %w", err)
	}
	xs, _ := core.Broadcast(x, n)
	ys, _ := core.Broadcast(y, n)

	starts, stops, skip := resolve(n, o)
	out := make([]R, n)
	err = core.Run(n, o.Workers, func(i int) error {
		if skip != nil && skip[i] {
			return nil
		}
		b := core.Bounds{Start: starts[i], Stop: stops[i]}
		r, ferr := f(core.Window(xs, b), core.Window(ys, b))
		if ferr != nil {
			return fmt.Errorf("slide: window %d [%d, %d]: %w", i, b.Start, b.Stop, ferr)
		}
		out[i] = r

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// SlideN is the homogeneous n-ary Slide: every sequence in xs is recycled
// to one common size and sliced with the same boundary pair.
func SlideN[T, R any](xs [][]T, f hop.FuncN[T, R], opts ...Option) ([]R, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	lens := make([]int, len(xs))
	for i, x := range xs {
		lens[i] = len(x)
	}
	n, err := core.RecycleLen(lens...)
	if err != nil {
		return nil, fmt.Errorf("slide: sequences: %w", err)
	}

	starts, stops, skip := resolve(n, o)

	return hop.HopN(xs, starts, stops, f, engineOpts(o, skip)...)
}
