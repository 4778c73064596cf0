package slidex

import (
	"fmt"

	"github.com/katalvlaran/slider/core"
	"github.com/katalvlaran/slider/hop"
)

// SlideIndex2 is the two-sequence SlideIndex: one shared index governs
// both sequences, which are recycled to the index's size and sliced with
// the same boundary pair.
func SlideIndex2[T1, T2, K, R any](x []T1, y []T2, idx []K, cmp func(a, b K) int, f func(wx []T1, wy []T2) (R, error), opts ...Option[K]) ([]R, error) {
	if f == nil {
		return nil, hop.ErrNilFunc
	}
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}

	n, err := core.RecycleLen(len(x), len(y), len(idx))
	if err != nil {
		return nil, fmt.Errorf("slidex: sequences/index: %w", err)
	}
	xs, _ := core.Broadcast(x, n)
	ys, _ := core.Broadcast(y, n)

	starts, stops, skip, err := resolveIndexBounds(n, idx, cmp, o)
	if err != nil {
		return nil, err
	}

	out := make([]R, n)
	err = core.Run(n, o.Workers, func(i int) error {
		if skip != nil && skip[i] {
			return nil
		}
		b := core.Bounds{Start: starts[i], Stop: stops[i]}
		r, ferr := f(core.Window(xs, b), core.Window(ys, b))
		if ferr != nil {
			return fmt.Errorf("slidex: window %d [%d, %d]: %w", i, b.Start, b.Stop, ferr)
		}
		out[i] = r

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// SlideIndexN is the homogeneous n-ary SlideIndex: every sequence in xs
// is recycled to the shared index's size and sliced with the same
// boundary pair.
func SlideIndexN[T, K, R any](xs [][]T, idx []K, cmp func(a, b K) int, f hop.FuncN[T, R], opts ...Option[K]) ([]R, error) {
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}

	lens := make([]int, 0, len(xs)+1)
	for _, x := range xs {
		lens = append(lens, len(x))
	}
	lens = append(lens, len(idx))
	n, err := core.RecycleLen(lens...)
	if err != nil {
		return nil, fmt.Errorf("slidex: sequences/index: %w", err)
	}

	seqs := make([][]T, len(xs))
	for i, x := range xs {
		seqs[i], _ = core.Broadcast(x, n)
	}

	starts, stops, skip, err := resolveIndexBounds(n, idx, cmp, o)
	if err != nil {
		return nil, err
	}

	return hop.HopN(seqs, starts, stops, f, engineOpts(o.Workers, skip)...)
}
