package period

import (
	"fmt"

	"github.com/katalvlaran/slider/core"
	"github.com/katalvlaran/slider/hop"
)

// SlidePeriod2 is the two-sequence SlidePeriod: one shared index floors
// into blocks, both sequences are recycled to the index's size, and each
// block window slices both with the same position pair.
func SlidePeriod2[T1, T2, K any, L comparable, R any](x []T1, y []T2, idx []K, cmp func(a, b K) int, floor Floor[K, L], f func(wx []T1, wy []T2) (R, error), opts ...Option) ([]R, error) {
	if f == nil {
		return nil, hop.ErrNilFunc
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n, err := core.RecycleLen(len(x), len(y), len(idx))
	if err != nil {
		return nil, fmt.Errorf("period: sequences/index: %w", err)
	}
	xs, _ := core.Broadcast(x, n)
	ys, _ := core.Broadcast(y, n)

	starts, stops, skip, err := resolveBlockBounds(n, idx, cmp, floor, o)
	if err != nil {
		return nil, err
	}

	out := make([]R, len(starts))
	err = core.Run(len(starts), o.Workers, func(k int) error {
		if skip != nil && skip[k] {
			return nil
		}
		b := core.Bounds{Start: starts[k], Stop: stops[k]}
		r, ferr := f(core.Window(xs, b), core.Window(ys, b))
		if ferr != nil {
			return fmt.Errorf("period: window %d [%d, %d]: %w", k, b.Start, b.Stop, ferr)
		}
		out[k] = r

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// SlidePeriodN is the homogeneous n-ary SlidePeriod: every sequence in xs
// is recycled to the shared index's size and sliced with the same block
// window's position pair.
func SlidePeriodN[T, K any, L comparable, R any](xs [][]T, idx []K, cmp func(a, b K) int, floor Floor[K, L], f hop.FuncN[T, R], opts ...Option) ([]R, error) {
	o := DefaultOptions()
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
		return nil, fmt.Errorf("period: sequences/index: %w", err)
	}

	seqs := make([][]T, len(xs))
	for i, x := range xs {
		seqs[i], _ = core.Broadcast(x, n)
	}

	starts, stops, skip, err := resolveBlockBounds(n, idx, cmp, floor, o)
	if err != nil {
		return nil, err
	}

	return hop.HopN(seqs, starts, stops, f, engineOpts(o.Workers, skip)...)
}
