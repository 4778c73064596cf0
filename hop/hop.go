package hop

import (
	"fmt"

	"github.com/katalvlaran/slider/core"
)

// Hop applies f to one window of x per (start, stop) pair.
//
// starts and stops are recycled to a common length L; each pair is clamped
// independently to [0, len(x)-1]; start > stop after clamping selects the
// empty window. Results are collected in pair order. The first error from
// f aborts the call and no partial result is returned.
//
// Returns core.ErrSizeMismatch when starts/stops (or a Skip mask) are not
// recyclable, ErrNilFunc for a nil f, and otherwise whatever f fails with,
// wrapped with the offending window's position and bounds.
func Hop[T, R any](x []T, starts, stops []int, f Func[T, R], opts ...Option) ([]R, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	l, err := pairCount(len(starts), len(stops), o.Skip)
	if err != nil {
		return nil, err
	}

	out := make([]R, l)
	err = core.Run(l, o.Workers, func(k int) error {
		if o.Skip != nil && o.Skip[k] {
			return nil
		}
		b := core.Bounds{Start: core.Recycled(starts, k), Stop: core.Recycled(stops, k)}
		r, ferr := f(core.Window(x, b))
		if ferr != nil {
			return fmt.Errorf("hop: window %d [%d, %d]: %w", k, b.Start, b.Stop, ferr)
		}
		out[k] = r

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// HopN is the n-ary Hop: every sequence in xs is recycled to one common
// size, then sliced with the same boundary pair and passed to f as one
// positional window per sequence, in input order.
func HopN[T, R any](xs [][]T, starts, stops []int, f FuncN[T, R], opts ...Option) ([]R, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	seqs, err := broadcastAll(xs)
	if err != nil {
		return nil, err
	}
	l, err := pairCount(len(starts), len(stops), o.Skip)
	if err != nil {
		return nil, err
	}

	out := make([]R, l)
	err = core.Run(l, o.Workers, func(k int) error {
		if o.Skip != nil && o.Skip[k] {
			return nil
		}
		b := core.Bounds{Start: core.Recycled(starts, k), Stop: core.Recycled(stops, k)}
		ws := make([][]T, len(seqs))
		for i, s := range seqs {
			ws[i] = core.Window(s, b)
		}
		r, ferr := f(ws...)
		if ferr != nil {
			return fmt.Errorf("hop: window %d [%d, %d]: %w", k, b.Start, b.Stop, ferr)
		}
		out[k] = r

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// pairCount resolves the common window count of starts/stops and vets the
// optional skip mask against it.
func pairCount(nStarts, nStops int, skip []bool) (int, error) {
	l, err := core.RecycleLen(nStarts, nStops)
	if err != nil {
		return 0, fmt.Errorf("hop: starts/stops: %w", err)
	}
	if skip != nil && len(skip) != l {
		return 0, fmt.Errorf("hop: skip mask has length %d, want %d: %w", len(skip), l, core.ErrSizeMismatch)
	}

	return l, nil
}

// broadcastAll recycles every sequence to the common size.
func broadcastAll[T any](xs [][]T) ([][]T, error) {
	lens := make([]int, len(xs))
	for i, x := range xs {
		lens[i] = len(x)
	}
	n, err := core.RecycleLen(lens...)
	if err != nil {
		return nil, fmt.Errorf("hop: sequences: %w", err)
	}
	seqs := make([][]T, len(xs))
	for i, x := range xs {
		// Lengths are vetted above; Broadcast cannot fail here.
		seqs[i], _ = core.Broadcast(x, n)
	}

	return seqs, nil
}
