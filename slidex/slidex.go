package slidex

import (
	"fmt"

	"github.com/katalvlaran/slider/core"
	"github.com/katalvlaran/slider/hop"
)

// SlideIndex applies f to the value-space window around every position:
// position i sees every element whose index value lies in
// [Lo(i), Hi(i)] under cmp. One result per input element.
//
// cmp follows the standard contract (negative / zero / positive). The
// index must be paired 1:1 with x, non-decreasing, and free of missing
// values when WithMissing is declared; violations fail before any window
// evaluates.
func SlideIndex[T, K, R any](x []T, idx []K, cmp func(a, b K) int, f hop.Func[T, R], opts ...Option[K]) ([]R, error) {
	out, _, err := SlideIndexMasked(x, idx, cmp, f, opts...)

	return out, err
}

// SlideIndexMasked is SlideIndex plus a validity mask: mask[i] is false
// exactly when window i was filtered as incomplete (WithComplete) and its
// slot holds the zero value.
func SlideIndexMasked[T, K, R any](x []T, idx []K, cmp func(a, b K) int, f hop.Func[T, R], opts ...Option[K]) ([]R, []bool, error) {
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}

	starts, stops, skip, err := resolveIndexBounds(len(x), idx, cmp, o)
	if err != nil {
		return nil, nil, err
	}
	out, err := hop.Hop(x, starts, stops, f, engineOpts(o.Workers, skip)...)
	if err != nil {
		return nil, nil, err
	}

	mask := make([]bool, len(x))
	for i := range mask {
		mask[i] = skip == nil || !skip[i]
	}

	return out, mask, nil
}

// SlideIndexVec is the type-stable SlideIndex: f yields dynamically typed
// scalars and cast coerces them to one element type R.
func SlideIndexVec[T, K, R any](x []T, idx []K, cmp func(a, b K) int, f hop.Func[T, any], cast core.Caster[R], opts ...Option[K]) ([]R, error) {
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}

	starts, stops, skip, err := resolveIndexBounds(len(x), idx, cmp, o)
	if err != nil {
		return nil, err
	}

	return hop.HopVec(x, starts, stops, f, cast, engineOpts(o.Workers, skip)...)
}

// resolveIndexBounds validates the index and maps value-space windows to
// position pairs with one forward, monotone sweep.
//
// Invariant: idx and both bound series Lo(i)/Hi(i) are non-decreasing in
// i, so the two cursors only ever move forward — O(n) overall.
func resolveIndexBounds[K any](n int, idx []K, cmp func(a, b K) int, o Options[K]) (starts, stops []int, skip []bool, err error) {
	if cmp == nil {
		return nil, nil, nil, ErrNilCmp
	}
	if len(idx) != n {
		return nil, nil, nil, fmt.Errorf("slidex: index has length %d, sequence %d: %w", len(idx), n, core.ErrSizeMismatch)
	}
	if err = core.ValidateIndex(idx, cmp, o.IsMissing); err != nil {
		return nil, nil, nil, fmt.Errorf("slidex: %w", err)
	}

	starts = make([]int, n)
	stops = make([]int, n)
	if o.Complete {
		skip = make([]bool, n)
	}

	s, h := 0, -1 // persistent cursors: next start candidate, last in-range stop
	for i := 0; i < n; i++ {
		if o.UnboundedBefore {
			starts[i] = 0
		} else {
			lo := bound(o.Before, idx[i])
			for s < n && cmp(idx[s], lo) < 0 {
				s++
			}
			starts[i] = s
			if skip != nil && cmp(lo, idx[0]) < 0 {
				skip[i] = true
			}
		}
		if o.UnboundedAfter {
			stops[i] = n - 1
		} else {
			hi := bound(o.After, idx[i])
			for h+1 < n && cmp(idx[h+1], hi) <= 0 {
				h++
			}
			stops[i] = h
			if skip != nil && cmp(hi, idx[n-1]) > 0 {
				skip[i] = true
			}
		}
	}

	return starts, stops, skip, nil
}

// bound applies a shift, with nil meaning the value itself.
func bound[K any](s Shift[K], k K) K {
	if s == nil {
		return k
	}

	return s(k)
}

// engineOpts translates slidex options into hop engine options.
func engineOpts(workers int, skip []bool) []hop.Option {
	out := []hop.Option{hop.WithParallel(workers)}
	if skip != nil {
		out = append(out, hop.WithSkip(skip))
	}

	return out
}
