package period

import (
	"fmt"

	"github.com/katalvlaran/slider/core"
	"github.com/katalvlaran/slider/hop"
)

// SlidePeriod applies f once per block of the period-floored index,
// with Before/After reaching whole blocks back/forward. The result has
// one element per BLOCK, not per input element.
//
// cmp orders the index domain and is used only for up-front validation:
// the index must pair 1:1 with x and be non-decreasing, checked before
// any window evaluates.
func SlidePeriod[T, K any, L comparable, R any](x []T, idx []K, cmp func(a, b K) int, floor Floor[K, L], f hop.Func[T, R], opts ...Option) ([]R, error) {
	out, _, err := SlidePeriodMasked(x, idx, cmp, floor, f, opts...)

	return out, err
}

// SlidePeriodMasked is SlidePeriod plus a validity mask over blocks:
// mask[k] is false exactly when block window k was filtered as incomplete
// (WithComplete) and its slot holds the zero value.
func SlidePeriodMasked[T, K any, L comparable, R any](x []T, idx []K, cmp func(a, b K) int, floor Floor[K, L], f hop.Func[T, R], opts ...Option) ([]R, []bool, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	starts, stops, skip, err := resolveBlockBounds(len(x), idx, cmp, floor, o)
	if err != nil {
		return nil, nil, err
	}
	out, err := hop.Hop(x, starts, stops, f, engineOpts(o.Workers, skip)...)
	if err != nil {
		return nil, nil, err
	}

	mask := make([]bool, len(out))
	for i := range mask {
		mask[i] = skip == nil || !skip[i]
	}

	return out, mask, nil
}

// SlidePeriodVec is the type-stable SlidePeriod: f yields dynamically
// typed scalars and cast coerces them to one element type R.
func SlidePeriodVec[T, K any, L comparable, R any](x []T, idx []K, cmp func(a, b K) int, floor Floor[K, L], f hop.Func[T, any], cast core.Caster[R], opts ...Option) ([]R, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	starts, stops, skip, err := resolveBlockBounds(len(x), idx, cmp, floor, o)
	if err != nil {
		return nil, err
	}

	return hop.HopVec(x, starts, stops, f, cast, engineOpts(o.Workers, skip)...)
}

// resolveBlockBounds validates, partitions the index into blocks, resolves
// block-level windows with the element-count rules, and maps each block
// window back to a position pair: first position of its leftmost block,
// last position of its rightmost block.
func resolveBlockBounds[K any, L comparable](n int, idx []K, cmp func(a, b K) int, floor Floor[K, L], o Options) (starts, stops []int, skip []bool, err error) {
	if floor == nil {
		return nil, nil, nil, ErrNilFloor
	}
	if len(idx) != n {
		return nil, nil, nil, fmt.Errorf("period: index has length %d, sequence %d: %w", len(idx), n, core.ErrSizeMismatch)
	}
	if cmp != nil {
		if err = core.ValidateIndex(idx, cmp, nil); err != nil {
			return nil, nil, nil, fmt.Errorf("period: %w", err)
		}
	}

	blocks := Partition(idx, floor)
	nb := len(blocks)
	bs := core.ResolveBounds(nb, o.Before, o.After)

	starts = make([]int, nb)
	stops = make([]int, nb)
	if o.Complete {
		skip = make([]bool, nb)
	}
	for k, b := range bs {
		if skip != nil {
			skip[k] = core.Incomplete(nb, b, o.Before, o.After)
		}
		c := b.Clamp(nb)
		if c.Empty() {
			// Empty block window maps to an empty position window.
			starts[k], stops[k] = 0, -1

			continue
		}
		starts[k] = blocks[c.Start].First
		stops[k] = blocks[c.Stop].Last
	}

	return starts, stops, skip, nil
}

// engineOpts translates period options into hop engine options.
func engineOpts(workers int, skip []bool) []hop.Option {
	out := []hop.Option{hop.WithParallel(workers)}
	if skip != nil {
		out = append(out, hop.WithSkip(skip))
	}

	return out
}
