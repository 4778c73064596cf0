package slide

import (
	"github.com/katalvlaran/slider/core"
	"github.com/katalvlaran/slider/hop"
)

// Slide applies f to the window around every position of x and returns one
// result per input element (size stability).
//
// With WithComplete, incomplete windows keep the zero value of R; use
// SlideMasked when a zero result must be distinguishable from a skipped
// window.
func Slide[T, R any](x []T, f hop.Func[T, R], opts ...Option) ([]R, error) {
	out, _, err := SlideMasked(x, f, opts...)

	return out, err
}

// SlideMasked is Slide plus a validity mask: mask[i] is false exactly when
// window i was filtered as incomplete and its slot holds the zero value.
// Without WithComplete the mask is all true.
func SlideMasked[T, R any](x []T, f hop.Func[T, R], opts ...Option) ([]R, []bool, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	starts, stops, skip := resolve(len(x), o)
	out, err := hop.Hop(x, starts, stops, f, engineOpts(o, skip)...)
	if err != nil {
		return nil, nil, err
	}

	return out, validity(len(x), skip), nil
}

// SlideVec is the type-stable Slide: f yields dynamically typed scalars
// and cast coerces them to one element type R. Incomplete windows (under
// WithComplete) keep the zero R and bypass the caster.
func SlideVec[T, R any](x []T, f hop.Func[T, any], cast core.Caster[R], opts ...Option) ([]R, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	starts, stops, skip := resolve(len(x), o)

	return hop.HopVec(x, starts, stops, f, cast, engineOpts(o, skip)...)
}

// resolve turns the element-count spec into per-position boundary pairs
// plus the completeness skip mask (nil when filtering is off).
func resolve(n int, o Options) (starts, stops []int, skip []bool) {
	bs := core.ResolveBounds(n, o.Before, o.After)
	starts = make([]int, n)
	stops = make([]int, n)
	for i, b := range bs {
		starts[i] = b.Start
		stops[i] = b.Stop
	}
	if o.Complete {
		skip = make([]bool, n)
		for i, b := range bs {
			skip[i] = core.Incomplete(n, b, o.Before, o.After)
		}
	}

	return starts, stops, skip
}

// engineOpts translates slide options into hop engine options.
func engineOpts(o Options, skip []bool) []hop.Option {
	out := []hop.Option{hop.WithParallel(o.Workers)}
	if skip != nil {
		out = append(out, hop.WithSkip(skip))
	}

	return out
}

// validity inverts the skip mask into the caller-facing form.
func validity(n int, skip []bool) []bool {
	mask := make([]bool, n)
	for i := range mask {
		mask[i] = skip == nil || !skip[i]
	}

	return mask
}
