package hop

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/slider/core"
)

// HopVec is the type-stable Hop: f yields a dynamically typed scalar per
// window and cast coerces every scalar to one element type R.
//
// A raw result that is a slice of length 1 is unwrapped to its element;
// any other slice fails with ErrNonScalar naming the offending window.
// Coercion failures surface core.ErrCast naming the first incompatible
// element's window.
//
// Skipped windows (WithSkip) bypass both checks and keep the zero R.
func HopVec[T, R any](x []T, starts, stops []int, f Func[T, any], cast core.Caster[R], opts ...Option) ([]R, error) {
	if cast == nil {
		return nil, fmt.Errorf("hop: cast strategy is nil: %w", core.ErrCast)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	raw, err := Hop(x, starts, stops, f, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]R, len(raw))
	for k, v := range raw {
		if o.Skip != nil && o.Skip[k] {
			continue
		}
		v, err = scalar(v)
		if err != nil {
			return nil, fmt.Errorf("hop: window %d: %w", k, err)
		}
		r, cerr := cast(v)
		if cerr != nil {
			return nil, fmt.Errorf("hop: window %d: %w", k, cerr)
		}
		out[k] = r
	}

	return out, nil
}

// scalar enforces the one-element contract: plain values pass through,
// length-1 slices unwrap, anything else is ErrNonScalar.
func scalar(v any) (any, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return v, nil
	}
	if rv.Len() != 1 {
		return nil, fmt.Errorf("%w: got %d elements", ErrNonScalar, rv.Len())
	}

	return rv.Index(0).Interface(), nil
}
