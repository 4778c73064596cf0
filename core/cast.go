package core

import "fmt"

// Caster converts one dynamically typed scalar into the requested element
// type R. Vector-mode assembly applies a Caster to every per-window result;
// the first failure aborts with ErrCast wrapped with the element's value.
//
// The built-in casters implement one-directional widening: integral values
// widen to floating-point, never the reverse. Narrowing requires a custom
// Caster supplied by the caller.
type Caster[R any] func(v any) (R, error)

// AsFloat64 widens any integral or floating-point scalar to float64.
func AsFloat64(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	}

	return 0, fmt.Errorf("%w: %T(%v) is not numeric", ErrCast, v, v)
}

// AsInt accepts integral scalars only; floating-point values are rejected
// rather than narrowed.
func AsInt(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		return int(x), nil
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		return int(x), nil
	}

	return 0, fmt.Errorf("%w: %T(%v) is not integral", ErrCast, v, v)
}

// AsString accepts string scalars only.
func AsString(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}

	return "", fmt.Errorf("%w: %T(%v) is not a string", ErrCast, v, v)
}

// AsBool accepts bool scalars only.
func AsBool(v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}

	return false, fmt.Errorf("%w: %T(%v) is not a bool", ErrCast, v, v)
}
