package core

import "fmt"

// RecycleLen returns the common size a set of parallel slice lengths
// recycle to: every length must equal the common size or 1 (a length-1
// slice broadcasts). Returns ErrSizeMismatch otherwise.
//
// With no lengths, or all lengths 1, the common size is the maximum given
// (0 for no lengths).
func RecycleLen(lens ...int) (int, error) {
	size := 0
	for _, l := range lens {
		if l > size {
			size = l
		}
	}
	for i, l := range lens {
		if l != size && l != 1 {
			return 0, fmt.Errorf("%w: argument %d has length %d, want %d or 1", ErrSizeMismatch, i, l, size)
		}
	}

	return size, nil
}

// Recycled returns element i of s under recycling: a length-1 slice yields
// its single element for every i.
func Recycled[T any](s []T, i int) T {
	if len(s) == 1 {
		return s[0]
	}

	return s[i]
}

// Broadcast materializes s at length n under recycling rules. A slice
// already of length n is returned as-is (no copy); a length-1 slice is
// repeated n times. Any other length is ErrSizeMismatch.
func Broadcast[T any](s []T, n int) ([]T, error) {
	if len(s) == n {
		return s, nil
	}
	if len(s) != 1 {
		return nil, fmt.Errorf("%w: length %d cannot broadcast to %d", ErrSizeMismatch, len(s), n)
	}
	out := make([]T, n)
	for i := range out {
		out[i] = s[0]
	}

	return out, nil
}
