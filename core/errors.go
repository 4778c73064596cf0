package core

import "errors"

// Sentinel errors for shared window primitives.
//
// Callers MUST branch with errors.Is; implementations attach position
// context by wrapping with %w and never stringify parameters into the
// sentinel definitions themselves.
var (
	// ErrSizeMismatch indicates slice lengths that cannot be recycled to a
	// single common size (every length must equal the common size or 1).
	ErrSizeMismatch = errors.New("core: sizes are not recyclable to a common length")

	// ErrIndexOrder indicates an index whose values are not non-decreasing.
	ErrIndexOrder = errors.New("core: index is not non-decreasing")

	// ErrIndexMissing indicates an index containing a missing value.
	ErrIndexMissing = errors.New("core: index contains a missing value")

	// ErrCast indicates a window result element that cannot be cast to the
	// requested element type.
	ErrCast = errors.New("core: cannot cast element to requested type")
)
