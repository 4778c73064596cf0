package slidex

import "errors"

// ErrNilCmp indicates a nil index comparison function.
var ErrNilCmp = errors.New("slidex: comparison function is nil")

// Shift moves an index value to one end of its window: the before shift
// produces the lower bound, the after shift the upper bound. Shifts MUST
// be order-preserving over the index domain; the monotone sweep depends
// on it.
type Shift[K any] func(K) K

// Number covers the index domains with built-in offset arithmetic.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Back returns a Shift moving a numeric index value delta units back —
// the usual lower-bound shift: WithBefore(Back(2)).
func Back[K Number](delta K) Shift[K] {
	return func(k K) K { return k - delta }
}

// Fwd returns a Shift moving a numeric index value delta units forward —
// the usual upper-bound shift: WithAfter(Fwd(2)).
func Fwd[K Number](delta K) Shift[K] {
	return func(k K) K { return k + delta }
}

// Options configures one index-aware call over index domain K.
type Options[K any] struct {
	// Before produces Lo(i) from idx[i]; nil means idx[i] itself.
	Before Shift[K]
	// After produces Hi(i) from idx[i]; nil means idx[i] itself.
	After Shift[K]
	// UnboundedBefore reaches back to the first position.
	UnboundedBefore bool
	// UnboundedAfter reaches forward to the last position.
	UnboundedAfter bool
	// Complete filters windows whose value-space extent leaves the
	// observed index range.
	Complete bool
	// Workers bounds parallel application; <=1 is sequential.
	Workers int
	// IsMissing screens the index for missing values before computation.
	IsMissing func(K) bool
}

// DefaultOptions returns the current-value-only window.
func DefaultOptions[K any]() Options[K] { return Options[K]{Workers: 1} }

// Option mutates Options.
type Option[K any] func(*Options[K])

// WithBefore sets the lower-bound shift.
func WithBefore[K any](s Shift[K]) Option[K] {
	return func(o *Options[K]) { o.Before = s }
}

// WithAfter sets the upper-bound shift.
func WithAfter[K any](s Shift[K]) Option[K] {
	return func(o *Options[K]) { o.After = s }
}

// WithUnboundedBefore reaches back to the first position.
func WithUnboundedBefore[K any]() Option[K] {
	return func(o *Options[K]) { o.UnboundedBefore = true }
}

// WithUnboundedAfter reaches forward to the last position.
func WithUnboundedAfter[K any]() Option[K] {
	return func(o *Options[K]) { o.UnboundedAfter = true }
}

// WithComplete skips windows whose value-space extent leaves the index.
func WithComplete[K any]() Option[K] {
	return func(o *Options[K]) { o.Complete = true }
}

// WithParallel allows up to workers concurrent window applications.
func WithParallel[K any](workers int) Option[K] {
	return func(o *Options[K]) { o.Workers = workers }
}

// WithMissing declares the index's missing-value predicate; a hit fails
// the whole call before any window evaluates.
func WithMissing[K any](pred func(K) bool) Option[K] {
	return func(o *Options[K]) { o.IsMissing = pred }
}
