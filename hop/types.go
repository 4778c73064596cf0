package hop

import "errors"

// Func consumes one window slice and produces one result.
// The slice aliases the input sequence and must not be mutated or retained.
type Func[T, R any] func(window []T) (R, error)

// FuncN consumes one window slice per parallel sequence, in input order.
type FuncN[T, R any] func(windows ...[]T) (R, error)

// Sentinel errors for the hop engine.
var (
	// ErrNilFunc indicates a nil window function.
	ErrNilFunc = errors.New("hop: window function is nil")

	// ErrNonScalar indicates a vec-mode window result that is not a scalar
	// (a slice of length != 1).
	ErrNonScalar = errors.New("hop: window result is not a scalar")
)

// Options configures one engine call.
type Options struct {
	// Workers bounds parallel application; <=1 means strictly sequential,
	// in-order execution.
	Workers int

	// Skip marks output slots that must not be computed; skipped slots keep
	// the zero value of the result type. Length must equal the resolved
	// window count. Used by completeness filtering in the sliding variants.
	Skip []bool
}

// DefaultOptions returns the sequential, skip-free configuration.
func DefaultOptions() Options { return Options{Workers: 1} }

// Option mutates Options.
type Option func(*Options)

// WithParallel allows up to workers concurrent window applications.
// Output is identical to sequential execution; only ordering of side
// effects inside f (which should have none) differs.
func WithParallel(workers int) Option {
	return func(o *Options) { o.Workers = workers }
}

// WithSkip declares output slots to leave at the zero value instead of
// computing. skip must have one entry per window.
func WithSkip(skip []bool) Option {
	return func(o *Options) { o.Skip = skip }
}
