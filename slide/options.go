package slide

import "github.com/katalvlaran/slider/core"

// Options configures one sliding-window call.
type Options struct {
	// Before is the window reach behind each position.
	Before core.Extent
	// After is the window reach ahead of each position.
	After core.Extent
	// Complete replaces windows whose theoretical extent leaves the
	// sequence with the zero value instead of computing them.
	Complete bool
	// Workers bounds parallel application; <=1 is sequential.
	Workers int
}

// DefaultOptions returns the current-element-only window: before=0,
// after=0, sequential, no completeness filtering.
func DefaultOptions() Options {
	return Options{Before: core.Count(0), After: core.Count(0), Workers: 1}
}

// Option mutates Options.
type Option func(*Options)

// WithBefore sets the backward reach of every window.
func WithBefore(e core.Extent) Option {
	return func(o *Options) { o.Before = e }
}

// WithAfter sets the forward reach of every window.
func WithAfter(e core.Extent) Option {
	return func(o *Options) { o.After = e }
}

// WithComplete skips incomplete windows, leaving their slots at the zero
// value. Pair with SlideMasked to distinguish real zero results.
func WithComplete() Option {
	return func(o *Options) { o.Complete = true }
}

// WithParallel allows up to workers concurrent window applications.
func WithParallel(workers int) Option {
	return func(o *Options) { o.Workers = workers }
}
