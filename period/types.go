package period

import (
	"errors"

	"github.com/katalvlaran/slider/core"
)

// Sentinel errors for block-wise windows.
var (
	// ErrNilFloor indicates a nil flooring function.
	ErrNilFloor = errors.New("period: floor function is nil")
)

// Floor maps an index value to its block label. It MUST preserve order:
// non-decreasing index values must produce non-decreasing labels.
type Floor[K any, L comparable] func(K) L

// Block is a maximal run of consecutive positions sharing one
// period-floored label. First and Last are inclusive positions.
type Block[L comparable] struct {
	Label L
	First int
	Last  int
}

// Options configures one block-wise call. Before and After are counted in
// whole blocks.
type Options struct {
	// Before is the window reach in blocks behind each block.
	Before core.Extent
	// After is the window reach in blocks ahead of each block.
	After core.Extent
	// Complete filters block windows whose theoretical block extent leaves
	// the observed block range.
	Complete bool
	// Workers bounds parallel application; <=1 is sequential.
	Workers int
}

// DefaultOptions returns the current-block-only window.
func DefaultOptions() Options {
	return Options{Before: core.Count(0), After: core.Count(0), Workers: 1}
}

// Option mutates Options.
type Option func(*Options)

// WithBefore sets the backward reach in whole blocks.
func WithBefore(e core.Extent) Option {
	return func(o *Options) { o.Before = e }
}

// WithAfter sets the forward reach in whole blocks.
func WithAfter(e core.Extent) Option {
	return func(o *Options) { o.After = e }
}

// WithComplete skips incomplete block windows, leaving their slots at the
// zero value.
func WithComplete() Option {
	return func(o *Options) { o.Complete = true }
}

// WithParallel allows up to workers concurrent window applications.
func WithParallel(workers int) Option {
	return func(o *Options) { o.Workers = workers }
}
