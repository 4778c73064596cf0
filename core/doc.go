// Package core defines the primitives shared by every window variant:
// boundary pairs, window extents, size recycling, index validation,
// cast strategies, and the sequential/parallel apply loop.
//
// All sibling packages (hop, slide, slidex, period) speak in terms of
// core.Bounds — an inclusive (Start, Stop) pair of 0-based positions —
// and core.Extent — a before/after magnitude that is either a signed
// element count or the Unbounded sentinel.
//
// This file layout:
//
//	types.go    — Bounds, Extent
//	bounds.go   — element-count boundary resolution & completeness
//	recycle.go  — common-size recycling of parallel slices
//	validate.go — index monotonicity / missing-value screening
//	cast.go     — Caster strategies for dynamically typed vector assembly
//	run.go      — ordered or parallel application over disjoint output slots
//
// Errors:
//
//	ErrSizeMismatch - slice lengths are not recyclable to one common size.
//	ErrIndexOrder   - index values are not non-decreasing.
//	ErrIndexMissing - index contains a missing value.
//	ErrCast         - a result element cannot be cast to the requested type.
package core
