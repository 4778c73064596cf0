// Package slider is your in-memory toolkit for rolling, sliding, and
// block-wise window computations over ordered sequences — from the raw
// boundary engine up to index-aware and period-based variants.
//
// 🚀 What is slider?
//
//	A modern, generic, dependency-light library that brings together:
//		• Hop engine: apply any function over explicit (start, stop) windows
//		• Sliding windows: element-count before/after, size-stable output
//		• Index windows: irregular, value-space windows over a sorted index
//		• Period blocks: calendar/period flooring into contiguous blocks
//		• Assembly: list, type-stable vector, and row/column-bound frames
//
// ✨ Why choose slider?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – fail-fast validation, sentinel errors, in-code docs
//   - Pure Go – generics, no cgo, no hidden deps
//   - Extensible – bring your own index domain, period floor, or cast strategy
//
// Under the hood, everything is organized in small focused subpackages:
//
//	core/   — boundary pairs, window extents, recycling & cast primitives
//	hop/    — the universal engine: slice each window, apply, collect
//	slide/  — element-count sliding windows (one result per input element)
//	slidex/ — index-aware windows over an irregular, sorted index
//	period/ — period-floored block partitioning and block-wise windows
//	frame/  — row/column binding of per-window records into frames
//
// Quick ASCII example (before=1, after=1 over 5 elements):
//
//	x:        a   b   c   d   e
//	window0: [a   b]
//	window1: [a   b   c]
//	window2:     [b   c   d]
//	window3:         [c   d   e]
//	window4:             [d   e]
//
// Every variant keeps the same contract: boundaries are resolved first and
// validated up front, the function is applied strictly in output order (or in
// parallel when you opt in — results are identical), and the first error
// aborts the whole call with no partial result.
//
// Dive into each package's doc.go for walkthroughs, invariants, and
// complexity notes.
//
//	go get github.com/katalvlaran/slider
package slider
