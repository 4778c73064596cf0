// Package hop implements the universal window engine: given explicit
// (start, stop) position pairs, it slices a sequence and applies a
// caller-supplied function to every window, collecting results in order.
//
// Every higher-level variant (slide, slidex, period) reduces its window
// specification to boundary pairs and hands them to this engine.
//
// Contract:
//  1. starts and stops are recycled to one common length L (a length-1
//     slice broadcasts); incompatible lengths fail before any window runs.
//  2. Each pair is clamped independently to the valid position range;
//     out-of-range values are not an error, and start > stop after
//     clamping selects the empty window (f receives a nil slice).
//  3. f runs once per window, strictly in output order by default; the
//     first error aborts the whole call with no partial result.
//  4. WithParallel(w) runs windows on up to w goroutines. Per-window
//     applications are pure with respect to each other (each output slot
//     is written exactly once), so parallel output is identical to
//     sequential output.
//
// HopVec adds the type-stable path: each raw result must be a scalar
// (a length-1 slice is unwrapped; any other slice is ErrNonScalar), then
// every scalar is coerced through a core.Caster, failing on the first
// incompatible element.
//
// Complexity: O(L) applications plus whatever f costs per window.
package hop
