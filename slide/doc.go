// Package slide computes element-count sliding windows: one result per
// input element, with the window reaching Before elements back and After
// elements forward from each position.
//
// 🚀 What is slide?
//
//	The size-stable workhorse of the module: for a sequence of length n,
//	Slide always returns exactly n results, one per position, where
//	position i sees the slice x[i-before .. i+after] clamped to the
//	sequence.
//
// Window rules:
//
//   - WithBefore(core.Count(k)) / WithAfter(core.Count(k)) — k elements
//     back/forward; the window clamps at the edges.
//   - core.UnboundedExtent() — reach all the way to the corresponding edge
//     (cumulative / "expanding" windows).
//   - Negative counts shift the window off the current position; when that
//     shifts start past stop, the window is legitimately empty (f receives
//     a nil slice) — it is not an error.
//   - WithComplete() — windows whose theoretical extent falls outside the
//     sequence are NOT computed; their slots keep the zero value, and
//     SlideMasked reports which slots are real via a validity mask.
//
// The n-ary variants (Slide2, SlideN) recycle all sequences to one common
// size first (length-1 broadcasts), then slice every sequence with the
// same boundary pair.
//
// Equivalence: for bounded extents, Slide(x, f, WithBefore(Count(b)),
// WithAfter(Count(a))) equals Hop with starts[i]=i-b, stops[i]=i+a.
//
// Complexity: O(n) boundary resolution plus n applications of f.
package slide
