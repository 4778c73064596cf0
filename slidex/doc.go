// Package slidex computes index-aware sliding windows: window membership
// is decided by index VALUE, not by position, so irregular and
// duration-aware indexes (timestamps with gaps, repeated keys) work
// naturally.
//
// 🚀 How it works
//
//	Each sequence element i carries an index value idx[i] from a sorted,
//	gap-free index. The window around i covers every position p whose
//	index value lies in [Lo(i), Hi(i)], where
//
//	  Lo(i) = before(idx[i])   (the sequence start when unbounded)
//	  Hi(i) = after(idx[i])    (the sequence end when unbounded)
//
//	before/after are caller-supplied shift functions over the index
//	domain (Back/Fwd for numeric indexes, time.Time arithmetic for
//	calendars), so the package never defines what "2 days" means — the
//	index domain does.
//
// Because idx is non-decreasing and the shifts are order-preserving, both
// window ends move monotonically forward as i grows. Boundary resolution
// is therefore one forward sweep with two persistent cursors — overall
// O(n), never re-scanning positions already passed.
//
// Ties: duplicate index values are always included or excluded as a
// group; the inclusive [Lo, Hi] comparison makes splitting a tie across a
// window boundary impossible.
//
// Validation happens before any window evaluates: the index must be
// non-decreasing (core.ErrIndexOrder), free of missing values when a
// WithMissing predicate is declared (core.ErrIndexMissing), and exactly
// as long as the sequence (core.ErrSizeMismatch).
//
// Completeness is judged in value space: a window is incomplete when
// Lo(i) precedes the first index value or Hi(i) exceeds the last.
//
// Performance note: the sweep assumes the shifts are constant for the
// whole call. Per-element-varying shifts would break the monotonicity the
// cursors rely on and would need a binary search per element instead —
// a performance cliff, not a correctness concern, should such a variant
// ever be added.
package slidex
