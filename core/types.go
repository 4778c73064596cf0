package core

// Bounds is an inclusive (Start, Stop) pair of 0-based positions defining
// one window. Either end may lie outside the sequence before clamping;
// Start > Stop denotes a legitimately empty window, not an error.
type Bounds struct {
	Start int
	Stop  int
}

// Clamp restricts b to the valid position range [0, n-1], each end
// independently. Clamping never turns a non-empty in-range window empty;
// a fully out-of-range window clamps to an empty one.
func (b Bounds) Clamp(n int) Bounds {
	if b.Start < 0 {
		b.Start = 0
	}
	if b.Stop > n-1 {
		b.Stop = n - 1
	}

	return b
}

// Empty reports whether the window selects no positions.
func (b Bounds) Empty() bool { return b.Start > b.Stop }

// Len returns the number of positions the window selects.
func (b Bounds) Len() int {
	if b.Empty() {
		return 0
	}

	return b.Stop - b.Start + 1
}

// Extent describes one side of a window specification: how far the window
// reaches before or after the current position.
//
// An Extent is either a signed element count (negative counts shift the
// window off the current position) or the Unbounded sentinel, which reaches
// to the corresponding edge of the sequence.
type Extent struct {
	// N is the element count; ignored when Unbounded is set.
	N int
	// Unbounded reaches to the first (before) or last (after) position.
	Unbounded bool
}

// Count returns a bounded Extent of n elements. Negative n is allowed and
// shifts the window past the current position.
func Count(n int) Extent { return Extent{N: n} }

// UnboundedExtent returns the sentinel Extent reaching to the sequence edge.
func UnboundedExtent() Extent { return Extent{Unbounded: true} }
