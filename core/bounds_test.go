package core_test

import (
	"testing"

	"github.com/katalvlaran/slider/core"
	"github.com/stretchr/testify/assert"
)

// TestBounds_Clamp verifies that each end clamps independently and that
// in-range windows are untouched.
func TestBounds_Clamp(t *testing.T) {
	b := core.Bounds{Start: -3, Stop: 10}.Clamp(5)
	assert.Equal(t, core.Bounds{Start: 0, Stop: 4}, b, "both ends clamp to [0, n-1]")

	b = core.Bounds{Start: 1, Stop: 3}.Clamp(5)
	assert.Equal(t, core.Bounds{Start: 1, Stop: 3}, b, "in-range window unchanged")
}

// TestBounds_EmptyAfterClamp verifies that a fully out-of-range window
// clamps to an empty one rather than erroring.
func TestBounds_EmptyAfterClamp(t *testing.T) {
	b := core.Bounds{Start: 7, Stop: 9}.Clamp(5)
	assert.True(t, b.Empty(), "window past the end must clamp empty")
	assert.Equal(t, 0, b.Len())
}

// TestBounds_Len checks inclusive length math.
func TestBounds_Len(t *testing.T) {
	assert.Equal(t, 3, core.Bounds{Start: 2, Stop: 4}.Len())
	assert.Equal(t, 1, core.Bounds{Start: 0, Stop: 0}.Len())
	assert.Equal(t, 0, core.Bounds{Start: 4, Stop: 2}.Len())
}

// TestResolveBounds_Basic checks the start(i)=i-before, stop(i)=i+after
// math with bounded extents, unclamped.
func TestResolveBounds_Basic(t *testing.T) {
	got := core.ResolveBounds(4, core.Count(1), core.Count(0))
	want := []core.Bounds{
		{Start: -1, Stop: 0},
		{Start: 0, Stop: 1},
		{Start: 1, Stop: 2},
		{Start: 2, Stop: 3},
	}
	assert.Equal(t, want, got)
}

// TestResolveBounds_Unbounded checks that unbounded extents pin to the
// sequence edges.
func TestResolveBounds_Unbounded(t *testing.T) {
	got := core.ResolveBounds(3, core.UnboundedExtent(), core.Count(0))
	for i, b := range got {
		assert.Equal(t, 0, b.Start, "unbounded before pins start to 0")
		assert.Equal(t, i, b.Stop)
	}

	got = core.ResolveBounds(3, core.Count(0), core.UnboundedExtent())
	for i, b := range got {
		assert.Equal(t, i, b.Start)
		assert.Equal(t, 2, b.Stop, "unbounded after pins stop to n-1")
	}
}

// TestResolveBounds_NegativeExtents pins the documented behavior that a
// negative before/after shifting start past stop yields an empty window,
// never an error.
func TestResolveBounds_NegativeExtents(t *testing.T) {
	// before=-1 shifts the window start one past the current position.
	got := core.ResolveBounds(3, core.Count(-1), core.Count(0))
	for i, b := range got {
		assert.Equal(t, i+1, b.Start)
		assert.Equal(t, i, b.Stop)
		assert.True(t, b.Empty(), "shifted-past window is empty, not invalid")
	}
}

// TestIncomplete verifies theoretical-extent completeness: clamping is
// irrelevant, only the unclamped reach matters, and unbounded sides are
// always complete.
func TestIncomplete(t *testing.T) {
	n := 5
	assert.True(t, core.Incomplete(n, core.Bounds{Start: -1, Stop: 2}, core.Count(2), core.Count(0)))
	assert.True(t, core.Incomplete(n, core.Bounds{Start: 3, Stop: 5}, core.Count(0), core.Count(2)))
	assert.False(t, core.Incomplete(n, core.Bounds{Start: 0, Stop: 4}, core.Count(2), core.Count(2)))
	assert.False(t, core.Incomplete(n, core.Bounds{Start: 0, Stop: 4}, core.UnboundedExtent(), core.UnboundedExtent()),
		"unbounded extents are complete by construction")
}
