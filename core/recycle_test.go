package core_test

import (
	"testing"

	"github.com/katalvlaran/slider/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecycleLen_Compatible checks the broadcast rule: lengths equal to the
// common size or 1 recycle; anything else is ErrSizeMismatch.
func TestRecycleLen_Compatible(t *testing.T) {
	n, err := core.RecycleLen(4, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = core.RecycleLen(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = core.RecycleLen(4, 3)
	assert.ErrorIs(t, err, core.ErrSizeMismatch)
}

// TestRecycleLen_Empty checks the degenerate no-argument and zero-length cases.
func TestRecycleLen_Empty(t *testing.T) {
	n, err := core.RecycleLen()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// A zero-length slice only recycles with other zero-length slices.
	_, err = core.RecycleLen(0, 4)
	assert.ErrorIs(t, err, core.ErrSizeMismatch)
}

// TestRecycled verifies length-1 broadcast element access.
func TestRecycled(t *testing.T) {
	one := []string{"x"}
	many := []string{"a", "b", "c"}

	assert.Equal(t, "x", core.Recycled(one, 2))
	assert.Equal(t, "c", core.Recycled(many, 2))
}

// TestBroadcast verifies materialized recycling: same-length passthrough,
// length-1 repetition, and mismatch rejection.
func TestBroadcast(t *testing.T) {
	got, err := core.Broadcast([]int{7}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7, 7}, got)

	src := []int{1, 2, 3}
	got, err = core.Broadcast(src, 3)
	require.NoError(t, err)
	assert.Equal(t, src, got)

	_, err = core.Broadcast([]int{1, 2}, 3)
	assert.ErrorIs(t, err, core.ErrSizeMismatch)
}
