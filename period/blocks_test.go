package period_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/slider/period"
	"github.com/stretchr/testify/assert"
)

// TestPartition_CollapsesRuns verifies maximal runs of equal labels
// collapse into single blocks with inclusive position ranges.
func TestPartition_CollapsesRuns(t *testing.T) {
	idx := []int{1, 2, 11, 12, 13, 25}

	got := period.Partition(idx, period.Every(10))
	want := []period.Block[int]{
		{Label: 0, First: 0, Last: 1},
		{Label: 10, First: 2, Last: 4},
		{Label: 20, First: 5, Last: 5},
	}
	assert.Equal(t, want, got)
}

// TestPartition_Empty returns no blocks for an empty index.
func TestPartition_Empty(t *testing.T) {
	assert.Empty(t, period.Partition(nil, period.Every(10)))
}

// TestPartition_MonthLabels floors timestamps to month starts and groups
// consecutive same-month rows.
func TestPartition_MonthLabels(t *testing.T) {
	d := func(m time.Month, day int) time.Time {
		return time.Date(2019, m, day, 15, 4, 5, 0, time.UTC)
	}
	idx := []time.Time{d(time.August, 27), d(time.August, 29), d(time.November, 26), d(time.November, 28)}

	got := period.Partition(idx, period.Month(1))
	assert.Len(t, got, 2)
	assert.Equal(t, time.Date(2019, time.August, 1, 0, 0, 0, 0, time.UTC), got[0].Label)
	assert.Equal(t, 1, got[0].Last)
	assert.Equal(t, time.Date(2019, time.November, 1, 0, 0, 0, 0, time.UTC), got[1].Label)
	assert.Equal(t, period.Block[time.Time]{Label: got[1].Label, First: 2, Last: 3}, got[1])
}

// TestEvery_NegativeAnchoring verifies flooring toward negative infinity:
// -1 belongs to the [-10, -1] block, not [0, 9].
func TestEvery_NegativeAnchoring(t *testing.T) {
	f := period.Every(10)
	assert.Equal(t, -10, f(-1))
	assert.Equal(t, -10, f(-10))
	assert.Equal(t, 0, f(0))
	assert.Equal(t, 0, f(9))
	assert.Equal(t, 10, f(10))
}
