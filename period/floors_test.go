package period_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/slider/period"
	"github.com/stretchr/testify/assert"
)

func utc(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestMonth_Multiplier verifies 2-month spans anchor at January: Jan/Feb
// share a label, March starts the next.
func TestMonth_Multiplier(t *testing.T) {
	f := period.Month(2)

	assert.Equal(t, utc(2019, time.January, 1), f(utc(2019, time.January, 15)))
	assert.Equal(t, utc(2019, time.January, 1), f(utc(2019, time.February, 28)))
	assert.Equal(t, utc(2019, time.March, 1), f(utc(2019, time.March, 1)))
	assert.Equal(t, utc(2019, time.November, 1), f(utc(2019, time.December, 31)))
}

// TestYear_Decades verifies 10-year spans anchored at year 0.
func TestYear_Decades(t *testing.T) {
	f := period.Year(10)

	assert.Equal(t, utc(2010, time.January, 1), f(utc(2019, time.June, 5)))
	assert.Equal(t, utc(2020, time.January, 1), f(utc(2020, time.January, 1)))
}

// TestWeek_FloorsToMonday checks the ISO week start.
func TestWeek_FloorsToMonday(t *testing.T) {
	f := period.Week()

	// 2019-08-27 was a Tuesday; its week starts Monday the 26th.
	assert.Equal(t, utc(2019, time.August, 26), f(utc(2019, time.August, 27)))
	// A Monday floors to itself.
	assert.Equal(t, utc(2019, time.August, 26), f(utc(2019, time.August, 26)))
	// A Sunday floors back six days.
	assert.Equal(t, utc(2019, time.August, 26), f(utc(2019, time.September, 1)))
}

// TestDay_IgnoresWallClock verifies Day(1) floors any wall-clock time to
// that civil day's UTC midnight.
func TestDay_IgnoresWallClock(t *testing.T) {
	f := period.Day(1)

	noon := time.Date(2019, time.August, 27, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, utc(2019, time.August, 27), f(noon))
}

// TestHour_Minute_Truncate sanity-checks sub-day floors.
func TestHour_Minute_Truncate(t *testing.T) {
	at := time.Date(2019, time.August, 27, 13, 47, 9, 0, time.UTC)

	assert.Equal(t, time.Date(2019, time.August, 27, 12, 0, 0, 0, time.UTC), period.Hour(6)(at))
	assert.Equal(t, time.Date(2019, time.August, 27, 13, 45, 0, 0, time.UTC), period.Minute(15)(at))
}
