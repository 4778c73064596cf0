package period

import "time"

// Integer covers the index domains Every can floor.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Every floors an integer index into blocks of the given width, anchored
// at zero: Every(10) groups ..., [-10,-1], [0,9], [10,19], ...
// A width below 1 is treated as 1.
func Every[K Integer](width K) Floor[K, K] {
	if width < 1 {
		width = 1
	}

	return func(k K) K { return floorDiv(k, width) * width }
}

// Year floors to the start of an n-year span anchored at year 0.
// n < 1 is treated as 1. Labels are UTC period starts.
func Year(n int) Floor[time.Time, time.Time] {
	if n < 1 {
		n = 1
	}

	return func(t time.Time) time.Time {
		y := floorDiv(t.Year(), n) * n

		return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
}

// Month floors to the start of an n-month span anchored at January of
// year 0. n < 1 is treated as 1. Labels are UTC period starts.
func Month(n int) Floor[time.Time, time.Time] {
	if n < 1 {
		n = 1
	}

	return func(t time.Time) time.Time {
		m := t.Year()*12 + int(t.Month()) - 1
		m = floorDiv(m, n) * n

		return time.Date(floorDiv(m, 12), time.Month(mod(m, 12)+1), 1, 0, 0, 0, 0, time.UTC)
	}
}

// Week floors to the preceding Monday (ISO week start). Labels are UTC
// period starts.
func Week() Floor[time.Time, time.Time] {
	return func(t time.Time) time.Time {
		d := civilDays(t)
		// 1970-01-05 (day 4) was a Monday.
		d -= mod(d-4, 7)

		return time.Unix(d*86400, 0).UTC()
	}
}

// Day floors to the start of an n-day span anchored at the Unix epoch.
// n < 1 is treated as 1. Labels are UTC period starts.
func Day(n int) Floor[time.Time, time.Time] {
	if n < 1 {
		n = 1
	}
	w := int64(n)

	return func(t time.Time) time.Time {
		d := floorDiv(civilDays(t), w) * w

		return time.Unix(d*86400, 0).UTC()
	}
}

// Hour floors to the start of an n-hour span. n < 1 is treated as 1.
func Hour(n int) Floor[time.Time, time.Time] {
	if n < 1 {
		n = 1
	}

	return func(t time.Time) time.Time {
		return t.UTC().Truncate(time.Duration(n) * time.Hour)
	}
}

// Minute floors to the start of an n-minute span. n < 1 is treated as 1.
func Minute(n int) Floor[time.Time, time.Time] {
	if n < 1 {
		n = 1
	}

	return func(t time.Time) time.Time {
		return t.UTC().Truncate(time.Duration(n) * time.Minute)
	}
}

// civilDays counts whole civil days since the epoch for t's own calendar
// date, independent of its wall-clock time and zone offset.
func civilDays(t time.Time) int64 {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return floorDiv(midnight.Unix(), 86400)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv[K Integer](a, b K) K {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}

// mod returns the non-negative remainder of a/b.
func mod[K Integer](a, b K) K {
	r := a % b
	if r < 0 {
		r += b
	}

	return r
}
