package core

// ResolveBounds computes one unclamped boundary pair per position of a
// sequence (or block run) of length n, from element-count extents:
//
//	start(i) = i - before    (0 when before is unbounded)
//	stop(i)  = i + after     (n-1 when after is unbounded)
//
// Results are deliberately NOT clamped here: the theoretical extent is what
// completeness filtering inspects, and the hop engine clamps independently.
//
// Complexity: O(n) time, O(n) memory.
func ResolveBounds(n int, before, after Extent) []Bounds {
	out := make([]Bounds, n)
	for i := 0; i < n; i++ {
		b := Bounds{Start: 0, Stop: n - 1}
		if !before.Unbounded {
			b.Start = i - before.N
		}
		if !after.Unbounded {
			b.Stop = i + after.N
		}
		out[i] = b
	}

	return out
}

// Window clamps b to x and returns the selected slice; empty windows
// yield nil. The slice aliases x and must be treated as read-only.
func Window[T any](x []T, b Bounds) []T {
	b = b.Clamp(len(x))
	if b.Empty() {
		return nil
	}

	return x[b.Start : b.Stop+1]
}

// Incomplete reports whether the theoretical (unclamped) extent of b falls
// outside the observed position range [0, n-1]. Unbounded sides are pinned
// to the edge by construction and therefore always complete.
func Incomplete(n int, b Bounds, before, after Extent) bool {
	if !before.Unbounded && b.Start < 0 {
		return true
	}
	if !after.Unbounded && b.Stop > n-1 {
		return true
	}

	return false
}
