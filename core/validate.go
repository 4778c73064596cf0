package core

import "fmt"

// ValidateIndex checks an index against the window preconditions:
// no missing values (when isMissing is non-nil) and non-decreasing order
// under cmp. Both checks run before any boundary computation so that no
// window ever evaluates on an invalid index.
//
// cmp follows the standard contract: negative when a < b, zero when equal,
// positive when a > b.
func ValidateIndex[K any](idx []K, cmp func(a, b K) int, isMissing func(K) bool) error {
	if isMissing != nil {
		for i, v := range idx {
			if isMissing(v) {
				return fmt.Errorf("%w: position %d", ErrIndexMissing, i)
			}
		}
	}
	for i := 1; i < len(idx); i++ {
		if cmp(idx[i-1], idx[i]) > 0 {
			return fmt.Errorf("%w: position %d precedes position %d", ErrIndexOrder, i, i-1)
		}
	}

	return nil
}
