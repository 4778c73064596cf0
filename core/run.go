package core

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Run applies fn to every slot 0..n-1, each exactly once.
//
// With workers <= 1 the loop is strictly sequential and in slot order.
// With workers > 1 slots run on an errgroup bounded to that many
// goroutines; slots are disjoint, so no locking is needed beyond the
// group's own synchronization. Either way the first error cancels the
// remaining work and is returned; callers discard the whole output on
// error, so no partial result escapes.
func Run(n, workers int, fn func(slot int) error) error {
	if workers <= 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}

		return nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error { return fn(i) })
	}

	return g.Wait()
}
