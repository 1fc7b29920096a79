// Package workers runs a fixed-size pool of goroutines over striped index
// ranges.
package workers

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Count resolves a configured pool size: n <= 0 selects every available
// processing unit.
func Count(n int) int {
	if n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// Stripe runs fn once per worker in its own goroutine and waits for all of
// them. Worker w is expected to own the indices w, w+n, w+2n, ... of the work.
//
// The context handed to fn is cancelled as soon as any worker returns an
// error; the first error is returned.
func Stripe(ctx context.Context, n int, fn func(ctx context.Context, worker int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for w := range n {
		g.Go(func() error {
			return fn(ctx, w)
		})
	}
	return g.Wait()
}
