package util

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// RunErrgroupWorker calls f for each index in [0, n), running at most size
// calls at once. The first error cancels the context of the remaining calls
// and is returned.
func RunErrgroupWorker(ctx context.Context, size, n int64, f func(context.Context, int64) error) error {
	if n < 1 {
		return nil
	}

	if size < 1 {
		size = 1
	}

	sem := semaphore.NewWeighted(size)
	eg, ectx := errgroup.WithContext(ctx)

	for i := int64(0); i < n; i++ {
		if err := sem.Acquire(ectx, 1); err != nil {
			break
		}

		index := i
		eg.Go(func() error {
			defer sem.Release(1)

			return f(ectx, index)
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}
