// SPDX-License-Identifier: MIT

package sentiment

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ClassifyAll classifies items concurrently with at most workers goroutines.
// Results keep input order. The first error (or ctx cancellation) stops
// scheduling further items and is returned.
func (c *Classifier) ClassifyAll(ctx context.Context, items []Scores, workers int) ([]Result, error) {
	results, err := fanOut(ctx, len(items), workers, func(i int) (Result, error) {
		return c.Classify(items[i].Positive, items[i].Negative)
	})
	if err != nil {
		return nil, err
	}
	c.logger.Debug("batch classified", "items", len(items), "workers", workers)

	return results, nil
}

// ClassifyAll is Classifier.ClassifyAll with per-item timings.
func (t *Timer) ClassifyAll(ctx context.Context, items []Scores, workers int) ([]TimedResult, error) {
	results, err := fanOut(ctx, len(items), workers, func(i int) (TimedResult, error) {
		return t.Classify(items[i].Positive, items[i].Negative)
	})
	if err != nil {
		return nil, err
	}
	t.c.logger.Debug("timed batch classified", "items", len(items), "workers", workers)

	return results, nil
}

// fanOut runs fn for every index in [0,n) on a bounded errgroup; each call
// writes only its own slot, so no further synchronization is needed.
func fanOut[T any](ctx context.Context, n, workers int, fn func(i int) (T, error)) ([]T, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrWorkers, workers)
	}

	out := make([]T, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := fn(i)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			out[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
