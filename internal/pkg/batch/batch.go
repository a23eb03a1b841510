// Package batch runs concurrent fetches with all-or-nothing semantics
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultLimit caps in-flight calls when a caller passes a limit <= 0
const DefaultLimit = 8

// Map calls fn for every item concurrently, at most limit at a time, and
// returns the results in input order. The first error cancels the context
// handed to the remaining calls and is returned with no partial results.
func Map[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	results := make([]R, len(items))
	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := fn(gctx, item)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
