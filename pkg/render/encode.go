package render

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// EncodeFunc turns one group into a renderer-specific payload.
type EncodeFunc[T any] func(ctx context.Context, group []Command) (T, error)

// Encode runs fn over every group with at most workers running at once and
// returns the results in group order. workers <= 0 means one per group.
// The first error cancels the remaining work.
func Encode[T any](ctx context.Context, groups [][]Command, workers int, fn EncodeFunc[T]) ([]T, error) {
	out := make([]T, len(groups))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, group := range groups {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := fn(ctx, group)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
