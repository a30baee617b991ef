package path

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/gravitas-games/hexroute/pkg/hexcore/hex"
)

// Route is one start/end pair of a batch.
type Route struct {
	Start hex.Hex
	End   hex.Hex
}

// Batch computes WrappedPath for every route concurrently, at most workers at
// a time (workers <= 0 means one per route). Results are index-aligned with
// routes. The first failure cancels routes that have not started yet.
//
// The grid must not be modified while the batch runs.
func Batch(ctx context.Context, r *Resolver, routes []Route, workers int) ([]Path, error) {
	out := make([]Path, len(routes))
	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, rt := range routes {
		i, rt := i, rt
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := r.WrappedPath(rt.Start, rt.End)
			if err != nil {
				return fmt.Errorf("route %d: %w", i, err)
			}
			out[i] = p
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
