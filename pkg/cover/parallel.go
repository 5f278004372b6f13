package cover

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// searchParallel runs one shard per subset size, at most workers at a time,
// and reduces the per-size results under the same ordering the sequential
// search uses.
func (in *instance) searchParallel(ctx context.Context, workers int) (*candidate, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	results := make([]*candidate, len(in.costs))
	for r := 1; r <= len(in.costs); r++ {
		r := r
		g.Go(func() error {
			found, err := in.searchSize(ctx, r)
			if err != nil {
				return err
			}
			logrus.Debugf("Finished subsets of size %d.", r)
			results[r-1] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var best *candidate
	for _, found := range results {
		if found != nil && found.better(best) {
			best = found
		}
	}
	return best, nil
}
