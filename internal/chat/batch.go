package chat

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Result pairs a batch request with its reply or validation error
type Result struct {
	Reply *Reply
	Err   error
}

// AskBatch answers reqs concurrently, at most parallelism at a time (unbounded
// when parallelism <= 0). Results keep the order of reqs. Invalid requests
// report their error in Result.Err; only context cancellation fails the batch.
func (s *Service) AskBatch(ctx context.Context, reqs []Request, parallelism int) ([]Result, error) {
	results := make([]Result, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	for i, req := range reqs {
		g.Go(func() error {
			reply, err := s.Ask(gctx, req)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			results[i] = Result{Reply: reply, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
