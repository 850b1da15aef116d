package catalog

import (
	"context"
	"fmt"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-dependent/errors"
	"github.com/amp-labs/amp-dependent/logger"
)

const defaultWorkers = 4

// CheckAll validates candidates against the named entry on a bounded worker
// pool. Results come back in candidate order. An already cancelled ctx checks
// nothing; cancelling it mid-batch stops candidates that have not started yet.
// Either way the error wraps the context error and no partial results are returned.
func (c *Catalog) CheckAll(ctx context.Context, name string, candidates []string, workers int) ([]Result, error) {
	factory, ok := c.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownKind, name)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("checking %q: %w", name, err)
	}

	if len(candidates) == 0 {
		return []Result{}, nil
	}

	if workers <= 0 {
		workers = defaultWorkers
	}

	pool := pond.NewResultPool[Result](workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()

	for _, candidate := range candidates {
		group.Submit(func() Result {
			return Result{Name: name, Pair: factory.Pair(candidate)}
		})
	}

	results, err := group.Wait()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}

		return nil, fmt.Errorf("checking %q: %w", name, err)
	}

	logger.Get(ctx).Debug("checked batch", "name", name, "candidates", len(candidates), "workers", workers)

	return results, nil
}
