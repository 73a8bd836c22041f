package legacy

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MigrateAll runs Retrofit over every store.
//
// Stores are converted concurrently, bounded by WithWorkers. Each store
// must be distinct; the same store must not appear twice. The first error
// cancels the remaining work and is returned.
func MigrateAll(ctx context.Context, stores []Store, opts ...Option) error {
	cfg := newConfig(opts)
	workers := cfg.workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	cfg.log().Info("migrating headers", "count", len(stores), "workers", workers)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, store := range stores {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := retrofit(store, &cfg); err != nil {
				return fmt.Errorf("legacy: header %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}
