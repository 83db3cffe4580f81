package image

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Wiiktor22/expo/log"
)

// Prefetcher warms the loader's cache for a set of sources ahead of
// rendering. Each source is loaded through a throwaway view, disposed once
// the attempt finished.
type Prefetcher struct {
	logger  log.ILogger
	factory log.ILoggerFactory
	loader  *Loader
	limit   int
}

// Init this class
func (me *Prefetcher) Init(loader *Loader, limit int, logger log.ILogger, factory log.ILoggerFactory) *Prefetcher {
	me.logger = logger
	me.factory = factory
	me.loader = loader
	if limit < 1 {
		limit = 1
	}
	me.limit = limit
	return me
}

// Prefetch loads the given sources concurrently and returns the first
// error encountered, if any
func (me *Prefetcher) Prefetch(ctx context.Context, uris []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(me.limit)

	for _, uri := range uris {
		uri := uri
		g.Go(func() error {
			view, err := New(uri, me.factory)
			if err != nil {
				me.logger.Warnf("Skipping prefetch of %s: %v", uri, err)
				return err
			}
			defer view.Dispose()

			_, err = me.loader.Load(ctx, view)
			return err
		})
	}

	return g.Wait()
}

// NewPrefetcher creates a Prefetcher over the given loader
func NewPrefetcher(loader *Loader, limit int, factory log.ILoggerFactory) *Prefetcher {
	return new(Prefetcher).Init(loader, limit, factory.NewLogger("image-prefetch"), factory)
}
