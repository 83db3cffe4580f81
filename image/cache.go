package image

import (
	"context"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	gocachestore "github.com/eko/gocache/store/go_cache/v4"
	gocache "github.com/patrickmn/go-cache"

	basecfg "github.com/Wiiktor22/expo/image/config"
	"github.com/Wiiktor22/expo/log"
)

// Cache holds decoded assets for their configured ttl, keyed by source uri
type Cache struct {
	logger  log.ILogger
	manager *cache.Cache[*Asset]
	ttl     time.Duration
}

// Init this class
func (me *Cache) Init(cfg *basecfg.Cache, logger log.ILogger) *Cache {
	me.logger = logger
	me.ttl = time.Duration(cfg.TTL) * time.Second

	client := gocache.New(me.ttl, 2*me.ttl)
	me.manager = cache.New[*Asset](gocachestore.NewGoCache(client))

	return me
}

// Get returns the cached asset for the key, or an error on a miss
func (me *Cache) Get(ctx context.Context, key string) (*Asset, error) {
	return me.manager.Get(ctx, key)
}

// Set stores the asset under the key
func (me *Cache) Set(ctx context.Context, key string, asset *Asset) error {
	err := me.manager.Set(ctx, key, asset)
	if err != nil {
		me.logger.Warnf("Failed to cache %s: %v", key, err)
	}
	return err
}

// NewCache creates a Cache
func NewCache(cfg *basecfg.Cache, logger log.ILogger) *Cache {
	return new(Cache).Init(cfg, logger)
}
