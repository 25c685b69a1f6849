package web

import (
	"context"
	"time"

	"github.com/karlseguin/ccache/v3"

	"github.com/bledarhoxha/prona/internal/catalog"
	"github.com/bledarhoxha/prona/internal/model"
	"github.com/bledarhoxha/prona/internal/store"
)

const pageCacheTTL = 10 * time.Minute

// pageCache keeps the rendered pages' listing data warm between requests.
// Entries are dropped through the catalog notifier when a mutation touches
// their key, so pages never serve stale data after an admin edit.
type pageCache struct {
	catalog *catalog.Service
	cache   *ccache.Cache[[]model.Property]
}

func newPageCache(svc *catalog.Service) *pageCache {
	pc := &pageCache{
		catalog: svc,
		cache:   ccache.New(ccache.Configure[[]model.Property]().MaxSize(8)),
	}
	svc.Notifier.OnInvalidate(catalog.CollectionKey, func() { pc.cache.Delete(catalog.CollectionKey) })
	svc.Notifier.OnInvalidate(catalog.FeaturedKey, func() { pc.cache.Delete(catalog.FeaturedKey) })
	return pc
}

func (pc *pageCache) properties(ctx context.Context) ([]model.Property, error) {
	if item := pc.cache.Get(catalog.CollectionKey); item != nil && !item.Expired() {
		return item.Value(), nil
	}
	props, err := pc.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	pc.cache.Set(catalog.CollectionKey, props, pageCacheTTL)
	return props, nil
}

func (pc *pageCache) featured(ctx context.Context) ([]model.Property, error) {
	if item := pc.cache.Get(catalog.FeaturedKey); item != nil && !item.Expired() {
		return item.Value(), nil
	}
	props, err := pc.catalog.Featured(ctx, store.FeaturedLimit)
	if err != nil {
		return nil, err
	}
	pc.cache.Set(catalog.FeaturedKey, props, pageCacheTTL)
	return props, nil
}
