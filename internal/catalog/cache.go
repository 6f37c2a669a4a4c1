package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	errx "github.com/giftgenie-teelab/server/internal/core/error"
	"github.com/giftgenie-teelab/server/internal/metrics"
	"github.com/giftgenie-teelab/server/internal/model"
	logx "github.com/giftgenie-teelab/server/pkg/logger"
)

// Cached is a read-through Redis cache in front of another catalog.
// Cache failures are logged and bypassed; they never fail a search.
type Cached struct {
	next model.Catalog
	rdb  redis.Cmdable
	ttl  time.Duration
}

func NewCached(next model.Catalog, rdb redis.Cmdable, ttl time.Duration) *Cached {
	return &Cached{next: next, rdb: rdb, ttl: ttl}
}

func (c *Cached) cacheKey(q model.ProductQuery) string {
	tags := SplitTags(strings.ToLower(q.Tags))
	return fmt.Sprintf("catalog:products:%s:%d", strings.Join(tags, ","), q.Limit)
}

func (c *Cached) SearchProducts(ctx context.Context, q model.ProductQuery) ([]model.Product, error) {
	key := c.cacheKey(q)

	if products, ok := c.load(ctx, key); ok {
		metrics.CatalogCacheHits.Inc()
		return products, nil
	}
	metrics.CatalogCacheMisses.Inc()

	products, err := c.next.SearchProducts(ctx, q)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, products)
	return products, nil
}

func (c *Cached) load(ctx context.Context, key string) ([]model.Product, bool) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err = errx.WrapRedis(err); err != redis.Nil {
			logx.Warn().Err(err).Str("key", key).Msg("catalog cache read failed; bypassing")
		}
		return nil, false
	}

	var products []model.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		logx.Warn().Err(err).Str("key", key).Msg("corrupt catalog cache entry; bypassing")
		return nil, false
	}
	return products, true
}

func (c *Cached) store(ctx context.Context, key string, products []model.Product) {
	b, err := json.Marshal(products)
	if err != nil {
		logx.Warn().Err(err).Str("key", key).Msg("failed to marshal catalog cache entry")
		return
	}
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		logx.Warn().Err(errx.WrapRedis(err)).Str("key", key).Dur("ttl", c.ttl).Msg("catalog cache write failed")
	}
}

var _ model.Catalog = (*Cached)(nil)
