package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	platformcache "github.com/riskibarqy/fantasy-stats/internal/platform/cache"
	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
	"github.com/riskibarqy/fantasy-stats/internal/usecase"
)

// MemoryPlayerCatalogCache keeps the catalog in process memory.
type MemoryPlayerCatalogCache struct {
	store *platformcache.Store[usecase.PlayerCatalog]
}

func NewMemoryPlayerCatalogCache(store *platformcache.Store[usecase.PlayerCatalog]) *MemoryPlayerCatalogCache {
	if store == nil {
		store = platformcache.NewStore[usecase.PlayerCatalog](usecase.DefaultPlayerCatalogCacheTTL)
	}
	return &MemoryPlayerCatalogCache{store: store}
}

func (c *MemoryPlayerCatalogCache) Get(ctx context.Context, key string) (usecase.PlayerCatalog, bool) {
	return c.store.Get(ctx, key)
}

func (c *MemoryPlayerCatalogCache) Set(ctx context.Context, key string, catalog usecase.PlayerCatalog, ttl time.Duration) {
	c.store.SetWithTTL(ctx, key, catalog, ttl)
}

// RedisPlayerCatalogCache shares the catalog between instances. Redis errors
// are logged and behave as a miss.
type RedisPlayerCatalogCache struct {
	client redis.Cmdable
	prefix string
	logger *logging.Logger
}

func NewRedisPlayerCatalogCache(client redis.Cmdable, prefix string, logger *logging.Logger) *RedisPlayerCatalogCache {
	if logger == nil {
		logger = logging.Default()
	}
	return &RedisPlayerCatalogCache{
		client: client,
		prefix: strings.TrimSpace(prefix),
		logger: logger,
	}
}

func (c *RedisPlayerCatalogCache) Get(ctx context.Context, key string) (usecase.PlayerCatalog, bool) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.WarnContext(ctx, "redis get player catalog failed", "key", c.key(key), "error", err)
		return nil, false
	}

	var catalog usecase.PlayerCatalog
	if err := sonic.Unmarshal(raw, &catalog); err != nil {
		c.logger.WarnContext(ctx, "decode cached player catalog failed", "key", c.key(key), "error", err)
		return nil, false
	}
	return catalog, true
}

func (c *RedisPlayerCatalogCache) Set(ctx context.Context, key string, catalog usecase.PlayerCatalog, ttl time.Duration) {
	raw, err := sonic.Marshal(catalog)
	if err != nil {
		c.logger.WarnContext(ctx, "encode player catalog failed", "key", c.key(key), "error", err)
		return
	}
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, c.key(key), raw, ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "redis set player catalog failed", "key", c.key(key), "error", err)
	}
}

func (c *RedisPlayerCatalogCache) key(key string) string {
	if c.prefix == "" {
		return key
	}
	return c.prefix + ":" + key
}
