package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/fantasy-stats/internal/config"
	catalogcache "github.com/riskibarqy/fantasy-stats/internal/infrastructure/cache"
	basecache "github.com/riskibarqy/fantasy-stats/internal/platform/cache"
	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
	"github.com/riskibarqy/fantasy-stats/internal/usecase"
)

func newPlayerCatalogCache(ctx context.Context, cfg config.Config, logger *logging.Logger) (usecase.PlayerCatalogCache, func(), error) {
	if cfg.CacheBackend != config.CacheBackendRedis {
		logger.Info("player catalog cache ready", "backend", config.CacheBackendMemory)
		return catalogcache.NewMemoryPlayerCatalogCache(basecache.NewStore[usecase.PlayerCatalog](cfg.SleeperPlayersCacheTTL)), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
	}

	logger.Info("player catalog cache ready", "backend", config.CacheBackendRedis, "addr", cfg.RedisAddr)
	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Warn("close redis failed", "error", err)
		}
	}
	return catalogcache.NewRedisPlayerCatalogCache(client, cfg.RedisKeyPrefix, logger), cleanup, nil
}
