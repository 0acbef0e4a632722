package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/riskibarqy/fantasy-stats/internal/config"
	cacherepo "github.com/riskibarqy/fantasy-stats/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
	"github.com/riskibarqy/fantasy-stats/internal/usecase"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:                 config.EnvDev,
		ServiceName:            "fantasy-stats-api",
		HTTPAddr:               ":0",
		ReadTimeout:            time.Second,
		WriteTimeout:           time.Second,
		CacheTTL:               time.Minute,
		CacheBackend:           config.CacheBackendMemory,
		RedisKeyPrefix:         "fantasy-stats",
		SleeperBaseURL:         "http://127.0.0.1:1",
		SleeperTimeout:         time.Second,
		SleeperPlayersTimeout:  time.Second,
		SleeperPlayersCacheTTL: time.Hour,
	}
}

func TestNewRepositories_SeededMemoryWithCache(t *testing.T) {
	cfg := testConfig()
	cfg.CacheEnabled = true

	repos, cleanup, err := newRepositories(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new repositories: %v", err)
	}
	defer cleanup()

	if _, ok := repos.teams.(*cacherepo.TeamRepository); !ok {
		t.Fatalf("expected cached team repository, got %T", repos.teams)
	}
	count, err := repos.teams.Count(context.Background())
	if err != nil || count == 0 {
		t.Fatalf("expected seeded teams, count=%d err=%v", count, err)
	}
	latest, ok, err := repos.leagues.Latest(context.Background())
	if err != nil || !ok || latest.Season != 2024 {
		t.Fatalf("unexpected latest league: %+v ok=%v err=%v", latest, ok, err)
	}
}

func TestNewPlayerCatalogCache_Redis(t *testing.T) {
	server := miniredis.RunT(t)

	cfg := testConfig()
	cfg.CacheBackend = config.CacheBackendRedis
	cfg.RedisAddr = server.Addr()

	cache, cleanup, err := newPlayerCatalogCache(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new catalog cache: %v", err)
	}
	defer cleanup()

	cache.Set(context.Background(), usecase.PlayerCatalogCacheKey, usecase.PlayerCatalog{"1": {FirstName: "Josh"}}, time.Hour)
	if !server.Exists("fantasy-stats:" + usecase.PlayerCatalogCacheKey) {
		t.Fatalf("expected catalog stored in redis")
	}
}

func TestNewPlayerCatalogCache_RedisUnreachable(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	cfg := testConfig()
	cfg.CacheBackend = config.CacheBackendRedis
	cfg.RedisAddr = addr

	if _, _, err := newPlayerCatalogCache(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected ping error for unreachable redis")
	}
}

func TestNewHTTPServer_ServesHealthz(t *testing.T) {
	srv, cleanup, err := NewHTTPServer(context.Background(), testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}
	defer cleanup()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""
	if _, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}
