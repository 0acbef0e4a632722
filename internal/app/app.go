package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/fantasy-stats/external/sleeper"
	"github.com/riskibarqy/fantasy-stats/internal/config"
	"github.com/riskibarqy/fantasy-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
	"github.com/riskibarqy/fantasy-stats/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-stats/internal/usecase"
)

// NewHTTPServer wires storage, the Sleeper client and the use cases behind
// the HTTP router. The returned cleanup releases DB and Redis connections.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	cleanups := make([]func(), 0, 2)
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	repos, closeRepos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanups = append(cleanups, closeRepos)

	catalogCache, closeCatalog, err := newPlayerCatalogCache(ctx, cfg, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	cleanups = append(cleanups, closeCatalog)

	provider := sleeper.NewClient(sleeper.ClientConfig{
		BaseURL:        cfg.SleeperBaseURL,
		Timeout:        cfg.SleeperTimeout,
		PlayersTimeout: cfg.SleeperPlayersTimeout,
		Logger:         logger.Named("sleeper"),
		CircuitBreaker: resilience.Config{
			Enabled:          cfg.SleeperCircuitEnabled,
			FailureThreshold: cfg.SleeperCircuitFailureCount,
			OpenTimeout:      cfg.SleeperCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SleeperCircuitHalfOpenMaxReq,
		},
	})

	historySvc := usecase.NewHistoryService(repos.teams, repos.rankings, repos.matchups, repos.playerScores, repos.nflTeams)
	normalizer := usecase.NewTeamNormalizer(provider, logger)
	rosterSvc := usecase.NewRosterService(provider, catalogCache, cfg.SleeperPlayersCacheTTL, logger)
	reconcileSvc := usecase.NewReconcileService(normalizer, repos.teams, repos.leagues, logger)
	profileSvc := usecase.NewTeamProfileService(historySvc, normalizer, rosterSvc, reconcileSvc)

	handler := httpapi.NewHandler(historySvc, reconcileSvc, profileSvc, rosterSvc, cfg.SleeperLeagueID, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}
