package app

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/fantasy-stats/internal/config"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/domain/matchup"
	"github.com/riskibarqy/fantasy-stats/internal/domain/nflteam"
	"github.com/riskibarqy/fantasy-stats/internal/domain/playerscore"
	"github.com/riskibarqy/fantasy-stats/internal/domain/ranking"
	"github.com/riskibarqy/fantasy-stats/internal/domain/team"
	cacherepo "github.com/riskibarqy/fantasy-stats/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fantasy-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-stats/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/fantasy-stats/internal/platform/cache"
	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

type repositories struct {
	leagues      league.Repository
	teams        team.Repository
	rankings     ranking.Repository
	matchups     matchup.Repository
	playerScores playerscore.Repository
	nflTeams     nflteam.Repository
}

// newRepositories serves the seeded archive unless DB_ENABLED is set.
func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func(), error) {
	var (
		repos   repositories
		cleanup = func() {}
	)

	if cfg.DBEnabled {
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, nil, err
		}
		cleanup = func() {
			if err := db.Close(); err != nil {
				logger.Warn("close database failed", "error", err)
			}
		}

		repos = repositories{
			leagues:      postgres.NewLeagueRepository(db),
			teams:        postgres.NewTeamRepository(db),
			rankings:     postgres.NewRankingRepository(db),
			matchups:     postgres.NewMatchupRepository(db),
			playerScores: postgres.NewPlayerScoreRepository(db),
			nflTeams:     postgres.NewNFLTeamRepository(db),
		}
		logger.Info("storage ready", "backend", "postgres", "db_name", cfg.DatabaseName())
	} else {
		data := memory.SeedDataset()
		repos = repositories{
			leagues:      memory.NewLeagueRepository(data.Leagues),
			teams:        memory.NewTeamRepository(data.Teams, data.Rankings),
			rankings:     memory.NewRankingRepository(data.Rankings, data.Teams),
			matchups:     memory.NewMatchupRepository(data.Matchups, data.Teams),
			playerScores: memory.NewPlayerScoreRepository(data.PlayerScores),
			nflTeams:     memory.NewNFLTeamRepository(data.NFLTeamStats),
		}
		logger.Info("storage ready", "backend", "memory", "reason", "DB_ENABLED=false")
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore[any](cfg.CacheTTL)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
		repos.rankings = cacherepo.NewRankingRepository(repos.rankings, store)
		logger.Info("repository cache enabled", "ttl", cfg.CacheTTL.String())
	}

	return repos, cleanup, nil
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", cfg.PostgresDSN(),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(cfg.DatabaseName()),
		otelsql.WithQueryFormatter(compactQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	otelsql.ReportDBStatsMetrics(db.DB)
	return db, nil
}

const maxSpanQueryBytes = 512

// compactQuery flattens multi-line SQL into a single span attribute value.
func compactQuery(query string) string {
	compact := strings.Join(strings.Fields(query), " ")
	if len(compact) <= maxSpanQueryBytes {
		return compact
	}

	cut := maxSpanQueryBytes
	for cut > 0 && !utf8.RuneStart(compact[cut]) {
		cut--
	}
	return compact[:cut] + "..."
}
