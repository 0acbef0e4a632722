package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-stats/internal/domain/nflteam"
	qb "github.com/riskibarqy/fantasy-stats/internal/platform/querybuilder"
)

type NFLTeamRepository struct {
	db *sqlx.DB
}

func NewNFLTeamRepository(db *sqlx.DB) *NFLTeamRepository {
	return &NFLTeamRepository{db: db}
}

func (r *NFLTeamRepository) ListStatsBySeason(ctx context.Context, season int) ([]nflteam.SeasonStats, error) {
	builder := qb.Select(
		"n.id", "n.name", "n.abbreviation", "n.city", "n.conference", "n.division",
		"s.season", "s.total_fantasy_points", "s.games_played", "s.average_points",
	).From("nfl_team_stats s").
		Join("nfl_teams n", "n.id = s.nfl_team_id").
		OrderBy("s.season DESC", "n.name ASC")
	if season > 0 {
		builder = builder.Where(qb.Eq("s.season", season))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select nfl team stats query: %w", err)
	}

	var rows []nflTeamStatsRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select nfl team stats: %w", err)
	}

	out := make([]nflteam.SeasonStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
