package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-stats/internal/domain/matchup"
	qb "github.com/riskibarqy/fantasy-stats/internal/platform/querybuilder"
)

type MatchupRepository struct {
	db *sqlx.DB
}

func NewMatchupRepository(db *sqlx.DB) *MatchupRepository {
	return &MatchupRepository{db: db}
}

func (r *MatchupRepository) ListByTeam(ctx context.Context, teamID int64) ([]matchup.Matchup, error) {
	query, args, err := qb.Select(
		"m.id", "m.season", "m.week",
		"m.team1_id", "t1.team_name AS team1_name",
		"m.team2_id", "t2.team_name AS team2_name",
		"m.team1_score", "m.team2_score", "m.match_date",
		"m.is_playoff", "m.is_championship",
	).From("matchups m").
		LeftJoin("teams t1", "t1.team_id = m.team1_id").
		LeftJoin("teams t2", "t2.team_id = m.team2_id").
		Where(qb.Or(qb.Eq("m.team1_id", teamID), qb.Eq("m.team2_id", teamID))).
		OrderBy("m.season ASC", "m.week ASC", "m.id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matchups by team query: %w", err)
	}

	var rows []matchupRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matchups by team: %w", err)
	}

	out := make([]matchup.Matchup, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
