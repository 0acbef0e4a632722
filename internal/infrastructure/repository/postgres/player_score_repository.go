package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-stats/internal/domain/playerscore"
	qb "github.com/riskibarqy/fantasy-stats/internal/platform/querybuilder"
)

type PlayerScoreRepository struct {
	db *sqlx.DB
}

func NewPlayerScoreRepository(db *sqlx.DB) *PlayerScoreRepository {
	return &PlayerScoreRepository{db: db}
}

func (r *PlayerScoreRepository) HighestByTeam(ctx context.Context, teamID int64) (playerscore.PlayerScore, bool, error) {
	query, args, err := qb.Select(
		"ps.id", "ps.player_name", "ps.position", "ps.team_id", "ps.fantasy_points",
		"n.abbreviation AS nfl_team", "ps.matchup_id",
	).From("player_scores ps").
		LeftJoin("nfl_teams n", "n.id = ps.nfl_team_id").
		Where(qb.Eq("ps.team_id", teamID)).
		OrderBy("ps.fantasy_points DESC", "ps.id ASC").
		Limit(1).
		ToSQL()
	if err != nil {
		return playerscore.PlayerScore{}, false, fmt.Errorf("build highest player score query: %w", err)
	}

	var row playerScoreRowModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return playerscore.PlayerScore{}, false, nil
		}
		return playerscore.PlayerScore{}, false, fmt.Errorf("get highest player score: %w", err)
	}

	return playerscore.PlayerScore{
		ID:            row.ID,
		PlayerName:    row.PlayerName,
		Position:      row.Position,
		TeamID:        row.TeamID,
		FantasyPoints: row.FantasyPoints,
		NFLTeam:       nullStringToString(row.NFLTeam),
		MatchupID:     nullInt64ToInt64(row.MatchupID),
	}, true, nil
}

func (r *PlayerScoreRepository) TopPlayersByTeam(ctx context.Context, teamID int64, limit int) ([]playerscore.PlayerTotal, error) {
	query, args, err := qb.Select(
		"player_name",
		"SUM(fantasy_points) AS total_points",
		"COUNT(*) AS games",
		"AVG(fantasy_points) AS average_points",
	).From("player_scores").
		Where(qb.Eq("team_id", teamID)).
		GroupBy("player_name").
		OrderBy("total_points DESC", "player_name").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build top players by team query: %w", err)
	}

	var rows []playerTotalRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select top players by team: %w", err)
	}

	out := make([]playerscore.PlayerTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerscore.PlayerTotal(row))
	}
	return out, nil
}
