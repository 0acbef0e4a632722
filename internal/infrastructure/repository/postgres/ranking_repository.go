package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-stats/internal/domain/ranking"
	qb "github.com/riskibarqy/fantasy-stats/internal/platform/querybuilder"
)

type RankingRepository struct {
	db *sqlx.DB
}

func NewRankingRepository(db *sqlx.DB) *RankingRepository {
	return &RankingRepository{db: db}
}

func (r *RankingRepository) ListByTeam(ctx context.Context, teamID int64) ([]ranking.Ranking, error) {
	query, args, err := qb.Select("*").From("team_rankings").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("season ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select rankings by team query: %w", err)
	}

	var rows []rankingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select rankings by team: %w", err)
	}

	out := make([]ranking.Ranking, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *RankingRepository) Summary(ctx context.Context) (ranking.Summary, error) {
	query, args, err := qb.Select(
		"COUNT(DISTINCT season) AS total_seasons",
		"MAX(season) AS latest_season",
	).From("team_rankings").ToSQL()
	if err != nil {
		return ranking.Summary{}, fmt.Errorf("build ranking summary query: %w", err)
	}

	var row rankingSummaryRowModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return ranking.Summary{}, fmt.Errorf("get ranking summary: %w", err)
	}

	return ranking.Summary{
		TotalSeasons: row.TotalSeasons,
		LatestSeason: int(nullInt64ToInt64(row.LatestSeason)),
		HasSeasons:   row.LatestSeason.Valid,
	}, nil
}

func (r *RankingRepository) ListChampions(ctx context.Context, limit int) ([]ranking.Champion, error) {
	query, args, err := qb.Select("r.season", "r.team_id", "t.team_name").From("team_rankings r").
		Join("teams t", "t.team_id = r.team_id").
		Where(qb.Eq("r.championship", true)).
		OrderBy("r.season DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select champions query: %w", err)
	}

	var rows []championRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select champions: %w", err)
	}

	out := make([]ranking.Champion, 0, len(rows))
	for _, row := range rows {
		out = append(out, ranking.Champion{Season: row.Season, TeamID: row.TeamID, TeamName: row.TeamName})
	}
	return out, nil
}

func (r *RankingRepository) TopTeamsByPoints(ctx context.Context, limit int) ([]ranking.TeamPoints, error) {
	query, args, err := qb.Select("t.team_id", "t.team_name", "COALESCE(SUM(r.total_points), 0) AS total_points").
		From("teams t").
		Join("team_rankings r", "r.team_id = t.team_id").
		GroupBy("t.team_id", "t.team_name").
		OrderBy("total_points DESC", "t.team_name").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build top teams by points query: %w", err)
	}

	var rows []teamPointsRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select top teams by points: %w", err)
	}

	out := make([]ranking.TeamPoints, 0, len(rows))
	for _, row := range rows {
		out = append(out, ranking.TeamPoints{TeamID: row.TeamID, TeamName: row.TeamName, TotalPoints: row.TotalPoints})
	}
	return out, nil
}
