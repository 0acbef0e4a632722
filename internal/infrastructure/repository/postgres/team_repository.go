package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-stats/internal/domain/team"
	qb "github.com/riskibarqy/fantasy-stats/internal/platform/querybuilder"
)

var teamColumns = []string{"t.team_id", "t.team_name", "t.user_id", "t.roster"}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From("teams t").
		OrderBy("t.team_name", "t.team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From("teams t").
		Where(qb.Eq("t.team_id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *TeamRepository) Count(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("teams").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count teams query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count teams: %w", err)
	}
	return total, nil
}

func (r *TeamRepository) ListStats(ctx context.Context) ([]team.Stats, error) {
	columns := append(append([]string(nil), teamColumns...),
		"COALESCE(SUM(r.wins), 0) AS total_wins",
		"COALESCE(SUM(r.losses), 0) AS total_losses",
		"COUNT(r.id) FILTER (WHERE r.championship) AS championships",
		"COUNT(DISTINCT r.season) AS seasons_played",
		"COALESCE(MIN(r.rank), 0) AS best_rank",
	)
	query, args, err := qb.Select(columns...).From("teams t").
		LeftJoin("team_rankings r", "r.team_id = t.team_id").
		GroupBy(teamColumns...).
		OrderBy("t.team_name", "t.team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team stats query: %w", err)
	}

	var rows []teamStatsRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team stats: %w", err)
	}

	out := make([]team.Stats, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Stats{
			Team:          row.toDomain(),
			TotalWins:     row.TotalWins,
			TotalLosses:   row.TotalLosses,
			Championships: row.Championships,
			SeasonsPlayed: row.SeasonsPlayed,
			BestRank:      row.BestRank,
		})
	}
	return out, nil
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:     m.TeamID,
		Name:   m.TeamName,
		UserID: nullInt64ToInt64(m.UserID),
		Roster: m.Roster,
	}
}
