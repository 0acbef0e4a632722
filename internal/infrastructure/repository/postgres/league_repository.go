package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	qb "github.com/riskibarqy/fantasy-stats/internal/platform/querybuilder"
)

var leagueColumns = []string{"id", "season", "draft_id", "roster_positions", "scoring_settings", "divisions"}

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

// newestLeagues orders by season, breaking ties with the larger league id.
func newestLeagues() *qb.SelectBuilder {
	return qb.Select(leagueColumns...).From("leagues").OrderBy("season DESC", "id DESC")
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	var rows []leagueTableModel
	if err := r.selectLeagues(ctx, &rows, newestLeagues()); err != nil {
		return nil, err
	}

	out := make([]league.League, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

func (r *LeagueRepository) Latest(ctx context.Context) (league.League, bool, error) {
	var rows []leagueTableModel
	if err := r.selectLeagues(ctx, &rows, newestLeagues().Limit(1)); err != nil {
		return league.League{}, false, err
	}
	if len(rows) == 0 {
		return league.League{}, false, nil
	}
	return rows[0].toDomain(), true, nil
}

func (r *LeagueRepository) selectLeagues(ctx context.Context, dest *[]leagueTableModel, b *qb.SelectBuilder) error {
	query, args, err := b.ToSQL()
	if err != nil {
		return fmt.Errorf("build leagues query: %w", err)
	}
	if err := r.db.SelectContext(ctx, dest, query, args...); err != nil {
		return fmt.Errorf("select leagues: %w", err)
	}
	return nil
}
