package postgres

import (
	"database/sql"

	"github.com/riskibarqy/fantasy-stats/internal/domain/matchup"
)

type matchupRowModel struct {
	ID             int64          `db:"id"`
	Season         int            `db:"season"`
	Week           int            `db:"week"`
	Team1ID        int64          `db:"team1_id"`
	Team1Name      sql.NullString `db:"team1_name"`
	Team2ID        int64          `db:"team2_id"`
	Team2Name      sql.NullString `db:"team2_name"`
	Team1Score     float64        `db:"team1_score"`
	Team2Score     float64        `db:"team2_score"`
	MatchDate      sql.NullTime   `db:"match_date"`
	IsPlayoff      bool           `db:"is_playoff"`
	IsChampionship bool           `db:"is_championship"`
}

func (m matchupRowModel) toDomain() matchup.Matchup {
	return matchup.Matchup{
		ID:             m.ID,
		Season:         m.Season,
		Week:           m.Week,
		Team1ID:        m.Team1ID,
		Team1Name:      nullStringToString(m.Team1Name),
		Team2ID:        m.Team2ID,
		Team2Name:      nullStringToString(m.Team2Name),
		Team1Score:     m.Team1Score,
		Team2Score:     m.Team2Score,
		MatchDate:      nullTimeToTime(m.MatchDate),
		IsPlayoff:      m.IsPlayoff,
		IsChampionship: m.IsChampionship,
	}
}
