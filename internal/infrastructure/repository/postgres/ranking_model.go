package postgres

import (
	"database/sql"

	"github.com/riskibarqy/fantasy-stats/internal/domain/ranking"
)

type rankingTableModel struct {
	ID                int64   `db:"id"`
	TeamID            int64   `db:"team_id"`
	Season            int     `db:"season"`
	Rank              int     `db:"rank"`
	Wins              int     `db:"wins"`
	Losses            int     `db:"losses"`
	Ties              int     `db:"ties"`
	TotalPoints       float64 `db:"total_points"`
	AveragePoints     float64 `db:"average_points"`
	PlayoffAppearance bool    `db:"playoff_appearance"`
	Championship      bool    `db:"championship"`
}

func (m rankingTableModel) toDomain() ranking.Ranking {
	return ranking.Ranking{
		ID:                m.ID,
		TeamID:            m.TeamID,
		Season:            m.Season,
		Rank:              m.Rank,
		Wins:              m.Wins,
		Losses:            m.Losses,
		Ties:              m.Ties,
		TotalPoints:       m.TotalPoints,
		AveragePoints:     m.AveragePoints,
		PlayoffAppearance: m.PlayoffAppearance,
		Championship:      m.Championship,
	}
}

type championRowModel struct {
	Season   int    `db:"season"`
	TeamID   int64  `db:"team_id"`
	TeamName string `db:"team_name"`
}

type teamPointsRowModel struct {
	TeamID      int64   `db:"team_id"`
	TeamName    string  `db:"team_name"`
	TotalPoints float64 `db:"total_points"`
}

type rankingSummaryRowModel struct {
	TotalSeasons int           `db:"total_seasons"`
	LatestSeason sql.NullInt64 `db:"latest_season"`
}
