package postgres

import "github.com/riskibarqy/fantasy-stats/internal/domain/nflteam"

type nflTeamStatsRowModel struct {
	ID                 int64   `db:"id"`
	Name               string  `db:"name"`
	Abbreviation       string  `db:"abbreviation"`
	City               string  `db:"city"`
	Conference         string  `db:"conference"`
	Division           string  `db:"division"`
	Season             int     `db:"season"`
	TotalFantasyPoints float64 `db:"total_fantasy_points"`
	GamesPlayed        int     `db:"games_played"`
	AveragePoints      float64 `db:"average_points"`
}

func (m nflTeamStatsRowModel) toDomain() nflteam.SeasonStats {
	return nflteam.SeasonStats{
		Team: nflteam.Team{
			ID:           m.ID,
			Name:         m.Name,
			Abbreviation: m.Abbreviation,
			City:         m.City,
			Conference:   m.Conference,
			Division:     m.Division,
		},
		Season:             m.Season,
		TotalFantasyPoints: m.TotalFantasyPoints,
		GamesPlayed:        m.GamesPlayed,
		AveragePoints:      m.AveragePoints,
	}
}
