package postgres

import "github.com/riskibarqy/fantasy-stats/internal/domain/league"

type leagueTableModel struct {
	ID              int64  `db:"id"`
	Season          int    `db:"season"`
	DraftID         int64  `db:"draft_id"`
	RosterPositions string `db:"roster_positions"`
	ScoringSettings string `db:"scoring_settings"`
	Divisions       string `db:"divisions"`
}

func (m leagueTableModel) toDomain() league.League {
	return league.League{
		ID:              m.ID,
		Season:          m.Season,
		DraftID:         m.DraftID,
		RosterPositions: m.RosterPositions,
		ScoringSettings: m.ScoringSettings,
		Divisions:       m.Divisions,
	}
}
