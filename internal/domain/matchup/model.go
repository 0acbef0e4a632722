package matchup

import "time"

type Matchup struct {
	ID             int64
	Season         int
	Week           int
	Team1ID        int64
	Team1Name      string
	Team2ID        int64
	Team2Name      string
	Team1Score     float64
	Team2Score     float64
	MatchDate      time.Time
	IsPlayoff      bool
	IsChampionship bool
}

// ScoreFor returns the score recorded for the given side of the matchup.
func (m Matchup) ScoreFor(teamID int64) (float64, bool) {
	switch teamID {
	case m.Team1ID:
		return m.Team1Score, true
	case m.Team2ID:
		return m.Team2Score, true
	default:
		return 0, false
	}
}

// Opponent returns the other side's id and name.
func (m Matchup) Opponent(teamID int64) (int64, string) {
	if teamID == m.Team1ID {
		return m.Team2ID, m.Team2Name
	}
	return m.Team1ID, m.Team1Name
}
