package playerscore

// PlayerScore is one player's fantasy output for a team in a matchup.
type PlayerScore struct {
	ID            int64
	PlayerName    string
	Position      string
	TeamID        int64
	FantasyPoints float64
	NFLTeam       string
	MatchupID     int64
}

type PlayerTotal struct {
	PlayerName    string
	TotalPoints   float64
	Games         int
	AveragePoints float64
}
