package nflteam

type Team struct {
	ID           int64
	Name         string
	Abbreviation string
	City         string
	Conference   string
	Division     string
}

// SeasonStats is the fantasy output attributed to an NFL team for a season.
type SeasonStats struct {
	Team               Team
	Season             int
	TotalFantasyPoints float64
	GamesPlayed        int
	AveragePoints      float64
}
