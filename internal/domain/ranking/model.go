package ranking

// Ranking is a team's final standing for one season.
type Ranking struct {
	ID                int64
	TeamID            int64
	Season            int
	Rank              int
	Wins              int
	Losses            int
	Ties              int
	TotalPoints       float64
	AveragePoints     float64
	PlayoffAppearance bool
	Championship      bool
}

type Champion struct {
	Season   int
	TeamID   int64
	TeamName string
}

type TeamPoints struct {
	TeamID      int64
	TeamName    string
	TotalPoints float64
}

// Summary describes the seasons covered by the archive. LatestSeason is only
// meaningful when HasSeasons is true.
type Summary struct {
	TotalSeasons int
	LatestSeason int
	HasSeasons   bool
}
