package team

import "fmt"

// Team is a locally recorded fantasy team. UserID is the owning Sleeper user
// id and is the join key against live league data.
type Team struct {
	ID     int64
	Name   string
	UserID int64
	Roster string
}

// Stats aggregates a team's season rankings. Every aggregate is zero when the
// team has no ranking rows.
type Stats struct {
	Team          Team
	TotalWins     int
	TotalLosses   int
	Championships int
	SeasonsPlayed int
	BestRank      int
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
