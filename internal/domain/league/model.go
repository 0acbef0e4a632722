package league

import "fmt"

// League is a locally archived Sleeper league season.
type League struct {
	ID              int64
	Season          int
	DraftID         int64
	RosterPositions string
	ScoringSettings string
	Divisions       string
}

// SleeperID is the league id as the Sleeper API expects it.
func (l League) SleeperID() string {
	if l.ID <= 0 {
		return ""
	}
	return fmt.Sprintf("%d", l.ID)
}

func (l League) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("league id is required")
	}
	if l.Season <= 0 {
		return fmt.Errorf("league season is required")
	}

	return nil
}
