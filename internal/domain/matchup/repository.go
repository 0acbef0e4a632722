package matchup

import "context"

// Repository describes matchup persistence needs from use cases.
type Repository interface {
	// ListByTeam returns every matchup the team played on either side,
	// ordered by season and week ascending.
	ListByTeam(ctx context.Context, teamID int64) ([]Matchup, error)
}
