package ranking

import "context"

type Repository interface {
	// ListByTeam returns rankings ordered by season ascending.
	ListByTeam(ctx context.Context, teamID int64) ([]Ranking, error)
	Summary(ctx context.Context) (Summary, error)
	// ListChampions returns championship rankings, newest season first.
	ListChampions(ctx context.Context, limit int) ([]Champion, error)
	// TopTeamsByPoints sums total points across all seasons per team.
	TopTeamsByPoints(ctx context.Context, limit int) ([]TeamPoints, error)
}
