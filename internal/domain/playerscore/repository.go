package playerscore

import "context"

type Repository interface {
	HighestByTeam(ctx context.Context, teamID int64) (PlayerScore, bool, error)
	// TopPlayersByTeam groups scores by player name, ordered by total points.
	TopPlayersByTeam(ctx context.Context, teamID int64, limit int) ([]PlayerTotal, error)
}
