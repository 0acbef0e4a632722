package nflteam

import "context"

// Repository describes NFL team persistence needs from use cases.
type Repository interface {
	// ListStatsBySeason returns stats for one season, or all seasons when
	// season is zero, newest season first then by team name.
	ListStatsBySeason(ctx context.Context, season int) ([]SeasonStats, error)
}
