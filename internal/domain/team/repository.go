package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	Count(ctx context.Context) (int, error)
	ListStats(ctx context.Context) ([]Stats, error)
}
