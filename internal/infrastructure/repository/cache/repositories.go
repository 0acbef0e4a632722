// Package cache wraps repositories with a read-through TTL cache. The archive
// is read-only while the service runs, so entries are never invalidated.
package cache

import (
	"context"
	"fmt"
	"slices"

	"github.com/riskibarqy/fantasy-stats/internal/domain/ranking"
	"github.com/riskibarqy/fantasy-stats/internal/domain/team"
	basecache "github.com/riskibarqy/fantasy-stats/internal/platform/cache"
)

// Store holds results of every decorated repository under prefixed keys.
type Store = basecache.Store[any]

func readThrough[T any](ctx context.Context, store *Store, key string, load func(context.Context) (T, error)) (T, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	out, _ := v.(T)
	return out, nil
}

// readSlice hands every caller its own copy of the cached slice.
func readSlice[T any](ctx context.Context, store *Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	items, err := readThrough(ctx, store, key, func(ctx context.Context) ([]T, error) {
		items, err := load(ctx)
		return slices.Clone(items), err
	})
	return slices.Clone(items), err
}

type TeamRepository struct {
	next  team.Repository
	store *Store
}

func NewTeamRepository(next team.Repository, store *Store) *TeamRepository {
	return &TeamRepository{next: next, store: store}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	return readSlice(ctx, r.store, "team:list", r.next.List)
}

type teamLookup struct {
	team   team.Team
	exists bool
}

// GetByID caches misses too.
func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	found, err := readThrough(ctx, r.store, fmt.Sprintf("team:id:%d", teamID), func(ctx context.Context) (teamLookup, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		return teamLookup{team: item, exists: exists}, err
	})
	return found.team, found.exists, err
}

func (r *TeamRepository) Count(ctx context.Context) (int, error) {
	return readThrough(ctx, r.store, "team:count", r.next.Count)
}

func (r *TeamRepository) ListStats(ctx context.Context) ([]team.Stats, error) {
	return readSlice(ctx, r.store, "team:stats", r.next.ListStats)
}

type RankingRepository struct {
	next  ranking.Repository
	store *Store
}

func NewRankingRepository(next ranking.Repository, store *Store) *RankingRepository {
	return &RankingRepository{next: next, store: store}
}

func (r *RankingRepository) ListByTeam(ctx context.Context, teamID int64) ([]ranking.Ranking, error) {
	return readSlice(ctx, r.store, fmt.Sprintf("ranking:team:%d", teamID), func(ctx context.Context) ([]ranking.Ranking, error) {
		return r.next.ListByTeam(ctx, teamID)
	})
}

func (r *RankingRepository) Summary(ctx context.Context) (ranking.Summary, error) {
	return readThrough(ctx, r.store, "ranking:summary", r.next.Summary)
}

func (r *RankingRepository) ListChampions(ctx context.Context, limit int) ([]ranking.Champion, error) {
	return readSlice(ctx, r.store, fmt.Sprintf("ranking:champions:%d", limit), func(ctx context.Context) ([]ranking.Champion, error) {
		return r.next.ListChampions(ctx, limit)
	})
}

func (r *RankingRepository) TopTeamsByPoints(ctx context.Context, limit int) ([]ranking.TeamPoints, error) {
	return readSlice(ctx, r.store, fmt.Sprintf("ranking:top-points:%d", limit), func(ctx context.Context) ([]ranking.TeamPoints, error) {
		return r.next.TopTeamsByPoints(ctx, limit)
	})
}
