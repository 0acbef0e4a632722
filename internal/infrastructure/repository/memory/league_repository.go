package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
)

type LeagueRepository struct {
	mu    sync.RWMutex
	items []league.League
}

// NewLeagueRepository keeps leagues newest season first, larger id first on ties.
func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	items := append([]league.League(nil), leagues...)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Season != items[j].Season {
			return items[i].Season > items[j].Season
		}
		return items[i].ID > items[j].ID
	})

	return &LeagueRepository{items: items}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]league.League(nil), r.items...), nil
}

func (r *LeagueRepository) Latest(_ context.Context) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.items) == 0 {
		return league.League{}, false, nil
	}
	return r.items[0], true, nil
}
