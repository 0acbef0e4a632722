package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-stats/internal/domain/nflteam"
)

type NFLTeamRepository struct {
	mu    sync.RWMutex
	stats []nflteam.SeasonStats
}

func NewNFLTeamRepository(stats []nflteam.SeasonStats) *NFLTeamRepository {
	items := append([]nflteam.SeasonStats(nil), stats...)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Season != items[j].Season {
			return items[i].Season > items[j].Season
		}
		return items[i].Team.Name < items[j].Team.Name
	})

	return &NFLTeamRepository{stats: items}
}

func (r *NFLTeamRepository) ListStatsBySeason(_ context.Context, season int) ([]nflteam.SeasonStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]nflteam.SeasonStats, 0, len(r.stats))
	for _, item := range r.stats {
		if season > 0 && item.Season != season {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}
