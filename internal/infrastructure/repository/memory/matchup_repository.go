package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-stats/internal/domain/matchup"
	"github.com/riskibarqy/fantasy-stats/internal/domain/team"
)

type MatchupRepository struct {
	mu    sync.RWMutex
	items []matchup.Matchup
}

// NewMatchupRepository fills team names from teams when the rows omit them.
func NewMatchupRepository(matchups []matchup.Matchup, teams []team.Team) *MatchupRepository {
	names := make(map[int64]string, len(teams))
	for _, item := range teams {
		names[item.ID] = item.Name
	}

	items := make([]matchup.Matchup, 0, len(matchups))
	for _, item := range matchups {
		if item.Team1Name == "" {
			item.Team1Name = names[item.Team1ID]
		}
		if item.Team2Name == "" {
			item.Team2Name = names[item.Team2ID]
		}
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Season != items[j].Season {
			return items[i].Season < items[j].Season
		}
		if items[i].Week != items[j].Week {
			return items[i].Week < items[j].Week
		}
		return items[i].ID < items[j].ID
	})

	return &MatchupRepository{items: items}
}

func (r *MatchupRepository) ListByTeam(_ context.Context, teamID int64) ([]matchup.Matchup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchup.Matchup, 0, 16)
	for _, item := range r.items {
		if item.Team1ID == teamID || item.Team2ID == teamID {
			out = append(out, item)
		}
	}
	return out, nil
}
