package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-stats/internal/domain/ranking"
	"github.com/riskibarqy/fantasy-stats/internal/domain/team"
)

type TeamRepository struct {
	mu       sync.RWMutex
	teams    []team.Team
	rankings []ranking.Ranking
}

func NewTeamRepository(teams []team.Team, rankings []ranking.Ranking) *TeamRepository {
	items := append([]team.Team(nil), teams...)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})

	return &TeamRepository{
		teams:    items,
		rankings: append([]ranking.Ranking(nil), rankings...),
	}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]team.Team(nil), r.teams...), nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.teams {
		if item.ID == teamID {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.teams), nil
}

func (r *TeamRepository) ListStats(_ context.Context) ([]team.Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byTeam := make(map[int64]*team.Stats, len(r.teams))
	seasons := make(map[int64]map[int]struct{}, len(r.teams))
	out := make([]team.Stats, len(r.teams))
	for idx, item := range r.teams {
		out[idx] = team.Stats{Team: item}
		byTeam[item.ID] = &out[idx]
		seasons[item.ID] = make(map[int]struct{})
	}

	for _, row := range r.rankings {
		stats, ok := byTeam[row.TeamID]
		if !ok {
			continue
		}
		stats.TotalWins += row.Wins
		stats.TotalLosses += row.Losses
		if row.Championship {
			stats.Championships++
		}
		if stats.BestRank == 0 || row.Rank < stats.BestRank {
			stats.BestRank = row.Rank
		}
		seasons[row.TeamID][row.Season] = struct{}{}
	}
	for idx := range out {
		out[idx].SeasonsPlayed = len(seasons[out[idx].Team.ID])
	}

	return out, nil
}
