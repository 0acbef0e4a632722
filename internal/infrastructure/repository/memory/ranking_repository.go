package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-stats/internal/domain/ranking"
	"github.com/riskibarqy/fantasy-stats/internal/domain/team"
)

type RankingRepository struct {
	mu        sync.RWMutex
	rankings  []ranking.Ranking
	teamNames map[int64]string
}

func NewRankingRepository(rankings []ranking.Ranking, teams []team.Team) *RankingRepository {
	items := append([]ranking.Ranking(nil), rankings...)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Season != items[j].Season {
			return items[i].Season < items[j].Season
		}
		return items[i].TeamID < items[j].TeamID
	})

	names := make(map[int64]string, len(teams))
	for _, item := range teams {
		names[item.ID] = item.Name
	}

	return &RankingRepository{rankings: items, teamNames: names}
}

func (r *RankingRepository) ListByTeam(_ context.Context, teamID int64) ([]ranking.Ranking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ranking.Ranking, 0, 8)
	for _, item := range r.rankings {
		if item.TeamID == teamID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *RankingRepository) Summary(_ context.Context) (ranking.Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seasons := make(map[int]struct{})
	summary := ranking.Summary{}
	for _, item := range r.rankings {
		seasons[item.Season] = struct{}{}
		if !summary.HasSeasons || item.Season > summary.LatestSeason {
			summary.LatestSeason = item.Season
			summary.HasSeasons = true
		}
	}
	summary.TotalSeasons = len(seasons)
	return summary, nil
}

func (r *RankingRepository) ListChampions(_ context.Context, limit int) ([]ranking.Champion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ranking.Champion, 0, limit)
	for idx := len(r.rankings) - 1; idx >= 0; idx-- {
		item := r.rankings[idx]
		if !item.Championship {
			continue
		}
		out = append(out, ranking.Champion{Season: item.Season, TeamID: item.TeamID, TeamName: r.teamNames[item.TeamID]})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *RankingRepository) TopTeamsByPoints(_ context.Context, limit int) ([]ranking.TeamPoints, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	totals := make(map[int64]float64)
	for _, item := range r.rankings {
		totals[item.TeamID] += item.TotalPoints
	}

	out := make([]ranking.TeamPoints, 0, len(totals))
	for teamID, total := range totals {
		name, ok := r.teamNames[teamID]
		if !ok {
			continue
		}
		out = append(out, ranking.TeamPoints{TeamID: teamID, TeamName: name, TotalPoints: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPoints != out[j].TotalPoints {
			return out[i].TotalPoints > out[j].TotalPoints
		}
		return out[i].TeamName < out[j].TeamName
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
