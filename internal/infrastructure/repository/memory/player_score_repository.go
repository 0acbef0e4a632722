package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-stats/internal/domain/playerscore"
)

type PlayerScoreRepository struct {
	mu    sync.RWMutex
	items []playerscore.PlayerScore
}

func NewPlayerScoreRepository(scores []playerscore.PlayerScore) *PlayerScoreRepository {
	return &PlayerScoreRepository{items: append([]playerscore.PlayerScore(nil), scores...)}
}

func (r *PlayerScoreRepository) HighestByTeam(_ context.Context, teamID int64) (playerscore.PlayerScore, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		best  playerscore.PlayerScore
		found bool
	)
	for _, item := range r.items {
		if item.TeamID != teamID {
			continue
		}
		if !found || item.FantasyPoints > best.FantasyPoints {
			best = item
			found = true
		}
	}
	return best, found, nil
}

func (r *PlayerScoreRepository) TopPlayersByTeam(_ context.Context, teamID int64, limit int) ([]playerscore.PlayerTotal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byName := make(map[string]*playerscore.PlayerTotal)
	for _, item := range r.items {
		if item.TeamID != teamID {
			continue
		}
		total, ok := byName[item.PlayerName]
		if !ok {
			total = &playerscore.PlayerTotal{PlayerName: item.PlayerName}
			byName[item.PlayerName] = total
		}
		total.TotalPoints += item.FantasyPoints
		total.Games++
	}

	out := make([]playerscore.PlayerTotal, 0, len(byName))
	for _, total := range byName {
		total.AveragePoints = total.TotalPoints / float64(total.Games)
		out = append(out, *total)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPoints != out[j].TotalPoints {
			return out[i].TotalPoints > out[j].TotalPoints
		}
		return out[i].PlayerName < out[j].PlayerName
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
