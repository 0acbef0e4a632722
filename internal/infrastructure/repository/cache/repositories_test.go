package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-stats/internal/domain/ranking"
	"github.com/riskibarqy/fantasy-stats/internal/domain/team"
	basecache "github.com/riskibarqy/fantasy-stats/internal/platform/cache"
	teammock "github.com/riskibarqy/fantasy-stats/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTeamRepository_ListStatsIsCached(t *testing.T) {
	t.Parallel()

	next := teammock.NewRepository(t)
	next.On("ListStats", mock.Anything).Return([]team.Stats{
		{Team: team.Team{ID: 1, Name: "Gridiron Gang"}, TotalWins: 19},
	}, nil).Once()

	repo := NewTeamRepository(next, basecache.NewStore[any](time.Minute))

	first, err := repo.ListStats(context.Background())
	require.NoError(t, err)
	first[0].TotalWins = 0

	second, err := repo.ListStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 19, second[0].TotalWins)
}

func TestTeamRepository_GetByIDCachesMisses(t *testing.T) {
	t.Parallel()

	next := teammock.NewRepository(t)
	next.On("GetByID", mock.Anything, int64(7)).Return(team.Team{}, false, nil).Once()

	repo := NewTeamRepository(next, basecache.NewStore[any](time.Minute))
	for i := 0; i < 2; i++ {
		_, ok, err := repo.GetByID(context.Background(), 7)
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func TestTeamRepository_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	next := teammock.NewRepository(t)
	next.On("Count", mock.Anything).Return(0, errors.New("db down")).Once()
	next.On("Count", mock.Anything).Return(4, nil).Once()

	repo := NewTeamRepository(next, basecache.NewStore[any](time.Minute))

	_, err := repo.Count(context.Background())
	require.Error(t, err)

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, total)
}

type countingRankings struct {
	ranking.Repository
	champions int
}

func (r *countingRankings) ListChampions(_ context.Context, limit int) ([]ranking.Champion, error) {
	r.champions++
	out := make([]ranking.Champion, 0, limit)
	for i := 0; i < limit; i++ {
		out = append(out, ranking.Champion{Season: 2024 - i, TeamID: int64(i + 1)})
	}
	return out, nil
}

func TestRankingRepository_KeysIncludeLimit(t *testing.T) {
	t.Parallel()

	next := &countingRankings{}
	repo := NewRankingRepository(next, basecache.NewStore[any](time.Minute))

	for i := 0; i < 3; i++ {
		items, err := repo.ListChampions(context.Background(), 5)
		require.NoError(t, err)
		require.Len(t, items, 5)
	}
	items, err := repo.ListChampions(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, 2, next.champions)
}
