package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/domain/team"
	leaguemock "github.com/riskibarqy/fantasy-stats/internal/mocks/domain/league"
	teammock "github.com/riskibarqy/fantasy-stats/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func stubLiveLeague(t *testing.T, provider *sleeperProviderMock, leagueID, leagueJSON, usersJSON, rostersJSON string) {
	t.Helper()

	if leagueJSON == "" {
		provider.On("FetchLeagueInfo", mock.Anything, leagueID).Return(nil, false, nil)
	} else {
		provider.On("FetchLeagueInfo", mock.Anything, leagueID).Return(decodeJSON[ExternalLeague](t, leagueJSON), true, nil)
	}
	provider.On("FetchLeagueUsers", mock.Anything, leagueID).Return(decodeJSON[[]ExternalUser](t, usersJSON), nil)
	provider.On("FetchLeagueRosters", mock.Anything, leagueID).Return(decodeJSON[[]ExternalRoster](t, rostersJSON), nil)
}

func TestReconcileService_Reconcile_GroupsByDivisionAndJoinsLocalStats(t *testing.T) {
	t.Parallel()

	provider := newSleeperProviderMock(t)
	stubLiveLeague(t, provider, testLeagueID,
		`{"settings":{"divisions":["West","East"]}}`,
		`[
			{"user_id": "100", "display_name": "Alpha"},
			{"user_id": "abc", "display_name": "Bravo"},
			{"user_id": "300", "display_name": "Charlie"}
		]`,
		`[
			{"roster_id": 1, "owner_id": "100", "settings": {"division": 1}},
			{"roster_id": 2, "owner_id": "abc", "settings": {"division": 2}},
			{"roster_id": 3, "owner_id": "300", "settings": {"division": 9}}
		]`,
	)

	teamRepo := teammock.NewRepository(t)
	teamRepo.On("ListStats", mock.Anything).Return([]team.Stats{
		{Team: team.Team{ID: 42, Name: "Local Alpha", UserID: 100}, TotalWins: 30, TotalLosses: 12, Championships: 2, SeasonsPlayed: 3, BestRank: 1},
		{Team: team.Team{ID: 43, Name: "Nobody", UserID: 0}},
	}, nil).Once()

	service := NewReconcileService(NewTeamNormalizer(provider, nil), teamRepo, nil, nil)
	got := service.Reconcile(context.Background(), testLeagueID)

	require.True(t, got.HasDivisions)
	require.Len(t, got.Teams, 3)
	require.Len(t, got.TeamsByDivision, 3)

	names := []string{got.TeamsByDivision[0].Name, got.TeamsByDivision[1].Name, got.TeamsByDivision[2].Name}
	require.Equal(t, []string{"East", UnassignedDivision, "West"}, names)

	west := got.TeamsByDivision[2].Teams
	require.Len(t, west, 1)
	require.Equal(t, "42", west[0].TeamID)
	require.True(t, west[0].HasDBRecord)
	require.Equal(t, "Local Alpha", west[0].LocalTeamName)
	require.Equal(t, 30, west[0].TotalWins)
	require.Equal(t, 2, west[0].Championships)
	require.Equal(t, 1, west[0].BestRank)

	east := got.TeamsByDivision[0].Teams
	require.Equal(t, "2", east[0].TeamID)
	require.False(t, east[0].HasDBRecord)

	unassigned := got.TeamsByDivision[1].Teams
	require.Equal(t, "Charlie", unassigned[0].TeamName)
	require.Equal(t, "3", unassigned[0].TeamID)
	require.Zero(t, unassigned[0].SeasonsPlayed)
}

func TestReconcileService_Reconcile_AllTeamsBucketWithoutDivisions(t *testing.T) {
	t.Parallel()

	provider := newSleeperProviderMock(t)
	stubLiveLeague(t, provider, testLeagueID, "",
		`[{"user_id": "1", "display_name": "Bravo"}, {"user_id": "2", "display_name": "Alpha"}]`,
		`[{"roster_id": 1, "owner_id": "1"}, {"roster_id": 2, "owner_id": "2"}]`,
	)

	teamRepo := teammock.NewRepository(t)
	teamRepo.On("ListStats", mock.Anything).Return(nil, errors.New("connection reset")).Once()

	got := NewReconcileService(NewTeamNormalizer(provider, nil), teamRepo, nil, nil).Reconcile(context.Background(), testLeagueID)

	require.False(t, got.HasDivisions)
	require.Len(t, got.TeamsByDivision, 1)
	require.Equal(t, AllTeamsDivision, got.TeamsByDivision[0].Name)
	require.Len(t, got.TeamsByDivision[0].Teams, 2)
	require.Equal(t, "Alpha", got.TeamsByDivision[0].Teams[0].TeamName)
	for _, item := range got.Teams {
		require.False(t, item.HasDBRecord)
		require.Equal(t, item.RosterID, item.TeamID)
	}
}

func TestReconcileService_Reconcile_FallsBackToLatestLocalLeague(t *testing.T) {
	t.Parallel()

	provider := newSleeperProviderMock(t)
	stubLiveLeague(t, provider, "998877", "", `[{"user_id": "1"}]`, `[{"roster_id": 1, "owner_id": "1"}]`)

	leagueRepo := leaguemock.NewRepository(t)
	leagueRepo.On("Latest", mock.Anything).Return(league.League{ID: 998877, Season: 2024}, true, nil).Once()
	teamRepo := teammock.NewRepository(t)
	teamRepo.On("ListStats", mock.Anything).Return([]team.Stats{}, nil).Once()

	got := NewReconcileService(NewTeamNormalizer(provider, nil), teamRepo, leagueRepo, nil).Reconcile(context.Background(), "")

	require.Equal(t, "998877", got.LeagueID)
	require.Len(t, got.Teams, 1)
}

func TestReconcileService_Reconcile_NoLeagueConfigured(t *testing.T) {
	t.Parallel()

	provider := newSleeperProviderMock(t)
	leagueRepo := leaguemock.NewRepository(t)
	leagueRepo.On("Latest", mock.Anything).Return(league.League{}, false, nil).Once()
	teamRepo := teammock.NewRepository(t)
	teamRepo.On("ListStats", mock.Anything).Return([]team.Stats{}, nil).Once()

	got := NewReconcileService(NewTeamNormalizer(provider, nil), teamRepo, leagueRepo, nil).Reconcile(context.Background(), "")

	require.Empty(t, got.LeagueID)
	require.Empty(t, got.Teams)
	require.False(t, got.HasDivisions)
	require.Equal(t, []DivisionGroup{{Name: AllTeamsDivision, Teams: []CombinedTeam{}}}, got.TeamsByDivision)
}
