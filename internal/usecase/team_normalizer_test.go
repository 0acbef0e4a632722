package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testLeagueID = "784512"

func TestTeamNormalizer_NormalizeTeams_ResolvesDivisionsAndPoints(t *testing.T) {
	t.Parallel()

	provider := newSleeperProviderMock(t)
	provider.On("FetchLeagueInfo", mock.Anything, testLeagueID).
		Return(decodeJSON[ExternalLeague](t, `{"league_id":"784512","settings":{"divisions":["East","West"]}}`), true, nil).
		Once()
	provider.On("FetchLeagueUsers", mock.Anything, testLeagueID).
		Return(decodeJSON[[]ExternalUser](t, `[
			{"user_id": 1, "username": "alpha_user", "display_name": "Alpha", "avatar": "av1", "metadata": {"team_name": "Alpha Wolves"}},
			{"user_id": "2", "username": "bravo_user", "display_name": "Bravo", "avatar": null, "metadata": null},
			{"user_id": "3", "username": "no_roster"},
			{"user_id": null, "username": "ghost"}
		]`), nil).
		Once()
	provider.On("FetchLeagueRosters", mock.Anything, testLeagueID).
		Return(decodeJSON[[]ExternalRoster](t, `[
			{"roster_id": 1, "owner_id": "1", "settings": {"division": 2, "wins": 9, "losses": "4", "ties": null, "fpts": 1500, "fpts_decimal": 45}},
			{"roster_id": 2, "owner_id": 2, "division": 1, "settings": {"wins": "x", "fpts": "abc"}},
			{"roster_id": 3, "owner_id": null, "settings": {"division": 1}}
		]`), nil).
		Once()

	normalizer := NewTeamNormalizer(provider, nil)
	got := normalizer.NormalizeTeams(context.Background(), testLeagueID)

	require.Len(t, got, 2)

	require.Equal(t, "East", got[0].Division)
	require.Equal(t, "Bravo", got[0].TeamName)
	require.Equal(t, "2", got[0].RosterID)
	require.Equal(t, 0, got[0].Wins)
	require.Equal(t, 0.0, got[0].TotalPoints)
	require.Equal(t, "", got[0].AvatarURL)

	require.Equal(t, "West", got[1].Division)
	require.Equal(t, "Alpha Wolves", got[1].TeamName)
	require.Equal(t, "1", got[1].UserID)
	require.Equal(t, 9, got[1].Wins)
	require.Equal(t, 4, got[1].Losses)
	require.Equal(t, 0, got[1].Ties)
	require.InDelta(t, 1500.45, got[1].TotalPoints, 1e-9)
	require.Equal(t, "https://sleepercdn.com/avatars/thumbs/av1", got[1].AvatarURL)
}

func TestTeamNormalizer_NormalizeTeams_SortsByNameWithoutResolvedDivisions(t *testing.T) {
	t.Parallel()

	provider := newSleeperProviderMock(t)
	provider.On("FetchLeagueInfo", mock.Anything, testLeagueID).
		Return(decodeJSON[ExternalLeague](t, `{"settings":{"divisions":2}}`), true, nil)
	provider.On("FetchLeagueUsers", mock.Anything, testLeagueID).
		Return(decodeJSON[[]ExternalUser](t, `[
			{"user_id": "10", "display_name": "Zulu"},
			{"user_id": "11", "display_name": "Mike"}
		]`), nil)
	provider.On("FetchLeagueRosters", mock.Anything, testLeagueID).
		Return(decodeJSON[[]ExternalRoster](t, `[
			{"roster_id": 1, "owner_id": "10", "settings": {"division": 7}},
			{"roster_id": 2, "owner_id": "11", "settings": {"division": "north"}}
		]`), nil)

	got := NewTeamNormalizer(provider, nil).NormalizeTeams(context.Background(), testLeagueID)

	require.Len(t, got, 2)
	require.Equal(t, "Mike", got[0].TeamName)
	require.Equal(t, "Zulu", got[1].TeamName)
	require.Empty(t, got[0].Division)
	require.Empty(t, got[1].Division)
}

func TestTeamNormalizer_NormalizeTeams_DegradesOnProviderErrors(t *testing.T) {
	t.Parallel()

	provider := newSleeperProviderMock(t)
	provider.On("FetchLeagueInfo", mock.Anything, testLeagueID).Return(nil, false, errors.New("boom"))
	provider.On("FetchLeagueUsers", mock.Anything, testLeagueID).Return(nil, errors.New("timeout"))
	provider.On("FetchLeagueRosters", mock.Anything, testLeagueID).
		Return(decodeJSON[[]ExternalRoster](t, `[{"roster_id": 1, "owner_id": "10"}]`), nil)

	got := NewTeamNormalizer(provider, nil).NormalizeTeams(context.Background(), testLeagueID)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestTeamNormalizer_NormalizeTeams_AbsentLeagueStillNormalizes(t *testing.T) {
	t.Parallel()

	provider := newSleeperProviderMock(t)
	provider.On("FetchLeagueInfo", mock.Anything, testLeagueID).Return(nil, false, nil)
	provider.On("FetchLeagueUsers", mock.Anything, testLeagueID).
		Return(decodeJSON[[]ExternalUser](t, `[{"user_id": "10", "username": "solo"}]`), nil)
	provider.On("FetchLeagueRosters", mock.Anything, testLeagueID).
		Return(decodeJSON[[]ExternalRoster](t, `[{"roster_id": 4, "owner_id": "10", "settings": {"division": 1}}]`), nil)

	got := NewTeamNormalizer(provider, nil).NormalizeTeams(context.Background(), testLeagueID)
	require.Len(t, got, 1)
	require.Equal(t, "solo", got[0].TeamName)
	require.Empty(t, got[0].Division)
}

func TestTeamNormalizer_NormalizeTeams_DuplicateOwnerLastRosterWins(t *testing.T) {
	t.Parallel()

	provider := newSleeperProviderMock(t)
	provider.On("FetchLeagueInfo", mock.Anything, testLeagueID).Return(nil, false, nil)
	provider.On("FetchLeagueUsers", mock.Anything, testLeagueID).
		Return(decodeJSON[[]ExternalUser](t, `[{"user_id": "10"}]`), nil)
	provider.On("FetchLeagueRosters", mock.Anything, testLeagueID).
		Return(decodeJSON[[]ExternalRoster](t, `[
			{"roster_id": 1, "owner_id": "10"},
			{"roster_id": 2, "owner_id": "10"}
		]`), nil)

	got := NewTeamNormalizer(provider, nil).NormalizeTeams(context.Background(), testLeagueID)
	require.Len(t, got, 1)
	require.Equal(t, "2", got[0].RosterID)
	require.Equal(t, "Unknown Team", got[0].TeamName)
}

func TestTeamNormalizer_NormalizeTeams_EmptyLeagueSkipsProvider(t *testing.T) {
	t.Parallel()

	provider := newSleeperProviderMock(t)
	got := NewTeamNormalizer(provider, nil).NormalizeTeams(context.Background(), "  ")
	require.Empty(t, got)
}

func TestTeamNormalizer_FindTeamByRosterID(t *testing.T) {
	t.Parallel()

	provider := newSleeperProviderMock(t)
	provider.On("FetchLeagueInfo", mock.Anything, testLeagueID).Return(nil, false, nil)
	provider.On("FetchLeagueUsers", mock.Anything, testLeagueID).
		Return(decodeJSON[[]ExternalUser](t, `[{"user_id": "10", "display_name": "Seven"}]`), nil)
	provider.On("FetchLeagueRosters", mock.Anything, testLeagueID).
		Return(decodeJSON[[]ExternalRoster](t, `[{"roster_id": 7, "owner_id": "10"}]`), nil)

	normalizer := NewTeamNormalizer(provider, nil)

	got, ok := normalizer.FindTeamByRosterID(context.Background(), testLeagueID, "7")
	require.True(t, ok)
	require.Equal(t, "Seven", got.TeamName)

	_, ok = normalizer.FindTeamByRosterID(context.Background(), testLeagueID, "8")
	require.False(t, ok)
}
