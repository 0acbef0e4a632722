package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/riskibarqy/fantasy-stats/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
)

// NormalizedTeam is a live team built from a league user and the roster they
// own.
type NormalizedTeam struct {
	UserID      string
	Username    string
	DisplayName string
	TeamName    string
	Avatar      string
	AvatarURL   string
	RosterID    string
	Division    string
	Wins        int
	Losses      int
	Ties        int
	Fpts        float64
	FptsDecimal float64
	TotalPoints float64
}

type TeamNormalizer struct {
	provider SleeperProvider
	logger   *logging.Logger
}

func NewTeamNormalizer(provider SleeperProvider, logger *logging.Logger) *TeamNormalizer {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamNormalizer{
		provider: provider,
		logger:   logger,
	}
}

// NormalizeTeams joins league users with their rosters. Provider failures
// degrade to fewer teams, never to an error.
func (s *TeamNormalizer) NormalizeTeams(ctx context.Context, leagueID string) []NormalizedTeam {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamNormalizer.NormalizeTeams", leagueAttr(leagueID))
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" || s.provider == nil {
		return []NormalizedTeam{}
	}

	divisions := s.leagueDivisions(ctx, leagueID)

	users, err := s.provider.FetchLeagueUsers(ctx, leagueID)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch league users failed", "league_id", leagueID, "error", err)
		users = nil
	}
	rosters, err := s.provider.FetchLeagueRosters(ctx, leagueID)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch league rosters failed", "league_id", leagueID, "error", err)
		rosters = nil
	}

	rosterByOwner := make(map[string]ExternalRoster, len(rosters))
	for _, roster := range rosters {
		ownerID := roster.OwnerID.String()
		if ownerID == "" {
			continue
		}
		rosterByOwner[ownerID] = roster
	}

	teams := make([]NormalizedTeam, 0, len(users))
	for _, user := range users {
		userID := user.UserID.String()
		if userID == "" {
			continue
		}
		roster, ok := rosterByOwner[userID]
		if !ok {
			continue
		}
		teams = append(teams, buildNormalizedTeam(user, roster, divisions))
	}

	sortNormalizedTeams(teams)

	s.logger.DebugContext(ctx, "normalized league teams",
		"league_id", leagueID,
		"users", len(users),
		"rosters", len(rosters),
		"teams", len(teams),
	)
	return teams
}

// FindTeamByRosterID returns the normalized team that owns the given roster.
func (s *TeamNormalizer) FindTeamByRosterID(ctx context.Context, leagueID, rosterID string) (NormalizedTeam, bool) {
	rosterID = strings.TrimSpace(rosterID)
	if rosterID == "" {
		return NormalizedTeam{}, false
	}

	for _, item := range s.NormalizeTeams(ctx, leagueID) {
		if fantasy.SameID(item.RosterID, rosterID) {
			return item, true
		}
	}
	return NormalizedTeam{}, false
}

func (s *TeamNormalizer) leagueDivisions(ctx context.Context, leagueID string) []string {
	info, exists, err := s.provider.FetchLeagueInfo(ctx, leagueID)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch league info failed", "league_id", leagueID, "error", err)
		return nil
	}
	if !exists || info.Settings == nil {
		return nil
	}
	return fantasy.ResolveDivisions(info.Settings.Divisions)
}

func buildNormalizedTeam(user ExternalUser, roster ExternalRoster, divisions []string) NormalizedTeam {
	var wins, losses, ties, fptsRaw, decimalRaw any
	if roster.Settings != nil {
		wins = roster.Settings.Wins
		losses = roster.Settings.Losses
		ties = roster.Settings.Ties
		fptsRaw = roster.Settings.Fpts
		decimalRaw = roster.Settings.FptsDecimal
	}

	fpts := fantasy.SafeFloat(fptsRaw, 0)
	fptsDecimal := fantasy.SafeFloat(decimalRaw, 0)

	division := ""
	if len(divisions) > 0 {
		if name, ok := fantasy.ResolveDivision(divisions, roster.DivisionIndex()); ok {
			division = name
		}
	}

	return NormalizedTeam{
		UserID:      user.UserID.String(),
		Username:    user.Username.String(),
		DisplayName: user.DisplayName.String(),
		TeamName:    fantasy.ResolveTeamName(user.MetadataTeamName(), user.DisplayName.String(), user.Username.String()),
		Avatar:      user.Avatar.String(),
		AvatarURL:   fantasy.AvatarURL(user.Avatar.String(), true),
		RosterID:    roster.RosterID.String(),
		Division:    division,
		Wins:        fantasy.SafeInt(wins, 0),
		Losses:      fantasy.SafeInt(losses, 0),
		Ties:        fantasy.SafeInt(ties, 0),
		Fpts:        fpts,
		FptsDecimal: fptsDecimal,
		TotalPoints: fantasy.TotalPoints(fpts, fptsDecimal),
	}
}

func sortNormalizedTeams(teams []NormalizedTeam) {
	hasDivisions := false
	for _, item := range teams {
		if item.Division != "" {
			hasDivisions = true
			break
		}
	}

	sort.SliceStable(teams, func(i, j int) bool {
		if hasDivisions && teams[i].Division != teams[j].Division {
			return teams[i].Division < teams[j].Division
		}
		return teams[i].TeamName < teams[j].TeamName
	})
}
