package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/fantasy-stats/internal/domain/fantasy"
)

// TeamProfile is a team page assembled from whichever sources know the team.
type TeamProfile struct {
	LeagueID string
	// Detail is nil when the team has no local record.
	Detail *TeamDetail
	// Live is nil when the team is not in the live league.
	Live   *NormalizedTeam
	Roster []RosterPlayer
}

type TeamProfileService struct {
	history    *HistoryService
	normalizer *TeamNormalizer
	rosters    *RosterService
	reconciler *ReconcileService
}

func NewTeamProfileService(
	history *HistoryService,
	normalizer *TeamNormalizer,
	rosters *RosterService,
	reconciler *ReconcileService,
) *TeamProfileService {
	return &TeamProfileService{
		history:    history,
		normalizer: normalizer,
		rosters:    rosters,
		reconciler: reconciler,
	}
}

// Get resolves teamID as a local team id first, then as a live roster id. It
// returns ErrNotFound only when neither source knows the team.
func (s *TeamProfileService) Get(ctx context.Context, leagueID, teamID string) (TeamProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamProfileService.Get")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return TeamProfile{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if s.reconciler != nil {
		leagueID = s.reconciler.ResolveLeagueID(ctx, leagueID)
	}

	out := TeamProfile{LeagueID: leagueID, Roster: []RosterPlayer{}}

	var localUserID string
	if localID, err := strconv.ParseInt(teamID, 10, 64); err == nil && s.history != nil {
		_, exists, err := s.history.FindTeam(ctx, localID)
		if err != nil {
			return TeamProfile{}, err
		}
		if exists {
			detail, err := s.history.GetTeamDetail(ctx, localID)
			if err != nil {
				return TeamProfile{}, err
			}
			out.Detail = &detail
			if detail.Team.UserID != 0 {
				localUserID = strconv.FormatInt(detail.Team.UserID, 10)
			}
		}
	}

	if s.normalizer != nil && leagueID != "" && (out.Detail == nil || localUserID != "") {
		out.Live = s.findLiveTeam(ctx, leagueID, teamID, localUserID)
	}

	if out.Detail == nil && out.Live == nil {
		return TeamProfile{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	if out.Live != nil && s.rosters != nil {
		out.Roster = s.rosters.ResolvePlayers(ctx, leagueID, out.Live.RosterID)
	}

	return out, nil
}

// findLiveTeam matches the owner's user id for local teams, else treats
// teamID as a roster id.
func (s *TeamProfileService) findLiveTeam(ctx context.Context, leagueID, teamID, localUserID string) *NormalizedTeam {
	if localUserID == "" {
		item, ok := s.normalizer.FindTeamByRosterID(ctx, leagueID, teamID)
		if !ok {
			return nil
		}
		return &item
	}

	for _, item := range s.normalizer.NormalizeTeams(ctx, leagueID) {
		if fantasy.SameID(item.UserID, localUserID) {
			return &item
		}
	}
	return nil
}
