package usecase

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/domain/team"
	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
)

const (
	UnassignedDivision = "Unassigned"
	AllTeamsDivision   = "All Teams"
)

// CombinedTeam is a live team enriched with its local history, if any.
type CombinedTeam struct {
	NormalizedTeam

	// TeamID is the navigation id: the local team id when matched, else the
	// roster id.
	TeamID        string
	LocalTeamID   int64
	LocalTeamName string
	HasDBRecord   bool
	TotalWins     int
	TotalLosses   int
	Championships int
	SeasonsPlayed int
	BestRank      int
}

type DivisionGroup struct {
	Name  string
	Teams []CombinedTeam
}

type Reconciliation struct {
	LeagueID        string
	Teams           []CombinedTeam
	TeamsByDivision []DivisionGroup
	HasDivisions    bool
}

type ReconcileService struct {
	normalizer *TeamNormalizer
	teamRepo   team.Repository
	leagueRepo league.Repository
	logger     *logging.Logger
}

func NewReconcileService(
	normalizer *TeamNormalizer,
	teamRepo team.Repository,
	leagueRepo league.Repository,
	logger *logging.Logger,
) *ReconcileService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReconcileService{
		normalizer: normalizer,
		teamRepo:   teamRepo,
		leagueRepo: leagueRepo,
		logger:     logger,
	}
}

// Reconcile overlays local team history on the live league teams and groups
// the result by division. With no league id the latest archived league is
// used; with neither the result is empty.
func (s *ReconcileService) Reconcile(ctx context.Context, leagueID string) Reconciliation {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReconcileService.Reconcile")
	defer span.End()

	leagueID = s.ResolveLeagueID(ctx, leagueID)

	var live []NormalizedTeam
	if leagueID != "" && s.normalizer != nil {
		live = s.normalizer.NormalizeTeams(ctx, leagueID)
	}

	statsByUser := s.localStatsByUser(ctx)

	teams := make([]CombinedTeam, 0, len(live))
	for _, item := range live {
		teams = append(teams, combineTeam(item, statsByUser))
	}

	groups, hasDivisions := groupByDivision(teams)
	return Reconciliation{
		LeagueID:        leagueID,
		Teams:           teams,
		TeamsByDivision: groups,
		HasDivisions:    hasDivisions,
	}
}

// ResolveLeagueID falls back to the latest archived league when leagueID is
// empty.
func (s *ReconcileService) ResolveLeagueID(ctx context.Context, leagueID string) string {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID != "" || s.leagueRepo == nil {
		return leagueID
	}

	latest, exists, err := s.leagueRepo.Latest(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "resolve latest league failed", "error", err)
		return ""
	}
	if !exists {
		return ""
	}
	return latest.SleeperID()
}

func (s *ReconcileService) localStatsByUser(ctx context.Context) map[int64]team.Stats {
	out := make(map[int64]team.Stats)
	if s.teamRepo == nil {
		return out
	}

	stats, err := s.teamRepo.ListStats(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "list local team stats failed", "error", err)
		return out
	}
	for _, item := range stats {
		if item.Team.UserID == 0 {
			continue
		}
		out[item.Team.UserID] = item
	}
	return out
}

func combineTeam(item NormalizedTeam, statsByUser map[int64]team.Stats) CombinedTeam {
	combined := CombinedTeam{
		NormalizedTeam: item,
		TeamID:         item.RosterID,
	}

	userID, err := strconv.ParseInt(strings.TrimSpace(item.UserID), 10, 64)
	if err != nil {
		return combined
	}
	local, ok := statsByUser[userID]
	if !ok {
		return combined
	}

	combined.TeamID = strconv.FormatInt(local.Team.ID, 10)
	combined.LocalTeamID = local.Team.ID
	combined.LocalTeamName = local.Team.Name
	combined.HasDBRecord = true
	combined.TotalWins = local.TotalWins
	combined.TotalLosses = local.TotalLosses
	combined.Championships = local.Championships
	combined.SeasonsPlayed = local.SeasonsPlayed
	combined.BestRank = local.BestRank
	return combined
}

func groupByDivision(teams []CombinedTeam) ([]DivisionGroup, bool) {
	hasDivisions := false
	for _, item := range teams {
		if item.Division != "" {
			hasDivisions = true
			break
		}
	}

	if !hasDivisions {
		return []DivisionGroup{{Name: AllTeamsDivision, Teams: teams}}, false
	}

	buckets := make(map[string][]CombinedTeam)
	for _, item := range teams {
		key := item.Division
		if key == "" {
			key = UnassignedDivision
		}
		buckets[key] = append(buckets[key], item)
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]DivisionGroup, 0, len(names))
	for _, name := range names {
		out = append(out, DivisionGroup{Name: name, Teams: buckets[name]})
	}
	return out, true
}
