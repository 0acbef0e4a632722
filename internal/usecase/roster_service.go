package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-stats/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type RosterPlayer struct {
	PlayerID  string
	Name      string
	Position  string
	Team      string
	IsStarter bool
	IsReserve bool
}

type RosterService struct {
	provider SleeperProvider
	cache    PlayerCatalogCache
	cacheTTL time.Duration
	logger   *logging.Logger
}

func NewRosterService(provider SleeperProvider, cache PlayerCatalogCache, cacheTTL time.Duration, logger *logging.Logger) *RosterService {
	if cacheTTL <= 0 {
		cacheTTL = DefaultPlayerCatalogCacheTTL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &RosterService{
		provider: provider,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// ResolvePlayers expands a roster's player ids into player records. A roster
// that cannot be found or fetched resolves to an empty list.
func (s *RosterService) ResolvePlayers(ctx context.Context, leagueID, rosterID string) []RosterPlayer {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ResolvePlayers", leagueAttr(leagueID), attribute.String("sleeper.roster_id", rosterID))
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	rosterID = strings.TrimSpace(rosterID)
	if leagueID == "" || rosterID == "" || s.provider == nil {
		return []RosterPlayer{}
	}

	rosters, err := s.provider.FetchLeagueRosters(ctx, leagueID)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch league rosters failed", "league_id", leagueID, "roster_id", rosterID, "error", err)
		return []RosterPlayer{}
	}

	roster, ok := findRoster(rosters, rosterID)
	if !ok {
		s.logger.InfoContext(ctx, "roster not found", "league_id", leagueID, "roster_id", rosterID, "rosters", len(rosters))
		return []RosterPlayer{}
	}

	starters := fantasy.LooseStrings(roster.Starters)
	reserve := fantasy.LooseStrings(roster.Reserve)
	playerIDs := fantasy.WorkingPlayerIDs(fantasy.LooseStrings(roster.Players), starters, reserve)
	if len(playerIDs) == 0 {
		s.logger.InfoContext(ctx, "roster has no players", "league_id", leagueID, "roster_id", rosterID)
		return []RosterPlayer{}
	}

	starterSet := fantasy.IDSet(starters)
	reserveSet := fantasy.IDSet(reserve)
	catalog := s.playerCatalog(ctx)

	out := make([]RosterPlayer, 0, len(playerIDs))
	for _, playerID := range playerIDs {
		_, isStarter := starterSet[playerID]
		_, isReserve := reserveSet[playerID]

		item := RosterPlayer{
			PlayerID:  playerID,
			Name:      fantasy.PlaceholderPlayerName(playerID),
			IsStarter: isStarter,
			IsReserve: isReserve,
		}
		if info, found := catalog[playerID]; found {
			item.Name = fantasy.PlayerName(info.FirstName.String(), info.LastName.String(), playerID)
			item.Position = info.Position.String()
			item.Team = info.Team.String()
		}
		out = append(out, item)
	}

	return out
}

// playerCatalog serves the catalog from cache and refills it on a miss. A
// failed fetch is not cached.
func (s *RosterService) playerCatalog(ctx context.Context) PlayerCatalog {
	if s.cache != nil {
		if catalog, ok := s.cache.Get(ctx, PlayerCatalogCacheKey); ok {
			return catalog
		}
	}

	catalog, err := s.provider.FetchAllPlayers(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch player catalog failed", "error", err)
		return PlayerCatalog{}
	}
	if catalog == nil {
		catalog = PlayerCatalog{}
	}

	if s.cache != nil {
		s.cache.Set(ctx, PlayerCatalogCacheKey, catalog, s.cacheTTL)
	}
	return catalog
}

func findRoster(rosters []ExternalRoster, rosterID string) (ExternalRoster, bool) {
	for _, roster := range rosters {
		if fantasy.SameID(roster.RosterID.String(), rosterID) {
			return roster, true
		}
	}
	return ExternalRoster{}, false
}
