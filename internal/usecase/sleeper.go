package usecase

import (
	"bytes"
	"context"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/fantasy-stats/internal/domain/fantasy"
)

const (
	PlayerCatalogCacheKey        = "sleeper_players"
	DefaultPlayerCatalogCacheTTL = 24 * time.Hour
)

// The provider payloads below decode without failing on a mistyped field:
// scalar text fields are LooseString and nested objects decode to their zero
// value unless the provider sends a JSON object. Interpretation happens in the
// fantasy conversion rules.

// ExternalLeague is the league metadata record served by the provider.
type ExternalLeague struct {
	LeagueID fantasy.LooseString     `json:"league_id"`
	Name     fantasy.LooseString     `json:"name"`
	Season   fantasy.LooseString     `json:"season"`
	Settings *ExternalLeagueSettings `json:"settings"`
}

type ExternalLeagueSettings struct {
	// Divisions is either a list of division names or a division count.
	Divisions any `json:"divisions"`
}

func (s *ExternalLeagueSettings) UnmarshalJSON(data []byte) error {
	type plain ExternalLeagueSettings
	var out plain
	if err := decodeObject(data, &out); err != nil {
		return err
	}
	*s = ExternalLeagueSettings(out)
	return nil
}

type ExternalUser struct {
	UserID      fantasy.LooseString   `json:"user_id"`
	Username    fantasy.LooseString   `json:"username"`
	DisplayName fantasy.LooseString   `json:"display_name"`
	Avatar      fantasy.LooseString   `json:"avatar"`
	Metadata    *ExternalUserMetadata `json:"metadata"`
}

type ExternalUserMetadata struct {
	TeamName fantasy.LooseString `json:"team_name"`
}

func (m *ExternalUserMetadata) UnmarshalJSON(data []byte) error {
	type plain ExternalUserMetadata
	var out plain
	if err := decodeObject(data, &out); err != nil {
		return err
	}
	*m = ExternalUserMetadata(out)
	return nil
}

func (u ExternalUser) MetadataTeamName() string {
	if u.Metadata == nil {
		return ""
	}
	return u.Metadata.TeamName.String()
}

// ExternalRoster holds a manager's roster. Numeric settings stay loosely typed
// and are interpreted by the fantasy conversion rules.
type ExternalRoster struct {
	RosterID fantasy.LooseString     `json:"roster_id"`
	OwnerID  fantasy.LooseString     `json:"owner_id"`
	Division any                     `json:"division"`
	Settings *ExternalRosterSettings `json:"settings"`
	Players  fantasy.LooseStringList `json:"players"`
	Starters fantasy.LooseStringList `json:"starters"`
	Reserve  fantasy.LooseStringList `json:"reserve"`
}

type ExternalRosterSettings struct {
	Wins        any `json:"wins"`
	Losses      any `json:"losses"`
	Ties        any `json:"ties"`
	Fpts        any `json:"fpts"`
	FptsDecimal any `json:"fpts_decimal"`
	Division    any `json:"division"`
}

func (s *ExternalRosterSettings) UnmarshalJSON(data []byte) error {
	type plain ExternalRosterSettings
	var out plain
	if err := decodeObject(data, &out); err != nil {
		return err
	}
	*s = ExternalRosterSettings(out)
	return nil
}

// DivisionIndex prefers the settings division over the top-level one.
func (r ExternalRoster) DivisionIndex() any {
	if r.Settings != nil && r.Settings.Division != nil {
		return r.Settings.Division
	}
	return r.Division
}

type ExternalPlayer struct {
	PlayerID  fantasy.LooseString `json:"player_id"`
	FirstName fantasy.LooseString `json:"first_name"`
	LastName  fantasy.LooseString `json:"last_name"`
	Position  fantasy.LooseString `json:"position"`
	Team      fantasy.LooseString `json:"team"`
}

func (p *ExternalPlayer) UnmarshalJSON(data []byte) error {
	type plain ExternalPlayer
	var out plain
	if err := decodeObject(data, &out); err != nil {
		return err
	}
	*p = ExternalPlayer(out)
	return nil
}

// decodeObject leaves dst untouched unless data is a JSON object.
func decodeObject(data []byte, dst any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	return sonic.Unmarshal(trimmed, dst)
}

// PlayerCatalog maps player id to player record.
type PlayerCatalog map[string]ExternalPlayer

// SleeperProvider is the external data client port.
type SleeperProvider interface {
	// FetchLeagueInfo reports false when the provider answers with no league.
	FetchLeagueInfo(ctx context.Context, leagueID string) (ExternalLeague, bool, error)
	FetchLeagueUsers(ctx context.Context, leagueID string) ([]ExternalUser, error)
	FetchLeagueRosters(ctx context.Context, leagueID string) ([]ExternalRoster, error)
	FetchAllPlayers(ctx context.Context) (PlayerCatalog, error)
}

// PlayerCatalogCache memoizes the player catalog.
type PlayerCatalogCache interface {
	Get(ctx context.Context, key string) (PlayerCatalog, bool)
	Set(ctx context.Context, key string, catalog PlayerCatalog, ttl time.Duration)
}
