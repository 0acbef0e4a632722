package fantasy

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	UnknownTeamName = "Unknown Team"

	// MaxDivisions bounds a numeric division count; larger counts are ignored.
	MaxDivisions = 64

	avatarThumbURL = "https://sleepercdn.com/avatars/thumbs/"
	avatarFullURL  = "https://sleepercdn.com/avatars/"
)

// ResolveDivisions interprets the league `settings.divisions` value. A list
// whose first element is a string is taken verbatim, a number N yields
// "Division 1".."Division N" for 1 <= N <= MaxDivisions, anything else yields
// no divisions.
func ResolveDivisions(raw any) []string {
	switch typed := raw.(type) {
	case []any:
		if len(typed) == 0 {
			return nil
		}
		if _, ok := typed[0].(string); !ok {
			return nil
		}
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			if name, ok := item.(string); ok {
				out = append(out, name)
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out
	case []string:
		if len(typed) == 0 {
			return nil
		}
		return append([]string(nil), typed...)
	case bool, string, nil:
		return nil
	}

	count, ok := ToInt(raw)
	if !ok || count <= 0 || count > MaxDivisions {
		return nil
	}
	out := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, "Division "+strconv.Itoa(i))
	}
	return out
}

// ResolveDivision maps a roster division index onto the league division list.
// The index is tried as 1-indexed first and as 0-indexed second.
func ResolveDivision(divisions []string, rawIndex any) (string, bool) {
	if len(divisions) == 0 || rawIndex == nil {
		return "", false
	}
	if _, isBool := rawIndex.(bool); isBool {
		return "", false
	}

	index, ok := ToInt(rawIndex)
	if !ok {
		return "", false
	}

	switch {
	case index >= 1 && index <= len(divisions):
		return divisions[index-1], true
	case index >= 0 && index < len(divisions):
		return divisions[index], true
	default:
		return "", false
	}
}

// ResolveTeamName picks the first non-empty of metadata team name, display
// name and username.
func ResolveTeamName(metadataTeamName, displayName, username string) string {
	for _, candidate := range []string{metadataTeamName, displayName, username} {
		if name := strings.TrimSpace(candidate); name != "" {
			return name
		}
	}
	return UnknownTeamName
}

func AvatarURL(avatarID string, thumbnail bool) string {
	avatarID = strings.TrimSpace(avatarID)
	if avatarID == "" {
		return ""
	}
	if thumbnail {
		return avatarThumbURL + avatarID
	}
	return avatarFullURL + avatarID
}

// TotalPoints combines the whole and hundredths parts the provider reports
// separately.
func TotalPoints(fpts, fptsDecimal float64) float64 {
	return fpts + fptsDecimal/100.0
}

// WorkingPlayerIDs returns the roster ids to resolve. When the primary list is
// empty but starters exist, starters and reserve are merged without
// duplicates in first-seen order.
func WorkingPlayerIDs(players, starters, reserve []string) []string {
	if len(players) > 0 || len(starters) == 0 {
		return append([]string(nil), players...)
	}

	seen := make(map[string]struct{}, len(starters)+len(reserve))
	out := make([]string, 0, len(starters)+len(reserve))
	for _, group := range [][]string{starters, reserve} {
		for _, id := range group {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

func PlayerName(firstName, lastName, playerID string) string {
	name := strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
	if name == "" {
		return PlaceholderPlayerName(playerID)
	}
	return name
}

func PlaceholderPlayerName(playerID string) string {
	return "Player " + playerID
}

// SameID reports whether two provider ids refer to the same record. Ids match
// textually or, when both are numeric, by value ("7" and "7.0").
func SameID(left, right string) bool {
	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)
	if left == "" || right == "" {
		return false
	}
	if left == right {
		return true
	}

	l, lok := ToFloat(left)
	r, rok := ToFloat(right)
	return lok && rok && l == r
}

// IDSet indexes string-coerced ids for membership checks.
func IDSet(ids []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[strings.TrimSpace(id)] = struct{}{}
	}
	return out
}
