package httpapi

import (
	"time"

	"github.com/riskibarqy/fantasy-stats/internal/domain/matchup"
	"github.com/riskibarqy/fantasy-stats/internal/domain/nflteam"
	"github.com/riskibarqy/fantasy-stats/internal/domain/playerscore"
	"github.com/riskibarqy/fantasy-stats/internal/domain/ranking"
	"github.com/riskibarqy/fantasy-stats/internal/domain/team"
	"github.com/riskibarqy/fantasy-stats/internal/usecase"
)

type overviewDTO struct {
	TotalTeams      int            `json:"total_teams"`
	TotalSeasons    int            `json:"total_seasons"`
	LatestSeason    *int           `json:"latest_season"`
	TopTeams        []teamPointDTO `json:"top_teams"`
	RecentChampions []championDTO  `json:"recent_champions"`
}

type teamPointDTO struct {
	TeamID      int64   `json:"team_id"`
	TeamName    string  `json:"team_name"`
	TotalPoints float64 `json:"total_points"`
}

type championDTO struct {
	Season   int    `json:"season"`
	TeamID   int64  `json:"team_id"`
	TeamName string `json:"team_name"`
}

type teamDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID int64  `json:"user_id,omitempty"`
}

type teamStatsDTO struct {
	Team          teamDTO `json:"team"`
	TotalWins     int     `json:"total_wins"`
	TotalLosses   int     `json:"total_losses"`
	Championships int     `json:"championships"`
	SeasonsPlayed int     `json:"seasons_played"`
	BestRank      int     `json:"best_rank"`
}

type rankingDTO struct {
	Season            int     `json:"season"`
	Rank              int     `json:"rank"`
	Wins              int     `json:"wins"`
	Losses            int     `json:"losses"`
	Ties              int     `json:"ties"`
	TotalPoints       float64 `json:"total_points"`
	AveragePoints     float64 `json:"average_points"`
	PlayoffAppearance bool    `json:"playoff_appearance"`
	Championship      bool    `json:"championship"`
}

type matchupDTO struct {
	ID             int64   `json:"id"`
	Season         int     `json:"season"`
	Week           int     `json:"week"`
	Team1ID        int64   `json:"team1_id"`
	Team1Name      string  `json:"team1_name"`
	Team2ID        int64   `json:"team2_id"`
	Team2Name      string  `json:"team2_name"`
	Team1Score     float64 `json:"team1_score"`
	Team2Score     float64 `json:"team2_score"`
	MatchDate      string  `json:"match_date,omitempty"`
	IsPlayoff      bool    `json:"is_playoff"`
	IsChampionship bool    `json:"is_championship"`
}

type playerScoreDTO struct {
	PlayerName    string  `json:"player_name"`
	Position      string  `json:"position"`
	FantasyPoints float64 `json:"fantasy_points"`
	NFLTeam       string  `json:"nfl_team"`
	MatchupID     int64   `json:"matchup_id,omitempty"`
}

type teamDetailDTO struct {
	Team               teamDTO         `json:"team"`
	Rankings           []rankingDTO    `json:"rankings"`
	Championships      int             `json:"championships"`
	PlayoffAppearances int             `json:"playoff_appearances"`
	TotalWins          int             `json:"total_wins"`
	TotalLosses        int             `json:"total_losses"`
	TotalTies          int             `json:"total_ties"`
	BestRank           *int            `json:"best_rank"`
	WorstRank          *int            `json:"worst_rank"`
	HighestMatch       *matchupDTO     `json:"highest_match"`
	HighestMatchScore  float64         `json:"highest_match_score"`
	HighestPlayerScore *playerScoreDTO `json:"highest_player_score"`
	RecentMatchups     []matchupDTO    `json:"recent_matchups"`
}

type normalizedTeamDTO struct {
	UserID      string  `json:"user_id"`
	Username    string  `json:"username"`
	DisplayName string  `json:"display_name"`
	TeamName    string  `json:"team_name"`
	Avatar      string  `json:"avatar"`
	AvatarURL   string  `json:"avatar_url"`
	RosterID    string  `json:"roster_id"`
	Division    string  `json:"division"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Ties        int     `json:"ties"`
	Fpts        float64 `json:"fpts"`
	FptsDecimal float64 `json:"fpts_decimal"`
	TotalPoints float64 `json:"total_points"`
}

type combinedTeamDTO struct {
	normalizedTeamDTO
	TeamID        string `json:"team_id"`
	LocalTeamID   int64  `json:"local_team_id,omitempty"`
	LocalTeamName string `json:"local_team_name,omitempty"`
	HasDBRecord   bool   `json:"has_db_record"`
	TotalWins     int    `json:"total_wins"`
	TotalLosses   int    `json:"total_losses"`
	Championships int    `json:"championships"`
	SeasonsPlayed int    `json:"seasons_played"`
	BestRank      int    `json:"best_rank"`
}

type divisionGroupDTO struct {
	Name  string            `json:"name"`
	Teams []combinedTeamDTO `json:"teams"`
}

type reconciliationDTO struct {
	LeagueID        string             `json:"league_id"`
	Teams           []combinedTeamDTO  `json:"teams"`
	TeamsByDivision []divisionGroupDTO `json:"teams_by_division"`
	HasDivisions    bool               `json:"has_divisions"`
}

type rosterPlayerDTO struct {
	PlayerID  string `json:"player_id"`
	Name      string `json:"name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
	IsStarter bool   `json:"is_starter"`
	IsReserve bool   `json:"is_reserve"`
}

type rosterDTO struct {
	LeagueID string            `json:"league_id"`
	RosterID string            `json:"roster_id"`
	Players  []rosterPlayerDTO `json:"players"`
}

type teamProfileDTO struct {
	LeagueID string             `json:"league_id"`
	Detail   *teamDetailDTO     `json:"detail"`
	Live     *normalizedTeamDTO `json:"live"`
	Roster   []rosterPlayerDTO  `json:"roster"`
}

type seasonPerformanceDTO struct {
	Season        int     `json:"season"`
	Rank          int     `json:"rank"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	TotalPoints   float64 `json:"total_points"`
	AveragePoints float64 `json:"average_points"`
	Playoff       bool    `json:"playoff"`
	Championship  bool    `json:"championship"`
}

type playerTotalDTO struct {
	PlayerName    string  `json:"player_name"`
	TotalPoints   float64 `json:"total_points"`
	Games         int     `json:"games"`
	AveragePoints float64 `json:"average_points"`
}

type teamInsightsDTO struct {
	Team              teamDTO                `json:"team"`
	SeasonPerformance []seasonPerformanceDTO `json:"season_performance"`
	TopPlayers        []playerTotalDTO       `json:"top_players"`
}

type nflTeamStatsDTO struct {
	TeamID             int64   `json:"team_id"`
	Name               string  `json:"name"`
	Abbreviation       string  `json:"abbreviation"`
	City               string  `json:"city"`
	Conference         string  `json:"conference"`
	Division           string  `json:"division"`
	Season             int     `json:"season"`
	TotalFantasyPoints float64 `json:"total_fantasy_points"`
	GamesPlayed        int     `json:"games_played"`
	AveragePoints      float64 `json:"average_points"`
}

func overviewToDTO(item usecase.Overview) overviewDTO {
	out := overviewDTO{
		TotalTeams:      item.TotalTeams,
		TotalSeasons:    item.TotalSeasons,
		TopTeams:        make([]teamPointDTO, 0, len(item.TopTeams)),
		RecentChampions: make([]championDTO, 0, len(item.RecentChampions)),
	}
	if item.HasLatestSeason {
		season := item.LatestSeason
		out.LatestSeason = &season
	}
	for _, top := range item.TopTeams {
		out.TopTeams = append(out.TopTeams, teamPointToDTO(top))
	}
	for _, champion := range item.RecentChampions {
		out.RecentChampions = append(out.RecentChampions, championDTO{
			Season:   champion.Season,
			TeamID:   champion.TeamID,
			TeamName: champion.TeamName,
		})
	}
	return out
}

func teamPointToDTO(item ranking.TeamPoints) teamPointDTO {
	return teamPointDTO{
		TeamID:      item.TeamID,
		TeamName:    item.TeamName,
		TotalPoints: item.TotalPoints,
	}
}

func teamToDTO(item team.Team) teamDTO {
	return teamDTO{
		ID:     item.ID,
		Name:   item.Name,
		UserID: item.UserID,
	}
}

func teamStatsToDTO(item team.Stats) teamStatsDTO {
	return teamStatsDTO{
		Team:          teamToDTO(item.Team),
		TotalWins:     item.TotalWins,
		TotalLosses:   item.TotalLosses,
		Championships: item.Championships,
		SeasonsPlayed: item.SeasonsPlayed,
		BestRank:      item.BestRank,
	}
}

func rankingToDTO(item ranking.Ranking) rankingDTO {
	return rankingDTO{
		Season:            item.Season,
		Rank:              item.Rank,
		Wins:              item.Wins,
		Losses:            item.Losses,
		Ties:              item.Ties,
		TotalPoints:       item.TotalPoints,
		AveragePoints:     item.AveragePoints,
		PlayoffAppearance: item.PlayoffAppearance,
		Championship:      item.Championship,
	}
}

func matchupToDTO(item matchup.Matchup) matchupDTO {
	out := matchupDTO{
		ID:             item.ID,
		Season:         item.Season,
		Week:           item.Week,
		Team1ID:        item.Team1ID,
		Team1Name:      item.Team1Name,
		Team2ID:        item.Team2ID,
		Team2Name:      item.Team2Name,
		Team1Score:     item.Team1Score,
		Team2Score:     item.Team2Score,
		IsPlayoff:      item.IsPlayoff,
		IsChampionship: item.IsChampionship,
	}
	if !item.MatchDate.IsZero() {
		out.MatchDate = item.MatchDate.UTC().Format(time.RFC3339)
	}
	return out
}

func playerScoreToDTO(item playerscore.PlayerScore) playerScoreDTO {
	return playerScoreDTO{
		PlayerName:    item.PlayerName,
		Position:      item.Position,
		FantasyPoints: item.FantasyPoints,
		NFLTeam:       item.NFLTeam,
		MatchupID:     item.MatchupID,
	}
}

func teamDetailToDTO(item usecase.TeamDetail) teamDetailDTO {
	out := teamDetailDTO{
		Team:               teamToDTO(item.Team),
		Rankings:           make([]rankingDTO, 0, len(item.Rankings)),
		Championships:      item.Championships,
		PlayoffAppearances: item.PlayoffAppearances,
		TotalWins:          item.TotalWins,
		TotalLosses:        item.TotalLosses,
		TotalTies:          item.TotalTies,
		HighestMatchScore:  item.HighestMatchScore,
		RecentMatchups:     make([]matchupDTO, 0, len(item.RecentMatchups)),
	}
	for _, r := range item.Rankings {
		out.Rankings = append(out.Rankings, rankingToDTO(r))
	}
	if len(item.Rankings) > 0 {
		best, worst := item.BestRank, item.WorstRank
		out.BestRank = &best
		out.WorstRank = &worst
	}
	if item.HighestMatch != nil {
		highest := matchupToDTO(*item.HighestMatch)
		out.HighestMatch = &highest
	}
	if item.HighestPlayerScore != nil {
		score := playerScoreToDTO(*item.HighestPlayerScore)
		out.HighestPlayerScore = &score
	}
	for _, m := range item.RecentMatchups {
		out.RecentMatchups = append(out.RecentMatchups, matchupToDTO(m))
	}
	return out
}

func normalizedTeamToDTO(item usecase.NormalizedTeam) normalizedTeamDTO {
	return normalizedTeamDTO{
		UserID:      item.UserID,
		Username:    item.Username,
		DisplayName: item.DisplayName,
		TeamName:    item.TeamName,
		Avatar:      item.Avatar,
		AvatarURL:   item.AvatarURL,
		RosterID:    item.RosterID,
		Division:    item.Division,
		Wins:        item.Wins,
		Losses:      item.Losses,
		Ties:        item.Ties,
		Fpts:        item.Fpts,
		FptsDecimal: item.FptsDecimal,
		TotalPoints: item.TotalPoints,
	}
}

func combinedTeamToDTO(item usecase.CombinedTeam) combinedTeamDTO {
	return combinedTeamDTO{
		normalizedTeamDTO: normalizedTeamToDTO(item.NormalizedTeam),
		TeamID:            item.TeamID,
		LocalTeamID:       item.LocalTeamID,
		LocalTeamName:     item.LocalTeamName,
		HasDBRecord:       item.HasDBRecord,
		TotalWins:         item.TotalWins,
		TotalLosses:       item.TotalLosses,
		Championships:     item.Championships,
		SeasonsPlayed:     item.SeasonsPlayed,
		BestRank:          item.BestRank,
	}
}

func reconciliationToDTO(item usecase.Reconciliation) reconciliationDTO {
	out := reconciliationDTO{
		LeagueID:        item.LeagueID,
		Teams:           make([]combinedTeamDTO, 0, len(item.Teams)),
		TeamsByDivision: make([]divisionGroupDTO, 0, len(item.TeamsByDivision)),
		HasDivisions:    item.HasDivisions,
	}
	for _, t := range item.Teams {
		out.Teams = append(out.Teams, combinedTeamToDTO(t))
	}
	for _, group := range item.TeamsByDivision {
		teams := make([]combinedTeamDTO, 0, len(group.Teams))
		for _, t := range group.Teams {
			teams = append(teams, combinedTeamToDTO(t))
		}
		out.TeamsByDivision = append(out.TeamsByDivision, divisionGroupDTO{Name: group.Name, Teams: teams})
	}
	return out
}

func rosterPlayerToDTO(item usecase.RosterPlayer) rosterPlayerDTO {
	return rosterPlayerDTO{
		PlayerID:  item.PlayerID,
		Name:      item.Name,
		Position:  item.Position,
		Team:      item.Team,
		IsStarter: item.IsStarter,
		IsReserve: item.IsReserve,
	}
}

func teamProfileToDTO(item usecase.TeamProfile) teamProfileDTO {
	out := teamProfileDTO{
		LeagueID: item.LeagueID,
		Roster:   make([]rosterPlayerDTO, 0, len(item.Roster)),
	}
	if item.Detail != nil {
		detail := teamDetailToDTO(*item.Detail)
		out.Detail = &detail
	}
	if item.Live != nil {
		live := normalizedTeamToDTO(*item.Live)
		out.Live = &live
	}
	for _, p := range item.Roster {
		out.Roster = append(out.Roster, rosterPlayerToDTO(p))
	}
	return out
}

func teamInsightsToDTO(item usecase.TeamInsights) teamInsightsDTO {
	out := teamInsightsDTO{
		Team:              teamToDTO(item.Team),
		SeasonPerformance: make([]seasonPerformanceDTO, 0, len(item.SeasonPerformance)),
		TopPlayers:        make([]playerTotalDTO, 0, len(item.TopPlayers)),
	}
	for _, season := range item.SeasonPerformance {
		out.SeasonPerformance = append(out.SeasonPerformance, seasonPerformanceDTO(season))
	}
	for _, player := range item.TopPlayers {
		out.TopPlayers = append(out.TopPlayers, playerTotalDTO(player))
	}
	return out
}

func nflTeamStatsToDTO(item nflteam.SeasonStats) nflTeamStatsDTO {
	return nflTeamStatsDTO{
		TeamID:             item.Team.ID,
		Name:               item.Team.Name,
		Abbreviation:       item.Team.Abbreviation,
		City:               item.Team.City,
		Conference:         item.Team.Conference,
		Division:           item.Team.Division,
		Season:             item.Season,
		TotalFantasyPoints: item.TotalFantasyPoints,
		GamesPlayed:        item.GamesPlayed,
		AveragePoints:      item.AveragePoints,
	}
}
