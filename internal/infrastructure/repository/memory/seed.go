package memory

import (
	"time"

	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/domain/matchup"
	"github.com/riskibarqy/fantasy-stats/internal/domain/nflteam"
	"github.com/riskibarqy/fantasy-stats/internal/domain/playerscore"
	"github.com/riskibarqy/fantasy-stats/internal/domain/ranking"
	"github.com/riskibarqy/fantasy-stats/internal/domain/team"
)

const (
	SeedLeagueID2023 int64 = 992134718274121728
	SeedLeagueID2024 int64 = 1124849618240237568
)

// Dataset bundles the seeded archive used when no database is configured.
type Dataset struct {
	Leagues      []league.League
	Teams        []team.Team
	Rankings     []ranking.Ranking
	Matchups     []matchup.Matchup
	PlayerScores []playerscore.PlayerScore
	NFLTeamStats []nflteam.SeasonStats
}

func SeedDataset() Dataset {
	return Dataset{
		Leagues:      SeedLeagues(),
		Teams:        SeedTeams(),
		Rankings:     SeedRankings(),
		Matchups:     SeedMatchups(),
		PlayerScores: SeedPlayerScores(),
		NFLTeamStats: SeedNFLTeamStats(),
	}
}

func SeedLeagues() []league.League {
	return []league.League{
		{ID: SeedLeagueID2023, Season: 2023, DraftID: 992134718282510336, RosterPositions: "QB,RB,RB,WR,WR,TE,FLEX,K,DEF,BN,BN,BN,BN,BN", Divisions: "2"},
		{ID: SeedLeagueID2024, Season: 2024, DraftID: 1124849618248626176, RosterPositions: "QB,RB,RB,WR,WR,TE,FLEX,K,DEF,BN,BN,BN,BN,BN", Divisions: "2"},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Gridiron Gang", UserID: 470093488730099712},
		{ID: 2, Name: "Air Raiders", UserID: 470101245235519488},
		{ID: 3, Name: "Fourth and Long", UserID: 599452183045922816},
		{ID: 4, Name: "Bench Warmers"},
	}
}

func SeedRankings() []ranking.Ranking {
	return []ranking.Ranking{
		{ID: 1, TeamID: 1, Season: 2023, Rank: 1, Wins: 11, Losses: 3, TotalPoints: 1748.32, AveragePoints: 124.88, PlayoffAppearance: true, Championship: true},
		{ID: 2, TeamID: 2, Season: 2023, Rank: 2, Wins: 9, Losses: 5, TotalPoints: 1690.1, AveragePoints: 120.72, PlayoffAppearance: true},
		{ID: 3, TeamID: 3, Season: 2023, Rank: 3, Wins: 7, Losses: 7, TotalPoints: 1588.46, AveragePoints: 113.46},
		{ID: 4, TeamID: 1, Season: 2024, Rank: 3, Wins: 8, Losses: 6, TotalPoints: 1655.04, AveragePoints: 118.22, PlayoffAppearance: true},
		{ID: 5, TeamID: 2, Season: 2024, Rank: 1, Wins: 10, Losses: 3, Ties: 1, TotalPoints: 1801.9, AveragePoints: 128.71, PlayoffAppearance: true, Championship: true},
		{ID: 6, TeamID: 3, Season: 2024, Rank: 2, Wins: 9, Losses: 5, TotalPoints: 1702.66, AveragePoints: 121.62, PlayoffAppearance: true},
	}
}

func SeedMatchups() []matchup.Matchup {
	kickoff := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 17, 0, 0, 0, time.UTC)
	}
	return []matchup.Matchup{
		{ID: 1, Season: 2023, Week: 1, Team1ID: 1, Team2ID: 2, Team1Score: 131.42, Team2Score: 118.7, MatchDate: kickoff(2023, time.September, 10)},
		{ID: 2, Season: 2023, Week: 2, Team1ID: 3, Team2ID: 1, Team1Score: 101.18, Team2Score: 144.06, MatchDate: kickoff(2023, time.September, 17)},
		{ID: 3, Season: 2023, Week: 17, Team1ID: 1, Team2ID: 2, Team1Score: 139.9, Team2Score: 127.34, MatchDate: kickoff(2023, time.December, 31), IsPlayoff: true, IsChampionship: true},
		{ID: 4, Season: 2024, Week: 1, Team1ID: 2, Team2ID: 3, Team1Score: 122.5, Team2Score: 119.02, MatchDate: kickoff(2024, time.September, 8)},
		{ID: 5, Season: 2024, Week: 2, Team1ID: 1, Team2ID: 3, Team1Score: 110.84, Team2Score: 126.3, MatchDate: kickoff(2024, time.September, 15)},
		{ID: 6, Season: 2024, Week: 17, Team1ID: 2, Team2ID: 3, Team1Score: 151.28, Team2Score: 133.6, MatchDate: kickoff(2024, time.December, 29), IsPlayoff: true, IsChampionship: true},
	}
}

func SeedPlayerScores() []playerscore.PlayerScore {
	return []playerscore.PlayerScore{
		{ID: 1, PlayerName: "Josh Allen", Position: "QB", TeamID: 1, FantasyPoints: 38.24, NFLTeam: "BUF", MatchupID: 1},
		{ID: 2, PlayerName: "Josh Allen", Position: "QB", TeamID: 1, FantasyPoints: 27.6, NFLTeam: "BUF", MatchupID: 3},
		{ID: 3, PlayerName: "Travis Kelce", Position: "TE", TeamID: 1, FantasyPoints: 19.3, NFLTeam: "KC", MatchupID: 3},
		{ID: 4, PlayerName: "Justin Jefferson", Position: "WR", TeamID: 2, FantasyPoints: 31.1, NFLTeam: "MIN", MatchupID: 6},
		{ID: 5, PlayerName: "Christian McCaffrey", Position: "RB", TeamID: 3, FantasyPoints: 35.7, NFLTeam: "SF", MatchupID: 2},
	}
}

func SeedNFLTeamStats() []nflteam.SeasonStats {
	bills := nflteam.Team{ID: 1, Name: "Buffalo Bills", Abbreviation: "BUF", City: "Buffalo", Conference: "AFC", Division: "East"}
	chiefs := nflteam.Team{ID: 2, Name: "Kansas City Chiefs", Abbreviation: "KC", City: "Kansas City", Conference: "AFC", Division: "West"}
	niners := nflteam.Team{ID: 3, Name: "San Francisco 49ers", Abbreviation: "SF", City: "San Francisco", Conference: "NFC", Division: "West"}
	return []nflteam.SeasonStats{
		{Team: bills, Season: 2023, TotalFantasyPoints: 436.2, GamesPlayed: 17, AveragePoints: 25.66},
		{Team: chiefs, Season: 2023, TotalFantasyPoints: 402.9, GamesPlayed: 17, AveragePoints: 23.7},
		{Team: niners, Season: 2023, TotalFantasyPoints: 451.4, GamesPlayed: 17, AveragePoints: 26.55},
		{Team: bills, Season: 2024, TotalFantasyPoints: 448.8, GamesPlayed: 17, AveragePoints: 26.4},
		{Team: chiefs, Season: 2024, TotalFantasyPoints: 380.1, GamesPlayed: 17, AveragePoints: 22.36},
	}
}
