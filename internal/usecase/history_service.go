package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/fantasy-stats/internal/domain/matchup"
	"github.com/riskibarqy/fantasy-stats/internal/domain/nflteam"
	"github.com/riskibarqy/fantasy-stats/internal/domain/playerscore"
	"github.com/riskibarqy/fantasy-stats/internal/domain/ranking"
	"github.com/riskibarqy/fantasy-stats/internal/domain/team"
	"go.opentelemetry.io/otel/attribute"
)

const (
	overviewTopTeamsLimit    = 5
	overviewChampionsLimit   = 5
	detailRecentMatchupLimit = 10
	insightsTopPlayersLimit  = 10
)

type Overview struct {
	TotalTeams      int
	TotalSeasons    int
	LatestSeason    int
	HasLatestSeason bool
	TopTeams        []ranking.TeamPoints
	RecentChampions []ranking.Champion
}

type TeamDetail struct {
	Team               team.Team
	Rankings           []ranking.Ranking
	Championships      int
	PlayoffAppearances int
	TotalWins          int
	TotalLosses        int
	TotalTies          int
	BestRank           int
	WorstRank          int
	HighestMatch       *matchup.Matchup
	HighestMatchScore  float64
	HighestPlayerScore *playerscore.PlayerScore
	RecentMatchups     []matchup.Matchup
}

type SeasonPerformance struct {
	Season        int
	Rank          int
	Wins          int
	Losses        int
	TotalPoints   float64
	AveragePoints float64
	Playoff       bool
	Championship  bool
}

type TeamInsights struct {
	Team              team.Team
	SeasonPerformance []SeasonPerformance
	TopPlayers        []playerscore.PlayerTotal
}

// HistoryService serves the archived league history.
type HistoryService struct {
	teamRepo        team.Repository
	rankingRepo     ranking.Repository
	matchupRepo     matchup.Repository
	playerScoreRepo playerscore.Repository
	nflTeamRepo     nflteam.Repository
}

func NewHistoryService(
	teamRepo team.Repository,
	rankingRepo ranking.Repository,
	matchupRepo matchup.Repository,
	playerScoreRepo playerscore.Repository,
	nflTeamRepo nflteam.Repository,
) *HistoryService {
	return &HistoryService{
		teamRepo:        teamRepo,
		rankingRepo:     rankingRepo,
		matchupRepo:     matchupRepo,
		playerScoreRepo: playerScoreRepo,
		nflTeamRepo:     nflTeamRepo,
	}
}

func (s *HistoryService) Overview(ctx context.Context) (Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.Overview")
	defer span.End()

	totalTeams, err := s.teamRepo.Count(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("count teams: %w", err)
	}

	summary, err := s.rankingRepo.Summary(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("summarize rankings: %w", err)
	}

	topTeams := []ranking.TeamPoints{}
	if summary.HasSeasons {
		topTeams, err = s.rankingRepo.TopTeamsByPoints(ctx, overviewTopTeamsLimit)
		if err != nil {
			return Overview{}, fmt.Errorf("list top teams by points: %w", err)
		}
	}

	champions, err := s.rankingRepo.ListChampions(ctx, overviewChampionsLimit)
	if err != nil {
		return Overview{}, fmt.Errorf("list champions: %w", err)
	}

	return Overview{
		TotalTeams:      totalTeams,
		TotalSeasons:    summary.TotalSeasons,
		LatestSeason:    summary.LatestSeason,
		HasLatestSeason: summary.HasSeasons,
		TopTeams:        topTeams,
		RecentChampions: champions,
	}, nil
}

// ListTeams returns every local team with its aggregates, ordered by name.
func (s *HistoryService) ListTeams(ctx context.Context) ([]team.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.ListTeams")
	defer span.End()

	items, err := s.teamRepo.ListStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("list team stats: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Team.Name < items[j].Team.Name
	})
	return items, nil
}

func (s *HistoryService) GetTeamDetail(ctx context.Context, teamID int64) (TeamDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.GetTeamDetail", attribute.Int64("team.id", teamID))
	defer span.End()

	teamItem, err := s.getTeam(ctx, teamID)
	if err != nil {
		return TeamDetail{}, err
	}

	rankings, err := s.rankingRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return TeamDetail{}, fmt.Errorf("list rankings by team: %w", err)
	}
	newestFirst := make([]ranking.Ranking, len(rankings))
	copy(newestFirst, rankings)
	sort.SliceStable(newestFirst, func(i, j int) bool {
		return newestFirst[i].Season > newestFirst[j].Season
	})

	out := TeamDetail{
		Team:     teamItem,
		Rankings: newestFirst,
	}
	for i, item := range newestFirst {
		if item.Championship {
			out.Championships++
		}
		if item.PlayoffAppearance {
			out.PlayoffAppearances++
		}
		out.TotalWins += item.Wins
		out.TotalLosses += item.Losses
		out.TotalTies += item.Ties
		if i == 0 || item.Rank < out.BestRank {
			out.BestRank = item.Rank
		}
		if i == 0 || item.Rank > out.WorstRank {
			out.WorstRank = item.Rank
		}
	}

	matchups, err := s.matchupRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return TeamDetail{}, fmt.Errorf("list matchups by team: %w", err)
	}
	out.HighestMatch, out.HighestMatchScore = highestMatch(matchups, teamID)
	out.RecentMatchups = recentMatchups(matchups, detailRecentMatchupLimit)

	highest, exists, err := s.playerScoreRepo.HighestByTeam(ctx, teamID)
	if err != nil {
		return TeamDetail{}, fmt.Errorf("get highest player score: %w", err)
	}
	if exists {
		out.HighestPlayerScore = &highest
	}

	return out, nil
}

func (s *HistoryService) GetTeamInsights(ctx context.Context, teamID int64) (TeamInsights, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.GetTeamInsights", attribute.Int64("team.id", teamID))
	defer span.End()

	teamItem, err := s.getTeam(ctx, teamID)
	if err != nil {
		return TeamInsights{}, err
	}

	rankings, err := s.rankingRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return TeamInsights{}, fmt.Errorf("list rankings by team: %w", err)
	}
	performance := make([]SeasonPerformance, 0, len(rankings))
	for _, item := range rankings {
		performance = append(performance, SeasonPerformance{
			Season:        item.Season,
			Rank:          item.Rank,
			Wins:          item.Wins,
			Losses:        item.Losses,
			TotalPoints:   item.TotalPoints,
			AveragePoints: item.AveragePoints,
			Playoff:       item.PlayoffAppearance,
			Championship:  item.Championship,
		})
	}

	topPlayers, err := s.playerScoreRepo.TopPlayersByTeam(ctx, teamID, insightsTopPlayersLimit)
	if err != nil {
		return TeamInsights{}, fmt.Errorf("list top players by team: %w", err)
	}

	return TeamInsights{
		Team:              teamItem,
		SeasonPerformance: performance,
		TopPlayers:        topPlayers,
	}, nil
}

func (s *HistoryService) ListNFLTeamStats(ctx context.Context, season int) ([]nflteam.SeasonStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.ListNFLTeamStats", attribute.Int("season", season))
	defer span.End()

	if season < 0 {
		return nil, fmt.Errorf("%w: season must not be negative", ErrInvalidInput)
	}

	items, err := s.nflTeamRepo.ListStatsBySeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("list nfl team stats: %w", err)
	}
	return items, nil
}

// FindTeam looks up a local team without failing on a miss.
func (s *HistoryService) FindTeam(ctx context.Context, teamID int64) (team.Team, bool, error) {
	if teamID <= 0 {
		return team.Team{}, false, nil
	}
	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, false, fmt.Errorf("get team by id: %w", err)
	}
	return item, exists, nil
}

func (s *HistoryService) getTeam(ctx context.Context, teamID int64) (team.Team, error) {
	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	return item, nil
}

// highestMatch returns the matchup with the team's best score. Only scores
// above zero count.
func highestMatch(items []matchup.Matchup, teamID int64) (*matchup.Matchup, float64) {
	var best *matchup.Matchup
	bestScore := 0.0
	for i := range items {
		score, ok := items[i].ScoreFor(teamID)
		if !ok || score <= bestScore {
			continue
		}
		bestScore = score
		best = &items[i]
	}
	if best == nil {
		return nil, 0
	}
	out := *best
	return &out, bestScore
}

func recentMatchups(items []matchup.Matchup, limit int) []matchup.Matchup {
	out := make([]matchup.Matchup, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Season != out[j].Season {
			return out[i].Season > out[j].Season
		}
		return out[i].Week > out[j].Week
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
