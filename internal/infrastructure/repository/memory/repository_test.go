package memory

import (
	"context"
	"testing"
)

func TestTeamRepository_ListStats(t *testing.T) {
	t.Parallel()

	data := SeedDataset()
	repo := NewTeamRepository(data.Teams, data.Rankings)

	stats, err := repo.ListStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 4 {
		t.Fatalf("expected 4 teams, got=%d", len(stats))
	}
	if stats[0].Team.Name != "Air Raiders" {
		t.Fatalf("expected name ordering, first=%s", stats[0].Team.Name)
	}

	byName := make(map[string]int, len(stats))
	for idx, item := range stats {
		byName[item.Team.Name] = idx
	}
	gang := stats[byName["Gridiron Gang"]]
	if gang.TotalWins != 19 || gang.TotalLosses != 9 || gang.Championships != 1 || gang.SeasonsPlayed != 2 || gang.BestRank != 1 {
		t.Fatalf("unexpected aggregates: %+v", gang)
	}
	bench := stats[byName["Bench Warmers"]]
	if bench.SeasonsPlayed != 0 || bench.BestRank != 0 || bench.TotalWins != 0 {
		t.Fatalf("expected zero aggregates without rankings: %+v", bench)
	}
}

func TestRankingRepository_Queries(t *testing.T) {
	t.Parallel()

	data := SeedDataset()
	repo := NewRankingRepository(data.Rankings, data.Teams)
	ctx := context.Background()

	summary, err := repo.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalSeasons != 2 || summary.LatestSeason != 2024 || !summary.HasSeasons {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	champions, err := repo.ListChampions(ctx, 5)
	if err != nil {
		t.Fatalf("champions: %v", err)
	}
	if len(champions) != 2 || champions[0].Season != 2024 || champions[0].TeamName != "Air Raiders" {
		t.Fatalf("unexpected champions: %+v", champions)
	}

	top, err := repo.TopTeamsByPoints(ctx, 2)
	if err != nil {
		t.Fatalf("top teams: %v", err)
	}
	if len(top) != 2 || top[0].TeamName != "Air Raiders" || top[0].TotalPoints <= top[1].TotalPoints {
		t.Fatalf("unexpected top teams: %+v", top)
	}

	rows, err := repo.ListByTeam(ctx, 1)
	if err != nil {
		t.Fatalf("list by team: %v", err)
	}
	if len(rows) != 2 || rows[0].Season != 2023 || rows[1].Season != 2024 {
		t.Fatalf("expected season ascending rows: %+v", rows)
	}
}

func TestRankingRepository_EmptySummary(t *testing.T) {
	t.Parallel()

	summary, err := NewRankingRepository(nil, nil).Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.HasSeasons || summary.TotalSeasons != 0 {
		t.Fatalf("expected empty summary: %+v", summary)
	}
}

func TestMatchupRepository_ListByTeamFillsNames(t *testing.T) {
	t.Parallel()

	data := SeedDataset()
	got, err := NewMatchupRepository(data.Matchups, data.Teams).ListByTeam(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 matchups, got=%d", len(got))
	}
	if got[0].ID != 2 || got[0].Team2Name != "Gridiron Gang" {
		t.Fatalf("unexpected first matchup: %+v", got[0])
	}
}

func TestPlayerScoreRepository(t *testing.T) {
	t.Parallel()

	repo := NewPlayerScoreRepository(SeedPlayerScores())
	ctx := context.Background()

	highest, ok, err := repo.HighestByTeam(ctx, 1)
	if err != nil || !ok {
		t.Fatalf("highest ok=%v err=%v", ok, err)
	}
	if highest.PlayerName != "Josh Allen" || highest.FantasyPoints != 38.24 {
		t.Fatalf("unexpected highest score: %+v", highest)
	}
	if _, ok, _ := repo.HighestByTeam(ctx, 4); ok {
		t.Fatalf("expected no scores for team 4")
	}

	totals, err := repo.TopPlayersByTeam(ctx, 1, 10)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if len(totals) != 2 || totals[0].PlayerName != "Josh Allen" || totals[0].Games != 2 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
	if totals[0].AveragePoints != totals[0].TotalPoints/2 {
		t.Fatalf("unexpected average: %+v", totals[0])
	}
}

func TestNFLTeamRepository_ListStatsBySeason(t *testing.T) {
	t.Parallel()

	repo := NewNFLTeamRepository(SeedNFLTeamStats())
	ctx := context.Background()

	all, err := repo.ListStatsBySeason(ctx, 0)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 5 || all[0].Season != 2024 || all[0].Team.Abbreviation != "BUF" {
		t.Fatalf("unexpected ordering: %+v", all[0])
	}

	season, err := repo.ListStatsBySeason(ctx, 2023)
	if err != nil {
		t.Fatalf("season: %v", err)
	}
	if len(season) != 3 {
		t.Fatalf("expected 3 rows for 2023, got=%d", len(season))
	}
}

func TestLeagueRepository_Latest(t *testing.T) {
	t.Parallel()

	got, ok, err := NewLeagueRepository(SeedLeagues()).Latest(context.Background())
	if err != nil || !ok {
		t.Fatalf("latest ok=%v err=%v", ok, err)
	}
	if got.ID != SeedLeagueID2024 {
		t.Fatalf("expected newest league, got=%d", got.ID)
	}

	if _, ok, _ := NewLeagueRepository(nil).Latest(context.Background()); ok {
		t.Fatalf("expected no league from empty repository")
	}
}
