package httpapi

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-stats/external/sleeper"
	catalogcache "github.com/riskibarqy/fantasy-stats/internal/infrastructure/cache"
	"github.com/riskibarqy/fantasy-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
	"github.com/riskibarqy/fantasy-stats/internal/usecase"
)

const fakeLeaguePath = "/league/1124849618240237568"

type envelope[T any] struct {
	APIVersion string           `json:"apiVersion"`
	Data       T                `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func newFakeSleeper(t *testing.T, healthy bool) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var playerCalls atomic.Int32
	mux := http.NewServeMux()
	respond := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) {
			if !healthy {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		}
	}

	mux.HandleFunc("GET "+fakeLeaguePath, respond(`{"league_id":"1124849618240237568","name":"Sunday Funday","settings":{"divisions":["East","West"]}}`))
	mux.HandleFunc("GET "+fakeLeaguePath+"/users", respond(`[
		{"user_id":"470093488730099712","username":"gg","display_name":"Gridiron","metadata":{"team_name":"Gridiron Gang"}},
		{"user_id":"555","username":"newbie","display_name":"Newcomer","avatar":"a1"}
	]`))
	mux.HandleFunc("GET "+fakeLeaguePath+"/rosters", respond(`[
		{"roster_id":1,"owner_id":"470093488730099712","players":["4034","6794"],"starters":["4034"],"settings":{"division":1,"wins":10,"losses":4,"fpts":1650,"fpts_decimal":12}},
		{"roster_id":9,"owner_id":"555","players":["6794"],"settings":{"division":2,"wins":"3"}}
	]`))
	mux.HandleFunc("GET /players/nfl", func(w http.ResponseWriter, r *http.Request) {
		playerCalls.Add(1)
		respond(`{"4034":{"first_name":"Christian","last_name":"McCaffrey","position":"RB","team":"SF"}}`)(w, r)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &playerCalls
}

func newTestRouter(t *testing.T, sleeperURL string) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	data := memory.SeedDataset()

	teamRepo := memory.NewTeamRepository(data.Teams, data.Rankings)
	leagueRepo := memory.NewLeagueRepository(data.Leagues)
	history := usecase.NewHistoryService(
		teamRepo,
		memory.NewRankingRepository(data.Rankings, data.Teams),
		memory.NewMatchupRepository(data.Matchups, data.Teams),
		memory.NewPlayerScoreRepository(data.PlayerScores),
		memory.NewNFLTeamRepository(data.NFLTeamStats),
	)

	provider := sleeper.NewClient(sleeper.ClientConfig{BaseURL: sleeperURL, Timeout: 2 * time.Second, Logger: logger})
	normalizer := usecase.NewTeamNormalizer(provider, logger)
	rosters := usecase.NewRosterService(provider, catalogcache.NewMemoryPlayerCatalogCache(nil), time.Hour, logger)
	reconciler := usecase.NewReconcileService(normalizer, teamRepo, leagueRepo, logger)
	profiles := usecase.NewTeamProfileService(history, normalizer, rosters, reconciler)

	handler := NewHandler(history, reconciler, profiles, rosters, "", logger)
	return NewRouter(handler, logger, []string{"*"})
}

func doGet[T any](t *testing.T, router http.Handler, path string, wantStatus int) envelope[T] {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != wantStatus {
		t.Fatalf("GET %s: expected status %d, got %d body=%s", path, wantStatus, rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get(requestIDHeader); got == "" {
		t.Fatalf("GET %s: expected %s header", path, requestIDHeader)
	}

	var body envelope[T]
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("GET %s: unmarshal response: %v", path, err)
	}
	if body.APIVersion != googleAPIVersion {
		t.Fatalf("GET %s: unexpected apiVersion %q", path, body.APIVersion)
	}
	return body
}

func TestHandler_Healthz(t *testing.T) {
	server, _ := newFakeSleeper(t, true)
	router := newTestRouter(t, server.URL)

	body := doGet[map[string]string](t, router, "/healthz", http.StatusOK)
	if body.Data["status"] != "ok" {
		t.Fatalf("unexpected health payload: %v", body.Data)
	}
}

func TestHandler_GetOverview(t *testing.T) {
	server, _ := newFakeSleeper(t, true)
	router := newTestRouter(t, server.URL)

	body := doGet[overviewDTO](t, router, "/v1/overview", http.StatusOK)
	if body.Data.TotalTeams != 4 {
		t.Fatalf("expected 4 teams, got %d", body.Data.TotalTeams)
	}
	if body.Data.LatestSeason == nil || *body.Data.LatestSeason != 2024 {
		t.Fatalf("expected latest season 2024, got %v", body.Data.LatestSeason)
	}
	if len(body.Data.RecentChampions) != 2 || body.Data.RecentChampions[0].Season != 2024 {
		t.Fatalf("unexpected champions: %+v", body.Data.RecentChampions)
	}
	if len(body.Data.TopTeams) == 0 {
		t.Fatalf("expected top teams when a latest season exists")
	}
}

func TestHandler_ListTeams_ReconcilesLiveLeague(t *testing.T) {
	server, _ := newFakeSleeper(t, true)
	router := newTestRouter(t, server.URL)

	body := doGet[reconciliationDTO](t, router, "/v1/teams", http.StatusOK)
	if body.Data.LeagueID != "1124849618240237568" {
		t.Fatalf("expected latest archived league, got %q", body.Data.LeagueID)
	}
	if !body.Data.HasDivisions || len(body.Data.TeamsByDivision) != 2 {
		t.Fatalf("expected two division groups, got %+v", body.Data.TeamsByDivision)
	}
	if body.Data.TeamsByDivision[0].Name != "East" || body.Data.TeamsByDivision[1].Name != "West" {
		t.Fatalf("unexpected division order: %+v", body.Data.TeamsByDivision)
	}

	east := body.Data.TeamsByDivision[0].Teams
	if len(east) != 1 || east[0].TeamID != "1" || !east[0].HasDBRecord {
		t.Fatalf("expected local team 1 in East, got %+v", east)
	}
	if math.Abs(east[0].TotalPoints-1650.12) > 1e-9 || east[0].SeasonsPlayed != 2 {
		t.Fatalf("unexpected merged stats: %+v", east[0])
	}

	west := body.Data.TeamsByDivision[1].Teams
	if len(west) != 1 || west[0].TeamID != "9" || west[0].HasDBRecord {
		t.Fatalf("expected live-only roster 9 in West, got %+v", west)
	}
}

func TestHandler_ListTeams_DegradesWhenProviderDown(t *testing.T) {
	server, _ := newFakeSleeper(t, false)
	router := newTestRouter(t, server.URL)

	body := doGet[reconciliationDTO](t, router, "/v1/teams", http.StatusOK)
	if len(body.Data.Teams) != 0 {
		t.Fatalf("expected no live teams, got %d", len(body.Data.Teams))
	}
	if len(body.Data.TeamsByDivision) != 1 || body.Data.TeamsByDivision[0].Name != usecase.AllTeamsDivision {
		t.Fatalf("expected single %q bucket, got %+v", usecase.AllTeamsDivision, body.Data.TeamsByDivision)
	}
}

func TestHandler_ListTeamHistory(t *testing.T) {
	server, _ := newFakeSleeper(t, true)
	router := newTestRouter(t, server.URL)

	body := doGet[[]teamStatsDTO](t, router, "/v1/teams/history", http.StatusOK)
	if len(body.Data) != 4 {
		t.Fatalf("expected 4 teams, got %d", len(body.Data))
	}
	for i := 1; i < len(body.Data); i++ {
		if body.Data[i-1].Team.Name > body.Data[i].Team.Name {
			t.Fatalf("teams not ordered by name: %q before %q", body.Data[i-1].Team.Name, body.Data[i].Team.Name)
		}
	}
}

func TestHandler_GetTeam(t *testing.T) {
	server, playerCalls := newFakeSleeper(t, true)
	router := newTestRouter(t, server.URL)

	local := doGet[teamProfileDTO](t, router, "/v1/teams/1", http.StatusOK)
	if local.Data.Detail == nil || local.Data.Detail.Team.Name != "Gridiron Gang" {
		t.Fatalf("expected local detail, got %+v", local.Data.Detail)
	}
	if local.Data.Detail.BestRank == nil || *local.Data.Detail.BestRank != 1 {
		t.Fatalf("unexpected best rank: %v", local.Data.Detail.BestRank)
	}
	if local.Data.Live == nil || local.Data.Live.RosterID != "1" {
		t.Fatalf("expected live team matched by owner, got %+v", local.Data.Live)
	}
	if len(local.Data.Roster) != 2 || local.Data.Roster[0].Name != "Christian McCaffrey" || local.Data.Roster[1].Name != "Player 6794" {
		t.Fatalf("unexpected roster: %+v", local.Data.Roster)
	}

	liveOnly := doGet[teamProfileDTO](t, router, "/v1/teams/9", http.StatusOK)
	if liveOnly.Data.Detail != nil {
		t.Fatalf("expected no local detail for roster 9")
	}
	if liveOnly.Data.Live == nil || liveOnly.Data.Live.TeamName != "Newcomer" {
		t.Fatalf("unexpected live team: %+v", liveOnly.Data.Live)
	}

	if got := playerCalls.Load(); got != 1 {
		t.Fatalf("expected player catalog fetched once, got %d", got)
	}
}

func TestHandler_GetTeam_NotFound(t *testing.T) {
	server, _ := newFakeSleeper(t, true)
	router := newTestRouter(t, server.URL)

	body := doGet[any](t, router, "/v1/teams/404", http.StatusNotFound)
	if body.Error == nil || body.Error.Status != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND error, got %+v", body.Error)
	}
}

func TestHandler_GetTeamInsights(t *testing.T) {
	server, _ := newFakeSleeper(t, true)
	router := newTestRouter(t, server.URL)

	body := doGet[teamInsightsDTO](t, router, "/v1/teams/2/insights", http.StatusOK)
	if body.Data.Team.Name != "Air Raiders" {
		t.Fatalf("unexpected team: %+v", body.Data.Team)
	}
	if len(body.Data.SeasonPerformance) != 2 || body.Data.SeasonPerformance[0].Season != 2023 {
		t.Fatalf("expected oldest season first, got %+v", body.Data.SeasonPerformance)
	}
	if !body.Data.SeasonPerformance[1].Championship {
		t.Fatalf("expected 2024 championship")
	}
}

func TestHandler_InvalidParameters(t *testing.T) {
	server, _ := newFakeSleeper(t, true)
	router := newTestRouter(t, server.URL)

	tests := []struct {
		name string
		path string
		want int
	}{
		{name: "non numeric insights id", path: "/v1/teams/abc/insights", want: http.StatusBadRequest},
		{name: "zero insights id", path: "/v1/teams/0/insights", want: http.StatusBadRequest},
		{name: "unknown insights id", path: "/v1/teams/77/insights", want: http.StatusNotFound},
		{name: "non numeric season", path: "/v1/nfl-teams/stats?season=abc", want: http.StatusBadRequest},
		{name: "negative season", path: "/v1/nfl-teams/stats?season=-1", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := doGet[any](t, router, tt.path, tt.want)
			if body.Error == nil || body.Error.Code != tt.want {
				t.Fatalf("expected error code %d, got %+v", tt.want, body.Error)
			}
		})
	}
}

func TestHandler_ListNFLTeamStats(t *testing.T) {
	server, _ := newFakeSleeper(t, true)
	router := newTestRouter(t, server.URL)

	all := doGet[[]nflTeamStatsDTO](t, router, "/v1/nfl-teams/stats", http.StatusOK)
	season := doGet[[]nflTeamStatsDTO](t, router, "/v1/nfl-teams/stats?season=2024", http.StatusOK)

	if len(season.Data) == 0 || len(season.Data) >= len(all.Data) {
		t.Fatalf("expected season filter to narrow results: all=%d season=%d", len(all.Data), len(season.Data))
	}
	for _, item := range season.Data {
		if item.Season != 2024 {
			t.Fatalf("unexpected season %d for %s", item.Season, item.Abbreviation)
		}
	}
}

func TestHandler_GetTeamRoster(t *testing.T) {
	server, _ := newFakeSleeper(t, true)
	router := newTestRouter(t, server.URL)

	body := doGet[rosterDTO](t, router, "/v1/teams/1/roster", http.StatusOK)
	if body.Data.LeagueID != strconv.FormatInt(memory.SeedLeagueID2024, 10) {
		t.Fatalf("unexpected league id %q", body.Data.LeagueID)
	}
	if len(body.Data.Players) != 2 || !body.Data.Players[0].IsStarter || body.Data.Players[1].IsStarter {
		t.Fatalf("unexpected roster players: %+v", body.Data.Players)
	}

	missing := doGet[rosterDTO](t, router, "/v1/teams/42/roster", http.StatusOK)
	if len(missing.Data.Players) != 0 {
		t.Fatalf("expected empty player list, got %+v", missing.Data.Players)
	}
}

func TestRecoverPanic_WritesInternalError(t *testing.T) {
	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/overview", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}
