package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerHistoryRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/overview", handler.GetOverview)
	mux.HandleFunc("GET /v1/teams/history", handler.ListTeamHistory)
	mux.HandleFunc("GET /v1/teams/{teamID}/insights", handler.GetTeamInsights)
	mux.HandleFunc("GET /v1/nfl-teams/stats", handler.ListNFLTeamStats)
}

// registerLeagueRoutes serves routes backed by the live league provider.
func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/roster", handler.GetTeamRoster)
}
