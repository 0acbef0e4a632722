package httpapi

import (
	"net/http"
)

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetOverview")
	defer span.End()

	overview, err := h.historyService.Overview(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get overview failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, overviewToDTO(overview))
}

func (h *Handler) ListTeamHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListTeamHistory")
	defer span.End()

	items, err := h.historyService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list team history failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamStatsDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamStatsToDTO(item))
	}
	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) GetTeamInsights(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetTeamInsights")
	defer span.End()

	teamID, err := h.localTeamPathParam(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	insights, err := h.historyService.GetTeamInsights(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team insights failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, teamInsightsToDTO(insights))
}

func (h *Handler) ListNFLTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListNFLTeamStats")
	defer span.End()

	query, err := h.nflTeamStatsQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.historyService.ListNFLTeamStats(ctx, query.Season)
	if err != nil {
		h.logger.ErrorContext(ctx, "list nfl team stats failed", "season", query.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]nflTeamStatsDTO, 0, len(items))
	for _, item := range items {
		out = append(out, nflTeamStatsToDTO(item))
	}
	writeSuccess(w, http.StatusOK, out)
}
