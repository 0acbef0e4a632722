package httpapi

import (
	"net/http"
)

// ListTeams serves the live league joined with local history. Upstream
// failures degrade to fewer teams rather than an error.
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListTeams")
	defer span.End()

	result := h.reconcileService.Reconcile(ctx, h.leagueID)
	writeSuccess(w, http.StatusOK, reconciliationToDTO(result))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetTeam")
	defer span.End()

	teamID, err := h.teamPathParam(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	profile, err := h.profileService.Get(ctx, h.leagueID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, teamProfileToDTO(profile))
}

func (h *Handler) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetTeamRoster")
	defer span.End()

	rosterID, err := h.teamPathParam(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := h.reconcileService.ResolveLeagueID(ctx, h.leagueID)
	players := h.rosterService.ResolvePlayers(ctx, leagueID, rosterID)

	out := make([]rosterPlayerDTO, 0, len(players))
	for _, item := range players {
		out = append(out, rosterPlayerToDTO(item))
	}
	writeSuccess(w, http.StatusOK, rosterDTO{
		LeagueID: leagueID,
		RosterID: rosterID,
		Players:  out,
	})
}
