package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
	"github.com/riskibarqy/fantasy-stats/internal/usecase"
)

type Handler struct {
	historyService   *usecase.HistoryService
	reconcileService *usecase.ReconcileService
	profileService   *usecase.TeamProfileService
	rosterService    *usecase.RosterService
	leagueID         string
	logger           *logging.Logger
	validator        *validator.Validate
}

// NewHandler builds the API handler. leagueID is the configured live league;
// when empty the latest archived league is used.
func NewHandler(
	historyService *usecase.HistoryService,
	reconcileService *usecase.ReconcileService,
	profileService *usecase.TeamProfileService,
	rosterService *usecase.RosterService,
	leagueID string,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		historyService:   historyService,
		reconcileService: reconcileService,
		profileService:   profileService,
		rosterService:    rosterService,
		leagueID:         strings.TrimSpace(leagueID),
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	_, span := startHandlerSpan(r, "Healthz")
	defer span.End()

	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type teamPathParams struct {
	TeamID string `validate:"required,max=64,printascii"`
}

type localTeamPathParams struct {
	TeamID int64 `validate:"required,gt=0"`
}

type nflTeamStatsQuery struct {
	Season int `validate:"gte=0,lte=2100"`
}

func (h *Handler) teamPathParam(ctx context.Context, r *http.Request) (string, error) {
	params := teamPathParams{TeamID: strings.TrimSpace(r.PathValue("teamID"))}
	if err := h.validateRequest(ctx, params); err != nil {
		return "", err
	}
	return params.TeamID, nil
}

func (h *Handler) localTeamPathParam(ctx context.Context, r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue("teamID"))
	teamID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: team id must be an integer, got %q", usecase.ErrInvalidInput, raw)
	}

	params := localTeamPathParams{TeamID: teamID}
	if err := h.validateRequest(ctx, params); err != nil {
		return 0, err
	}
	return params.TeamID, nil
}

func (h *Handler) nflTeamStatsQuery(ctx context.Context, r *http.Request) (nflTeamStatsQuery, error) {
	var query nflTeamStatsQuery
	if raw := strings.TrimSpace(r.URL.Query().Get("season")); raw != "" {
		season, err := strconv.Atoi(raw)
		if err != nil {
			return nflTeamStatsQuery{}, fmt.Errorf("%w: season must be an integer, got %q", usecase.ErrInvalidInput, raw)
		}
		query.Season = season
	}

	if err := h.validateRequest(ctx, query); err != nil {
		return nflTeamStatsQuery{}, err
	}
	return query, nil
}
