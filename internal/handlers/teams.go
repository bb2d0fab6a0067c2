package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gridscout/scout-api/internal/grid"
	"github.com/gridscout/scout-api/internal/models"
)

// ListTeams returns the teams available for scouting
// @Summary List Teams
// @Description Fetch VALORANT teams, optionally filtered by a search string
// @Tags Teams
// @Produce json
// @Param search query string false "Search teams by name"
// @Success 200 {array} models.TeamResponse "Teams"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /teams [get]
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	teams, err := h.provider.Teams(r.Context(), search)
	if err != nil {
		h.logger.Errorw("Failed to list teams", "search", search, "error", err, "request_id", requestID(r))
		h.errorResponse(w, http.StatusBadGateway, "Failed to fetch teams")
		return
	}

	resp := make([]models.TeamResponse, 0, len(teams))
	for _, t := range teams {
		resp = append(resp, models.TeamResponse{
			ID:        t.ID,
			Name:      t.Name,
			ShortName: t.ShortName,
			Region:    t.Region,
		})
	}
	h.jsonResponse(w, http.StatusOK, resp)
}

// GetTeam returns one team with its roster
// @Summary Get Team
// @Description Fetch a single team by id, including the roster
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} models.Team "Team"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /teams/{id} [get]
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "id")

	team, err := h.provider.TeamByID(r.Context(), teamID)
	if err != nil {
		if errors.Is(err, grid.ErrTeamNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Team not found")
			return
		}
		h.logger.Errorw("Failed to fetch team", "team_id", teamID, "error", err, "request_id", requestID(r))
		h.errorResponse(w, http.StatusBadGateway, "Failed to fetch team")
		return
	}

	h.jsonResponse(w, http.StatusOK, team)
}
