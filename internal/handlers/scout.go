package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/gridscout/scout-api/internal/grid"
	"github.com/gridscout/scout-api/internal/logic"
	"github.com/gridscout/scout-api/internal/models"
)

// Scout generates a full scouting report for a matchup
// @Summary Generate Scouting Report
// @Description Fetch both teams' histories, run the analysis pipeline, and return the report with optional AI insights
// @Tags Scout
// @Accept json
// @Produce json
// @Param request body models.ScoutRequest true "Scouting Request"
// @Success 200 {object} models.ScoutResponse "Scouting Report"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Team Not Found"
// @Router /scout [post]
func (h *Handler) Scout(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.ScoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			h.errorResponse(w, http.StatusBadRequest, "Invalid request: "+verrs[0].Field())
			return
		}
		h.errorResponse(w, http.StatusBadRequest, "Invalid request")
		return
	}

	window := req.TimeWindowDays
	if window == 0 {
		window = h.defaultWindow
	}
	if window > h.maxWindow {
		window = h.maxWindow
	}

	ctx := r.Context()
	start := time.Now()
	h.logger.Infow("Scouting report requested",
		"team_a", req.TeamAID,
		"team_b", req.TeamBID,
		"window_days", window,
		"request_id", requestID(r),
	)

	bundle, err := h.provider.FetchScoutingData(ctx, req.TeamAID, req.TeamBID, window)
	if err != nil {
		if errors.Is(err, grid.ErrTeamNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Team not found")
			return
		}
		h.logger.Errorw("Scouting data fetch failed",
			"team_a", req.TeamAID, "team_b", req.TeamBID, "error", err, "request_id", requestID(r))
		h.errorResponse(w, http.StatusBadGateway, "Failed to fetch scouting data")
		return
	}

	report, err := h.assembler.BuildReport(ctx, bundle)
	if err != nil {
		if errors.Is(err, logic.ErrTeamNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Team not found")
			return
		}
		h.logger.Errorw("Report build failed",
			"team_a", req.TeamAID, "team_b", req.TeamBID, "error", err, "request_id", requestID(r))
		h.errorResponse(w, http.StatusInternalServerError, "Failed to build report")
		return
	}

	// Insights are best-effort: the structured report stands on its own.
	var insightsText string
	if h.insights != nil {
		insightsText, err = h.insights.Generate(ctx, report)
		if err != nil {
			h.logger.Warnw("Insights generation failed, returning report without them",
				"report_id", report.ReportID, "error", err, "request_id", requestID(r))
			insightsText = ""
		}
	}

	h.logger.Infow("Scouting report complete",
		"report_id", report.ReportID,
		"duration", time.Since(start),
		"request_id", requestID(r),
	)
	h.jsonResponse(w, http.StatusOK, models.ScoutResponse{
		Success:     true,
		ReportID:    report.ReportID,
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		DataSource:  report.DataSource,
		Report:      report,
		Insights:    insightsText,
	})
}
