// internal/handler/chart.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bitloft/orgkit/internal/domain"
	"github.com/bitloft/orgkit/internal/middleware"
	"github.com/bitloft/orgkit/internal/model"
	"github.com/bitloft/orgkit/internal/service"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type ChartHandler struct {
	chartService *service.ChartService
}

func NewChartHandler(chartService *service.ChartService) *ChartHandler {
	return &ChartHandler{chartService: chartService}
}

type SaveChartRequest struct {
	OrganizationCode string       `json:"organization_code"`
	OrganizationName string       `json:"organization_name"`
	Nodes            []model.Node `json:"nodes"`
	Edges            []model.Edge `json:"edges"`
}

type SaveChartResponse struct {
	BaseResponse
	Chart   *model.Chart            `json:"chart"`
	Invites []service.InviteOutcome `json:"invites"`
}

// SaveHandler persists the chart and reports per-invitee dispatch outcomes.
// Failed invites come back in the outcome list rather than failing the save.
func (h *ChartHandler) SaveHandler(w http.ResponseWriter, r *http.Request) {
	var req SaveChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.chartService.SaveChart(r.Context(), service.SaveChartInput{
		OrganizationID:   chi.URLParam(r, "orgID"),
		OrganizationCode: req.OrganizationCode,
		OrganizationName: req.OrganizationName,
		UserID:           middleware.UserID(r.Context()),
		UserEmail:        middleware.UserEmail(r.Context()),
		Nodes:            req.Nodes,
		Edges:            req.Edges,
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "Chart save error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrStore):
			respondWithError(w, http.StatusBadGateway, "Failed to persist chart")
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, SaveChartResponse{
		BaseResponse: BaseResponse{Ok: true},
		Chart:        output.Chart,
		Invites:      output.Invites,
	})
}

// LoadHandler returns the saved chart, or 404 when the organization has not
// saved one yet.
func (h *ChartHandler) LoadHandler(w http.ResponseWriter, r *http.Request) {
	chart, err := h.chartService.LoadChart(r.Context(), chi.URLParam(r, "orgID"))
	if err != nil {
		slog.ErrorContext(r.Context(), "Chart load error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrStore):
			respondWithError(w, http.StatusBadGateway, "Failed to load chart")
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	if chart == nil {
		respondWithError(w, http.StatusNotFound, "No chart saved for this organization")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "chart": chart})
}
