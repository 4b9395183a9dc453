// internal/handler/plan.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bitloft/orgkit/internal/domain"
	"github.com/bitloft/orgkit/internal/middleware"
	"github.com/bitloft/orgkit/internal/service"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type PlanHandler struct {
	planService *service.PlanService
}

func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

func (h *PlanHandler) SubmitRequirementsHandler(w http.ResponseWriter, r *http.Request) {
	var input service.RequirementsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	input.OrganizationID = chi.URLParam(r, "orgID")
	input.UserID = middleware.UserID(r.Context())

	project, err := h.planService.SubmitRequirements(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Requirements intake error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]any{"ok": true, "project": project})
}

func (h *PlanHandler) GeneratePlanHandler(w http.ResponseWriter, r *http.Request) {
	plan, err := h.planService.GeneratePlan(r.Context(), chi.URLParam(r, "orgID"))
	if err != nil {
		slog.ErrorContext(r.Context(), "Plan generation error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "No requirements submitted for this organization")
		case errors.Is(err, domain.ErrGeneration):
			respondWithError(w, http.StatusBadGateway, "Generation service returned an unusable response")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "plan": plan})
}
