// internal/handler/invite.go
package handler

import (
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

type InviteHandler struct {
	inviteService *service.InviteService
	userService   *service.UserService
}

func NewInviteHandler(inviteService *service.InviteService, userService *service.UserService) *InviteHandler {
	return &InviteHandler{inviteService: inviteService, userService: userService}
}

// LookupHandler returns the invite for a code so the signup-invite page can
// show the organization before the invitee registers.
func (h *InviteHandler) LookupHandler(w http.ResponseWriter, r *http.Request) {
	invite, err := h.inviteService.Lookup(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInviteNotFound):
			respondWithError(w, http.StatusNotFound, "Invite not found")
		case errors.Is(err, domain.ErrInviteExpired):
			respondWithError(w, http.StatusGone, "Invite expired")
		default:
			slog.ErrorContext(r.Context(), "Invite lookup error", "error", err, "requestID", chmw.GetReqID(r.Context()))
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"ok": true,
		"invite": map[string]any{
			"organization_name": invite.OrganizationName,
			"organization_code": invite.OrganizationCode,
			"email":             invite.Email,
			"expires_at":        invite.ExpiresAt,
		},
	})
}

type AcceptInviteResponse struct {
	BaseResponse
	Invite *model.Invite `json:"invite"`
}

// AcceptHandler completes the join-organization flow: marks the invite
// accepted and flips the caller's membership record to the member path.
func (h *InviteHandler) AcceptHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	invite, err := h.inviteService.Accept(r.Context(), chi.URLParam(r, "code"), userID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Invite accept error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrInviteNotFound):
			respondWithError(w, http.StatusNotFound, "Invite not found")
		case errors.Is(err, domain.ErrInviteExpired):
			respondWithError(w, http.StatusGone, "Invite expired")
		case errors.Is(err, domain.ErrInviteAlreadyAccepted):
			respondWithError(w, http.StatusConflict, "Invite already accepted")
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if err := h.userService.JoinOrganization(r.Context(), userID, invite, false); err != nil {
		slog.ErrorContext(r.Context(), "Join organization error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, AcceptInviteResponse{
		BaseResponse: BaseResponse{Ok: true},
		Invite:       invite,
	})
}
