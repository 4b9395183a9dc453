// internal/middleware/authz.go
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PermissionChecker answers relationship questions about a user and an
// organization. Satisfied by *authz.Service; a nil checker allows everything.
type PermissionChecker interface {
	Can(ctx context.Context, orgID, userID, permission string) (bool, error)
}

// RequirePermission guards an organization-scoped route behind a permission
// check. The organization comes from the orgID URL param and the user from
// the authenticated request context, so this must run after AuthMiddleware.
func RequirePermission(checker PermissionChecker, permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if checker == nil {
				next.ServeHTTP(w, r)
				return
			}

			orgID := chi.URLParam(r, "orgID")
			userID := UserID(r.Context())

			allowed, err := checker.Can(r.Context(), orgID, userID, permission)
			if err != nil {
				slog.ErrorContext(r.Context(), "Permission check failed",
					"permission", permission, "organizationID", orgID, "userID", userID, "error", err)
				respondWithError(w, http.StatusInternalServerError, "Permission check failed")
				return
			}
			if !allowed {
				respondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
