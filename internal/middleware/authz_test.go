// internal/middleware/authz_test.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	allowed bool
	err     error

	gotOrgID      string
	gotUserID     string
	gotPermission string
}

func (f *fakeChecker) Can(_ context.Context, orgID, userID, permission string) (bool, error) {
	f.gotOrgID = orgID
	f.gotUserID = userID
	f.gotPermission = permission
	return f.allowed, f.err
}

func guardedRequest(t *testing.T, checker PermissionChecker) *httptest.ResponseRecorder {
	t.Helper()

	reached := false
	handler := RequirePermission(checker, "manage_project")(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
			w.WriteHeader(http.StatusOK)
		}),
	)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("orgID", "org-1")

	req := httptest.NewRequest(http.MethodPost, "/api/organizations/org-1/plan", nil)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx)
	ctx = context.WithValue(ctx, UserIDKey, "user-1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))

	if rec.Code == http.StatusOK {
		require.True(t, reached)
	} else {
		require.False(t, reached)
	}
	return rec
}

func TestRequirePermission(t *testing.T) {
	t.Run("allowed callers pass through", func(t *testing.T) {
		checker := &fakeChecker{allowed: true}

		rec := guardedRequest(t, checker)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "org-1", checker.gotOrgID)
		assert.Equal(t, "user-1", checker.gotUserID)
		assert.Equal(t, "manage_project", checker.gotPermission)
	})

	t.Run("denied callers get 403", func(t *testing.T) {
		rec := guardedRequest(t, &fakeChecker{allowed: false})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Forbidden")
	})

	t.Run("checker errors get 500", func(t *testing.T) {
		rec := guardedRequest(t, &fakeChecker{err: errors.New("permify unreachable")})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("nil checker allows everything", func(t *testing.T) {
		rec := guardedRequest(t, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
