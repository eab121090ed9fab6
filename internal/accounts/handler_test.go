package accounts

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturehub/venturehub/internal/shared"
)

func newAdminRouter(t *testing.T, repo *mockRepo) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, NewService(repo))
	r := chi.NewRouter()
	r.Route("/admin", handler.MountAdminRoutes)
	r.Route("/user", handler.MountUserRoutes)
	return r
}

func TestListUsersEndpoint(t *testing.T) {
	repo := newMockRepo()
	seedUser(t, repo, "a@x.com", shared.RoleInvestor)
	seedUser(t, repo, "b@x.com", shared.RoleStartup)
	router := newAdminRouter(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	var body struct {
		Users []User `json:"users"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Len(t, body.Users, 2)
	assert.NotContains(t, res.Body.String(), "password_hash")
}

func TestChangeRoleEndpoint(t *testing.T) {
	repo := newMockRepo()
	user := seedUser(t, repo, "a@x.com", shared.RoleInternSeeker)
	router := newAdminRouter(t, repo)

	payload, _ := json.Marshal(map[string]string{"role": "INFLUENCER"})
	req := httptest.NewRequest(http.MethodPatch, "/admin/users/1/role", bytes.NewReader(payload))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, shared.RoleInfluencer, repo.users[user.ID].Role)
}

func TestChangeRoleEndpointInvalidRole(t *testing.T) {
	repo := newMockRepo()
	seedUser(t, repo, "a@x.com", shared.RoleInternSeeker)
	router := newAdminRouter(t, repo)

	payload, _ := json.Marshal(map[string]string{"role": "WIZARD"})
	req := httptest.NewRequest(http.MethodPatch, "/admin/users/1/role", bytes.NewReader(payload))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestChangeRoleEndpointNotFound(t *testing.T) {
	router := newAdminRouter(t, newMockRepo())

	payload, _ := json.Marshal(map[string]string{"role": "STARTUP"})
	req := httptest.NewRequest(http.MethodPatch, "/admin/users/42/role", bytes.NewReader(payload))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestSetActiveEndpoint(t *testing.T) {
	repo := newMockRepo()
	user := seedUser(t, repo, "a@x.com", shared.RoleInvestor)
	router := newAdminRouter(t, repo)

	payload, _ := json.Marshal(map[string]bool{"is_active": false})
	req := httptest.NewRequest(http.MethodPatch, "/admin/users/1/active", bytes.NewReader(payload))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	assert.False(t, repo.users[user.ID].IsActive)
}

func TestMeEndpoint(t *testing.T) {
	repo := newMockRepo()
	user := seedUser(t, repo, "me@x.com", shared.RoleStartup)
	router := newAdminRouter(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	req = req.WithContext(ContextWithUser(req.Context(), user))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	var body struct {
		User User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "me@x.com", body.User.Email)
}

func TestMeEndpointWithoutIdentity(t *testing.T) {
	router := newAdminRouter(t, newMockRepo())

	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
}
