package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturehub/venturehub/internal/accounts"
	"github.com/venturehub/venturehub/internal/shared"
	"github.com/venturehub/venturehub/internal/token"
)

func newAuthRouter(t *testing.T, repo accounts.RepositoryPort) chi.Router {
	t.Helper()
	issuer := token.NewIssuer([]byte("test-secret"), time.Hour)
	service := NewService(repo, issuer, &stubVerifier{err: context.Canceled})
	handler := NewHandler(testLogger(), service)
	r := chi.NewRouter()
	r.Route("/api/auth", handler.MountRoutes)
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestSignupEndpoint(t *testing.T) {
	repo := newMockRepo()
	router := newAuthRouter(t, repo)

	res := postJSON(t, router, "/api/auth/signup", map[string]any{
		"full_name": "Ada Founder",
		"email":     "ada@startup.io",
		"password":  "hunter22",
		"role":      "STARTUP",
	})
	require.Equal(t, http.StatusOK, res.Code)

	var body struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "ada@startup.io", body.User.Email)
	assert.Equal(t, "STARTUP", body.User.Role)
	assert.NotContains(t, res.Body.String(), "password")
}

func TestSignupEndpointRejectsAdmin(t *testing.T) {
	router := newAuthRouter(t, newMockRepo())

	res := postJSON(t, router, "/api/auth/signup", map[string]any{
		"email":    "boss@corp.io",
		"password": "secret123",
		"role":     "ADMIN",
	})
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestSignupEndpointDuplicate(t *testing.T) {
	repo := newMockRepo()
	router := newAuthRouter(t, repo)

	payload := map[string]any{"email": "dup@x.com", "password": "secret123", "role": "INVESTOR"}
	require.Equal(t, http.StatusOK, postJSON(t, router, "/api/auth/signup", payload).Code)
	assert.Equal(t, http.StatusConflict, postJSON(t, router, "/api/auth/signup", payload).Code)
}

func TestSigninEndpointWrongPassword(t *testing.T) {
	repo := newMockRepo()
	router := newAuthRouter(t, repo)
	seedLocalUser(t, repo, "inv@x.com", "topsecret", true)

	res := postJSON(t, router, "/api/auth/signin", map[string]any{
		"email": "inv@x.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestSigninEndpointDisabledAccount(t *testing.T) {
	repo := newMockRepo()
	router := newAuthRouter(t, repo)
	seedLocalUser(t, repo, "off@x.com", "topsecret", false)

	res := postJSON(t, router, "/api/auth/signin", map[string]any{
		"email": "off@x.com", "password": "topsecret",
	})
	assert.Equal(t, http.StatusForbidden, res.Code)
}

func TestGoogleVerifyEndpointMissingCredential(t *testing.T) {
	router := newAuthRouter(t, newMockRepo())

	res := postJSON(t, router, "/api/auth/google/verify", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestGoogleVerifyEndpointBadToken(t *testing.T) {
	router := newAuthRouter(t, newMockRepo())

	res := postJSON(t, router, "/api/auth/google/verify", map[string]any{
		"credential": "not-a-real-id-token",
	})
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestSigninEndpointActiveUser(t *testing.T) {
	repo := newMockRepo()
	router := newAuthRouter(t, repo)
	seeded := seedLocalUser(t, repo, "inv@x.com", "topsecret", true)

	res := postJSON(t, router, "/api/auth/signin", map[string]any{
		"email": "INV@x.com", "password": "topsecret",
	})
	require.Equal(t, http.StatusOK, res.Code)

	var body struct {
		Token string         `json:"token"`
		User  *accounts.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, seeded.ID, body.User.ID)
	assert.Equal(t, shared.RoleInvestor, body.User.Role)

	issuer := token.NewIssuer([]byte("test-secret"), time.Hour)
	userID, err := issuer.Verify(body.Token)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, userID)
}
