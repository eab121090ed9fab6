package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/venturehub/venturehub/internal/accounts"
	"github.com/venturehub/venturehub/internal/platform/httpx"
	"github.com/venturehub/venturehub/internal/shared"
	"github.com/venturehub/venturehub/internal/token"
)

// Middleware is the per-request access control gate: authenticate resolves
// the bearer token to an account, authorize checks its role. Authorize
// always presupposes a prior successful authenticate.
type Middleware struct {
	Logger   *slog.Logger
	Tokens   *token.Issuer
	Accounts accounts.RepositoryPort
}

// RequireAuth authenticates the caller. The account is re-read and its
// active flag re-checked on every request, so deactivating an account also
// invalidates tokens issued before the deactivation.
func (m Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "missing token")
			return
		}
		userID, err := m.Tokens.Verify(raw)
		if err != nil {
			httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "invalid token")
			return
		}
		user, err := m.Accounts.FindByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, httpx.ErrNotFound) {
				httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "user not found")
				return
			}
			if m.Logger != nil {
				m.Logger.Error("load account", slog.Any("error", err))
			}
			httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
			return
		}
		if !user.IsActive {
			httpx.Problem(w, http.StatusForbidden, "Forbidden", "account disabled")
			return
		}
		ctx := accounts.ContextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole authorizes the authenticated caller against an allowed set.
func (m Middleware) RequireRole(allowed ...shared.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := accounts.UserFromContext(r.Context())
			if user == nil {
				httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "not authenticated")
				return
			}
			if !Allowed(user, allowed...) {
				httpx.Problem(w, http.StatusForbidden, "Forbidden", "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(raw) == "" {
		return "", false
	}
	return strings.TrimSpace(raw), true
}
