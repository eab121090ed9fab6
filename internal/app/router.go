package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/venturehub/venturehub/internal/accounts"
	"github.com/venturehub/venturehub/internal/auth"
	"github.com/venturehub/venturehub/internal/observability"
	"github.com/venturehub/venturehub/internal/posts"
	"github.com/venturehub/venturehub/internal/shared"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	AuthHandler     *auth.Handler
	AccountsHandler *accounts.Handler
	PostsHandler    *posts.Handler
	Gate            auth.Middleware
	Metrics         *observability.Metrics
}

// NewRouter constructs the chi.Router with platform defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", params.AuthHandler.MountRoutes)

		r.Route("/user", func(r chi.Router) {
			r.Use(params.Gate.RequireAuth)
			params.AccountsHandler.MountUserRoutes(r)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(params.Gate.RequireAuth)
			r.Use(params.Gate.RequireRole(shared.RoleAdmin))
			params.AccountsHandler.MountAdminRoutes(r)
		})

		r.Route("/posts", params.PostsHandler.MountRoutes)
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
