package posts

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/venturehub/venturehub/internal/accounts"
	"github.com/venturehub/venturehub/internal/auth"
	"github.com/venturehub/venturehub/internal/platform/httpx"
	"github.com/venturehub/venturehub/internal/shared"
)

// Handler manages post endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	gate      auth.Middleware
	validator *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, gate auth.Middleware) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		gate:      gate,
		validator: validator.New(),
	}
}

// MountRoutes registers post routes. Everything requires authentication;
// role gates follow the moderation and interest rules.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Use(h.gate.RequireAuth)

	r.Get("/", h.feed)

	r.Group(func(r chi.Router) {
		r.Use(h.gate.RequireRole(shared.RoleStartup))
		r.Post("/", h.create)
		r.Get("/mine", h.mine)
		r.Get("/mine/interests", h.myInterests)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.gate.RequireRole(shared.RoleAdmin))
		r.Patch("/{id}/hide", h.hide)
		r.Delete("/{id}", h.remove)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.gate.RequireRole(shared.RoleInvestor))
		r.Post("/{id}/save", h.save)
		r.Delete("/{id}/save", h.unsave)
		r.Get("/saved/list", h.saved)
		r.Post("/{id}/interested", h.toggleInterest)
		r.Delete("/{id}/interested", h.withdrawInterest)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.gate.RequireRole(shared.RoleStartup, shared.RoleAdmin))
		r.Get("/{id}/interests", h.postInterests)
	})
}

func (h *Handler) feed(w http.ResponseWriter, r *http.Request) {
	viewer := accounts.UserFromContext(r.Context())
	list, err := h.service.Feed(r.Context(), viewer)
	if err != nil {
		h.logger.Error("list posts", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"posts": list})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.ValidationProblem(w, err)
		return
	}
	author := accounts.UserFromContext(r.Context())
	post, err := h.service.Create(r.Context(), author.ID, req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"post": post})
}

func (h *Handler) mine(w http.ResponseWriter, r *http.Request) {
	author := accounts.UserFromContext(r.Context())
	list, err := h.service.Mine(r.Context(), author.ID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"posts": list})
}

type hideRequest struct {
	IsHidden bool `json:"is_hidden"`
}

func (h *Handler) hide(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	var req hideRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	post, err := h.service.SetHidden(r.Context(), id, req.IsHidden)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"post": post})
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	user := accounts.UserFromContext(r.Context())
	if err := h.service.Save(r.Context(), user.ID, id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) unsave(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	user := accounts.UserFromContext(r.Context())
	if err := h.service.Unsave(r.Context(), user.ID, id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) saved(w http.ResponseWriter, r *http.Request) {
	user := accounts.UserFromContext(r.Context())
	list, err := h.service.Saved(r.Context(), user.ID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"posts": list})
}

func (h *Handler) toggleInterest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	user := accounts.UserFromContext(r.Context())
	liked, err := h.service.ToggleInterest(r.Context(), id, user.ID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"liked": liked})
}

func (h *Handler) withdrawInterest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	user := accounts.UserFromContext(r.Context())
	if err := h.service.WithdrawInterest(r.Context(), id, user.ID); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) myInterests(w http.ResponseWriter, r *http.Request) {
	author := accounts.UserFromContext(r.Context())
	list, err := h.service.InterestsForAuthor(r.Context(), author.ID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"interests": list})
}

func (h *Handler) postInterests(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	list, err := h.service.InterestsForPost(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"investors": list})
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, httpx.ErrValidation
	}
	return id, nil
}
