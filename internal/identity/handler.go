package identity

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/laundryhouse/backend/internal/domain"
	"github.com/laundryhouse/backend/internal/pkg/ctxlog"
	"github.com/laundryhouse/backend/internal/pkg/httputil"
)

// Handler handles HTTP requests for the identity module.
type Handler struct {
	service *Service
}

// NewHandler creates a new identity handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the public identity routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/jwt", h.IssueToken)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.Register)
		r.Get("/", h.ListUsers)
		r.Patch("/{id}", h.SetRole)
		r.Delete("/{id}", h.DeleteUser)
		r.Get("/admin/{email}", h.AdminStatus)
		r.Get("/user/{email}", h.UserStatus)
	})
}

// RegisterAdminRoutes registers identity routes behind the admin gate.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/buyers", h.ListBuyers)
}

// TokenResponse is the payload of GET /jwt.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// IssueToken handles GET /jwt?email=. A registered email gets a fresh
// token; an unknown one gets an empty-token payload at 403.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	token, err := h.service.IssueToken(r.Context(), email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			httputil.JSON(w, http.StatusForbidden, TokenResponse{AccessToken: ""})
			return
		}
		h.internalError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, TokenResponse{AccessToken: token})
}

// Register handles POST /users. The body is stored as submitted; a
// duplicate email is acknowledged negatively at 200.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	result, err := h.service.Register(r.Context(), &user)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}

// ListUsers handles GET /users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, users)
}

// SetRoleRequest is the body of PATCH /users/{id}.
type SetRoleRequest struct {
	Role domain.Role `json:"role"`
}

// SetRole handles PATCH /users/{id}.
func (h *Handler) SetRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req SetRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	result, err := h.service.SetRole(r.Context(), id, req.Role)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}

// AdminStatusResponse is the payload of GET /users/admin/{email}.
type AdminStatusResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// AdminStatus handles GET /users/admin/{email}.
func (h *Handler) AdminStatus(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	isAdmin, err := h.service.HasRole(r.Context(), email, domain.RoleAdmin)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, AdminStatusResponse{IsAdmin: isAdmin})
}

// UserStatusResponse is the payload of GET /users/user/{email}.
type UserStatusResponse struct {
	IsUser bool `json:"isUser"`
}

// UserStatus handles GET /users/user/{email}. It compares against the
// "user" role, which no write path assigns, so the answer is false for
// every account the application creates. Preserved for API compatibility.
func (h *Handler) UserStatus(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	isUser, err := h.service.HasRole(r.Context(), email, domain.RoleUser)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, UserStatusResponse{IsUser: isUser})
}

// ListBuyers handles GET /buyers (admin only).
func (h *Handler) ListBuyers(w http.ResponseWriter, r *http.Request) {
	buyers, err := h.service.ListBuyers(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, buyers)
}

// DeleteUser handles DELETE /users/{id}.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.service.DeleteUser(r.Context(), id)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	ctxlog.FromContext(r.Context()).Error("internal error", "error", err)
	httputil.Error(w, http.StatusInternalServerError, "internal error")
}
