package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/laundryhouse/backend/internal/domain"
	"github.com/laundryhouse/backend/internal/pkg/ctxlog"
	"github.com/laundryhouse/backend/internal/pkg/httputil"
)

// Handler handles HTTP requests for the catalog module.
type Handler struct {
	service *Service
}

// NewHandler creates a new catalog handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes registers the read-only catalog routes.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/services", h.List)
	r.Get("/services/{id}", h.Get)
}

// RegisterAdminRoutes registers catalog routes behind the admin gate.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/services", h.Create)
}

// Create handles POST /services (admin only). The body is stored as
// submitted; only the title is pulled out as a first-class field.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var service domain.Service
	if err := json.NewDecoder(r.Body).Decode(&service); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	result, err := h.service.Create(r.Context(), &service)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}

// List handles GET /services.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.List(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, services)
}

// Get handles GET /services/{id}. An absent record is reported as JSON
// null at 200, not as 404.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	service, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			httputil.JSON(w, http.StatusOK, nil)
			return
		}
		h.internalError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, service)
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	ctxlog.FromContext(r.Context()).Error("internal error", "error", err)
	httputil.Error(w, http.StatusInternalServerError, "internal error")
}
