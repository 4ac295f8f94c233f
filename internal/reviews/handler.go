package reviews

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/laundryhouse/backend/internal/domain"
	"github.com/laundryhouse/backend/internal/pkg/ctxlog"
	"github.com/laundryhouse/backend/internal/pkg/httputil"
)

// Handler handles HTTP requests for the reviews module.
type Handler struct {
	service *Service
}

// NewHandler creates a new reviews handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers all review routes. Reviews are fully public.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reviews", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Delete("/{id}", h.Delete)
		r.Put("/{id}", h.UpdateMessage)
	})
}

// Create handles POST /reviews.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var review domain.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	result, err := h.service.Create(r.Context(), &review)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}

// List handles GET /reviews?email=&id=. The id parameter filters on the
// reviewed service and takes precedence over the email filter; with
// neither, all reviews are returned.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var filter Filter
	if email := r.URL.Query().Get("email"); email != "" {
		filter.Email = &email
	}
	if serviceID := r.URL.Query().Get("id"); serviceID != "" {
		filter = Filter{Service: &serviceID}
	}

	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, list)
}

// Get handles GET /reviews/{id}. An absent record is reported as JSON
// null at 200.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	review, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrReviewNotFound) {
			httputil.JSON(w, http.StatusOK, nil)
			return
		}
		h.internalError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, review)
}

// Delete handles DELETE /reviews/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}

// UpdateMessageRequest is the body of PUT /reviews/{id}. Only the
// message field is applied; anything else in the body is ignored.
type UpdateMessageRequest struct {
	Message string `json:"message"`
}

// UpdateMessage handles PUT /reviews/{id}.
func (h *Handler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	result, err := h.service.UpdateMessage(r.Context(), id, req.Message)
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
