package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/laundryhouse/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepository implements Repository in memory.
type mockRepository struct {
	services map[string]*domain.Service
	nextID   int
}

func newMockRepository() *mockRepository {
	return &mockRepository{services: make(map[string]*domain.Service)}
}

func (m *mockRepository) addService(title string, extra map[string]any) *domain.Service {
	m.nextID++
	service := &domain.Service{ID: fmt.Sprintf("svc-%d", m.nextID), Title: title, Extra: extra}
	m.services[service.ID] = service
	return service
}

func (m *mockRepository) CreateService(_ context.Context, service *domain.Service) (string, error) {
	created := m.addService(service.Title, service.Extra)
	return created.ID, nil
}

func (m *mockRepository) ListServices(_ context.Context) ([]domain.Service, error) {
	out := make([]domain.Service, 0, len(m.services))
	for _, s := range m.services {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title > out[j].Title })
	return out, nil
}

func (m *mockRepository) GetServiceByID(_ context.Context, id string) (*domain.Service, error) {
	if s, ok := m.services[id]; ok {
		return s, nil
	}
	return nil, ErrServiceNotFound
}

func newTestRouter(repo *mockRepository) chi.Router {
	handler := NewHandler(NewService(repo))
	r := chi.NewRouter()
	handler.RegisterPublicRoutes(r)
	handler.RegisterAdminRoutes(r)
	return r
}

func TestCreateService(t *testing.T) {
	router := newTestRouter(newMockRepository())

	body := `{"title":"Dry Cleaning","price":"120","img":"https://example.com/dc.png"}`
	req := httptest.NewRequest(http.MethodPost, "/services", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, true, result["acknowledged"])
	assert.NotEmpty(t, result["insertedId"])
}

func TestCreateService_InvalidJSON(t *testing.T) {
	router := newTestRouter(newMockRepository())

	req := httptest.NewRequest(http.MethodPost, "/services", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListServices_TitleDescending(t *testing.T) {
	repo := newMockRepository()
	repo.addService("Alteration", nil)
	repo.addService("Wash & Fold", nil)
	repo.addService("Dry Cleaning", nil)
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 3)
	assert.Equal(t, "Wash & Fold", list[0]["title"])
	assert.Equal(t, "Dry Cleaning", list[1]["title"])
	assert.Equal(t, "Alteration", list[2]["title"])
}

func TestGetService(t *testing.T) {
	repo := newMockRepository()
	service := repo.addService("Ironing", map[string]any{"price": "40"})
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/services/"+service.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "Ironing", out["title"])
	assert.Equal(t, "40", out["price"])
}

func TestGetService_AbsentIsNull(t *testing.T) {
	router := newTestRouter(newMockRepository())

	req := httptest.NewRequest(http.MethodGet, "/services/svc-missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}
