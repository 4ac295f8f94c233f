// Package catalog manages the laundry service offerings.
package catalog

import (
	"context"
	"fmt"

	"github.com/laundryhouse/backend/internal/domain"
)

// Service implements catalog business logic.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create inserts a new offering. Offerings are created whole and never
// updated or deleted; there is no operation for either.
func (s *Service) Create(ctx context.Context, service *domain.Service) (*domain.InsertResult, error) {
	id, err := s.repo.CreateService(ctx, service)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	service.ID = id
	return &domain.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// List returns all offerings ordered by title, descending.
func (s *Service) List(ctx context.Context) ([]domain.Service, error) {
	return s.repo.ListServices(ctx)
}

// Get returns one offering by id, or ErrServiceNotFound.
func (s *Service) Get(ctx context.Context, id string) (*domain.Service, error) {
	return s.repo.GetServiceByID(ctx, id)
}
