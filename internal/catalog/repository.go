package catalog

import (
	"context"

	"github.com/laundryhouse/backend/internal/domain"
)

// Repository defines the interface for service catalog operations.
type Repository interface {
	// CreateService inserts a service offering and returns the generated id.
	CreateService(ctx context.Context, service *domain.Service) (string, error)

	// ListServices returns all offerings ordered by title, descending.
	ListServices(ctx context.Context) ([]domain.Service, error)

	// GetServiceByID returns ErrServiceNotFound when no record exists.
	GetServiceByID(ctx context.Context, id string) (*domain.Service, error)
}
