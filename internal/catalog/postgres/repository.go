// Package postgres provides the PostgreSQL implementation of the
// catalog repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/laundryhouse/backend/internal/catalog"
	"github.com/laundryhouse/backend/internal/domain"
)

// Repository implements catalog.Repository using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateService inserts a service offering and returns the generated id.
func (r *Repository) CreateService(ctx context.Context, service *domain.Service) (string, error) {
	query := `
		INSERT INTO services (title, data)
		VALUES ($1, $2)
		RETURNING id
	`
	data := service.Extra
	if data == nil {
		data = map[string]any{}
	}

	var id string
	if err := r.db.QueryRow(ctx, query, service.Title, data).Scan(&id); err != nil {
		return "", fmt.Errorf("create service: %w", err)
	}
	return id, nil
}

// ListServices retrieves all offerings ordered by title, descending.
func (r *Repository) ListServices(ctx context.Context) ([]domain.Service, error) {
	query := `
		SELECT id, title, data
		FROM services
		ORDER BY title DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		var service domain.Service
		if err := rows.Scan(&service.ID, &service.Title, &service.Extra); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services: %w", err)
	}
	return services, nil
}

// GetServiceByID retrieves one offering by id.
func (r *Repository) GetServiceByID(ctx context.Context, id string) (*domain.Service, error) {
	query := `
		SELECT id, title, data
		FROM services
		WHERE id = $1
	`
	var service domain.Service
	err := r.db.QueryRow(ctx, query, id).Scan(&service.ID, &service.Title, &service.Extra)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service by id: %w", err)
	}
	return &service, nil
}
