// Package postgres provides the PostgreSQL implementation of the
// reviews repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/laundryhouse/backend/internal/domain"
	"github.com/laundryhouse/backend/internal/reviews"
)

// Repository implements reviews.Repository using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateReview inserts a review and returns the generated id.
func (r *Repository) CreateReview(ctx context.Context, review *domain.Review) (string, error) {
	query := `
		INSERT INTO reviews (email, service, message, data)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	data := review.Extra
	if data == nil {
		data = map[string]any{}
	}

	var id string
	err := r.db.QueryRow(ctx, query, review.Email, review.Service, review.Message, data).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create review: %w", err)
	}
	return id, nil
}

// ListReviews retrieves reviews matching the filter.
func (r *Repository) ListReviews(ctx context.Context, filter reviews.Filter) ([]domain.Review, error) {
	query := `
		SELECT id, email, service, message, data
		FROM reviews
	`
	args := []any{}

	switch {
	case filter.Service != nil:
		query += " WHERE service = $1"
		args = append(args, *filter.Service)
	case filter.Email != nil:
		query += " WHERE email = $1"
		args = append(args, *filter.Email)
	}

	query += " ORDER BY created_at"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	list := make([]domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(&review.ID, &review.Email, &review.Service, &review.Message, &review.Extra); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return list, nil
}

// GetReviewByID retrieves one review by id.
func (r *Repository) GetReviewByID(ctx context.Context, id string) (*domain.Review, error) {
	query := `
		SELECT id, email, service, message, data
		FROM reviews
		WHERE id = $1
	`
	var review domain.Review
	err := r.db.QueryRow(ctx, query, id).Scan(&review.ID, &review.Email, &review.Service, &review.Message, &review.Extra)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, reviews.ErrReviewNotFound
		}
		return nil, fmt.Errorf("get review by id: %w", err)
	}
	return &review, nil
}

// DeleteReview removes the review with the given id.
func (r *Repository) DeleteReview(ctx context.Context, id string) (int64, error) {
	query := `
		DELETE FROM reviews
		WHERE id = $1
	`
	ct, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("delete review: %w", err)
	}
	return ct.RowsAffected(), nil
}

// UpsertMessage sets the message of the review at id, inserting a record
// holding only the message when none exists. The xmax = 0 check reports
// whether ON CONFLICT took the insert path.
func (r *Repository) UpsertMessage(ctx context.Context, id, message string) (bool, error) {
	query := `
		INSERT INTO reviews (id, message)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET message = EXCLUDED.message
		RETURNING (xmax = 0) AS inserted
	`
	var inserted bool
	if err := r.db.QueryRow(ctx, query, id, message).Scan(&inserted); err != nil {
		return false, fmt.Errorf("upsert review message: %w", err)
	}
	return inserted, nil
}
