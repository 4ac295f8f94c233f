// Package reviews manages customer reviews of service offerings.
package reviews

import (
	"context"
	"fmt"

	"github.com/laundryhouse/backend/internal/domain"
)

// Service implements review business logic.
type Service struct {
	repo Repository
}

// NewService creates a new review service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create inserts a review. Anyone may post one; the service field is a
// plain string and is not checked against the catalog.
func (s *Service) Create(ctx context.Context, review *domain.Review) (*domain.InsertResult, error) {
	id, err := s.repo.CreateReview(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	review.ID = id
	return &domain.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// List returns reviews matching the filter.
func (s *Service) List(ctx context.Context, filter Filter) ([]domain.Review, error) {
	return s.repo.ListReviews(ctx, filter)
}

// Get returns one review by id, or ErrReviewNotFound.
func (s *Service) Get(ctx context.Context, id string) (*domain.Review, error) {
	return s.repo.GetReviewByID(ctx, id)
}

// Delete removes the review with the given id.
func (s *Service) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	deleted, err := s.repo.DeleteReview(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete review: %w", err)
	}
	return &domain.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}

// UpdateMessage upserts the message field of the review at id. When no
// review exists a record holding only the message is created, and the
// result carries its id as upsertedId.
func (s *Service) UpdateMessage(ctx context.Context, id, message string) (*domain.UpdateResult, error) {
	inserted, err := s.repo.UpsertMessage(ctx, id, message)
	if err != nil {
		return nil, fmt.Errorf("upsert review message: %w", err)
	}

	result := &domain.UpdateResult{Acknowledged: true}
	if inserted {
		result.UpsertedID = &id
	} else {
		result.MatchedCount = 1
		result.ModifiedCount = 1
	}
	return result, nil
}
