package reviews

import (
	"context"

	"github.com/laundryhouse/backend/internal/domain"
)

// Filter selects reviews by author email or by reviewed service id.
// At most one field is set; both nil means all reviews.
type Filter struct {
	Email   *string
	Service *string
}

// Repository defines the interface for review operations.
type Repository interface {
	// CreateReview inserts a review and returns the generated id.
	CreateReview(ctx context.Context, review *domain.Review) (string, error)

	ListReviews(ctx context.Context, filter Filter) ([]domain.Review, error)

	// GetReviewByID returns ErrReviewNotFound when no record exists.
	GetReviewByID(ctx context.Context, id string) (*domain.Review, error)

	// DeleteReview removes the review with the given id and reports
	// how many records were deleted.
	DeleteReview(ctx context.Context, id string) (int64, error)

	// UpsertMessage sets the message of the review at id, inserting a
	// record holding only the message when none exists. Reports whether
	// the record was freshly inserted.
	UpsertMessage(ctx context.Context, id, message string) (inserted bool, err error)
}
