package identity

import (
	"context"

	"github.com/laundryhouse/backend/internal/domain"
)

// Repository defines the interface for user record operations.
type Repository interface {
	// CreateUser inserts a user record and returns the generated id.
	// Returns ErrEmailExists when the email is already taken.
	CreateUser(ctx context.Context, user *domain.User) (string, error)

	// GetUserByEmail returns ErrUserNotFound when no record exists.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	ListUsers(ctx context.Context) ([]domain.User, error)
	ListUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error)

	// SetUserRole updates the role of the user with the given id and
	// reports how many records matched. Zero is not an error.
	SetUserRole(ctx context.Context, id string, role domain.Role) (int64, error)

	// DeleteUser removes the user with the given id and reports how
	// many records were deleted.
	DeleteUser(ctx context.Context, id string) (int64, error)
}
