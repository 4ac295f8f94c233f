// Package identity manages user records, roles, and access token issuance.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/laundryhouse/backend/internal/domain"
	"github.com/laundryhouse/backend/internal/pkg/metrics"
)

// TokenAuthenticator issues and verifies access tokens.
type TokenAuthenticator interface {
	Issue(email string) (string, error)
	Verify(token string) (string, error)
}

// Service implements identity business logic.
type Service struct {
	repo   Repository
	tokens TokenAuthenticator
}

// NewService creates a new identity service.
func NewService(repo Repository, tokens TokenAuthenticator) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
	}
}

// IssueToken issues an access token for a registered email. Returns
// ErrUserNotFound when no user record exists for the email, in which
// case no token is produced.
func (s *Service) IssueToken(ctx context.Context, email string) (string, error) {
	if _, err := s.repo.GetUserByEmail(ctx, email); err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	metrics.TokensIssued.Inc()
	return token, nil
}

// VerifyToken validates a bearer token and returns the email it asserts.
// Implements the gate's TokenVerifier.
func (s *Service) VerifyToken(_ context.Context, token string) (string, error) {
	return s.tokens.Verify(token)
}

// RoleByEmail returns the current role of the account. Implements the
// gate's RoleSource; the lookup hits the store on every gated request.
func (s *Service) RoleByEmail(ctx context.Context, email string) (domain.Role, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.RoleUnset, err
	}
	return user.Role, nil
}

// Register stores a profile record on first sign-in. A duplicate email is
// not an HTTP error: the result carries acknowledged=false and a message,
// which is what the frontend expects. The pre-insert existence check
// leaves a race window; the unique index on email closes it, and a
// racing insert is folded into the same rejection result.
func (s *Service) Register(ctx context.Context, user *domain.User) (*domain.InsertResult, error) {
	_, err := s.repo.GetUserByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return rejectedRegistration(), nil
	case !errors.Is(err, ErrUserNotFound):
		return nil, fmt.Errorf("check existing email: %w", err)
	}

	id, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			return rejectedRegistration(), nil
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	user.ID = id
	return &domain.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func rejectedRegistration() *domain.InsertResult {
	return &domain.InsertResult{
		Acknowledged: false,
		Message:      "You already have an account",
	}
}

// ListUsers returns all user records.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsers(ctx)
}

// ListBuyers returns all users holding the buyer role.
func (s *Service) ListBuyers(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsersByRole(ctx, domain.RoleBuyer)
}

// SetRole updates the role of the user with the given id. An id that
// matches nothing yields a zero-count result, not an error.
func (s *Service) SetRole(ctx context.Context, id string, role domain.Role) (*domain.UpdateResult, error) {
	matched, err := s.repo.SetUserRole(ctx, id, role)
	if err != nil {
		return nil, fmt.Errorf("set user role: %w", err)
	}
	return &domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  matched,
		ModifiedCount: matched,
	}, nil
}

// HasRole reports whether the account with the given email currently
// holds the role. An unknown email is simply false.
func (s *Service) HasRole(ctx context.Context, email string, role domain.Role) (bool, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get user by email: %w", err)
	}
	return user.Role == role, nil
}

// DeleteUser removes the user record with the given id.
func (s *Service) DeleteUser(ctx context.Context, id string) (*domain.DeleteResult, error) {
	deleted, err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return &domain.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}
