// Package postgres provides the PostgreSQL implementation of the
// identity repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/laundryhouse/backend/internal/domain"
	"github.com/laundryhouse/backend/internal/identity"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

// Repository implements identity.Repository using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts a user record and returns the generated id.
func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (string, error) {
	query := `
		INSERT INTO users (email, role, data)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id string
	err := r.db.QueryRow(ctx, query, user.Email, string(user.Role), extraOrEmpty(user.Extra)).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return "", identity.ErrEmailExists
		}
		return "", fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// GetUserByEmail retrieves a user record by email.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, role, data
		FROM users
		WHERE email = $1
	`
	var user domain.User
	err := r.db.QueryRow(ctx, query, email).Scan(&user.ID, &user.Email, &user.Role, &user.Extra)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, identity.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

// ListUsers retrieves all user records.
func (r *Repository) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, email, role, data
		FROM users
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// ListUsersByRole retrieves user records holding the given role.
func (r *Repository) ListUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	query := `
		SELECT id, email, role, data
		FROM users
		WHERE role = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, string(role))
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// SetUserRole updates the role of the user with the given id.
func (r *Repository) SetUserRole(ctx context.Context, id string, role domain.Role) (int64, error) {
	query := `
		UPDATE users
		SET role = $2
		WHERE id = $1
	`
	ct, err := r.db.Exec(ctx, query, id, string(role))
	if err != nil {
		return 0, fmt.Errorf("set user role: %w", err)
	}
	return ct.RowsAffected(), nil
}

// DeleteUser removes the user record with the given id.
func (r *Repository) DeleteUser(ctx context.Context, id string) (int64, error) {
	query := `
		DELETE FROM users
		WHERE id = $1
	`
	ct, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}
	return ct.RowsAffected(), nil
}

func scanUsers(rows pgx.Rows) ([]domain.User, error) {
	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Email, &user.Role, &user.Extra); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// extraOrEmpty keeps the jsonb column NOT NULL friendly.
func extraOrEmpty(extra map[string]any) map[string]any {
	if extra == nil {
		return map[string]any{}
	}
	return extra
}
