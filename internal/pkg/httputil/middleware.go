package httputil

import (
	"context"
	"net/http"
	"strings"

	"github.com/laundryhouse/backend/internal/domain"
	"github.com/laundryhouse/backend/internal/pkg/metrics"
)

// CORSMiddleware handles preflight requests and adds CORS headers.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	originsSet := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		originsSet[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if originsSet["*"] {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else if originsSet[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				w.Header().Set("Access-Control-Max-Age", "86400")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type contextKey string

// EmailKey holds the authenticated email claim in the request context.
const EmailKey contextKey = "email"

// TokenVerifier checks a bearer token and returns the email it asserts.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (email string, err error)
}

// RoleSource looks up the current role of an account.
type RoleSource interface {
	RoleByEmail(ctx context.Context, email string) (domain.Role, error)
}

// Authenticate requires a valid `Authorization: Bearer <token>` header.
// A missing or malformed header yields 401; a token that fails
// verification (bad signature or expired) yields 403. On success the
// email claim is attached to the request context.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				Text(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				Text(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			email, err := verifier.VerifyToken(r.Context(), parts[1])
			if err != nil {
				metrics.TokenVerificationFailures.Inc()
				Error(w, http.StatusForbidden, "forbidden access")
				return
			}

			ctx := context.WithValue(r.Context(), EmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route on the authenticated account holding the given
// role. The role is looked up in the user store on every request rather
// than read from the token, so a role change takes effect immediately.
// Must be chained after Authenticate.
func RequireRole(roles RoleSource, required domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := GetEmail(r.Context())
			if email == "" {
				Text(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			role, err := roles.RoleByEmail(r.Context(), email)
			if err != nil || role != required {
				Error(w, http.StatusForbidden, "forbidden access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetEmail extracts the authenticated email from context.
func GetEmail(ctx context.Context) string {
	if email, ok := ctx.Value(EmailKey).(string); ok {
		return email
	}
	return ""
}
