// Package jwt issues and verifies the signed access tokens used as
// bearer credentials.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is the fixed lifetime of an access token. There is no refresh
// mechanism; expired callers re-authenticate through GET /jwt.
const TokenTTL = time.Hour

// Verification errors. The gate maps both to the same 403 response, but
// callers can distinguish them for logging.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Config contains authenticator settings.
type Config struct {
	SecretKey string
}

// Authenticator signs and verifies HS256 tokens carrying an email claim.
type Authenticator struct {
	signingKey []byte
	now        func() time.Time // injectable for tests
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewAuthenticator creates an authenticator from config.
func NewAuthenticator(cfg Config) *Authenticator {
	return &Authenticator{
		signingKey: []byte(cfg.SecretKey),
		now:        time.Now,
	}
}

// Issue produces a signed token embedding the email claim, expiring
// TokenTTL after issuance.
func (a *Authenticator) Issue(email string) (string, error) {
	now := a.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			ID:        uuid.NewString(),
		},
	})

	signed, err := token.SignedString(a.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates signature and expiry and returns the email claim.
// Verification is pure; nothing is persisted or looked up.
func (a *Authenticator) Verify(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return a.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(func() time.Time { return a.now() }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || c.Email == "" {
		return "", ErrInvalidToken
	}
	return c.Email, nil
}
