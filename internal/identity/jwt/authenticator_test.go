package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestAuthenticator(now time.Time) *Authenticator {
	a := NewAuthenticator(Config{SecretKey: testSecret})
	a.now = func() time.Time { return now }
	return a
}

func TestIssueAndVerify(t *testing.T) {
	a := NewAuthenticator(Config{SecretKey: testSecret})

	token, err := a.Issue("buyer@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := a.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", email)
}

func TestVerify_ExpiredToken(t *testing.T) {
	issuedAt := time.Now()
	a := newTestAuthenticator(issuedAt)

	token, err := a.Issue("buyer@example.com")
	require.NoError(t, err)

	// Just before expiry the token still verifies.
	a.now = func() time.Time { return issuedAt.Add(TokenTTL - time.Minute) }
	_, err = a.Verify(token)
	require.NoError(t, err)

	// Just after expiry it does not.
	a.now = func() time.Time { return issuedAt.Add(TokenTTL + time.Minute) }
	_, err = a.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerify_WrongKey(t *testing.T) {
	a := NewAuthenticator(Config{SecretKey: testSecret})
	other := NewAuthenticator(Config{SecretKey: "ffffffffffffffffffffffffffffffff"})

	token, err := other.Issue("buyer@example.com")
	require.NoError(t, err)

	_, err = a.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	a := NewAuthenticator(Config{SecretKey: testSecret})

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := a.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestVerify_EmptyEmailClaim(t *testing.T) {
	a := NewAuthenticator(Config{SecretKey: testSecret})

	token, err := a.Issue("")
	require.NoError(t, err)

	_, err = a.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
