//go:build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/laundryhouse/backend/internal/testutil"
	"github.com/stretchr/testify/require"
)

// uniqueEmail returns an email address no other test has registered.
func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@example.com", prefix, uuid.NewString()[:8])
}

// registerUser creates an account and returns its id.
func registerUser(t *testing.T, client *testutil.Client, email string) string {
	t.Helper()

	resp, err := client.POST("/users", map[string]any{
		"name":  "Test User",
		"email": email,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Acknowledged bool   `json:"acknowledged"`
		InsertedID   string `json:"insertedId"`
	}
	testutil.DecodeJSON(t, resp, &result)
	require.True(t, result.Acknowledged)
	require.NotEmpty(t, result.InsertedID)
	return result.InsertedID
}

// registerAdmin creates an account, assigns it the admin role and
// returns its id.
func registerAdmin(t *testing.T, client *testutil.Client, email string) string {
	t.Helper()

	id := registerUser(t, client, email)

	resp, err := client.PATCH("/users/"+id, map[string]string{"role": "admin"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer func() { _ = resp.Body.Close() }()

	return id
}
