//go:build integration

package integration

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/laundryhouse/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateService_RequiresAdmin(t *testing.T) {
	client := newTestClient()

	resp, err := client.POST("/services", map[string]any{"title": "Sneaky"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestCreateAndFetchService(t *testing.T) {
	client := newTestClient()
	adminEmail := uniqueEmail("catalog-admin")
	registerAdmin(t, client, adminEmail)
	client.LoginAs(t, adminEmail)

	title := "Dry Cleaning " + uuid.NewString()[:8]
	resp, err := client.POST("/services", map[string]any{
		"title": title,
		"price": "120",
		"img":   "https://example.com/dc.png",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created struct {
		Acknowledged bool   `json:"acknowledged"`
		InsertedID   string `json:"insertedId"`
	}
	testutil.DecodeJSON(t, resp, &created)
	require.True(t, created.Acknowledged)
	require.NotEmpty(t, created.InsertedID)

	// Reads are public.
	client.ClearToken()

	resp, err = client.GET("/services/" + created.InsertedID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched map[string]any
	testutil.DecodeJSON(t, resp, &fetched)
	assert.Equal(t, title, fetched["title"])
	assert.Equal(t, "120", fetched["price"])

	resp, err = client.GET("/services")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]any
	testutil.DecodeJSON(t, resp, &list)

	found := false
	for _, s := range list {
		if s["id"] == created.InsertedID {
			found = true
		}
	}
	assert.True(t, found, "created offering should appear in the listing")
}

func TestGetService_AbsentIsNull(t *testing.T) {
	client := newTestClient()

	resp, err := client.GET("/services/" + uuid.NewString())
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "null", strings.TrimSpace(testutil.ReadBody(t, resp)))
}

func TestListServices_OrderedByTitleDescending(t *testing.T) {
	client := newTestClient()
	adminEmail := uniqueEmail("catalog-order")
	registerAdmin(t, client, adminEmail)
	client.LoginAs(t, adminEmail)

	for _, title := range []string{"AAA Wash", "ZZZ Press"} {
		resp, err := client.POST("/services", map[string]any{"title": title})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	}

	resp, err := client.GET("/services")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []struct {
		Title string `json:"title"`
	}
	testutil.DecodeJSON(t, resp, &list)
	require.GreaterOrEqual(t, len(list), 2)

	for i := 1; i < len(list); i++ {
		assert.GreaterOrEqual(t, list[i-1].Title, list[i].Title, "titles must descend")
	}
}
