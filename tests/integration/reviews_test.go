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

func createReview(t *testing.T, client *testutil.Client, email, service, message string) string {
	t.Helper()

	resp, err := client.POST("/reviews", map[string]any{
		"email":   email,
		"service": service,
		"message": message,
		"rating":  5,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Acknowledged bool   `json:"acknowledged"`
		InsertedID   string `json:"insertedId"`
	}
	testutil.DecodeJSON(t, resp, &result)
	require.True(t, result.Acknowledged)
	return result.InsertedID
}

func TestReviewFilters(t *testing.T) {
	client := newTestClient()
	emailA := uniqueEmail("reviewer-a")
	emailB := uniqueEmail("reviewer-b")
	serviceA := uuid.NewString()
	serviceB := uuid.NewString()

	createReview(t, client, emailA, serviceA, "spotless")
	createReview(t, client, emailB, serviceB, "fine")

	// Filter by author email.
	resp, err := client.GET("/reviews?email=" + emailA)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]any
	testutil.DecodeJSON(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, emailA, list[0]["email"])

	// The service filter takes precedence over the email filter.
	resp, err = client.GET("/reviews?email=" + emailA + "&id=" + serviceB)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	testutil.DecodeJSON(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, emailB, list[0]["email"])
}

func TestGetReview_AbsentIsNull(t *testing.T) {
	client := newTestClient()

	resp, err := client.GET("/reviews/" + uuid.NewString())
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "null", strings.TrimSpace(testutil.ReadBody(t, resp)))
}

func TestUpdateReviewMessage(t *testing.T) {
	client := newTestClient()
	id := createReview(t, client, uniqueEmail("editor"), uuid.NewString(), "first draft")

	resp, err := client.PUT("/reviews/"+id, map[string]string{"message": "second draft"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		MatchedCount  int64 `json:"matchedCount"`
		ModifiedCount int64 `json:"modifiedCount"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.Equal(t, int64(1), result.MatchedCount)
	assert.Equal(t, int64(1), result.ModifiedCount)

	resp, err = client.GET("/reviews/" + id)
	require.NoError(t, err)

	var review map[string]any
	testutil.DecodeJSON(t, resp, &review)
	assert.Equal(t, "second draft", review["message"])
}

func TestUpdateReviewMessage_UpsertsAbsentReview(t *testing.T) {
	client := newTestClient()
	id := uuid.NewString()

	resp, err := client.PUT("/reviews/"+id, map[string]string{"message": "from scratch"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		MatchedCount int64   `json:"matchedCount"`
		UpsertedID   *string `json:"upsertedId"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.Equal(t, int64(0), result.MatchedCount)
	require.NotNil(t, result.UpsertedID)
	assert.Equal(t, id, *result.UpsertedID)
}

func TestDeleteReview(t *testing.T) {
	client := newTestClient()
	id := createReview(t, client, uniqueEmail("remover"), uuid.NewString(), "gone soon")

	resp, err := client.DELETE("/reviews/" + id)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.Equal(t, int64(1), result.DeletedCount)

	resp, err = client.GET("/reviews/" + id)
	require.NoError(t, err)
	assert.Equal(t, "null", strings.TrimSpace(testutil.ReadBody(t, resp)))
}
