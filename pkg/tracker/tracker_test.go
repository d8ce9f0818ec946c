package tracker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/pkg/config"
)

func TestMarkInReview(t *testing.T) {
	var gotPath string
	var payload map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Bearer trk", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	t.Setenv("TRACKER_TOKEN", "trk")
	c := NewClient(&config.TrackerConfig{
		BaseURL:       server.URL,
		TokenEnv:      "TRACKER_TOKEN",
		InReviewState: "review",
	})

	err := c.MarkInReview(context.Background(), "org/repo", 42, "https://example.com/pull/7")
	require.NoError(t, err)
	assert.Equal(t, "/issues/org/repo/42/transitions", gotPath)
	assert.Equal(t, "review", payload["state"])
	assert.Equal(t, "https://example.com/pull/7", payload["pull_request_url"])
}

func TestMarkInReviewUnconfiguredIsNoOp(t *testing.T) {
	c := NewClient(nil)
	assert.False(t, c.Enabled())
	assert.NoError(t, c.MarkInReview(context.Background(), "org/repo", 1, "url"))
	assert.NoError(t, c.Comment(context.Background(), "org/repo", 1, "hello"))
}

func TestTrackerErrorSurfacesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	c := NewClient(&config.TrackerConfig{BaseURL: server.URL})
	err := c.MarkInReview(context.Background(), "org/repo", 1, "url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
