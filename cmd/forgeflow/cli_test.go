package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/pkg/models"
)

func fastPoll(t *testing.T) {
	t.Helper()
	old := dryRunPollInterval
	dryRunPollInterval = 5 * time.Millisecond
	t.Cleanup(func() { dryRunPollInterval = old })
}

func testCLIClient(url string) *apiClient {
	return &apiClient{base: url, http: &http.Client{Timeout: 5 * time.Second}}
}

func captureCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	return cmd, &out
}

func TestBlockedReason(t *testing.T) {
	assert.True(t, blockedReason(models.ReasonDeniedCommand))
	assert.True(t, blockedReason(models.ReasonPathOutsideAllowlist))
	assert.False(t, blockedReason(models.ReasonMaxIterations))
	assert.False(t, blockedReason(""))
}

func TestAPIClientSurfacesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "task already terminal"})
	}))
	defer server.Close()

	err := testCLIClient(server.URL).do(context.Background(), http.MethodGet, "/api/v1/tasks/x", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task already terminal")
	assert.Contains(t, err.Error(), "409")
}

func TestWaitForDryRunPrintsDiff(t *testing.T) {
	fastPoll(t)

	polls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls++
		view := taskView{ID: "t-1", Status: "running"}
		if polls >= 3 {
			view.Status = "completed"
			view.CurrentDiff = "--- a/README.md\n+++ b/README.md\n@@ -1 +1,2 @@\n # widgets\n+Fixed.\n"
			view.CommitMessage = "Fix the readme"
			view.TargetFiles = []string{"README.md"}
		}
		_ = json.NewEncoder(w).Encode(view)
	}))
	defer server.Close()

	cmd, out := captureCmd()
	err := waitForDryRun(context.Background(), cmd, testCLIClient(server.URL), "t-1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, polls, 3, "waits through non-terminal statuses")
	assert.Contains(t, out.String(), "+Fixed.")
	assert.Contains(t, out.String(), "Fix the readme")
	assert.Contains(t, out.String(), "README.md")
}

func TestWaitForDryRunBlockedPolicyIsDistinct(t *testing.T) {
	fastPoll(t)

	reason := models.ReasonPathOutsideAllowlist
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(taskView{ID: "t-2", Status: "failed", FailureReason: &reason})
	}))
	defer server.Close()

	cmd, _ := captureCmd()
	err := waitForDryRun(context.Background(), cmd, testCLIClient(server.URL), "t-2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errBlocked), "policy blocks map to the distinct exit code")
}

func TestWaitForDryRunOrdinaryFailure(t *testing.T) {
	fastPoll(t)

	reason := "planning_failed"
	lastErr := "planner returned no steps"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(taskView{
			ID: "t-3", Status: "failed", FailureReason: &reason, LastError: &lastErr,
		})
	}))
	defer server.Close()

	cmd, _ := captureCmd()
	err := waitForDryRun(context.Background(), cmd, testCLIClient(server.URL), "t-3")
	require.Error(t, err)
	assert.False(t, errors.Is(err, errBlocked))
	assert.Contains(t, err.Error(), "planner returned no steps")
}

func TestStatusCommandRendersProgress(t *testing.T) {
	agent := "planner"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tasks/t-9/status", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"task_id":       "t-9",
			"repo":          "acme/widgets",
			"issue_number":  42,
			"status":        "running",
			"phase":         "coding",
			"attempt_count": 1,
			"max_attempts":  3,
			"progress": []map[string]interface{}{
				{"sequence": 1, "event_type": "plan_complete", "agent": agent},
			},
		})
	}))
	defer server.Close()

	t.Setenv("FORGEFLOW_URL", server.URL)
	cmd := newStatusCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"t-9"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "acme/widgets#42")
	assert.Contains(t, out.String(), "coding")
	assert.Contains(t, out.String(), "plan_complete [planner]")
	assert.Contains(t, out.String(), "1/3")
}
