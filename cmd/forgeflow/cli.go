package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/githost"
	"github.com/forgeflow/forgeflow/pkg/models"
)

// exitCodeBlocked distinguishes a task stopped by policy (denied command,
// blocked path) from ordinary failures, which exit 1.
const exitCodeBlocked = 2

// errBlocked marks failures caused by the sandbox denylist or the path
// policy. main maps it to exitCodeBlocked.
var errBlocked = errors.New("blocked by policy")

var dryRunPollInterval = 2 * time.Second

// blockedReason reports whether a terminal failure reason is a policy
// block rather than a pipeline failure.
func blockedReason(reason string) bool {
	switch reason {
	case models.ReasonDeniedCommand, models.ReasonPathOutsideAllowlist:
		return true
	}
	return false
}

// apiClient is a thin JSON client for the running orchestrator server.
type apiClient struct {
	base string
	http *http.Client
}

func newAPIClient() *apiClient {
	base := getEnv("FORGEFLOW_URL", "http://localhost:"+getEnv("HTTP_PORT", "8080"))
	return &apiClient{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *apiClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (HTTP %d)", method, path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: HTTP %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// taskView is the subset of the task row the CLI reads back.
type taskView struct {
	ID            string   `json:"id"`
	Status        string   `json:"status"`
	FailureReason *string  `json:"failure_reason"`
	LastError     *string  `json:"last_error"`
	PrURL         *string  `json:"pr_url"`
	CurrentDiff   string   `json:"current_diff"`
	CommitMessage string   `json:"commit_message"`
	TargetFiles   []string `json:"target_files"`
}

func terminalStatus(status string) bool {
	switch status {
	case "completed", "failed", "cancelled":
		return true
	}
	return false
}

func newExecuteCmd(configDir *string) *cobra.Command {
	var (
		repo   string
		issue  int
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "execute",
		Short: "Enqueue a task for an issue; with --dry-run, wait and print the diff",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Issue metadata comes from the code host; the server only
			// accepts fully framed tasks.
			if err := godotenv.Load(filepath.Join(*configDir, ".env")); err == nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Loaded environment from %s\n", filepath.Join(*configDir, ".env"))
			}
			cfg, err := config.Initialize(ctx, *configDir)
			if err != nil {
				return fmt.Errorf("initialize configuration: %w", err)
			}
			ghIssue, err := githost.NewClient(cfg.System.GitHost).GetIssue(ctx, repo, issue)
			if err != nil {
				return err
			}

			client := newAPIClient()
			var created struct {
				Task    taskView `json:"task"`
				Created bool     `json:"created"`
			}
			err = client.do(ctx, http.MethodPost, "/api/v1/tasks", models.CreateTaskRequest{
				Repo:        repo,
				IssueNumber: issue,
				Title:       ghIssue.Title,
				Body:        ghIssue.Body,
				DryRun:      dryRun,
			}, &created)
			if err != nil {
				return err
			}
			if created.Created {
				fmt.Fprintf(cmd.OutOrStdout(), "Task %s queued for %s#%d\n", created.Task.ID, repo, issue)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Task %s already in flight for %s#%d\n", created.Task.ID, repo, issue)
			}
			if !dryRun {
				return nil
			}
			return waitForDryRun(ctx, cmd, client, created.Task.ID)
		},
	}
	cmd.Flags().StringVar(&repo, "repo", "", "Repository as owner/name")
	cmd.Flags().IntVar(&issue, "issue", 0, "Issue number")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Stop after coding and print the diff instead of opening a PR")
	_ = cmd.MarkFlagRequired("repo")
	_ = cmd.MarkFlagRequired("issue")
	return cmd
}

// waitForDryRun polls the task until it is terminal and prints the produced
// diff. Policy blocks surface as errBlocked for the distinct exit code.
func waitForDryRun(ctx context.Context, cmd *cobra.Command, client *apiClient, taskID string) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(dryRunPollInterval):
		}

		var t taskView
		if err := client.do(ctx, http.MethodGet, "/api/v1/tasks/"+taskID, nil, &t); err != nil {
			return err
		}
		if !terminalStatus(t.Status) {
			continue
		}

		if t.Status != "completed" {
			reason := ""
			if t.FailureReason != nil {
				reason = *t.FailureReason
			}
			if blockedReason(reason) {
				return fmt.Errorf("task %s: %s: %w", taskID, reason, errBlocked)
			}
			detail := reason
			if t.LastError != nil && *t.LastError != "" {
				detail = *t.LastError
			}
			return fmt.Errorf("task %s %s: %s", taskID, t.Status, detail)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Commit message: %s\n", t.CommitMessage)
		if len(t.TargetFiles) > 0 {
			fmt.Fprintf(out, "Target files: %s\n", strings.Join(t.TargetFiles, ", "))
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, t.CurrentDiff)
		return nil
	}
}

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <task-id>",
		Short: "Show a task's phase, attempts, and recent progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var status models.TaskStatusResponse
			err := newAPIClient().do(cmd.Context(), http.MethodGet,
				"/api/v1/tasks/"+args[0]+"/status", nil, &status)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Task:     %s (%s#%d)\n", status.TaskID, status.Repo, status.IssueNumber)
			fmt.Fprintf(out, "Status:   %s\n", status.Status)
			fmt.Fprintf(out, "Phase:    %s\n", status.Phase)
			fmt.Fprintf(out, "Attempts: %d/%d\n", status.AttemptCount, status.MaxAttempts)
			if status.LastError != "" {
				fmt.Fprintf(out, "Error:    %s\n", status.LastError)
			}
			if status.PRURL != "" {
				fmt.Fprintf(out, "PR:       %s\n", status.PRURL)
			}
			if len(status.Progress) > 0 {
				fmt.Fprintln(out, "Progress:")
				for _, p := range status.Progress {
					agent := ""
					if p.Agent != nil {
						agent = " [" + *p.Agent + "]"
					}
					fmt.Fprintf(out, "  %3d. %s%s\n", p.Sequence, p.EventType, agent)
				}
			}
			return nil
		},
	}
	return cmd
}

func newMemoryCmd() *cobra.Command {
	var (
		repo   string
		kind   string
		taskID string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Read-only memory query (config, recent_tasks, patterns, decisions)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp json.RawMessage
			err := newAPIClient().do(cmd.Context(), http.MethodPost, "/api/v1/memory/query",
				map[string]interface{}{
					"kind":    kind,
					"repo":    repo,
					"task_id": taskID,
					"limit":   limit,
				}, &resp)
			if err != nil {
				return err
			}

			var pretty bytes.Buffer
			if err := json.Indent(&pretty, resp, "", "  "); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pretty.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&repo, "repo", "", "Repository as owner/name")
	cmd.Flags().StringVar(&kind, "query", "config", "One of config, recent_tasks, patterns, decisions")
	cmd.Flags().StringVar(&taskID, "task", "", "Task id (required for decisions)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum rows to return (0 uses the server default)")
	_ = cmd.MarkFlagRequired("repo")
	return cmd
}
