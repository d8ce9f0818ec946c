// Package tracker moves issue-tracker tickets through their workflow as
// the pipeline progresses. The tracker is optional; with no base URL
// configured every operation is a logged no-op.
package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/forgeflow/forgeflow/pkg/config"
)

const defaultInReviewState = "in_review"

// Client is an HTTP client for the issue tracker's REST API.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	token         string
	inReviewState string
	logger        *slog.Logger
}

// NewClient creates a tracker client from configuration.
func NewClient(cfg *config.TrackerConfig) *Client {
	c := &Client{
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		inReviewState: defaultInReviewState,
		logger:        slog.Default(),
	}
	if cfg != nil {
		c.baseURL = strings.TrimRight(cfg.BaseURL, "/")
		if cfg.TokenEnv != "" {
			c.token = os.Getenv(cfg.TokenEnv)
		}
		if cfg.InReviewState != "" {
			c.inReviewState = cfg.InReviewState
		}
	}
	return c
}

// Enabled reports whether a tracker is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// MarkInReview transitions the ticket to the configured review state and
// attaches the pull request URL. Called after the draft PR opens.
func (c *Client) MarkInReview(ctx context.Context, repo string, issueNumber int, prURL string) error {
	if !c.Enabled() {
		c.logger.Debug("Tracker not configured, skipping transition",
			"repo", repo, "issue", issueNumber)
		return nil
	}
	payload := map[string]string{
		"state":            c.inReviewState,
		"pull_request_url": prURL,
	}
	if err := c.transition(ctx, repo, issueNumber, payload); err != nil {
		return fmt.Errorf("mark %s#%d in review: %w", repo, issueNumber, err)
	}
	c.logger.Info("Ticket transitioned",
		"repo", repo, "issue", issueNumber, "state", c.inReviewState)
	return nil
}

// Comment posts a progress comment on the ticket.
func (c *Client) Comment(ctx context.Context, repo string, issueNumber int, body string) error {
	if !c.Enabled() {
		return nil
	}
	path := fmt.Sprintf("/issues/%s/%d/comments", repo, issueNumber)
	if err := c.post(ctx, path, map[string]string{"body": body}); err != nil {
		return fmt.Errorf("comment on %s#%d: %w", repo, issueNumber, err)
	}
	return nil
}

func (c *Client) transition(ctx context.Context, repo string, issueNumber int, payload map[string]string) error {
	path := fmt.Sprintf("/issues/%s/%d/transitions", repo, issueNumber)
	return c.post(ctx, path, payload)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("tracker returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return nil
}
