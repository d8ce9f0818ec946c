// Package githost provides typed HTTP access to the code host: issue
// metadata, file contents, branches, commits, and draft pull requests.
package githost

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/forgeflow/forgeflow/pkg/config"
)

const defaultBaseURL = "https://api.github.com"

// Client is an HTTP client for the code-host API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *slog.Logger
}

// NewClient creates a code-host client from configuration. The token is
// read from the environment variable named in the config; it may be empty
// for read-only access to public repos.
func NewClient(cfg *config.GitHostConfig) *Client {
	baseURL := defaultBaseURL
	token := ""
	if cfg != nil {
		if cfg.BaseURL != "" {
			baseURL = strings.TrimRight(cfg.BaseURL, "/")
		}
		if cfg.TokenEnv != "" {
			token = os.Getenv(cfg.TokenEnv)
		}
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		token:      token,
		logger:     slog.Default(),
	}
}

// Issue is the metadata fetched for a tracked issue.
type Issue struct {
	Number int      `json:"number"`
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	State  string   `json:"state"`
	Labels []string `json:"labels"`
}

// Repo is the repository metadata needed to start work on a task.
type Repo struct {
	DefaultBranch string `json:"default_branch"`
	CloneURL      string `json:"clone_url"`
}

// PullRequest is the result of opening a PR.
type PullRequest struct {
	Number int    `json:"number"`
	URL    string `json:"html_url"`
}

// GetIssue fetches issue metadata. repo is "owner/name".
func (c *Client) GetIssue(ctx context.Context, repo string, number int) (*Issue, error) {
	var raw struct {
		Number int    `json:"number"`
		Title  string `json:"title"`
		Body   string `json:"body"`
		State  string `json:"state"`
		Labels []struct {
			Name string `json:"name"`
		} `json:"labels"`
	}
	path := fmt.Sprintf("/repos/%s/issues/%d", repo, number)
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, fmt.Errorf("get issue %s#%d: %w", repo, number, err)
	}
	issue := &Issue{Number: raw.Number, Title: raw.Title, Body: raw.Body, State: raw.State}
	for _, l := range raw.Labels {
		issue.Labels = append(issue.Labels, l.Name)
	}
	return issue, nil
}

// GetRepo fetches the default branch and clone URL.
func (c *Client) GetRepo(ctx context.Context, repo string) (*Repo, error) {
	var out Repo
	if err := c.do(ctx, http.MethodGet, "/repos/"+repo, nil, &out); err != nil {
		return nil, fmt.Errorf("get repo %s: %w", repo, err)
	}
	return &out, nil
}

// GetFileContent fetches a file's content at a ref. Returns the decoded
// text; a 404 is an error the caller can inspect via IsNotFound.
func (c *Client) GetFileContent(ctx context.Context, repo, path, ref string) (string, error) {
	var raw struct {
		Content  string `json:"content"`
		Encoding string `json:"encoding"`
	}
	apiPath := fmt.Sprintf("/repos/%s/contents/%s?ref=%s", repo, path, ref)
	if err := c.do(ctx, http.MethodGet, apiPath, nil, &raw); err != nil {
		return "", fmt.Errorf("get %s@%s:%s: %w", repo, ref, path, err)
	}
	if raw.Encoding != "base64" {
		return raw.Content, nil
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(raw.Content, "\n", ""))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}
	return string(decoded), nil
}

// CreateBranch creates a branch from the head of fromRef.
func (c *Client) CreateBranch(ctx context.Context, repo, branch, fromRef string) error {
	var ref struct {
		Object struct {
			SHA string `json:"sha"`
		} `json:"object"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/git/ref/heads/%s", repo, fromRef), nil, &ref); err != nil {
		return fmt.Errorf("resolve %s@%s: %w", repo, fromRef, err)
	}
	body := map[string]string{
		"ref": "refs/heads/" + branch,
		"sha": ref.Object.SHA,
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/repos/%s/git/refs", repo), body, nil); err != nil {
		return fmt.Errorf("create branch %s on %s: %w", branch, repo, err)
	}
	c.logger.Info("Created branch", "repo", repo, "branch", branch, "from", fromRef)
	return nil
}

// CommitFile creates or updates one file on a branch with a commit message.
func (c *Client) CommitFile(ctx context.Context, repo, branch, path, content, message string) error {
	apiPath := fmt.Sprintf("/repos/%s/contents/%s", repo, path)

	// Updating an existing file requires its current blob sha.
	var existing struct {
		SHA string `json:"sha"`
	}
	if err := c.do(ctx, http.MethodGet, apiPath+"?ref="+branch, nil, &existing); err != nil && !IsNotFound(err) {
		return fmt.Errorf("stat %s on %s: %w", path, branch, err)
	}

	body := map[string]string{
		"message": message,
		"content": base64.StdEncoding.EncodeToString([]byte(content)),
		"branch":  branch,
	}
	if existing.SHA != "" {
		body["sha"] = existing.SHA
	}
	if err := c.do(ctx, http.MethodPut, apiPath, body, nil); err != nil {
		return fmt.Errorf("commit %s to %s@%s: %w", path, repo, branch, err)
	}
	return nil
}

// CreateDraftPR opens a draft pull request from head into base.
func (c *Client) CreateDraftPR(ctx context.Context, repo, title, body, head, base string) (*PullRequest, error) {
	payload := map[string]interface{}{
		"title": title,
		"body":  body,
		"head":  head,
		"base":  base,
		"draft": true,
	}
	var out PullRequest
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/repos/%s/pulls", repo), payload, &out); err != nil {
		return nil, fmt.Errorf("create draft PR on %s: %w", repo, err)
	}
	c.logger.Info("Opened draft pull request", "repo", repo, "pr", out.Number, "head", head)
	return &out, nil
}

// AuthenticatedCloneURL embeds the token into an https clone URL so the
// sandbox can push without credential helpers. Returns the URL unchanged
// when no token is configured.
func (c *Client) AuthenticatedCloneURL(cloneURL string) string {
	if c.token == "" || !strings.HasPrefix(cloneURL, "https://") {
		return cloneURL
	}
	return "https://x-access-token:" + c.token + "@" + strings.TrimPrefix(cloneURL, "https://")
}

// StatusError is a non-2xx response from the code host.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("code host returned HTTP %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is an HTTP 404 from the code host.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
