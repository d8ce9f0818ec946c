package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
)

var (
	repoPathRe     = regexp.MustCompile(`^/repos/([^/]+/[^/]+)$`)
	contentsPathRe = regexp.MustCompile(`^/repos/([^/]+/[^/]+)/contents/(.+)$`)
	pullsPathRe    = regexp.MustCompile(`^/repos/([^/]+/[^/]+)/pulls$`)
)

// OpenedPR records one CreateDraftPR call against the fake host.
type OpenedPR struct {
	Repo  string
	Title string
	Head  string
	Base  string
	Draft bool
}

// FakeGitHost serves the subset of the code-host API the pipeline touches:
// repo metadata, file contents at a ref, and draft PR creation.
type FakeGitHost struct {
	server *httptest.Server

	mu            sync.Mutex
	defaultBranch string
	files         map[string]string // path -> content, served for any ref
	pulls         []OpenedPR
}

// NewFakeGitHost starts the fake. It shuts down with the test.
func NewFakeGitHost(t *testing.T) *FakeGitHost {
	f := &FakeGitHost{
		defaultBranch: "main",
		files:         make(map[string]string),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

// URL returns the base URL for githost client configuration.
func (f *FakeGitHost) URL() string {
	return f.server.URL
}

// SetFile sets the content served for a repo-relative path.
func (f *FakeGitHost) SetFile(path, content string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = content
}

// OpenedPRs returns the draft PRs created so far.
func (f *FakeGitHost) OpenedPRs() []OpenedPR {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]OpenedPR(nil), f.pulls...)
}

func (f *FakeGitHost) handle(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case r.Method == http.MethodGet && repoPathRe.MatchString(path):
		repo := repoPathRe.FindStringSubmatch(path)[1]
		writeJSON(w, http.StatusOK, map[string]any{
			"default_branch": f.defaultBranch,
			"clone_url":      fmt.Sprintf("%s/%s.git", f.server.URL, repo),
		})

	case r.Method == http.MethodGet && contentsPathRe.MatchString(path):
		filePath := contentsPathRe.FindStringSubmatch(path)[2]
		f.mu.Lock()
		content, ok := f.files[filePath]
		f.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "Not Found"})
			return
		}
		// Plain encoding; the client only base64-decodes when told to.
		writeJSON(w, http.StatusOK, map[string]any{
			"content":  content,
			"encoding": "",
		})

	case r.Method == http.MethodPost && pullsPathRe.MatchString(path):
		repo := pullsPathRe.FindStringSubmatch(path)[1]
		var req struct {
			Title string `json:"title"`
			Head  string `json:"head"`
			Base  string `json:"base"`
			Draft bool   `json:"draft"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": err.Error()})
			return
		}
		f.mu.Lock()
		f.pulls = append(f.pulls, OpenedPR{
			Repo: repo, Title: req.Title, Head: req.Head, Base: req.Base, Draft: req.Draft,
		})
		number := len(f.pulls)
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]any{
			"number":   number,
			"html_url": fmt.Sprintf("%s/%s/pull/%d", f.server.URL, repo, number),
		})

	default:
		writeJSON(w, http.StatusNotFound, map[string]any{
			"message": "no route for " + r.Method + " " + strings.TrimSpace(path),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
