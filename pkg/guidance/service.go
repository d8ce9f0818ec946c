package guidance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/forgeflow/forgeflow/pkg/githost"
)

// candidatePaths are checked in order; the first hit per name wins.
// AGENTS.md is written for automated contributors and takes priority.
var candidatePaths = []string{
	"AGENTS.md",
	"CONTRIBUTING.md",
	".github/CONTRIBUTING.md",
	"docs/CONTRIBUTING.md",
}

// maxDocLen bounds each fetched document; guidance beyond this is almost
// always boilerplate that crowds out the recall blocks.
const maxDocLen = 8 * 1024

// defaultCacheTTL keeps guidance warm across a task's replans without
// serving stale conventions for long.
const defaultCacheTTL = 10 * time.Minute

// FileFetcher reads one file from a repository at a ref.
// *githost.Client satisfies it.
type FileFetcher interface {
	GetFileContent(ctx context.Context, repo, path, ref string) (string, error)
}

// Service resolves contributor guidance for a repository, cached per
// repo and ref.
type Service struct {
	host  FileFetcher
	cache *Cache
}

// NewService creates the guidance service.
func NewService(host FileFetcher) *Service {
	return &Service{
		host:  host,
		cache: NewCache(defaultCacheTTL),
	}
}

// Resolve returns the repository's contributor guidance rendered as one
// knowledge block, or "" when the repo carries none. Fetch failures are
// logged and treated as no guidance; planning proceeds without it.
func (s *Service) Resolve(ctx context.Context, repo, ref string) string {
	key := repo + "@" + ref
	if cached, ok := s.cache.Get(key); ok {
		return cached
	}

	var sections []string
	for _, path := range candidatePaths {
		content, err := s.host.GetFileContent(ctx, repo, path, ref)
		if err != nil {
			if !githost.IsNotFound(err) {
				slog.Warn("Failed to fetch guidance document",
					"repo", repo, "path", path, "error", err)
			}
			continue
		}
		content = strings.TrimSpace(content)
		if content == "" {
			continue
		}
		if len(content) > maxDocLen {
			content = content[:maxDocLen] + "\n[truncated]"
		}
		sections = append(sections, fmt.Sprintf("## %s\n\n%s", path, content))

		// One CONTRIBUTING variant is enough.
		if path != candidatePaths[0] {
			break
		}
	}

	rendered := strings.Join(sections, "\n\n")
	s.cache.Set(key, rendered)
	return rendered
}
