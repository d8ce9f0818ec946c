package guidance

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/forgeflow/forgeflow/pkg/githost"
)

type fakeFetcher struct {
	files map[string]string // path -> content
	calls int
}

func (f *fakeFetcher) GetFileContent(ctx context.Context, repo, path, ref string) (string, error) {
	f.calls++
	if content, ok := f.files[path]; ok {
		return content, nil
	}
	return "", &githost.StatusError{StatusCode: http.StatusNotFound}
}

func TestResolvePrefersAgentsDoc(t *testing.T) {
	fetcher := &fakeFetcher{files: map[string]string{
		"AGENTS.md":       "run make lint before committing",
		"CONTRIBUTING.md": "open issues first",
	}}
	svc := NewService(fetcher)

	out := svc.Resolve(context.Background(), "acme/widgets", "main")
	assert.Contains(t, out, "## AGENTS.md")
	assert.Contains(t, out, "make lint")
	assert.Contains(t, out, "## CONTRIBUTING.md")
}

func TestResolveStopsAtFirstContributingVariant(t *testing.T) {
	fetcher := &fakeFetcher{files: map[string]string{
		"CONTRIBUTING.md":         "root variant",
		".github/CONTRIBUTING.md": "github variant",
	}}
	svc := NewService(fetcher)

	out := svc.Resolve(context.Background(), "acme/widgets", "main")
	assert.Contains(t, out, "root variant")
	assert.NotContains(t, out, "github variant")
}

func TestResolveNoGuidance(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc := NewService(fetcher)
	assert.Empty(t, svc.Resolve(context.Background(), "acme/widgets", "main"))
}

func TestResolveCachesPerRepoAndRef(t *testing.T) {
	fetcher := &fakeFetcher{files: map[string]string{"AGENTS.md": "conventions"}}
	svc := NewService(fetcher)

	_ = svc.Resolve(context.Background(), "acme/widgets", "main")
	first := fetcher.calls
	_ = svc.Resolve(context.Background(), "acme/widgets", "main")
	assert.Equal(t, first, fetcher.calls, "second resolve should hit the cache")

	_ = svc.Resolve(context.Background(), "acme/widgets", "release-1.0")
	assert.Greater(t, fetcher.calls, first, "different ref is a different cache key")
}

func TestResolveTruncatesOversizedDocs(t *testing.T) {
	fetcher := &fakeFetcher{files: map[string]string{
		"AGENTS.md": strings.Repeat("a", maxDocLen+100),
	}}
	svc := NewService(fetcher)

	out := svc.Resolve(context.Background(), "acme/widgets", "main")
	assert.Contains(t, out, "[truncated]")
	assert.Less(t, len(out), maxDocLen+200)
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(10 * time.Millisecond)
	c.Set("k", "v")

	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)

	time.Sleep(20 * time.Millisecond)
	_, ok = c.Get("k")
	assert.False(t, ok)
}
