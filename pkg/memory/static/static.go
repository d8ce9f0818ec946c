// Package static serves immutable per-repo configuration: path policy,
// diff-size limits, and tech-stack hints. Rows are versioned; running
// sessions keep the version captured at task start.
package static

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/staticmemory"
)

// Defaults applied when a repo has no static memory row.
const (
	DefaultMaxDiffLines    = 1500
	DefaultMaxFilesPerTask = 10
)

// Policy is the resolved per-repo constraint set handed to a task at start.
type Policy struct {
	Owner           string
	Repo            string
	Version         int
	AllowedPaths    []string // glob patterns; empty allows everything
	BlockedPaths    []string // glob patterns; deny wins over allow
	MaxDiffLines    int
	MaxFilesPerTask int
	TechStack       []string
}

// PathAllowed checks a repo-relative path against the policy globs.
func (p *Policy) PathAllowed(path string) bool {
	path = strings.TrimPrefix(path, "/")
	for _, pattern := range p.BlockedPaths {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return false
		}
	}
	if len(p.AllowedPaths) == 0 {
		return true
	}
	for _, pattern := range p.AllowedPaths {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}

// Store is the static memory lookup.
type Store struct {
	client *ent.Client
}

// NewStore creates a static memory store.
func NewStore(client *ent.Client) *Store {
	if client == nil {
		panic("NewStore: client must not be nil")
	}
	return &Store{client: client}
}

// Get returns the latest policy for a repo, or built-in defaults when no
// row exists.
func (s *Store) Get(ctx context.Context, owner, repo string) (*Policy, error) {
	row, err := s.client.StaticMemory.Query().
		Where(staticmemory.Owner(owner), staticmemory.Repo(repo)).
		Order(ent.Desc(staticmemory.FieldVersion)).
		First(ctx)
	if ent.IsNotFound(err) {
		return &Policy{
			Owner:           owner,
			Repo:            repo,
			MaxDiffLines:    DefaultMaxDiffLines,
			MaxFilesPerTask: DefaultMaxFilesPerTask,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load static memory for %s/%s: %w", owner, repo, err)
	}
	return policyFromRow(row), nil
}

// PolicyInput carries the admin-supplied policy fields.
type PolicyInput struct {
	AllowedPaths    []string
	BlockedPaths    []string
	MaxDiffLines    int
	MaxFilesPerTask int
	TechStack       []string
}

// Put writes a new policy version. Existing rows are never mutated, so
// sessions holding an older version are unaffected.
func (s *Store) Put(ctx context.Context, owner, repo string, in PolicyInput) (*Policy, error) {
	version := 1
	prev, err := s.client.StaticMemory.Query().
		Where(staticmemory.Owner(owner), staticmemory.Repo(repo)).
		Order(ent.Desc(staticmemory.FieldVersion)).
		First(ctx)
	switch {
	case err == nil:
		version = prev.Version + 1
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("read static memory version for %s/%s: %w", owner, repo, err)
	}

	maxDiff := in.MaxDiffLines
	if maxDiff <= 0 {
		maxDiff = DefaultMaxDiffLines
	}
	maxFiles := in.MaxFilesPerTask
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFilesPerTask
	}

	row, err := s.client.StaticMemory.Create().
		SetID(uuid.New().String()).
		SetOwner(owner).
		SetRepo(repo).
		SetVersion(version).
		SetAllowedPaths(in.AllowedPaths).
		SetBlockedPaths(in.BlockedPaths).
		SetMaxDiffLines(maxDiff).
		SetMaxFilesPerTask(maxFiles).
		SetTechStack(in.TechStack).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("write static memory v%d for %s/%s: %w", version, owner, repo, err)
	}
	return policyFromRow(row), nil
}

func policyFromRow(row *ent.StaticMemory) *Policy {
	return &Policy{
		Owner:           row.Owner,
		Repo:            row.Repo,
		Version:         row.Version,
		AllowedPaths:    row.AllowedPaths,
		BlockedPaths:    row.BlockedPaths,
		MaxDiffLines:    row.MaxDiffLines,
		MaxFilesPerTask: row.MaxFilesPerTask,
		TechStack:       row.TechStack,
	}
}
