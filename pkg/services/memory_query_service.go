package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/learnedpattern"
	"github.com/forgeflow/forgeflow/ent/observation"
	"github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/pkg/memory/archival"
	"github.com/forgeflow/forgeflow/pkg/memory/static"
)

// MemoryQueryKind selects what a memory query returns.
type MemoryQueryKind string

// Supported memory query kinds.
const (
	QueryConfig      MemoryQueryKind = "config"       // static memory policy for a repo
	QueryRecentTasks MemoryQueryKind = "recent_tasks" // recent terminal tasks for a repo
	QueryPatterns    MemoryQueryKind = "patterns"     // learned patterns by confidence
	QueryDecisions   MemoryQueryKind = "decisions"    // decision observations for a task
	QuerySearch      MemoryQueryKind = "search"       // semantic search over archival memory
)

const defaultQueryLimit = 20

// MemoryQueryRequest is a read-only query against the memory tiers.
type MemoryQueryRequest struct {
	Kind   MemoryQueryKind `json:"kind"`
	Repo   string          `json:"repo,omitempty"`
	TaskID string          `json:"task_id,omitempty"`
	Query  string          `json:"query,omitempty"` // for kind=search
	Limit  int             `json:"limit,omitempty"`
}

// MemoryQueryResponse holds whichever result set the kind produces.
type MemoryQueryResponse struct {
	Kind     MemoryQueryKind         `json:"kind"`
	Config   *static.Policy          `json:"config,omitempty"`
	Tasks    []*ent.Task             `json:"tasks,omitempty"`
	Patterns []*ent.LearnedPattern   `json:"patterns,omitempty"`
	Entries  []*ent.Observation      `json:"entries,omitempty"`
	Results  []archival.SearchResult `json:"results,omitempty"`
}

// MemoryQueryService answers read-only queries against all three memory
// tiers. It never writes.
type MemoryQueryService struct {
	client   *ent.Client
	static   *static.Store
	archival *archival.Store
}

// NewMemoryQueryService creates a new MemoryQueryService.
func NewMemoryQueryService(client *ent.Client, staticStore *static.Store, archivalStore *archival.Store) *MemoryQueryService {
	if client == nil {
		panic("MemoryQueryService requires a non-nil ent client")
	}
	return &MemoryQueryService{client: client, static: staticStore, archival: archivalStore}
}

// Query dispatches on kind.
func (s *MemoryQueryService) Query(ctx context.Context, req MemoryQueryRequest) (*MemoryQueryResponse, error) {
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultQueryLimit
	}
	resp := &MemoryQueryResponse{Kind: req.Kind}

	switch req.Kind {
	case QueryConfig:
		if req.Repo == "" {
			return nil, NewValidationError("repo", "required for config queries")
		}
		owner, name, ok := strings.Cut(req.Repo, "/")
		if !ok {
			return nil, NewValidationError("repo", "must be owner/name")
		}
		policy, err := s.static.Get(ctx, owner, name)
		if err != nil {
			return nil, err
		}
		resp.Config = policy

	case QueryRecentTasks:
		query := s.client.Task.Query().
			Where(
				task.StatusIn(task.StatusCompleted, task.StatusFailed, task.StatusCancelled),
				task.ParentTaskIDIsNil(),
				task.DeletedAtIsNil(),
			)
		if req.Repo != "" {
			query = query.Where(task.Repo(req.Repo))
		}
		tasks, err := query.
			Order(ent.Desc(task.FieldCompletedAt)).
			Limit(limit).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list recent tasks: %w", err)
		}
		resp.Tasks = tasks

	case QueryPatterns:
		query := s.client.LearnedPattern.Query()
		if req.Repo != "" {
			query = query.Where(learnedpattern.Or(
				learnedpattern.Repo(req.Repo),
				learnedpattern.RepoIsNil(),
			))
		}
		patterns, err := query.
			Order(ent.Desc(learnedpattern.FieldConfidence)).
			Limit(limit).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list patterns: %w", err)
		}
		resp.Patterns = patterns

	case QueryDecisions:
		if req.TaskID == "" {
			return nil, NewValidationError("task_id", "required for decision queries")
		}
		entries, err := s.client.Observation.Query().
			Where(
				observation.TaskID(req.TaskID),
				observation.TypeEQ(observation.TypeDecision),
			).
			Order(ent.Asc(observation.FieldSequence)).
			Limit(limit).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list decisions: %w", err)
		}
		resp.Entries = entries

	case QuerySearch:
		if req.Query == "" {
			return nil, NewValidationError("query", "required for search queries")
		}
		if s.archival == nil {
			return nil, fmt.Errorf("%w: archival search is not configured", ErrInvalidInput)
		}
		results, err := s.archival.Search(ctx, archival.SearchQuery{
			Query:         req.Query,
			Repo:          req.Repo,
			TaskID:        req.TaskID,
			IncludeGlobal: true,
			TopK:          limit,
		})
		if err != nil {
			return nil, err
		}
		resp.Results = results

	default:
		return nil, NewValidationError("kind", fmt.Sprintf("unknown query kind %q", req.Kind))
	}
	return resp, nil
}
