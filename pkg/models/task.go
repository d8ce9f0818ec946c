package models

import (
	"time"

	"github.com/forgeflow/forgeflow/ent"
)

// CreateTaskRequest contains fields for enqueuing a new task.
type CreateTaskRequest struct {
	Repo        string `json:"repo"` // owner/name
	IssueNumber int    `json:"issue_number"`
	Title       string `json:"title"`
	Body        string `json:"body,omitempty"`
	DryRun      bool   `json:"dry_run,omitempty"`
	DeliveryID  string `json:"delivery_id,omitempty"`
	MaxAttempts int    `json:"max_attempts,omitempty"`
}

// TaskContext is the immutable task framing captured into session memory at
// start: issue metadata plus what the planner derived from it.
type TaskContext struct {
	Repo                string     `json:"repo"`
	IssueNumber         int        `json:"issue_number"`
	Title               string     `json:"title"`
	Body                string     `json:"body,omitempty"`
	TargetFiles         []string   `json:"target_files,omitempty"`
	DefinitionOfDone    []string   `json:"definition_of_done,omitempty"`
	EstimatedComplexity Complexity `json:"estimated_complexity,omitempty"`
}

// TaskFilters contains filtering options for listing tasks.
type TaskFilters struct {
	Repo           string     `json:"repo,omitempty"`
	Status         string     `json:"status,omitempty"`
	CreatedAfter   *time.Time `json:"created_after,omitempty"`
	CreatedBefore  *time.Time `json:"created_before,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	Offset         int        `json:"offset,omitempty"`
	IncludeDeleted bool       `json:"include_deleted,omitempty"`
}

// TaskListResponse contains a paginated task list.
type TaskListResponse struct {
	Tasks      []*ent.Task `json:"tasks"`
	TotalCount int         `json:"total_count"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}

// TaskStatusResponse is the status surface for one task.
type TaskStatusResponse struct {
	TaskID       string               `json:"task_id"`
	Repo         string               `json:"repo"`
	IssueNumber  int                  `json:"issue_number"`
	Status       string               `json:"status"`
	Phase        string               `json:"phase"`
	AttemptCount int                  `json:"attempt_count"`
	MaxAttempts  int                  `json:"max_attempts"`
	LastError    string               `json:"last_error,omitempty"`
	PRURL        string               `json:"pr_url,omitempty"`
	Progress     []*ent.ProgressEntry `json:"progress"` // Last 10 entries
}

// DryRunResult carries the coding-phase artifact when no PR is opened.
type DryRunResult struct {
	TaskID           string   `json:"task_id"`
	Diff             string   `json:"diff"`
	CommitMessage    string   `json:"commit_message"`
	FilesModified    []string `json:"files_modified"`
	TargetFiles      []string `json:"target_files"`
	DefinitionOfDone []string `json:"definition_of_done"`
}
