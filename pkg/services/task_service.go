package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/progressentry"
	"github.com/forgeflow/forgeflow/ent/sessionmemory"
	"github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/pkg/models"
)

const statusProgressLimit = 10

// TaskService manages task lifecycle: creation with deduplication, status,
// listing, and cancellation.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService.
func NewTaskService(client *ent.Client) *TaskService {
	if client == nil {
		panic("TaskService requires a non-nil ent client")
	}
	return &TaskService{client: client}
}

// nonTerminalStatuses are task states that still hold the (repo, issue)
// slot. A second submission for the same issue joins the existing task.
var nonTerminalStatuses = []task.Status{
	task.StatusQueued,
	task.StatusRunning,
	task.StatusWaitingHuman,
}

// CreateTask enqueues a new task. If a non-terminal task already exists for
// the same (repo, issue_number), that task is returned with created=false
// instead of creating a duplicate.
func (s *TaskService) CreateTask(httpCtx context.Context, req models.CreateTaskRequest) (*ent.Task, bool, error) {
	if req.Repo == "" {
		return nil, false, NewValidationError("repo", "required")
	}
	if req.IssueNumber <= 0 {
		return nil, false, NewValidationError("issue_number", "must be positive")
	}
	if req.Title == "" {
		return nil, false, NewValidationError("title", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.Task.Query().
		Where(
			task.Repo(req.Repo),
			task.IssueNumber(req.IssueNumber),
			task.ParentTaskIDIsNil(),
			task.StatusIn(nonTerminalStatuses...),
			task.DeletedAtIsNil(),
		).
		First(ctx)
	if err == nil {
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to check for existing task: %w", err)
	}

	builder := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetRepo(req.Repo).
		SetIssueNumber(req.IssueNumber).
		SetTitle(req.Title).
		SetStatus(task.StatusQueued).
		SetDryRun(req.DryRun)
	if req.Body != "" {
		builder.SetBody(req.Body)
	}
	if req.DeliveryID != "" {
		builder.SetDeliveryID(req.DeliveryID)
	}
	if req.MaxAttempts > 0 {
		builder.SetMaxAttempts(req.MaxAttempts)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the race to a concurrent submission; return the winner.
			winner, qerr := s.client.Task.Query().
				Where(
					task.Repo(req.Repo),
					task.IssueNumber(req.IssueNumber),
					task.ParentTaskIDIsNil(),
					task.StatusIn(nonTerminalStatuses...),
				).
				First(ctx)
			if qerr == nil {
				return winner, false, nil
			}
			return nil, false, ErrAlreadyExists
		}
		return nil, false, fmt.Errorf("failed to create task: %w", err)
	}
	return created, true, nil
}

// CreateSubtask enqueues a child task produced by plan decomposition.
// Sub-tasks never decompose further.
func (s *TaskService) CreateSubtask(ctx context.Context, parent *ent.Task, sub models.Subtask, dryRun bool) (*ent.Task, error) {
	if parent.ParentTaskID != nil {
		return nil, NewValidationError("parent_task_id", "sub-tasks cannot be decomposed further")
	}
	created, err := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetRepo(parent.Repo).
		SetIssueNumber(parent.IssueNumber).
		SetTitle(sub.Title).
		SetBody(sub.Description).
		SetStatus(task.StatusQueued).
		SetParentTaskID(parent.ID).
		SetSubtaskIndex(sub.Index).
		SetTargetFiles(sub.TargetFiles).
		SetDefinitionOfDone(sub.DefinitionOfDone).
		SetDryRun(dryRun).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create subtask %d of %s: %w", sub.Index, parent.ID, err)
	}
	return created, nil
}

// GetTask fetches one task by ID.
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*ent.Task, error) {
	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// GetStatus returns the status surface for a task: current state, phase,
// and the last entries of the progress log.
func (s *TaskService) GetStatus(ctx context.Context, taskID string) (*models.TaskStatusResponse, error) {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	phase := ""
	session, err := s.client.SessionMemory.Query().
		Where(sessionmemory.TaskID(taskID)).
		Only(ctx)
	if err == nil {
		phase = string(session.Phase)
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	progress, err := s.client.ProgressEntry.Query().
		Where(progressentry.TaskID(taskID)).
		Order(ent.Desc(progressentry.FieldSequence)).
		Limit(statusProgressLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	// Oldest first for display.
	for i, j := 0, len(progress)-1; i < j; i, j = i+1, j-1 {
		progress[i], progress[j] = progress[j], progress[i]
	}

	resp := &models.TaskStatusResponse{
		TaskID:       t.ID,
		Repo:         t.Repo,
		IssueNumber:  t.IssueNumber,
		Status:       string(t.Status),
		Phase:        phase,
		AttemptCount: t.AttemptCount,
		MaxAttempts:  t.MaxAttempts,
		Progress:     progress,
	}
	if t.LastError != nil {
		resp.LastError = *t.LastError
	}
	if t.PrURL != nil {
		resp.PRURL = *t.PrURL
	}
	return resp, nil
}

// ListTasks returns tasks matching the filters, newest first.
func (s *TaskService) ListTasks(ctx context.Context, filters models.TaskFilters) (*models.TaskListResponse, error) {
	query := s.client.Task.Query()
	if filters.Repo != "" {
		query = query.Where(task.Repo(filters.Repo))
	}
	if filters.Status != "" {
		query = query.Where(task.StatusEQ(task.Status(filters.Status)))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(task.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(task.CreatedAtLTE(*filters.CreatedBefore))
	}
	if !filters.IncludeDeleted {
		query = query.Where(task.DeletedAtIsNil())
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	tasks, err := query.
		Order(ent.Desc(task.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &models.TaskListResponse{
		Tasks:      tasks,
		TotalCount: total,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// CancelTask marks a queued or running task cancelled. Running workers
// observe the status change through their cancel registry.
func (s *TaskService) CancelTask(httpCtx context.Context, taskID string) (*ent.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	switch t.Status {
	case task.StatusCompleted, task.StatusFailed, task.StatusCancelled:
		return nil, fmt.Errorf("%w: task %s is already %s", ErrInvalidInput, taskID, t.Status)
	}

	updated, err := t.Update().
		SetStatus(task.StatusCancelled).
		SetCompletedAt(time.Now()).
		SetFailureReason("cancelled").
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel task: %w", err)
	}
	return updated, nil
}

// RecordResult finalizes a task row after execution.
func (s *TaskService) RecordResult(ctx context.Context, taskID string, success bool, failureReason, lastError, prURL string, prNumber int) error {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	builder := t.Update().SetCompletedAt(time.Now())
	if success {
		builder.SetStatus(task.StatusCompleted)
	} else {
		builder.SetStatus(task.StatusFailed)
		if failureReason != "" {
			builder.SetFailureReason(failureReason)
		}
		if lastError != "" {
			builder.SetLastError(lastError)
		}
	}
	if prURL != "" {
		builder.SetPrURL(prURL).SetPrNumber(prNumber)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to record result for %s: %w", taskID, err)
	}
	return nil
}

// ListSubtasks returns a parent's sub-tasks in index order.
func (s *TaskService) ListSubtasks(ctx context.Context, parentID string) ([]*ent.Task, error) {
	subs, err := s.client.Task.Query().
		Where(task.ParentTaskID(parentID)).
		Order(ent.Asc(task.FieldSubtaskIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subtasks of %s: %w", parentID, err)
	}
	return subs, nil
}

// SoftDelete marks old terminal tasks deleted; the cleanup job purges them
// later.
func (s *TaskService) SoftDelete(ctx context.Context, taskID string) error {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	switch t.Status {
	case task.StatusCompleted, task.StatusFailed, task.StatusCancelled:
	default:
		return fmt.Errorf("%w: cannot delete non-terminal task %s", ErrInvalidInput, taskID)
	}
	if _, err := t.Update().SetDeletedAt(time.Now()).Save(ctx); err != nil {
		return fmt.Errorf("failed to soft-delete task: %w", err)
	}
	return nil
}
