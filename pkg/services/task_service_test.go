package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/pkg/models"
	testdb "github.com/forgeflow/forgeflow/test/database"
)

func newTaskService(t *testing.T) (*TaskService, *ent.Client) {
	client := testdb.NewTestClient(t).Client
	return NewTaskService(client), client
}

func taskRequest(issue int) models.CreateTaskRequest {
	return models.CreateTaskRequest{
		Repo:        "acme/widgets",
		IssueNumber: issue,
		Title:       "Fix widget rendering",
		Body:        "Widgets render upside down.",
	}
}

func TestCreateTaskValidation(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	_, _, err := svc.CreateTask(ctx, models.CreateTaskRequest{IssueNumber: 1, Title: "x"})
	assertValidationError(t, err, "repo")

	_, _, err = svc.CreateTask(ctx, models.CreateTaskRequest{Repo: "a/b", Title: "x"})
	assertValidationError(t, err, "issue_number")

	_, _, err = svc.CreateTask(ctx, models.CreateTaskRequest{Repo: "a/b", IssueNumber: 1})
	assertValidationError(t, err, "title")
}

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, field, verr.Field)
}

func TestCreateTaskDeduplicatesLiveIssue(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	first, created, err := svc.CreateTask(ctx, taskRequest(1))
	require.NoError(t, err)
	require.True(t, created)
	assert.Equal(t, task.StatusQueued, first.Status)

	// Second submission for the same live issue joins the existing task.
	second, created, err := svc.CreateTask(ctx, taskRequest(1))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}

func TestCreateTaskAfterTerminalCreatesFresh(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	first, _, err := svc.CreateTask(ctx, taskRequest(1))
	require.NoError(t, err)
	require.NoError(t, svc.RecordResult(ctx, first.ID, false, "planning_failed", "boom", "", 0))

	// A failed task releases the (repo, issue) slot.
	second, created, err := svc.CreateTask(ctx, taskRequest(1))
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRecordResultSuccess(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	created, _, err := svc.CreateTask(ctx, taskRequest(1))
	require.NoError(t, err)

	require.NoError(t, svc.RecordResult(ctx, created.ID, true, "", "", "https://example.com/pull/7", 7))

	reloaded, err := svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, reloaded.Status)
	require.NotNil(t, reloaded.PrURL)
	assert.Equal(t, "https://example.com/pull/7", *reloaded.PrURL)
	require.NotNil(t, reloaded.CompletedAt)
}

func TestCancelTask(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	created, _, err := svc.CreateTask(ctx, taskRequest(1))
	require.NoError(t, err)

	cancelled, err := svc.CancelTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCancelled, cancelled.Status)

	// Cancelling a terminal task is rejected.
	_, err = svc.CancelTask(ctx, created.ID)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetTaskNotFound(t *testing.T) {
	svc, _ := newTaskService(t)

	_, err := svc.GetTask(context.Background(), "no-such-task")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListTasksFilters(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	a, _, err := svc.CreateTask(ctx, taskRequest(1))
	require.NoError(t, err)
	_, _, err = svc.CreateTask(ctx, models.CreateTaskRequest{
		Repo: "acme/gadgets", IssueNumber: 2, Title: "Add gadget",
	})
	require.NoError(t, err)

	byRepo, err := svc.ListTasks(ctx, models.TaskFilters{Repo: "acme/widgets"})
	require.NoError(t, err)
	require.Len(t, byRepo.Tasks, 1)
	assert.Equal(t, a.ID, byRepo.Tasks[0].ID)

	all, err := svc.ListTasks(ctx, models.TaskFilters{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.TotalCount)

	// Soft-deleted tasks disappear from default listings.
	require.NoError(t, svc.RecordResult(ctx, a.ID, true, "", "", "", 0))
	require.NoError(t, svc.SoftDelete(ctx, a.ID))

	visible, err := svc.ListTasks(ctx, models.TaskFilters{})
	require.NoError(t, err)
	assert.Equal(t, 1, visible.TotalCount)

	withDeleted, err := svc.ListTasks(ctx, models.TaskFilters{IncludeDeleted: true})
	require.NoError(t, err)
	assert.Equal(t, 2, withDeleted.TotalCount)
}

func TestSoftDeleteRequiresTerminal(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	created, _, err := svc.CreateTask(ctx, taskRequest(1))
	require.NoError(t, err)

	err = svc.SoftDelete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSubtasks(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	parent, _, err := svc.CreateTask(ctx, taskRequest(1))
	require.NoError(t, err)

	for i, title := range []string{"part one", "part two"} {
		_, err := svc.CreateSubtask(ctx, parent, models.Subtask{
			Index:       i,
			Title:       title,
			TargetFiles: []string{"pkg/widgets/render.go"},
		}, false)
		require.NoError(t, err)
	}

	subs, err := svc.ListSubtasks(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "part one", subs[0].Title)

	// A sub-task cannot itself be decomposed.
	_, err = svc.CreateSubtask(ctx, subs[0], models.Subtask{Index: 0, Title: "nested"}, false)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestGetStatusIncludesPhaseAndProgress(t *testing.T) {
	svc, client := newTaskService(t)
	ctx := context.Background()

	created, _, err := svc.CreateTask(ctx, taskRequest(1))
	require.NoError(t, err)

	_, err = client.SessionMemory.Create().
		SetID("sess-1").
		SetTaskID(created.ID).
		SetPhase("coding").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.ProgressEntry.Create().
		SetID("prog-1").
		SetTaskID(created.ID).
		SetSequence(1).
		SetEventType("plan_complete").
		Save(ctx)
	require.NoError(t, err)

	status, err := svc.GetStatus(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "coding", status.Phase)
	assert.Equal(t, string(task.StatusQueued), status.Status)
	require.Len(t, status.Progress, 1)
	assert.Equal(t, "plan_complete", status.Progress[0].EventType)
}
