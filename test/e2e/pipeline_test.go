package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entpatch "github.com/forgeflow/forgeflow/ent/patch"
	entrepo "github.com/forgeflow/forgeflow/ent/repository"
	enttask "github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/pkg/llm"
	"github.com/forgeflow/forgeflow/pkg/memory/static"
	"github.com/forgeflow/forgeflow/pkg/models"
	"github.com/forgeflow/forgeflow/pkg/queue"
)

func TestDryRunPipelineProducesDiff(t *testing.T) {
	h := NewHarness(t)
	h.GitHost.SetFile("README.md", "# widgets\n")
	h.GitHost.SetFile("AGENTS.md", "Use tabs for indentation.")

	h.LLM.Queue(llm.PurposePlan, PlanJSON(models.ComplexityXS, "README.md"))
	h.LLM.Queue(llm.PurposeCode, CodeJSON(SampleDiff("README.md"), "Fix the readme"))

	created := h.CreateTask(models.CreateTaskRequest{
		Repo:        "acme/widgets",
		IssueNumber: 42,
		Title:       "Fix the readme",
		Body:        "The readme is missing the fix.",
		DryRun:      true,
	})

	res := h.Execute(created)
	require.NoError(t, res.Error)
	assert.Equal(t, enttask.StatusCompleted, res.Status)
	assert.Empty(t, res.PRURL, "dry run must not open a PR")
	assert.Empty(t, h.GitHost.OpenedPRs())

	reloaded := h.ReloadTask(created.ID)
	assert.Contains(t, reloaded.CurrentDiff, "+Fixed.")
	assert.Equal(t, "Fix the readme", reloaded.CommitMessage)

	ctx := context.Background()
	patches, err := h.DB.Client.Patch.Query().
		Where(entpatch.TaskID(created.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, patches, 1, "coder diff retained in the patch trail")
	assert.Equal(t, "coder", patches[0].Source)
	assert.Contains(t, patches[0].FilesModified, "README.md")

	repoRow, err := h.DB.Client.Repository.Query().
		Where(entrepo.Owner("acme"), entrepo.Name("widgets")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "main", repoRow.DefaultBranch)
	assert.True(t, repoRow.Enabled)

	plannerPrompt := h.LLM.PromptFor(llm.PurposePlan)
	assert.Contains(t, plannerPrompt, "The readme is missing the fix.")
	assert.Contains(t, plannerPrompt, "Use tabs for indentation.",
		"repository guidance docs feed the planner")

	coderPrompt := h.LLM.PromptFor(llm.PurposeCode)
	assert.Contains(t, coderPrompt, "# widgets", "target file content feeds the coder")
}

func TestPlanTargetingBlockedPathFails(t *testing.T) {
	h := NewHarness(t)
	ctx := context.Background()

	_, err := h.Policies.Put(ctx, "acme", "widgets", static.PolicyInput{
		BlockedPaths: []string{"deploy/**"},
	})
	require.NoError(t, err)

	h.LLM.Queue(llm.PurposePlan, PlanJSON(models.ComplexityXS, "deploy/config.yml"))

	created := h.CreateTask(models.CreateTaskRequest{
		Repo:        "acme/widgets",
		IssueNumber: 7,
		Title:       "Change deployment config",
		DryRun:      true,
	})

	res := h.Execute(created)
	assert.Equal(t, enttask.StatusFailed, res.Status)
	assert.Equal(t, models.ReasonPathOutsideAllowlist, res.FailureReason)
}

func TestMalformedCoderOutputIsTerminal(t *testing.T) {
	h := NewHarness(t)
	h.GitHost.SetFile("README.md", "# widgets\n")

	h.LLM.Queue(llm.PurposePlan, PlanJSON(models.ComplexityXS, "README.md"))
	h.LLM.Queue(llm.PurposeCode, "sorry, here is prose instead of a diff")

	created := h.CreateTask(models.CreateTaskRequest{
		Repo:        "acme/widgets",
		IssueNumber: 8,
		Title:       "Fix the readme",
		DryRun:      true,
	})

	res := h.Execute(created)
	assert.Equal(t, enttask.StatusFailed, res.Status)
	assert.Equal(t, models.ReasonInvalidDiffFormat, res.FailureReason)
}

func TestWebhookIngestCreatesTask(t *testing.T) {
	h := NewHarness(t)
	ctx := context.Background()

	payload := []byte(`{"action":"labeled","repo":"acme/widgets","issue":{"number":9,"title":"Fix crash","body":"panic on start"}}`)
	_, created, err := h.Webhooks.Ingest(ctx, "delivery-9", "github", "issues", payload, "")
	require.NoError(t, err)
	require.True(t, created)

	// Re-delivery of the same delivery_id is a no-op.
	_, created, err = h.Webhooks.Ingest(ctx, "delivery-9", "github", "issues", payload, "")
	require.NoError(t, err)
	assert.False(t, created)

	h.Config.Queue.WebhookPollInterval = 50 * time.Millisecond
	worker := queue.NewWebhookWorker(h.Webhooks, h.Tasks, h.Config.Queue)
	worker.Start(ctx)
	defer worker.Stop()

	require.Eventually(t, func() bool {
		n, err := h.DB.Client.Task.Query().
			Where(enttask.Repo("acme/widgets"), enttask.IssueNumber(9)).
			Count(ctx)
		return err == nil && n == 1
	}, 5*time.Second, 50*time.Millisecond, "webhook event should become a task")
}

func TestDisabledRepositoryRejected(t *testing.T) {
	h := NewHarness(t)
	ctx := context.Background()

	_, err := h.DB.Client.Repository.Create().
		SetID(uuid.New().String()).
		SetOwner("acme").
		SetName("widgets").
		SetEnabled(false).
		Save(ctx)
	require.NoError(t, err)

	created := h.CreateTask(models.CreateTaskRequest{
		Repo:        "acme/widgets",
		IssueNumber: 10,
		Title:       "Fix the readme",
		DryRun:      true,
	})

	res := h.Execute(created)
	assert.Equal(t, enttask.StatusFailed, res.Status)
	assert.Equal(t, "setup_failed", res.FailureReason)
}
