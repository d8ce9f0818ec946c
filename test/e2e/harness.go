// Package e2e exercises the pipeline end to end over a real PostgreSQL
// database, with the model provider and the code host faked at their
// network boundaries. Nothing here shells out: the sandbox executor runs
// in dry-run mode and scenarios use dry-run tasks, which stop after the
// coding phase.
package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/pkg/agent"
	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/database"
	"github.com/forgeflow/forgeflow/pkg/githost"
	"github.com/forgeflow/forgeflow/pkg/memory/archival"
	"github.com/forgeflow/forgeflow/pkg/memory/hooks"
	"github.com/forgeflow/forgeflow/pkg/memory/session"
	"github.com/forgeflow/forgeflow/pkg/memory/static"
	"github.com/forgeflow/forgeflow/pkg/models"
	"github.com/forgeflow/forgeflow/pkg/queue"
	"github.com/forgeflow/forgeflow/pkg/sandbox"
	"github.com/forgeflow/forgeflow/pkg/services"
	"github.com/forgeflow/forgeflow/pkg/tracker"
	testdb "github.com/forgeflow/forgeflow/test/database"
)

// Harness wires a full pipeline stack for one test: real services over a
// per-test database schema, a scripted LLM, and a fake code host.
type Harness struct {
	T        *testing.T
	DB       *database.Client
	Config   *config.Config
	Tasks    *services.TaskService
	Webhooks *services.WebhookService
	Sessions *session.Manager
	Policies *static.Store
	Archive  *archival.Store
	Bus      *hooks.Bus
	LLM      *MockLLM
	GitHost  *FakeGitHost
	Executor *queue.PipelineExecutor
}

// NewHarness builds the stack. Cleanup is tied to the test lifetime.
func NewHarness(t *testing.T) *Harness {
	db := testdb.NewTestClient(t)
	ghost := NewFakeGitHost(t)

	cfg := config.DefaultConfig()
	cfg.System.GitHost = &config.GitHostConfig{BaseURL: ghost.URL()}

	mock := NewMockLLM()
	planner := agent.NewPlanner(mock)
	coder := agent.NewCoder(mock)
	fixer := agent.NewFixer(mock)
	reflector := agent.NewReflector(mock)

	tasks := services.NewTaskService(db.Client)
	webhooks := services.NewWebhookService(db.Client, cfg.System.Webhook)
	sessions := session.NewManager(db.Client)
	policies := static.NewStore(db.Client)
	archive := archival.NewStore(db.Client, nil, cfg.Archival)

	bus := hooks.NewBus()
	hooks.NewObservationRecorder(db.Client).RegisterDefaults(bus)

	commands := sandbox.NewExecutor(false, true)
	foreman := sandbox.NewForeman(commands, cfg.Sandbox)
	host := githost.NewClient(cfg.System.GitHost)

	executor := queue.NewPipelineExecutor(
		db.Client, cfg, tasks, sessions, policies, archive,
		planner, coder, fixer, reflector,
		foreman, commands, host, tracker.NewClient(nil), bus,
	)

	return &Harness{
		T:        t,
		DB:       db,
		Config:   cfg,
		Tasks:    tasks,
		Webhooks: webhooks,
		Sessions: sessions,
		Policies: policies,
		Archive:  archive,
		Bus:      bus,
		LLM:      mock,
		GitHost:  ghost,
		Executor: executor,
	}
}

// CreateTask creates a task through the service, failing the test on error.
func (h *Harness) CreateTask(req models.CreateTaskRequest) *ent.Task {
	h.T.Helper()
	t, created, err := h.Tasks.CreateTask(context.Background(), req)
	require.NoError(h.T, err)
	require.True(h.T, created)
	return t
}

// Execute runs the pipeline for a task, the way a claimed worker would.
func (h *Harness) Execute(t *ent.Task) *queue.ExecutionResult {
	h.T.Helper()
	return h.Executor.Execute(context.Background(), t)
}

// ReloadTask fetches the current task row.
func (h *Harness) ReloadTask(id string) *ent.Task {
	h.T.Helper()
	t, err := h.DB.Client.Task.Get(context.Background(), id)
	require.NoError(h.T, err)
	return t
}
