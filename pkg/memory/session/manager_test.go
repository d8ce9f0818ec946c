package session

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/attemptrecord"
	"github.com/forgeflow/forgeflow/pkg/models"
	testdb "github.com/forgeflow/forgeflow/test/database"
)

func newSession(t *testing.T) (*Manager, string) {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	task, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetRepo("acme/widgets").
		SetIssueNumber(1).
		SetTitle("Fix widget rendering").
		Save(ctx)
	require.NoError(t, err)

	m := NewManager(client)
	_, err = m.Create(ctx, task.ID, &models.TaskContext{
		Repo:        "acme/widgets",
		IssueNumber: 1,
		Title:       "Fix widget rendering",
	})
	require.NoError(t, err)
	return m, task.ID
}

func TestSetPhaseForwardOnly(t *testing.T) {
	m, taskID := newSession(t)
	ctx := context.Background()

	require.NoError(t, m.SetPhase(ctx, taskID, models.PhasePlanning))
	require.NoError(t, m.SetPhase(ctx, taskID, models.PhaseCoding))

	err := m.SetPhase(ctx, taskID, models.PhasePlanning)
	assert.ErrorContains(t, err, "illegal phase transition")

	sm, err := m.Load(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, "coding", string(sm.Phase))
}

func TestSetPhaseTerminalIsAbsorbing(t *testing.T) {
	m, taskID := newSession(t)
	ctx := context.Background()

	require.NoError(t, m.SetPhase(ctx, taskID, models.PhaseFailed))

	// Late writers racing a terminal transition are silently ignored.
	require.NoError(t, m.SetPhase(ctx, taskID, models.PhaseCoding))

	sm, err := m.Load(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, "failed", string(sm.Phase))
}

func TestResetForReplan(t *testing.T) {
	m, taskID := newSession(t)
	ctx := context.Background()

	require.NoError(t, m.SetPhase(ctx, taskID, models.PhasePlanning))
	require.NoError(t, m.SetPhase(ctx, taskID, models.PhaseCoding))
	require.NoError(t, m.SetPhase(ctx, taskID, models.PhaseValidating))
	require.NoError(t, m.SetPhase(ctx, taskID, models.PhaseReflecting))

	require.NoError(t, m.ResetForReplan(ctx, taskID))

	sm, err := m.Load(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, "planning", string(sm.Phase))
	assert.Equal(t, 1, sm.RetryCount)
}

func TestAgentOutputsAccumulate(t *testing.T) {
	m, taskID := newSession(t)
	ctx := context.Background()

	require.NoError(t, m.SetAgentOutput(ctx, taskID, "planner", map[string]interface{}{"steps": 3.0}))
	require.NoError(t, m.SetAgentOutput(ctx, taskID, "coder", map[string]interface{}{"files": 1.0}))

	sm, err := m.Load(ctx, taskID)
	require.NoError(t, err)
	require.Contains(t, sm.AgentOutputs, "planner")
	require.Contains(t, sm.AgentOutputs, "coder")
}

func TestAppendProgressSequencesMonotonically(t *testing.T) {
	m, taskID := newSession(t)
	ctx := context.Background()

	for i, event := range []string{"plan_complete", "code_complete", "validation_complete"} {
		entry, err := m.AppendProgress(ctx, taskID, ProgressInput{
			EventType: event,
			Agent:     "planner",
		})
		require.NoError(t, err)
		assert.Equal(t, i+1, entry.Sequence)
	}

	entries, err := m.ListProgress(ctx, taskID, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "validation_complete", entries[0].EventType, "newest first")
}

func TestCheckpointRollback(t *testing.T) {
	m, taskID := newSession(t)
	ctx := context.Background()

	require.NoError(t, m.SetPhase(ctx, taskID, models.PhasePlanning))
	require.NoError(t, m.SetAgentOutput(ctx, taskID, "planner", map[string]interface{}{"version": 1.0}))

	cp, err := m.SaveCheckpoint(ctx, taskID, "before_coding")
	require.NoError(t, err)

	require.NoError(t, m.SetPhase(ctx, taskID, models.PhaseCoding))
	require.NoError(t, m.SetAgentOutput(ctx, taskID, "coder", map[string]interface{}{"diff": "bad"}))

	require.NoError(t, m.RollbackTo(ctx, taskID, cp.ID))

	sm, err := m.Load(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, "planning", string(sm.Phase))
	assert.Contains(t, sm.AgentOutputs, "planner")
	assert.NotContains(t, sm.AgentOutputs, "coder", "post-checkpoint output discarded")
	require.NotNil(t, sm.LastCheckpoint)
	assert.Equal(t, cp.ID, *sm.LastCheckpoint)
}

func TestRollbackFromTerminalRejected(t *testing.T) {
	m, taskID := newSession(t)
	ctx := context.Background()

	cp, err := m.SaveCheckpoint(ctx, taskID, "initial")
	require.NoError(t, err)
	require.NoError(t, m.SetPhase(ctx, taskID, models.PhaseCompleted))

	err = m.RollbackTo(ctx, taskID, cp.ID)
	assert.ErrorContains(t, err, "terminal phase")
}

func TestAttemptLedger(t *testing.T) {
	m, taskID := newSession(t)
	ctx := context.Background()

	_, err := m.RecordAttempt(ctx, taskID, 0, attemptrecord.ActionPlan, attemptrecord.ResultSuccess, "")
	require.NoError(t, err)
	_, err = m.RecordAttempt(ctx, taskID, 1, attemptrecord.ActionFix, attemptrecord.ResultFailure, "tests still failing")
	require.NoError(t, err)

	recs, err := m.ListAttempts(ctx, taskID)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, attemptrecord.ActionPlan, recs[0].Action)
	require.NotNil(t, recs[1].Error)
	assert.Equal(t, "tests still failing", *recs[1].Error)
}

func TestLoadMissingSession(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	m := NewManager(client)

	_, err := m.Load(context.Background(), "no-such-task")
	assert.True(t, ent.IsNotFound(err))
}
