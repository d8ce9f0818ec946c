package e2e

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enttask "github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/pkg/events"
	"github.com/forgeflow/forgeflow/pkg/llm"
	"github.com/forgeflow/forgeflow/pkg/models"
	"github.com/forgeflow/forgeflow/pkg/services"
)

// Runs a dry-run pipeline with the event recorder on the bus and verifies
// the persisted event trail plus catchup reconstruction.
func TestPipelineEventsPersistAndCatchUp(t *testing.T) {
	h := NewHarness(t)
	ctx := context.Background()

	publisher := events.NewEventPublisher(h.DB.DB())
	events.NewRecorder(publisher).RegisterHooks(h.Bus)
	eventSvc := services.NewEventService(h.DB.Client)

	h.GitHost.SetFile("README.md", "# widgets\n")
	h.LLM.Queue(llm.PurposePlan, PlanJSON(models.ComplexityXS, "README.md"))
	h.LLM.Queue(llm.PurposeCode, CodeJSON(SampleDiff("README.md"), "Fix the readme"))

	created := h.CreateTask(models.CreateTaskRequest{
		Repo:        "acme/widgets",
		IssueNumber: 42,
		Title:       "Fix the readme",
		DryRun:      true,
	})

	res := h.Execute(created)
	require.Equal(t, enttask.StatusCompleted, res.Status)

	catchup, err := eventSvc.CatchupEvents(ctx, created.ID, time.Unix(0, 0), 100)
	require.NoError(t, err)
	require.NotEmpty(t, catchup)

	var types []string
	var statuses []string
	for _, ev := range catchup {
		var payload struct {
			Type    string `json:"type"`
			EventID string `json:"event_id"`
			TaskID  string `json:"task_id"`
			Status  string `json:"status"`
		}
		require.NoError(t, json.Unmarshal(ev.Payload, &payload))
		assert.Equal(t, created.ID, payload.TaskID)
		assert.Equal(t, ev.EventID, payload.EventID)
		types = append(types, payload.Type)
		if payload.Status != "" {
			statuses = append(statuses, payload.Status)
		}
	}

	assert.Contains(t, types, events.EventTypeTaskStatus)
	assert.Contains(t, types, events.EventTypeTaskPhase)
	assert.Contains(t, statuses, "running")
	assert.Contains(t, statuses, "completed")

	// History endpoint order: oldest first, running before completed.
	rows, err := eventSvc.ListTaskEvents(ctx, created.ID, 0)
	require.NoError(t, err)
	require.Equal(t, len(catchup), len(rows))
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].CreatedAt.Before(rows[i-1].CreatedAt))
	}

	// A since cursor past the last event yields nothing to replay.
	later, err := eventSvc.CatchupEvents(ctx, created.ID, time.Now().Add(time.Hour), 100)
	require.NoError(t, err)
	assert.Empty(t, later)
}
