package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/checkpoint"
	"github.com/forgeflow/forgeflow/ent/sessionmemory"
	"github.com/forgeflow/forgeflow/pkg/models"
)

// SaveCheckpoint snapshots the restorable slice of session state (phase and
// agent outputs) under a reason tag and records it as the session's last
// checkpoint.
func (m *Manager) SaveCheckpoint(ctx context.Context, taskID, reason string) (*ent.Checkpoint, error) {
	sm, err := m.Load(ctx, taskID)
	if err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"agent_outputs": sm.AgentOutputs,
	}
	cp, err := m.client.Checkpoint.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetReason(reason).
		SetPhase(string(sm.Phase)).
		SetData(data).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save checkpoint for task %s: %w", taskID, err)
	}

	err = m.client.SessionMemory.UpdateOne(sm).
		SetLastCheckpoint(cp.ID).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("record last checkpoint for task %s: %w", taskID, err)
	}
	return cp, nil
}

// ListCheckpoints returns a task's checkpoints newest first.
func (m *Manager) ListCheckpoints(ctx context.Context, taskID string) ([]*ent.Checkpoint, error) {
	cps, err := m.client.Checkpoint.Query().
		Where(checkpoint.TaskID(taskID)).
		Order(ent.Desc(checkpoint.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list checkpoints for task %s: %w", taskID, err)
	}
	return cps, nil
}

// RollbackTo restores agent outputs and phase from a checkpoint. The
// progress log and attempt history are preserved untouched; rollback never
// rewrites history.
func (m *Manager) RollbackTo(ctx context.Context, taskID, checkpointID string) error {
	cp, err := m.client.Checkpoint.Query().
		Where(checkpoint.ID(checkpointID), checkpoint.TaskID(taskID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("load checkpoint %s for task %s: %w", checkpointID, taskID, err)
	}

	var outputs map[string]interface{}
	if raw, ok := cp.Data["agent_outputs"]; ok && raw != nil {
		outputs, err = toMap(raw)
		if err != nil {
			return fmt.Errorf("decode checkpoint %s outputs: %w", checkpointID, err)
		}
	}

	sm, err := m.Load(ctx, taskID)
	if err != nil {
		return err
	}
	if models.Phase(sm.Phase).Terminal() {
		return fmt.Errorf("cannot roll back task %s from terminal phase %s", taskID, sm.Phase)
	}

	err = m.client.SessionMemory.UpdateOne(sm).
		SetPhase(sessionmemory.Phase(cp.Phase)).
		SetAgentOutputs(outputs).
		SetLastCheckpoint(cp.ID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("roll back task %s to checkpoint %s: %w", taskID, checkpointID, err)
	}
	return nil
}

// structToMap round-trips a typed value through JSON into the shape ent's
// JSON columns store.
func structToMap(v any) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
