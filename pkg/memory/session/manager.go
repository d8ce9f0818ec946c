// Package session implements the per-task ledger: phase head state,
// progress log, attempt history, and checkpoints.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/attemptrecord"
	"github.com/forgeflow/forgeflow/ent/progressentry"
	"github.com/forgeflow/forgeflow/ent/sessionmemory"
	"github.com/forgeflow/forgeflow/pkg/models"
)

// Manager owns session memory reads and writes. Session memory for a task
// is written only by the worker holding that task; the transaction around
// sequence assignment guards against operator tooling racing a worker.
type Manager struct {
	client *ent.Client
}

// NewManager creates a session memory manager.
func NewManager(client *ent.Client) *Manager {
	if client == nil {
		panic("NewManager: client must not be nil")
	}
	return &Manager{client: client}
}

// Create initializes session memory for a task in phase "new".
func (m *Manager) Create(ctx context.Context, taskID string, taskCtx *models.TaskContext) (*ent.SessionMemory, error) {
	ctxMap, err := toMap(taskCtx)
	if err != nil {
		return nil, fmt.Errorf("encode task context: %w", err)
	}
	sm, err := m.client.SessionMemory.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetPhase(sessionmemory.PhaseNew).
		SetTaskContext(ctxMap).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session memory for task %s: %w", taskID, err)
	}
	return sm, nil
}

// Load returns the session memory for a task, or ent.NotFoundError.
func (m *Manager) Load(ctx context.Context, taskID string) (*ent.SessionMemory, error) {
	sm, err := m.client.SessionMemory.Query().
		Where(sessionmemory.TaskID(taskID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session memory for task %s: %w", taskID, err)
	}
	return sm, nil
}

// SetPhase advances the session phase. Forward moves and transitions into
// terminal phases or waiting_human are accepted; anything else is rejected.
// Replan resets go through ResetForReplan instead.
func (m *Manager) SetPhase(ctx context.Context, taskID string, next models.Phase) error {
	sm, err := m.Load(ctx, taskID)
	if err != nil {
		return err
	}
	cur := models.Phase(sm.Phase)
	if cur.Terminal() {
		// Re-entry into a terminal state is a no-op.
		return nil
	}
	if !cur.CanAdvanceTo(next) {
		return fmt.Errorf("illegal phase transition %s -> %s for task %s", cur, next, taskID)
	}
	err = m.client.SessionMemory.UpdateOne(sm).
		SetPhase(sessionmemory.Phase(next)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set phase %s for task %s: %w", next, taskID, err)
	}
	return nil
}

// ResetForReplan moves the session back to planning for a new attempt and
// bumps the retry counter. History tables are untouched.
func (m *Manager) ResetForReplan(ctx context.Context, taskID string) error {
	sm, err := m.Load(ctx, taskID)
	if err != nil {
		return err
	}
	err = m.client.SessionMemory.UpdateOne(sm).
		SetPhase(sessionmemory.PhasePlanning).
		AddRetryCount(1).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("reset task %s for replan: %w", taskID, err)
	}
	return nil
}

// SetAgentOutput stores the latest output for one agent under AgentOutputs.
func (m *Manager) SetAgentOutput(ctx context.Context, taskID, agent string, output any) error {
	sm, err := m.Load(ctx, taskID)
	if err != nil {
		return err
	}
	outputs := sm.AgentOutputs
	if outputs == nil {
		outputs = map[string]interface{}{}
	}
	encoded, err := toMap(output)
	if err != nil {
		return fmt.Errorf("encode %s output: %w", agent, err)
	}
	outputs[agent] = encoded
	err = m.client.SessionMemory.UpdateOne(sm).
		SetAgentOutputs(outputs).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("store %s output for task %s: %w", agent, taskID, err)
	}
	return nil
}

// SetOrchestration stores the parent's orchestration block.
func (m *Manager) SetOrchestration(ctx context.Context, taskID string, block any) error {
	sm, err := m.Load(ctx, taskID)
	if err != nil {
		return err
	}
	encoded, err := toMap(block)
	if err != nil {
		return fmt.Errorf("encode orchestration block: %w", err)
	}
	err = m.client.SessionMemory.UpdateOne(sm).
		SetOrchestration(encoded).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("store orchestration for task %s: %w", taskID, err)
	}
	return nil
}

// ProgressInput describes one progress entry; sequence is assigned here.
type ProgressInput struct {
	EventType     string
	Agent         string
	InputSummary  string
	OutputSummary string
	DurationMs    int64
	Metadata      map[string]interface{}
}

// AppendProgress appends a progress entry with the next sequence number.
// The sequence read and insert share one transaction so numbering stays
// strictly monotonic.
func (m *Manager) AppendProgress(ctx context.Context, taskID string, in ProgressInput) (*ent.ProgressEntry, error) {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin progress transaction: %w", err)
	}

	next := 1
	last, err := tx.ProgressEntry.Query().
		Where(progressentry.TaskID(taskID)).
		Order(ent.Desc(progressentry.FieldSequence)).
		First(ctx)
	switch {
	case err == nil:
		next = last.Sequence + 1
	case !ent.IsNotFound(err):
		return nil, rollback(tx, fmt.Errorf("read last sequence for task %s: %w", taskID, err))
	}

	builder := tx.ProgressEntry.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetSequence(next).
		SetEventType(in.EventType)
	if in.Agent != "" {
		builder.SetAgent(in.Agent)
	}
	if in.InputSummary != "" {
		builder.SetInputSummary(in.InputSummary)
	}
	if in.OutputSummary != "" {
		builder.SetOutputSummary(in.OutputSummary)
	}
	if in.DurationMs > 0 {
		builder.SetDurationMs(in.DurationMs)
	}
	if in.Metadata != nil {
		builder.SetMetadata(in.Metadata)
	}

	entry, err := builder.Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("append progress for task %s: %w", taskID, err))
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit progress for task %s: %w", taskID, err)
	}
	return entry, nil
}

// ListProgress returns the most recent progress entries, newest first.
func (m *Manager) ListProgress(ctx context.Context, taskID string, limit int) ([]*ent.ProgressEntry, error) {
	q := m.client.ProgressEntry.Query().
		Where(progressentry.TaskID(taskID)).
		Order(ent.Desc(progressentry.FieldSequence))
	if limit > 0 {
		q.Limit(limit)
	}
	entries, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress for task %s: %w", taskID, err)
	}
	return entries, nil
}

// RecordAttempt appends an attempt record. Records are never updated.
func (m *Manager) RecordAttempt(ctx context.Context, taskID string, iteration int, action attemptrecord.Action, result attemptrecord.Result, attemptErr string) (*ent.AttemptRecord, error) {
	builder := m.client.AttemptRecord.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetIteration(iteration).
		SetAction(action).
		SetResult(result)
	if attemptErr != "" {
		builder.SetError(attemptErr)
	}
	rec, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record attempt for task %s: %w", taskID, err)
	}
	return rec, nil
}

// ListAttempts returns the attempt history in chronological order.
func (m *Manager) ListAttempts(ctx context.Context, taskID string) ([]*ent.AttemptRecord, error) {
	recs, err := m.client.AttemptRecord.Query().
		Where(attemptrecord.TaskID(taskID)).
		Order(ent.Asc(attemptrecord.FieldCreatedAt), ent.Asc(attemptrecord.FieldIteration)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempts for task %s: %w", taskID, err)
	}
	return recs, nil
}

// IncrementErrorCount bumps the session error counter.
func (m *Manager) IncrementErrorCount(ctx context.Context, taskID string) error {
	n, err := m.client.SessionMemory.Update().
		Where(sessionmemory.TaskID(taskID)).
		AddErrorCount(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("increment error count for task %s: %w", taskID, err)
	}
	if n == 0 {
		return fmt.Errorf("increment error count: no session for task %s", taskID)
	}
	return nil
}

func toMap(v any) (map[string]interface{}, error) {
	if v == nil {
		return nil, nil
	}
	if m, ok := v.(map[string]interface{}); ok {
		return m, nil
	}
	return structToMap(v)
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		slog.Error("Transaction rollback failed", "error", rerr)
	}
	return err
}
