package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// EventPublisher publishes task events for real-time delivery.
// Persistent events are stored in the task_events table then broadcast via
// NOTIFY; transient events (progress) are broadcast via NOTIFY only.
//
// Each public method accepts a specific typed payload struct — see
// payloads.go. The payload is marshaled to JSON and routed to the channel
// derived from the task ID via persistAndNotify or notifyOnly.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Typed public methods ---

// PublishTaskStatus persists a task status event to the task channel and
// broadcasts a transient copy to the global tasks channel.
// Both publishes are best-effort: if the persistent one fails, the transient
// one is still attempted. Returns the first error encountered (if any).
func (p *EventPublisher) PublishTaskStatus(ctx context.Context, payload TaskStatusPayload) error {
	payload.Type = EventTypeTaskStatus
	payload.EventID = uuid.NewString()
	if payload.Timestamp.IsZero() {
		payload.Timestamp = time.Now()
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TaskStatusPayload: %w", err)
	}

	row := eventRow{
		EventID:   payload.EventID,
		TaskID:    payload.TaskID,
		EventType: payload.Type,
		Detail:    payload.Status,
		CreatedAt: payload.Timestamp,
	}
	if payload.FailureReason != "" || payload.PRURL != "" {
		row.Metadata = map[string]any{}
		if payload.FailureReason != "" {
			row.Metadata["failure_reason"] = payload.FailureReason
		}
		if payload.PRURL != "" {
			row.Metadata["pr_url"] = payload.PRURL
		}
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, TaskChannel(payload.TaskID), row, payloadJSON); err != nil {
		slog.Warn("Failed to publish task status to task channel",
			"task_id", payload.TaskID, "status", payload.Status, "error", err)
		firstErr = err
	}

	// Also broadcast to global tasks channel (transient — for the task list)
	if err := p.notifyOnly(ctx, GlobalTasksChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish task status to global channel",
			"task_id", payload.TaskID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// PublishTaskPhase persists and broadcasts a task.phase event.
// Used for pipeline phase transitions within a running task.
func (p *EventPublisher) PublishTaskPhase(ctx context.Context, payload TaskPhasePayload) error {
	payload.Type = EventTypeTaskPhase
	payload.EventID = uuid.NewString()
	if payload.Timestamp.IsZero() {
		payload.Timestamp = time.Now()
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TaskPhasePayload: %w", err)
	}

	row := eventRow{
		EventID:   payload.EventID,
		TaskID:    payload.TaskID,
		EventType: payload.Type,
		Phase:     payload.Phase,
		Detail:    payload.Detail,
		CreatedAt: payload.Timestamp,
	}
	return p.persistAndNotify(ctx, TaskChannel(payload.TaskID), row, payloadJSON)
}

// PublishTaskProgress broadcasts a task.progress transient event (no DB
// persistence). Used for high-frequency agent activity display.
func (p *EventPublisher) PublishTaskProgress(ctx context.Context, payload TaskProgressPayload) error {
	payload.Type = EventTypeTaskProgress
	if payload.Timestamp.IsZero() {
		payload.Timestamp = time.Now()
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TaskProgressPayload: %w", err)
	}
	return p.notifyOnly(ctx, TaskChannel(payload.TaskID), payloadJSON)
}

// --- Internal core methods ---

// eventRow is the task_events row written alongside a NOTIFY.
type eventRow struct {
	EventID   string
	TaskID    string
	EventType string
	Phase     string
	Detail    string
	Metadata  map[string]any
	CreatedAt time.Time
}

// persistAndNotify persists a pre-marshaled event to the database and
// broadcasts via NOTIFY in a single transaction (pg_notify is transactional,
// held until COMMIT). A subscriber that reads the table and then follows
// NOTIFY therefore never observes a gap.
func (p *EventPublisher) persistAndNotify(ctx context.Context, channel string, row eventRow, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var metadataJSON []byte
	if row.Metadata != nil {
		metadataJSON, err = json.Marshal(row.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal event metadata: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO task_events (event_id, task_id, event_type, phase, detail, metadata, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		row.EventID, row.TaskID, row.EventType, row.Phase, row.Detail, metadataJSON, row.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type    string `json:"type"`
		EventID string `json:"event_id"`
		TaskID  string `json:"task_id"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"task_id":   routing.TaskID,
		"truncated": true,
	}
	if routing.EventID != "" {
		truncated["event_id"] = routing.EventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
