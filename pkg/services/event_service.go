package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/taskevent"
	"github.com/forgeflow/forgeflow/pkg/events"
)

// EventService reads persisted task events for the status surface and for
// subscriber catchup after reconnect.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	if client == nil {
		panic("EventService requires a non-nil ent client")
	}
	return &EventService{client: client}
}

// ListTaskEvents returns the persisted event history for a task, oldest
// first. limit <= 0 means no limit.
func (s *EventService) ListTaskEvents(ctx context.Context, taskID string, limit int) ([]*ent.TaskEvent, error) {
	q := s.client.TaskEvent.Query().
		Where(taskevent.TaskID(taskID)).
		Order(ent.Asc(taskevent.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list task events: %w", err)
	}
	return rows, nil
}

// CatchupEvents returns events for a task recorded after `since`, oldest
// first, with payloads rebuilt to the same JSON shape the publisher
// broadcast. Implements events.CatchupQuerier.
func (s *EventService) CatchupEvents(ctx context.Context, taskID string, since time.Time, limit int) ([]events.CatchupEvent, error) {
	rows, err := s.client.TaskEvent.Query().
		Where(
			taskevent.TaskID(taskID),
			taskevent.CreatedAtGT(since),
		).
		Order(ent.Asc(taskevent.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup events: %w", err)
	}

	out := make([]events.CatchupEvent, 0, len(rows))
	for _, row := range rows {
		payload, err := rebuildPayload(row)
		if err != nil {
			// Skip rather than fail the whole catchup for one bad row.
			continue
		}
		out = append(out, events.CatchupEvent{
			EventID: row.ID,
			Payload: payload,
		})
	}
	return out, nil
}

// rebuildPayload reconstructs the broadcast JSON from a persisted row.
func rebuildPayload(row *ent.TaskEvent) ([]byte, error) {
	switch row.EventType {
	case events.EventTypeTaskStatus:
		return json.Marshal(events.TaskStatusPayload{
			Type:          row.EventType,
			EventID:       row.ID,
			TaskID:        row.TaskID,
			Status:        row.Detail,
			FailureReason: metadataString(row.Metadata, "failure_reason"),
			PRURL:         metadataString(row.Metadata, "pr_url"),
			Timestamp:     row.CreatedAt,
		})
	default:
		return json.Marshal(events.TaskPhasePayload{
			Type:      row.EventType,
			EventID:   row.ID,
			TaskID:    row.TaskID,
			Phase:     row.Phase,
			Detail:    row.Detail,
			Timestamp: row.CreatedAt,
		})
	}
}

func metadataString(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
