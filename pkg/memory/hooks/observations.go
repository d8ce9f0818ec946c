package hooks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/observation"
)

// maxSummaryLen bounds the working-memory slice of an observation; full
// content is archival.
const maxSummaryLen = 2000

// ObservationRecorder is the default handler set: it translates bus events
// into observation rows with per-task monotonic sequence numbers.
type ObservationRecorder struct {
	client *ent.Client
}

// NewObservationRecorder creates the recorder.
func NewObservationRecorder(client *ent.Client) *ObservationRecorder {
	if client == nil {
		panic("NewObservationRecorder: client must not be nil")
	}
	return &ObservationRecorder{client: client}
}

// RegisterDefaults subscribes the recorder to the event types that produce
// observations. Registered at low priority so metrics and loggers run first.
func (r *ObservationRecorder) RegisterDefaults(bus *Bus) {
	for _, t := range []EventType{
		EventToolCall, EventToolResult, EventError,
		EventPhaseChange, EventCheckpoint, EventMemoryUpdate,
	} {
		bus.Register(t, "observation-recorder", PriorityLow, Filter{}, r.Handle)
	}
}

// Handle implements Handler.
func (r *ObservationRecorder) Handle(ctx context.Context, e Event) error {
	if e.TaskID == "" {
		return nil
	}

	obsType, ok := observationType(e)
	if !ok {
		return nil
	}

	content := eventContent(e)
	summary := content
	if len(summary) > maxSummaryLen {
		summary = summary[:maxSummaryLen]
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin observation transaction: %w", err)
	}

	next := 1
	last, err := tx.Observation.Query().
		Where(observation.TaskID(e.TaskID)).
		Order(ent.Desc(observation.FieldSequence)).
		First(ctx)
	switch {
	case err == nil:
		next = last.Sequence + 1
	case !ent.IsNotFound(err):
		_ = tx.Rollback()
		return fmt.Errorf("read last observation sequence: %w", err)
	}

	builder := tx.Observation.Create().
		SetID(uuid.New().String()).
		SetTaskID(e.TaskID).
		SetSequence(next).
		SetType(obsType).
		SetFullContent(content).
		SetSummary(summary)
	if e.Agent != "" {
		builder.SetAgent(e.Agent)
	}
	if e.Tool != "" {
		builder.SetTool(e.Tool)
	}
	if refs := stringSlice(e.Data, "file_refs"); len(refs) > 0 {
		builder.SetFileRefs(refs)
	}
	if tags := stringSlice(e.Data, "tags"); len(tags) > 0 {
		builder.SetTags(tags)
	}

	if err := builder.Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record observation for task %s: %w", e.TaskID, err)
	}
	return tx.Commit()
}

func observationType(e Event) (observation.Type, bool) {
	switch e.Type {
	case EventToolCall, EventToolResult:
		return observation.TypeToolCall, true
	case EventError:
		return observation.TypeError, true
	case EventPhaseChange, EventCheckpoint:
		return observation.TypeDecision, true
	case EventMemoryUpdate:
		if e.Data["loop_event"] == "fix_attempted" {
			return observation.TypeFix, true
		}
		return observation.TypeLearning, true
	}
	return "", false
}

func eventContent(e Event) string {
	if c, ok := e.Data["content"].(string); ok && c != "" {
		return c
	}
	if len(e.Data) > 0 {
		if raw, err := json.Marshal(e.Data); err == nil {
			return string(raw)
		}
	}
	return string(e.Type)
}

func stringSlice(data map[string]interface{}, key string) []string {
	raw, ok := data[key]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, x := range v {
			if s, ok := x.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
