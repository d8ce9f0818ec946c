package events

import (
	"context"
	"log/slog"

	"github.com/forgeflow/forgeflow/pkg/memory/hooks"
)

// Recorder subscribes to pipeline hook events and republishes them through
// the EventPublisher so the status surface sees them in real time. Failures
// are logged and swallowed: event delivery never blocks the pipeline.
type Recorder struct {
	publisher *EventPublisher
}

// NewRecorder creates a recorder over a publisher.
// Panics if publisher is nil.
func NewRecorder(publisher *EventPublisher) *Recorder {
	if publisher == nil {
		panic("events: nil publisher")
	}
	return &Recorder{publisher: publisher}
}

// RegisterHooks attaches the recorder to the bus. Registered at low
// priority so observation recording runs first.
func (r *Recorder) RegisterHooks(bus *hooks.Bus) {
	bus.Register(hooks.EventTaskStart, "event-stream", hooks.PriorityLow, hooks.Filter{}, r.onTaskStart)
	bus.Register(hooks.EventTaskEnd, "event-stream", hooks.PriorityLow, hooks.Filter{}, r.onTaskEnd)
	bus.Register(hooks.EventPhaseChange, "event-stream", hooks.PriorityLow, hooks.Filter{}, r.onPhaseChange)
	bus.Register(hooks.EventError, "event-stream", hooks.PriorityLow, hooks.Filter{}, r.onError)
	bus.Register(hooks.EventAgentStart, "event-stream", hooks.PriorityLow, hooks.Filter{}, r.onAgentActivity)
	bus.Register(hooks.EventAgentEnd, "event-stream", hooks.PriorityLow, hooks.Filter{}, r.onAgentActivity)
	bus.Register(hooks.EventToolCall, "event-stream", hooks.PriorityLow, hooks.Filter{}, r.onToolCall)
}

func (r *Recorder) onTaskStart(ctx context.Context, e hooks.Event) error {
	err := r.publisher.PublishTaskStatus(ctx, TaskStatusPayload{
		TaskID: e.TaskID,
		Status: "running",
	})
	if err != nil {
		slog.Warn("Failed to publish task start event", "task_id", e.TaskID, "error", err)
	}
	return nil
}

func (r *Recorder) onTaskEnd(ctx context.Context, e hooks.Event) error {
	err := r.publisher.PublishTaskStatus(ctx, TaskStatusPayload{
		TaskID:        e.TaskID,
		Status:        eventDataString(e.Data, "status"),
		FailureReason: eventDataString(e.Data, "failure_reason"),
		PRURL:         eventDataString(e.Data, "pr_url"),
	})
	if err != nil {
		slog.Warn("Failed to publish task end event", "task_id", e.TaskID, "error", err)
	}
	return nil
}

func (r *Recorder) onPhaseChange(ctx context.Context, e hooks.Event) error {
	err := r.publisher.PublishTaskPhase(ctx, TaskPhasePayload{
		TaskID: e.TaskID,
		Phase:  string(e.Phase),
		Detail: eventDataString(e.Data, "detail"),
	})
	if err != nil {
		slog.Warn("Failed to publish phase event", "task_id", e.TaskID, "error", err)
	}
	return nil
}

func (r *Recorder) onError(ctx context.Context, e hooks.Event) error {
	err := r.publisher.PublishTaskPhase(ctx, TaskPhasePayload{
		TaskID: e.TaskID,
		Phase:  string(e.Phase),
		Detail: "error: " + eventDataString(e.Data, "error"),
	})
	if err != nil {
		slog.Warn("Failed to publish error event", "task_id", e.TaskID, "error", err)
	}
	return nil
}

// onAgentActivity publishes transient progress for agent start/end.
func (r *Recorder) onAgentActivity(ctx context.Context, e hooks.Event) error {
	detail := "started"
	if e.Type == hooks.EventAgentEnd {
		detail = "finished"
	}
	err := r.publisher.PublishTaskProgress(ctx, TaskProgressPayload{
		TaskID: e.TaskID,
		Agent:  e.Agent,
		Detail: detail,
	})
	if err != nil {
		slog.Debug("Failed to publish agent progress", "task_id", e.TaskID, "error", err)
	}
	return nil
}

func (r *Recorder) onToolCall(ctx context.Context, e hooks.Event) error {
	err := r.publisher.PublishTaskProgress(ctx, TaskProgressPayload{
		TaskID: e.TaskID,
		Agent:  e.Agent,
		Tool:   e.Tool,
		Detail: eventDataString(e.Data, "command"),
	})
	if err != nil {
		slog.Debug("Failed to publish tool progress", "task_id", e.TaskID, "error", err)
	}
	return nil
}

func eventDataString(data map[string]interface{}, key string) string {
	if data == nil {
		return ""
	}
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}
