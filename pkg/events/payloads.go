package events

import "time"

// Typed payload structs for every published event. The `type` field routes
// the payload on the client side; `event_id` keys catchup after reconnect.

// TaskStatusPayload carries a task status transition.
// Published to the task channel (persistent) and mirrored to the global
// tasks channel (transient) for the task list view.
type TaskStatusPayload struct {
	Type          string    `json:"type"` // EventTypeTaskStatus
	EventID       string    `json:"event_id"`
	TaskID        string    `json:"task_id"`
	Status        string    `json:"status"`
	FailureReason string    `json:"failure_reason,omitempty"`
	PRURL         string    `json:"pr_url,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// TaskPhasePayload carries a pipeline phase transition within a running task.
type TaskPhasePayload struct {
	Type      string    `json:"type"` // EventTypeTaskPhase
	EventID   string    `json:"event_id"`
	TaskID    string    `json:"task_id"`
	Phase     string    `json:"phase"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// TaskProgressPayload carries transient per-agent progress for a live view.
// Never persisted, so a reconnecting client simply misses what it missed.
type TaskProgressPayload struct {
	Type      string    `json:"type"` // EventTypeTaskProgress
	TaskID    string    `json:"task_id"`
	Agent     string    `json:"agent,omitempty"`
	Tool      string    `json:"tool,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
