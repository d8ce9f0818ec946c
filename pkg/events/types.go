// Package events provides real-time task event delivery via PostgreSQL
// NOTIFY/LISTEN for cross-pod distribution.
//
// Persistent events (task.status, task.phase) are written to the
// task_events table and broadcast via NOTIFY in one transaction, so a
// subscriber that catches up from the table and then follows NOTIFY
// never observes a gap. Transient events (task.progress) are NOTIFY
// only: high-frequency agent progress that is cheap to lose on
// reconnect.
package events

import "strings"

// Persistent event types (stored in DB + NOTIFY).
const (
	// EventTypeTaskStatus marks a task status transition (queued, running,
	// completed, failed, waiting_human, cancelled).
	EventTypeTaskStatus = "task.status"

	// EventTypeTaskPhase marks a pipeline phase transition within a
	// running task (planning, coding, validating, ...).
	EventTypeTaskPhase = "task.phase"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// EventTypeTaskProgress carries per-agent progress for a live view.
	EventTypeTaskProgress = "task.progress"
)

// GlobalTasksChannel is the channel for task-level status events.
// The task list view subscribes to this for real-time updates.
const GlobalTasksChannel = "tasks"

// taskChannelPrefix prefixes per-task channels.
const taskChannelPrefix = "task:"

// TaskChannel returns the channel name for a specific task's events.
// Format: "task:{task_id}"
func TaskChannel(taskID string) string {
	return taskChannelPrefix + taskID
}

// TaskIDFromChannel extracts the task ID from a per-task channel name.
// Returns "" for the global channel or malformed names.
func TaskIDFromChannel(channel string) string {
	if id, ok := strings.CutPrefix(channel, taskChannelPrefix); ok {
		return id
	}
	return ""
}
