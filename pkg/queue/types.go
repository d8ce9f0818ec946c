// Package queue provides task queue management and processing infrastructure.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/task"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no queued tasks are in the queue.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// ErrAtCapacity indicates the global concurrent task limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// TaskExecutor is the interface for task processing.
//
// The executor owns the entire task lifecycle internally: session creation,
// planning, coding, validation, the fix loop, decomposition, sandbox
// verification, and PR creation. Intermediate state is written progressively
// to session memory during execution. The worker only handles claiming,
// heartbeat, terminal status update, and the cancel registry.
type TaskExecutor interface {
	Execute(ctx context.Context, t *ent.Task) *ExecutionResult
}

// ExecutionResult is just the terminal state; everything else was already
// persisted by the executor.
type ExecutionResult struct {
	Status        task.Status // completed, failed, cancelled, waiting_human
	PRURL         string
	PRNumber      int
	FailureReason string // machine-readable, set when Status is failed
	Error         error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveTasks      int            `json:"active_tasks"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
