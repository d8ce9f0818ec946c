package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/task"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned tasks.
// All pods run this independently; operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running tasks with stale heartbeats and
// requeues or fails them. A task below its attempt budget goes back to
// queued so another pod can retry from the last checkpoint; one at budget
// fails terminally.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusRunning),
			task.LastHeartbeatAtNotNil(),
			task.LastHeartbeatAtLT(threshold),
			task.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned tasks: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned tasks", "count", len(orphans))

	recovered := 0
	for _, t := range orphans {
		if err := p.recoverOrphanedTask(ctx, t); err != nil {
			slog.Error("Failed to recover orphaned task",
				"task_id", t.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedTask requeues or terminally fails a single orphaned task.
func (p *WorkerPool) recoverOrphanedTask(ctx context.Context, t *ent.Task) error {
	log := slog.With("task_id", t.ID, "old_pod_id", t.PodID)

	lastHeartbeat := "unknown"
	if t.LastHeartbeatAt != nil {
		lastHeartbeat = t.LastHeartbeatAt.Format(time.RFC3339)
	}
	podID := "unknown"
	if t.PodID != nil {
		podID = *t.PodID
	}
	reason := fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)

	if t.AttemptCount >= t.MaxAttempts {
		err := t.Update().
			SetStatus(task.StatusFailed).
			SetFailureReason("orphaned").
			SetLastError(reason).
			SetCompletedAt(time.Now()).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to fail orphaned task: %w", err)
		}
		log.Warn("Orphaned task failed terminally", "last_heartbeat", lastHeartbeat)
		return nil
	}

	err := t.Update().
		SetStatus(task.StatusQueued).
		SetLastError(reason).
		ClearPodID().
		ClearLastHeartbeatAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue orphaned task: %w", err)
	}
	log.Warn("Orphaned task requeued", "last_heartbeat", lastHeartbeat, "attempt", t.AttemptCount)
	return nil
}

// CleanupStartupOrphans performs a one-time recovery of tasks owned by this
// pod that were running when the pod previously crashed. Called once during
// startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Task.Query().
		Where(
			task.StatusEQ(task.StatusRunning),
			task.PodID(podID),
			task.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, t := range orphans {
		reason := fmt.Sprintf("Orphaned: pod %s restarted while task was running", podID)
		var uerr error
		if t.AttemptCount >= t.MaxAttempts {
			uerr = t.Update().
				SetStatus(task.StatusFailed).
				SetFailureReason("orphaned").
				SetLastError(reason).
				SetCompletedAt(time.Now()).
				Exec(ctx)
		} else {
			uerr = t.Update().
				SetStatus(task.StatusQueued).
				SetLastError(reason).
				ClearPodID().
				ClearLastHeartbeatAt().
				Exec(ctx)
		}
		if uerr != nil {
			slog.Error("Failed to recover startup orphan",
				"task_id", t.ID,
				"error", uerr)
			continue
		}
		slog.Info("Startup orphan recovered", "task_id", t.ID)
	}

	return nil
}
