// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/ent/webhookevent"
	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/memory/archival"
)

// Service periodically enforces retention policies:
//   - Purges soft-deleted tasks past their TTL
//   - Removes expired task-scoped archival memory
//   - Removes old completed webhook deliveries
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config  *config.RetentionConfig
	client  *ent.Client
	archive *archival.Store

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. archive may be nil when
// archival memory is disabled.
func NewService(cfg *config.RetentionConfig, client *ent.Client, archive *archival.Store) *Service {
	return &Service{
		config:  cfg,
		client:  client,
		archive: archive,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"task_ttl", s.config.TaskTTL.Std(),
		"interval", s.config.CleanupInterval.Std())
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval.Std())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeDeletedTasks(ctx)
	s.purgeExpiredArchival(ctx)
	s.purgeProcessedWebhooks(ctx)
}

// purgeDeletedTasks hard-deletes tasks soft-deleted longer ago than the
// TTL. Ent cascades remove the session, progress, attempts, and
// checkpoints with them.
func (s *Service) purgeDeletedTasks(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.TaskTTL.Std())
	count, err := s.client.Task.Delete().
		Where(
			task.DeletedAtNotNil(),
			task.DeletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: task purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged soft-deleted tasks", "count", count)
	}
}

func (s *Service) purgeExpiredArchival(ctx context.Context) {
	if s.archive == nil {
		return
	}
	count, err := s.archive.CleanupExpired(ctx)
	if err != nil {
		slog.Error("Retention: archival cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed expired archival memory", "count", count)
	}
}

// purgeProcessedWebhooks removes completed webhook deliveries past the
// task TTL. Failed deliveries stay for inspection.
func (s *Service) purgeProcessedWebhooks(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.TaskTTL.Std())
	count, err := s.client.WebhookEvent.Delete().
		Where(
			webhookevent.StatusEQ(webhookevent.StatusCompleted),
			webhookevent.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: webhook purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged processed webhook events", "count", count)
	}
}
