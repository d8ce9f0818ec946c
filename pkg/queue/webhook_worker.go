package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/services"
)

// WebhookWorker drains the persistent webhook event queue: each claimed
// event either creates a task or is a no-op, then completes. Processing
// failures reschedule the event with backoff until it dead-letters.
type WebhookWorker struct {
	webhooks *services.WebhookService
	tasks    *services.TaskService
	config   *config.QueueConfig
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWebhookWorker creates a webhook queue worker.
func NewWebhookWorker(webhooks *services.WebhookService, tasks *services.TaskService, cfg *config.QueueConfig) *WebhookWorker {
	return &WebhookWorker{
		webhooks: webhooks,
		tasks:    tasks,
		config:   cfg,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the polling loop in a goroutine.
func (w *WebhookWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
func (w *WebhookWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

func (w *WebhookWorker) run(ctx context.Context) {
	defer w.wg.Done()
	slog.Info("Webhook worker started")

	for {
		select {
		case <-w.stopCh:
			slog.Info("Webhook worker shutting down")
			return
		case <-ctx.Done():
			return
		default:
			processed, err := w.processNext(ctx)
			if err != nil {
				slog.Error("Webhook processing error", "error", err)
				w.sleep(time.Second)
				continue
			}
			if !processed {
				w.sleep(w.config.WebhookPollInterval)
			}
		}
	}
}

// processNext claims and handles one event. Returns false when the queue
// is empty.
func (w *WebhookWorker) processNext(ctx context.Context) (bool, error) {
	event, err := w.webhooks.ClaimNext(ctx)
	if err != nil {
		return false, err
	}
	if event == nil {
		return false, nil
	}

	log := slog.With("delivery_id", event.DeliveryID, "event_type", event.EventType)

	req, err := services.ParseTaskRequest(event)
	if err != nil {
		// Malformed payloads never succeed on retry.
		log.Error("Webhook payload rejected", "error", err)
		if ferr := w.webhooks.MarkFailed(ctx, event.ID, err); ferr != nil {
			return true, ferr
		}
		return true, nil
	}
	if req == nil {
		log.Debug("Webhook event is not task-creating, completing")
		return true, w.webhooks.MarkCompleted(ctx, event.ID)
	}

	t, created, err := w.tasks.CreateTask(ctx, *req)
	if err != nil {
		if ferr := w.webhooks.MarkFailed(ctx, event.ID, err); ferr != nil {
			return true, ferr
		}
		return true, nil
	}
	if created {
		log.Info("Task created from webhook", "task_id", t.ID, "repo", t.Repo, "issue", t.IssueNumber)
	} else {
		log.Info("Webhook joined existing task", "task_id", t.ID)
	}
	return true, w.webhooks.MarkCompleted(ctx, event.ID)
}

func (w *WebhookWorker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}
