package slack

import (
	"context"
	"log/slog"
	"time"

	"github.com/forgeflow/forgeflow/pkg/memory/hooks"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// TaskStartedInput contains data for a task start notification.
type TaskStartedInput struct {
	TaskID      string
	Repo        string
	IssueNumber int
	Title       string
}

// TaskFinishedInput contains data for a terminal task notification.
type TaskFinishedInput struct {
	TaskID        string
	Repo          string
	IssueNumber   int
	Title         string
	Status        string // completed, failed, waiting_human, cancelled
	FailureReason string
	PRURL         string
}

// Service handles Slack notification delivery.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// RegisterHooks subscribes the notifier to task lifecycle events.
func (s *Service) RegisterHooks(bus *hooks.Bus) {
	if s == nil {
		return
	}
	bus.Register(hooks.EventTaskStart, "slack-notifier", hooks.PriorityLow, hooks.Filter{},
		func(ctx context.Context, e hooks.Event) error {
			s.NotifyTaskStarted(ctx, TaskStartedInput{
				TaskID:      e.TaskID,
				Repo:        dataString(e.Data, "repo"),
				IssueNumber: dataInt(e.Data, "issue"),
				Title:       dataString(e.Data, "title"),
			})
			return nil
		})
	bus.Register(hooks.EventTaskEnd, "slack-notifier", hooks.PriorityLow, hooks.Filter{},
		func(ctx context.Context, e hooks.Event) error {
			s.NotifyTaskFinished(ctx, TaskFinishedInput{
				TaskID:        e.TaskID,
				Repo:          dataString(e.Data, "repo"),
				IssueNumber:   dataInt(e.Data, "issue"),
				Title:         dataString(e.Data, "title"),
				Status:        dataString(e.Data, "status"),
				FailureReason: dataString(e.Data, "failure_reason"),
				PRURL:         dataString(e.Data, "pr_url"),
			})
			return nil
		})
}

// NotifyTaskStarted posts a "working on it" notification.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyTaskStarted(ctx context.Context, input TaskStartedInput) {
	if s == nil {
		return
	}
	blocks := BuildStartedMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, "", 5*time.Second); err != nil {
		s.logger.Error("Failed to send Slack start notification",
			"task_id", input.TaskID, "error", err)
	}
}

// NotifyTaskFinished posts a terminal status notification, threaded under
// the start notification when it can be found.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyTaskFinished(ctx context.Context, input TaskFinishedInput) {
	if s == nil {
		return
	}

	threadTS, err := s.client.FindMessageByFingerprint(ctx, taskFingerprint(input.TaskID))
	if err != nil {
		s.logger.Warn("Failed to find Slack thread for task",
			"task_id", input.TaskID, "error", err)
	}

	blocks := BuildTerminalMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, threadTS, 10*time.Second); err != nil {
		s.logger.Error("Failed to send Slack notification",
			"task_id", input.TaskID, "status", input.Status, "error", err)
	}
}

func dataString(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func dataInt(data map[string]interface{}, key string) int {
	switch v := data[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}
