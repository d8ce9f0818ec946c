package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/webhookevent"
	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/models"
)

const (
	defaultWebhookMaxAttempts = 5
	retryBackoffBase          = 30 * time.Second
)

// ErrInvalidSignature is returned when the HMAC signature check fails.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// WebhookService ingests signed webhook deliveries into the persistent
// inbound queue and hands them to the processing worker. The same
// delivery_id is never processed twice.
type WebhookService struct {
	client      *ent.Client
	secret      []byte
	maxAttempts int
}

// NewWebhookService creates a new WebhookService. The signing secret is
// read from the environment variable named in the config; an empty secret
// disables signature verification.
func NewWebhookService(client *ent.Client, cfg *config.WebhookConfig) *WebhookService {
	if client == nil {
		panic("WebhookService requires a non-nil ent client")
	}
	s := &WebhookService{client: client, maxAttempts: defaultWebhookMaxAttempts}
	if cfg != nil {
		if cfg.SecretEnv != "" {
			s.secret = []byte(os.Getenv(cfg.SecretEnv))
		}
		if cfg.MaxAttempts > 0 {
			s.maxAttempts = cfg.MaxAttempts
		}
	}
	return s
}

// VerifySignature checks the hex-encoded HMAC-SHA256 signature of a raw
// payload. The signature may carry a "sha256=" prefix.
func (s *WebhookService) VerifySignature(payload []byte, signature string) error {
	if len(s.secret) == 0 {
		slog.Warn("Webhook secret not configured, accepting unsigned delivery")
		return nil
	}
	signature = strings.TrimPrefix(signature, "sha256=")
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}

// Ingest verifies and enqueues one delivery. A replayed delivery_id is a
// no-op returning created=false.
func (s *WebhookService) Ingest(httpCtx context.Context, deliveryID, source, eventType string, payload []byte, signature string) (*ent.WebhookEvent, bool, error) {
	if deliveryID == "" {
		return nil, false, NewValidationError("delivery_id", "required")
	}
	if err := s.VerifySignature(payload, signature); err != nil {
		return nil, false, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	event, err := s.client.WebhookEvent.Create().
		SetID(uuid.New().String()).
		SetDeliveryID(deliveryID).
		SetSource(source).
		SetEventType(eventType).
		SetPayload(string(payload)).
		SetStatus(webhookevent.StatusPending).
		SetMaxAttempts(s.maxAttempts).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, qerr := s.client.WebhookEvent.Query().
				Where(webhookevent.DeliveryID(deliveryID)).
				Only(ctx)
			if qerr != nil {
				return nil, false, fmt.Errorf("failed to load duplicate delivery: %w", qerr)
			}
			slog.Info("Duplicate webhook delivery ignored", "delivery_id", deliveryID)
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to enqueue webhook event: %w", err)
	}
	return event, true, nil
}

// ClaimNext atomically claims the oldest processable event. Returns nil
// with no error when the queue is empty.
func (s *WebhookService) ClaimNext(ctx context.Context) (*ent.WebhookEvent, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	event, err := tx.WebhookEvent.Query().
		Where(
			webhookevent.StatusEQ(webhookevent.StatusPending),
			webhookevent.Or(
				webhookevent.NextRetryAtIsNil(),
				webhookevent.NextRetryAtLTE(now),
			),
		).
		Order(ent.Asc(webhookevent.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to claim webhook event: %w", err)
	}

	claimed, err := event.Update().
		SetStatus(webhookevent.StatusInFlight).
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark event in flight: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// MarkCompleted finalizes a successfully processed event.
func (s *WebhookService) MarkCompleted(ctx context.Context, eventID string) error {
	err := s.client.WebhookEvent.UpdateOneID(eventID).
		SetStatus(webhookevent.StatusCompleted).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete webhook event: %w", err)
	}
	return nil
}

// MarkFailed records a processing failure. The event is rescheduled with
// exponential backoff until max_attempts, after which it stays failed as a
// dead letter.
func (s *WebhookService) MarkFailed(ctx context.Context, eventID string, procErr error) error {
	event, err := s.client.WebhookEvent.Get(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to load webhook event: %w", err)
	}

	builder := event.Update().SetLastError(procErr.Error())
	if event.Attempts >= event.MaxAttempts {
		builder.SetStatus(webhookevent.StatusFailed)
		slog.Error("Webhook event dead-lettered",
			"delivery_id", event.DeliveryID,
			"attempts", event.Attempts,
			"error", procErr)
	} else {
		delay := retryBackoffBase << (event.Attempts - 1)
		builder.
			SetStatus(webhookevent.StatusPending).
			SetNextRetryAt(time.Now().Add(delay))
		slog.Warn("Webhook event retry scheduled",
			"delivery_id", event.DeliveryID,
			"attempt", event.Attempts,
			"retry_in", delay)
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record webhook failure: %w", err)
	}
	return nil
}

// taskPayload is the subset of a webhook payload that creates a task.
type taskPayload struct {
	Action string `json:"action"`
	Repo   string `json:"repo"`
	Issue  struct {
		Number int      `json:"number"`
		Title  string   `json:"title"`
		Body   string   `json:"body"`
		Labels []string `json:"labels"`
	} `json:"issue"`
	DryRun bool `json:"dry_run"`
}

// ParseTaskRequest extracts a task creation request from an event payload.
// Returns nil when the event is not task-creating (wrong action).
func ParseTaskRequest(event *ent.WebhookEvent) (*models.CreateTaskRequest, error) {
	var p taskPayload
	if err := json.Unmarshal([]byte(event.Payload), &p); err != nil {
		return nil, fmt.Errorf("failed to parse webhook payload: %w", err)
	}
	switch p.Action {
	case "labeled", "assigned", "opened":
	default:
		return nil, nil
	}
	if p.Repo == "" || p.Issue.Number == 0 {
		return nil, NewValidationError("payload", "missing repo or issue number")
	}
	return &models.CreateTaskRequest{
		Repo:        p.Repo,
		IssueNumber: p.Issue.Number,
		Title:       p.Issue.Title,
		Body:        p.Issue.Body,
		DryRun:      p.DryRun,
		DeliveryID:  event.DeliveryID,
	}, nil
}
