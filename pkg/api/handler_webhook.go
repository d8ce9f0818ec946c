package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgeflow/forgeflow/pkg/services"
)

// maxWebhookBody caps inbound webhook payloads at 1 MiB.
const maxWebhookBody = 1 << 20

// webhookHandler handles POST /webhooks/github. The payload is verified
// against the shared HMAC secret, persisted, and acknowledged immediately;
// the webhook worker processes it asynchronously.
func (s *Server) webhookHandler(c *gin.Context) {
	if s.webhooks == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "webhook ingestion is not configured"})
		return
	}

	deliveryID := c.GetHeader("X-GitHub-Delivery")
	eventType := c.GetHeader("X-GitHub-Event")
	signature := c.GetHeader("X-Hub-Signature-256")

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read payload"})
		return
	}

	if err := s.webhooks.VerifySignature(payload, signature); err != nil {
		if errors.Is(err, services.ErrInvalidSignature) {
			webhooksReceived.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"error": "signature verification failed"})
			return
		}
		abortWithServiceError(c, err)
		return
	}

	event, created, err := s.webhooks.Ingest(c.Request.Context(), deliveryID, "github", eventType, payload, signature)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if !created {
		webhooksReceived.WithLabelValues("duplicate").Inc()
		c.JSON(http.StatusOK, gin.H{"event_id": event.ID, "duplicate": true})
		return
	}
	webhooksReceived.WithLabelValues("accepted").Inc()
	c.JSON(http.StatusAccepted, gin.H{"event_id": event.ID})
}
