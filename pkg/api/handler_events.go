package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forgeflow/forgeflow/pkg/events"
)

// sseKeepaliveInterval spaces comment lines that keep intermediaries from
// timing out an idle stream.
const sseKeepaliveInterval = 30 * time.Second

// listTaskEventsHandler handles GET /api/v1/tasks/:id/events.
// Returns the persisted event history for a task, oldest first.
func (s *Server) listTaskEventsHandler(c *gin.Context) {
	if s.taskEvents == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event history not available"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	rows, err := s.taskEvents.ListTaskEvents(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": rows, "count": len(rows)})
}

// streamTaskEventsHandler handles GET /api/v1/tasks/:id/events/stream.
// Serves the task's event feed over SSE: persisted events after `since`
// (RFC3339, defaults to the beginning) are replayed first, then live events
// follow. Clients dedupe by event_id when reconnecting with `since`.
func (s *Server) streamTaskEventsHandler(c *gin.Context) {
	if s.hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event streaming not available"})
		return
	}

	taskID := c.Param("id")
	since := time.Unix(0, 0)
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid since, want RFC3339"})
			return
		}
		since = parsed
	}

	sub, err := s.hub.Subscribe(c.Request.Context(), events.TaskChannel(taskID), since)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "event subscription failed"})
		return
	}
	defer sub.Close()

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	keepalive := time.NewTicker(sseKeepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case payload, ok := <-sub.C:
			if !ok {
				return // hub shut down
			}
			fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
			c.Writer.Flush()
		case <-keepalive.C:
			fmt.Fprint(c.Writer, ": keepalive\n\n")
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}
