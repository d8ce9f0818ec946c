package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forgeflow/forgeflow/pkg/database"
)

const healthPingTimeout = 3 * time.Second

// healthHandler handles GET /health. Reports worker pool and database
// health; an unhealthy pool or unreachable database returns 503 so
// orchestration restarts the pod.
func (s *Server) healthHandler(c *gin.Context) {
	status := http.StatusOK
	state := "healthy"
	body := gin.H{}

	if s.pool == nil {
		body["pool"] = "disabled"
	} else {
		poolHealth := s.pool.Health()
		body["pool"] = poolHealth
		if !poolHealth.IsHealthy {
			status = http.StatusServiceUnavailable
			state = "unhealthy"
		}
	}

	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
		defer cancel()
		dbHealth, err := database.Health(ctx, s.db)
		body["database"] = dbHealth
		if err != nil {
			status = http.StatusServiceUnavailable
			state = "unhealthy"
		}
	}

	body["status"] = state
	c.JSON(status, body)
}
