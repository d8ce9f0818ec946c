package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgeflow/forgeflow/pkg/services"
)

// memoryQueryHandler handles POST /api/v1/memory/query. Read-only access
// to all three memory tiers for operators and debugging.
func (s *Server) memoryQueryHandler(c *gin.Context) {
	if s.memory == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "memory queries are not configured"})
		return
	}

	var req services.MemoryQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := s.memory.Query(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
