package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgeflow/forgeflow/pkg/services"
)

// listModelConfigsHandler handles GET /api/v1/models. Only purposes with a
// stored override appear; absent purposes run on YAML defaults.
func (s *Server) listModelConfigsHandler(c *gin.Context) {
	if s.models == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model administration not available"})
		return
	}
	rows, err := s.models.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"models": rows, "count": len(rows)})
}

// getModelConfigHandler handles GET /api/v1/models/:purpose.
func (s *Server) getModelConfigHandler(c *gin.Context) {
	if s.models == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model administration not available"})
		return
	}
	row, err := s.models.Get(c.Request.Context(), c.Param("purpose"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// putModelConfigHandler handles PUT /api/v1/models/:purpose. Takes effect
// for new LLM clients; running pods pick it up on restart.
func (s *Server) putModelConfigHandler(c *gin.Context) {
	if s.models == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model administration not available"})
		return
	}

	var input services.ModelConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.Purpose = c.Param("purpose")
	if input.ChangedBy == "" {
		input.ChangedBy = extractAuthor(c)
	}

	row, err := s.models.Put(c.Request.Context(), input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}
