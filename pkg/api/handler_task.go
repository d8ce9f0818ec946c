package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forgeflow/forgeflow/pkg/models"
)

// createTaskHandler handles POST /api/v1/tasks. Submitting a repo/issue
// pair that already has a live task returns the existing task with 200
// instead of 201.
func (s *Server) createTaskHandler(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, created, err := s.tasks.CreateTask(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	tasksSubmitted.WithLabelValues(boolLabel(created)).Inc()
	status := http.StatusOK
	if created {
		status = http.StatusCreated
		slog.Info("Task submitted",
			"task_id", t.ID, "repo", t.Repo, "issue", t.IssueNumber,
			"author", extractAuthor(c))
	}
	c.JSON(status, gin.H{"task": t, "created": created})
}

// getTaskHandler handles GET /api/v1/tasks/:id.
func (s *Server) getTaskHandler(c *gin.Context) {
	t, err := s.tasks.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// taskStatusHandler handles GET /api/v1/tasks/:id/status.
func (s *Server) taskStatusHandler(c *gin.Context) {
	status, err := s.tasks.GetStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// listSubtasksHandler handles GET /api/v1/tasks/:id/subtasks.
func (s *Server) listSubtasksHandler(c *gin.Context) {
	subs, err := s.tasks.ListSubtasks(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subtasks": subs})
}

// listTasksHandler handles GET /api/v1/tasks.
func (s *Server) listTasksHandler(c *gin.Context) {
	filters := models.TaskFilters{
		Repo:   c.Query("repo"),
		Status: c.Query("status"),
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		filters.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
			return
		}
		filters.Offset = n
	}
	if v := c.Query("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid created_after: must be RFC3339"})
			return
		}
		filters.CreatedAfter = &t
	}
	if v := c.Query("created_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid created_before: must be RFC3339"})
			return
		}
		filters.CreatedBefore = &t
	}

	result, err := s.tasks.ListTasks(c.Request.Context(), filters)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// cancelTaskHandler handles POST /api/v1/tasks/:id/cancel. The DB status
// flips first; the pool cancellation only reaches tasks running on this
// pod, other replicas observe the status row.
func (s *Server) cancelTaskHandler(c *gin.Context) {
	taskID := c.Param("id")

	t, err := s.tasks.CancelTask(c.Request.Context(), taskID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if s.pool != nil {
		s.pool.CancelTask(taskID)
	}

	slog.Info("Task cancelled", "task_id", taskID, "author", extractAuthor(c))
	c.JSON(http.StatusOK, gin.H{"task": t, "message": "task cancellation requested"})
}

// deleteTaskHandler handles DELETE /api/v1/tasks/:id (soft delete).
func (s *Server) deleteTaskHandler(c *gin.Context) {
	if err := s.tasks.SoftDelete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
