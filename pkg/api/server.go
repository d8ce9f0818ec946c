package api

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forgeflow/forgeflow/pkg/events"
	"github.com/forgeflow/forgeflow/pkg/queue"
	"github.com/forgeflow/forgeflow/pkg/services"
	"github.com/forgeflow/forgeflow/pkg/version"
)

// Server is the HTTP surface: task submission and inspection, webhook
// ingestion, event streaming, memory queries, and health.
type Server struct {
	tasks      *services.TaskService
	memory     *services.MemoryQueryService
	webhooks   *services.WebhookService
	pool       *queue.WorkerPool
	taskEvents *services.EventService
	hub        *events.SubscriberHub
	models     *services.ModelConfigService
	db         *sql.DB

	httpServer *http.Server
}

// NewServer creates the API server. webhooks, pool, taskEvents, and hub may
// be nil; the corresponding endpoints report 503.
func NewServer(tasks *services.TaskService, memory *services.MemoryQueryService, webhooks *services.WebhookService, pool *queue.WorkerPool, taskEvents *services.EventService, hub *events.SubscriberHub) *Server {
	return &Server{
		tasks:      tasks,
		memory:     memory,
		webhooks:   webhooks,
		pool:       pool,
		taskEvents: taskEvents,
		hub:        hub,
	}
}

// SetDatabase attaches the raw connection pool so /health can report
// database reachability alongside worker pool state.
func (s *Server) SetDatabase(db *sql.DB) {
	s.db = db
}

// SetModelConfigs enables the model administration endpoints.
func (s *Server) SetModelConfigs(svc *services.ModelConfigService) {
	s.models = svc
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	r.GET("/health", s.healthHandler)
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"app": version.AppName, "commit": version.GitCommit})
	})
	r.GET("/metrics", metricsHandler())

	r.POST("/webhooks/github", s.webhookHandler)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/tasks", s.createTaskHandler)
		v1.GET("/tasks", s.listTasksHandler)
		v1.GET("/tasks/:id", s.getTaskHandler)
		v1.GET("/tasks/:id/status", s.taskStatusHandler)
		v1.GET("/tasks/:id/events", s.listTaskEventsHandler)
		v1.GET("/tasks/:id/events/stream", s.streamTaskEventsHandler)
		v1.GET("/tasks/:id/subtasks", s.listSubtasksHandler)
		v1.POST("/tasks/:id/cancel", s.cancelTaskHandler)
		v1.DELETE("/tasks/:id", s.deleteTaskHandler)

		v1.POST("/memory/query", s.memoryQueryHandler)

		v1.GET("/models", s.listModelConfigsHandler)
		v1.GET("/models/:purpose", s.getModelConfigHandler)
		v1.PUT("/models/:purpose", s.putModelConfigHandler)
	}
	return r
}

// Start begins serving on addr. Blocks until the listener closes.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
