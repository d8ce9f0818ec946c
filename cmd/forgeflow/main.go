// ForgeFlow orchestrator server — ingests issue-tracker webhooks, runs the
// autonomous development pipeline through queue workers, and serves the
// HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/forgeflow/forgeflow/pkg/agent"
	"github.com/forgeflow/forgeflow/pkg/api"
	"github.com/forgeflow/forgeflow/pkg/cleanup"
	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/database"
	"github.com/forgeflow/forgeflow/pkg/events"
	"github.com/forgeflow/forgeflow/pkg/githost"
	"github.com/forgeflow/forgeflow/pkg/llm"
	"github.com/forgeflow/forgeflow/pkg/memory/archival"
	"github.com/forgeflow/forgeflow/pkg/memory/hooks"
	"github.com/forgeflow/forgeflow/pkg/memory/session"
	"github.com/forgeflow/forgeflow/pkg/memory/static"
	"github.com/forgeflow/forgeflow/pkg/queue"
	"github.com/forgeflow/forgeflow/pkg/sandbox"
	"github.com/forgeflow/forgeflow/pkg/services"
	"github.com/forgeflow/forgeflow/pkg/slack"
	"github.com/forgeflow/forgeflow/pkg/tracker"
	"github.com/forgeflow/forgeflow/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	var configDir string

	root := &cobra.Command{
		Use:          "forgeflow",
		Short:        "Autonomous development pipeline server",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configDir, "config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the orchestrator server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configDir)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Full())
		},
	})
	root.AddCommand(newExecuteCmd(&configDir))
	root.AddCommand(newStatusCmd())
	root.AddCommand(newMemoryCmd())

	if err := root.Execute(); err != nil {
		if errors.Is(err, errBlocked) {
			os.Exit(exitCodeBlocked)
		}
		os.Exit(1)
	}
}

func serve(configDir string) error {
	// Load .env file from config directory
	envPath := filepath.Join(configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting ForgeFlow",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, configDir)
	if err != nil {
		return fmt.Errorf("initialize configuration: %w", err)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		return fmt.Errorf("load database config: %w", err)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Domain services
	tasks := services.NewTaskService(dbClient.Client)
	webhooks := services.NewWebhookService(dbClient.Client, cfg.System.Webhook)

	// 5. LLM client and agents. Stored model configs override YAML defaults.
	modelConfigs := services.NewModelConfigService(dbClient.Client)
	overrides, err := modelConfigs.Overrides(ctx)
	if err != nil {
		slog.Error("Failed to load model config overrides, using defaults", "error", err)
	}
	for purpose, settings := range overrides {
		cfg.LLM.Models[purpose] = settings
	}
	llmClient, err := llm.NewClient(cfg.LLM)
	if err != nil {
		return fmt.Errorf("initialize LLM client: %w", err)
	}
	planner := agent.NewPlanner(llmClient)
	coder := agent.NewCoder(llmClient)
	fixer := agent.NewFixer(llmClient)
	reflector := agent.NewReflector(llmClient)

	// 6. Memory tiers
	sessions := session.NewManager(dbClient.Client)
	policies := static.NewStore(dbClient.Client)
	archive := archival.NewStore(dbClient.Client, llmClient.Embedder(), cfg.Archival)
	memoryQuery := services.NewMemoryQueryService(dbClient.Client, policies, archive)

	bus := hooks.NewBus()
	hooks.NewObservationRecorder(dbClient.Client).RegisterDefaults(bus)
	slog.Info("Memory tiers initialized", "embeddings", llmClient.Embedder() != nil)

	// Real-time event delivery: persist + NOTIFY on publish, LISTEN + SSE
	// fan-out on subscribe.
	publisher := events.NewEventPublisher(dbClient.DB())
	eventSvc := services.NewEventService(dbClient.Client)
	hub := events.NewSubscriberHub(nil, eventSvc)
	listener := events.NewNotifyListener(dbConfig.DSN(), hub)
	hub.SetListener(listener)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener, event streaming degraded", "error", err)
	}
	events.NewRecorder(publisher).RegisterHooks(bus)

	if notifier := slack.NewService(slack.ServiceConfig{
		Token:        os.Getenv("SLACK_BOT_TOKEN"),
		Channel:      os.Getenv("SLACK_CHANNEL_ID"),
		DashboardURL: os.Getenv("DASHBOARD_URL"),
	}); notifier != nil {
		notifier.RegisterHooks(bus)
		slog.Info("Slack notifications enabled")
	}

	// 7. Sandbox and external integrations
	commands := sandbox.NewExecutor(cfg.Sandbox.AllowCustomCommands, false)
	foreman := sandbox.NewForeman(commands, cfg.Sandbox)
	host := githost.NewClient(cfg.System.GitHost)
	trk := tracker.NewClient(cfg.System.Tracker)
	if !trk.Enabled() {
		slog.Info("Issue tracker not configured, ticket transitions disabled")
	}

	// 8. Pipeline executor and worker pool (before HTTP server)
	executor := queue.NewPipelineExecutor(
		dbClient.Client, cfg, tasks, sessions, policies, archive,
		planner, coder, fixer, reflector,
		foreman, commands, host, trk, bus,
	)
	webhookWorker := queue.NewWebhookWorker(webhooks, tasks, cfg.Queue)

	pool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, webhookWorker)
	if err := pool.Start(ctx); err != nil {
		return fmt.Errorf("start worker pool: %w", err)
	}

	// 9. Retention
	retention := cleanup.NewService(cfg.System.Retention, dbClient.Client, archive)
	retention.Start(ctx)

	// 10. HTTP server (non-blocking)
	server := api.NewServer(tasks, memoryQuery, webhooks, pool, eventSvc, hub)
	server.SetDatabase(dbClient.DB())
	server.SetModelConfigs(modelConfigs)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("ForgeFlow started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: drain workers within the configured budget,
	// then stop retention and the HTTP server.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete tasks will be orphan-recovered")
	}

	retention.Stop()
	hub.CloseAll()
	listener.Stop(ctx)

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := server.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
	return nil
}
