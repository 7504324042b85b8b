// Forge worker plane — runs the build pipeline workers, the queue runtime,
// and the inbound HTTP/WebSocket surface.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/appforge/forge/pkg/accounting"
	"github.com/appforge/forge/pkg/api"
	"github.com/appforge/forge/pkg/build"
	"github.com/appforge/forge/pkg/config"
	"github.com/appforge/forge/pkg/database"
	"github.com/appforge/forge/pkg/events"
	"github.com/appforge/forge/pkg/limits"
	"github.com/appforge/forge/pkg/pipeline"
	"github.com/appforge/forge/pkg/queue"
	"github.com/appforge/forge/pkg/services"
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
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	podID := resolvePodID()
	slog.Info("Starting forge", "pod_id", podID, "config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Connect redis: throttles, rollback leases, delivery dedup
	redisClient, err := limits.NewRedisClient(ctx, cfg.Limits)
	if err != nil {
		slog.Error("Failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer func() { _ = redisClient.Close() }()

	throttle := limits.NewRateLimiter(redisClient, cfg.Limits.UserInitiateLimit, cfg.Limits.UserInitiateWindow)
	leases := limits.NewLeaseManager(redisClient, cfg.Limits.RollbackLeaseTTL)

	// 4. Domain services
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	projectService := services.NewProjectService(dbClient.Client, leases)
	timelineService := services.NewTimelineService(dbClient.Client, dbClient.DB(), eventPublisher)
	versionService := services.NewVersionService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	accountingService := accounting.NewService(dbClient.Client, cfg.Accounting)

	// 5. Streaming infrastructure
	coalescer := events.NewCoalescer(eventPublisher, time.Second)
	coalescer.Start(ctx)
	defer coalescer.Stop()

	connManager := events.NewConnectionManager(
		api.NewEventCatchupAdapter(eventService), cfg.Server.WSWriteTimeout)
	connManager.SetDeliveryDeduper(
		limits.NewIdempotencyStore(redisClient, cfg.Limits.DeliveryMarkerTTL))

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 6. Queue runtime, limit controller, workers
	runtime, err := queue.NewRuntime(podID, dbClient.Client, cfg.Queue)
	if err != nil {
		slog.Error("Failed to create queue runtime", "error", err)
		os.Exit(1)
	}

	limiter := limits.NewController(dbClient.Client, runtime, cfg.Limits)

	streamWorker := pipeline.NewStreamWorker(pipeline.StreamWorkerDeps{
		Client:          dbClient.Client,
		Projects:        projectService,
		Versions:        versionService,
		Timeline:        timelineService,
		Accounting:      accountingService,
		Publisher:       eventPublisher,
		Progress:        coalescer,
		Limiter:         limiter,
		Enqueuer:        runtime,
		AgentConfig:     cfg.Agent,
		WorkspaceConfig: cfg.Workspace,
		SystemConfig:    cfg.System,
	})
	metadataWorker := pipeline.NewMetadataWorker(
		projectService, versionService, timelineService, cfg.Agent, cfg.Workspace)
	deployWorker := pipeline.NewDeployWorker(
		dbClient.Client, projectService, versionService, timelineService, eventPublisher,
		pipeline.NewBaseURLDeployer(cfg.System.PreviewBaseURL), cfg.Workspace)
	housekeepingWorker := pipeline.NewHousekeepingWorker(dbClient.Client, eventService, cfg.System)

	deferral := services.NewRollbackDeferralPolicy(projectService)
	runtime.RegisterWorker(config.QueueStageOne, cfg.Queue.StreamConcurrency, streamWorker,
		queue.WithDeferralPolicy(deferral))
	runtime.RegisterWorker(config.QueueMetadata, cfg.Queue.MetadataConcurrency, metadataWorker,
		queue.WithDeferralPolicy(deferral))
	runtime.RegisterWorker(config.QueueDeploy, cfg.Queue.DeployConcurrency, deployWorker,
		queue.WithDeferralPolicy(deferral))
	runtime.RegisterWorker(config.QueueHousekeep, 1, housekeepingWorker)

	if err := runtime.AddRepeatable("housekeeping", cfg.System.CleanupInterval, queue.JobRequest{
		Queue: config.QueueHousekeep,
		Name:  "housekeeping",
	}); err != nil {
		slog.Error("Failed to schedule housekeeping", "error", err)
		os.Exit(1)
	}

	// Re-arm a limit that was active when the previous process died.
	if err := limiter.Restore(ctx); err != nil {
		slog.Error("Failed to restore limit state", "error", err)
		os.Exit(1)
	}

	if err := runtime.Start(ctx); err != nil {
		slog.Error("Failed to start queue runtime", "error", err)
		os.Exit(1)
	}

	// 7. Build initiator and HTTP server
	initiator := build.NewInitiator(
		dbClient.Client, projectService, timelineService, runtime, throttle, limiter, cfg.Workspace)

	server := api.NewServer(api.ServerDeps{
		DB:          dbClient,
		Config:      cfg,
		Initiator:   initiator,
		Projects:    projectService,
		Timeline:    timelineService,
		Versions:    versionService,
		Publisher:   eventPublisher,
		Queues:      runtime,
		Limiter:     limiter,
		ConnManager: connManager,
	})

	httpServer := &http.Server{
		Addr:        cfg.Server.Host + ":" + getEnv("HTTP_PORT", strconv.Itoa(cfg.Server.Port)),
		Handler:     server.Router(),
		ReadTimeout: cfg.Server.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("Forge started",
		"pod_id", podID,
		"stream_concurrency", cfg.Queue.StreamConcurrency)

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: stop dispatch first, then drain HTTP
	runtime.Stop()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
