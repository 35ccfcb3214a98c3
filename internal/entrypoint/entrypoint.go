package entrypoint

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/gardens/internal/config"
	"github.com/mrlokans/gardens/internal/database"
	"github.com/mrlokans/gardens/internal/database/gardens"
	"github.com/mrlokans/gardens/internal/exporters"
	http_controllers "github.com/mrlokans/gardens/internal/http"
	"github.com/mrlokans/gardens/internal/importers"
	"github.com/mrlokans/gardens/internal/scheduler"
	"github.com/mrlokans/gardens/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		zap.S().Infof("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.S().Fatalf("listen: %s", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.S().Infof("Shutdown Server, waiting %v before killing", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background work before the server goes away
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		zap.S().Errorf("Server Shutdown: %v", err)
	}

	zap.S().Info("Server exiting")
}

func Run(cfg *config.Config, version string) {
	zap.S().Infof("Starting Gardens v%s", version)

	// Schema setup failure is fatal
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		zap.S().Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			zap.S().Errorf("Error closing database: %v", err)
		}
	}()

	repo := gardens.NewRepository(db.DB)

	if cfg.Seed.OnStartup {
		importers.NewSeeder(repo, cfg.Seed.File).SeedIfEmpty()
	}

	exporter := exporters.NewSnapshotExporter(repo)

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			MaxRetries:        cfg.Tasks.MaxRetries,
			RetryDelay:        cfg.Tasks.RetryDelay,
			TaskTimeout:       cfg.Tasks.TaskTimeout,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			zap.S().Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				zap.S().Errorf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(tasks.NewExportSnapshotQueue(exporter))

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Interfaces stay nil when the queue is disabled
	var enqueuer scheduler.SnapshotEnqueuer
	var taskQueue http_controllers.SnapshotQueue
	if taskClient != nil {
		enqueuer = taskClient
		taskQueue = taskClient
	}

	snapshotScheduler := scheduler.NewSnapshotScheduler(scheduler.SnapshotConfig{
		Enabled:  cfg.Snapshot.Enabled,
		Schedule: cfg.Snapshot.Schedule,
		Path:     cfg.Snapshot.Path,
	}, exporter, enqueuer)
	if err := snapshotScheduler.Start(context.Background()); err != nil {
		zap.S().Errorf("Failed to start snapshot scheduler: %v", err)
	}

	routerCfg := http_controllers.RouterConfig{
		Gardens:        repo,
		Database:       db,
		Snapshots:      exporter,
		SnapshotPath:   cfg.Snapshot.Path,
		TaskQueue:      taskQueue,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		FrontendDir:    cfg.UI.FrontendDir,
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		snapshotScheduler.Stop()
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
