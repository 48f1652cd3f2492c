package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/highshiftmedia/crmhub/internal/api"
	"github.com/highshiftmedia/crmhub/internal/config"
	"github.com/highshiftmedia/crmhub/internal/crm"
	"github.com/highshiftmedia/crmhub/internal/insights"
	"github.com/highshiftmedia/crmhub/internal/snapshot"
	"github.com/highshiftmedia/crmhub/internal/store"
	"github.com/highshiftmedia/crmhub/internal/worker"
)

// Version is set at build time via ldflags: -ldflags "-X main.Version=1.0.0"
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "crmhub",
	Short: "CRM Hub - Highshift Media business management service",
	RunE:  run,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(insightsCmd)
}

func run(cmd *cobra.Command, args []string) error {
	// 1. Signal handling
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	// 2. Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("configuration loaded")

	// 3. Initialize logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)
	slog.Info("logger initialized", "level", cfg.Log.Level)

	// 4. Initialize store (migrations, WAL mode)
	db, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return err
	}
	slog.Info("store initialized", "path", cfg.Database.Path)

	// 5. Load the dataset into the record service
	svc := crm.NewService(ctx, db,
		crm.WithDemoConnectDelay(time.Duration(cfg.Demo.ConnectDelay)))
	slog.Info("record service initialized", "counts", svc.Counts())

	// 6. Initialize insights generator
	advisor := insights.NewOpenAI(cfg.Insights.APIKey, cfg.Insights.Model)
	gen := insights.NewGenerator(advisor)
	slog.Info("insights generator initialized", "model", cfg.Insights.Model)

	// 7. Initialize HTTP router
	handler := api.NewHandler(svc, gen, cfg.Auth.APIKey, Version)
	router := api.NewRouter(handler)
	slog.Info("router initialized")

	// 8. Configure HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout),
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout),
	}

	// 9. Start background workers
	var wg sync.WaitGroup
	if interval := time.Duration(cfg.Worker.SnapshotInterval); interval > 0 {
		uploader, err := snapshot.NewUploader(cfg.Snapshot)
		if err != nil {
			return err
		}
		backup := worker.NewBackupWorker(db, interval, uploader)
		startWorker(ctx, &wg, "snapshot-backup", backup.Run)
	}

	// 10. Start HTTP server in goroutine
	go func() {
		slog.Info("server starting", "address", addr)
		// ErrServerClosed is the expected error when Shutdown() is called gracefully.
		// Any other error indicates an actual server failure that should trigger shutdown.
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			cancel() // Trigger shutdown on server failure
		}
	}()

	// 11. Block until signal received
	<-ctx.Done()
	slog.Info("shutdown initiated")

	// 12. Graceful shutdown sequence
	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout))
	defer shutdownCancel()

	// 12a. Stop HTTP server (drains in-flight requests)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// 12b. Wait for workers to complete
	wg.Wait()

	// 12c. Close store
	if err := db.Close(); err != nil {
		slog.Error("store close error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// startWorker launches a background worker goroutine that respects context cancellation.
// Workers are tracked via WaitGroup for graceful shutdown.
func startWorker(ctx context.Context, wg *sync.WaitGroup, name string, fn func(ctx context.Context)) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info("worker started", "worker", name)
		fn(ctx)
		slog.Info("worker stopped", "worker", name)
	}()
}
