// Package worker implements background maintenance loops.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/highshiftmedia/crmhub/internal/snapshot"
)

// SnapshotStore defines the store operations needed by the backup worker.
type SnapshotStore interface {
	GenerateSnapshot(ctx context.Context) error
	GetSnapshotPath(ctx context.Context) (string, error)
}

// BackupWorker generates periodic database snapshots and optionally
// uploads them to S3-compatible storage.
type BackupWorker struct {
	store    SnapshotStore
	uploader snapshot.Uploader
	interval time.Duration
}

// NewBackupWorker creates a worker with the given store and interval.
// The uploader parameter is optional; if nil, no S3 upload is attempted.
func NewBackupWorker(store SnapshotStore, interval time.Duration, uploader snapshot.Uploader) *BackupWorker {
	return &BackupWorker{
		store:    store,
		uploader: uploader,
		interval: interval,
	}
}

// Run starts the worker loop. Generates a snapshot immediately on start,
// then on each interval. Respects context cancellation for graceful shutdown.
func (w *BackupWorker) Run(ctx context.Context) {
	slog.Info("worker started",
		"component", "worker",
		"worker", "snapshot-backup",
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Generate a snapshot immediately on start
	w.generateSnapshot(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("worker stopped",
				"component", "worker",
				"worker", "snapshot-backup",
				"reason", "context_cancelled",
			)
			return
		case <-ticker.C:
			w.generateSnapshot(ctx)
		}
	}
}

// generateSnapshot generates a snapshot, uploads it when configured,
// and logs any errors.
func (w *BackupWorker) generateSnapshot(ctx context.Context) {
	slog.Info("snapshot generation started",
		"component", "worker",
		"action", "snapshot_start",
	)

	if err := w.store.GenerateSnapshot(ctx); err != nil {
		// Context cancellation means graceful shutdown
		if ctx.Err() != nil {
			return
		}
		slog.Warn("snapshot generation failed",
			"component", "worker",
			"action", "snapshot_failed",
			"error", err,
		)
		return
	}

	w.uploadSnapshot(ctx)
}

// uploadSnapshot uploads the generated snapshot when an uploader is configured.
func (w *BackupWorker) uploadSnapshot(ctx context.Context) {
	if w.uploader == nil {
		return
	}
	if _, ok := w.uploader.(*snapshot.NoopUploader); ok {
		return
	}

	path, err := w.store.GetSnapshotPath(ctx)
	if err != nil {
		slog.Warn("snapshot path unavailable for upload",
			"component", "worker",
			"action", "snapshot_upload_skipped",
			"error", err,
		)
		return
	}

	if err := w.uploader.Upload(ctx, path); err != nil {
		if ctx.Err() != nil {
			return
		}
		slog.Warn("snapshot upload failed",
			"component", "worker",
			"action", "snapshot_upload_failed",
			"error", err,
		)
		return
	}

	slog.Info("snapshot uploaded",
		"component", "worker",
		"action", "snapshot_uploaded",
	)
}
