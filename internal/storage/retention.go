// Package storage manages the lifecycle of downloaded artifacts on disk.
package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// RetentionManager removes downloaded artifacts once they exceed a maximum age.
// Sweeps are best effort: a failure deleting one file is logged and does not
// abort the rest of the batch.
type RetentionManager struct {
	dir    string
	logger *slog.Logger
	remove func(path string) error
}

// NewRetentionManager creates a retention manager for the given directory.
func NewRetentionManager(dir string, logger *slog.Logger) *RetentionManager {
	return &RetentionManager{
		dir:    dir,
		logger: logger,
		remove: os.Remove,
	}
}

// Sweep deletes files in the managed directory whose last-modified timestamp
// is older than maxAge and returns the number of files removed.
// Subdirectories are skipped. maxAge zero removes every file.
func (r *RetentionManager) Sweep(ctx context.Context, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			r.logger.Warn("retention sweep could not stat file",
				slog.String("filename", entry.Name()),
				slog.Any("error", err))
			continue
		}

		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(r.dir, entry.Name())
		if err := r.remove(path); err != nil {
			r.logger.Warn("retention sweep could not remove file",
				slog.String("filename", entry.Name()),
				slog.Any("error", err))
			continue
		}

		removed++
	}

	if removed > 0 {
		r.logger.Info("retention sweep completed",
			slog.Int("files_removed", removed),
			slog.Duration("max_age", maxAge))
	}

	return removed, nil
}

// Run sweeps on a fixed interval until the context is canceled.
func (r *RetentionManager) Run(ctx context.Context, interval, maxAge time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.Sweep(ctx, maxAge); err != nil {
				r.logger.Error("retention sweep failed", slog.Any("error", err))
			}
		}
	}
}
