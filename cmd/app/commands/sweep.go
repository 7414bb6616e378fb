package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/allisson/vidfetch/internal/app"
	"github.com/allisson/vidfetch/internal/config"
)

// RunSweep removes downloaded files older than the retention age.
// A positive maxAgeHours overrides the configured retention age.
func RunSweep(ctx context.Context, maxAgeHours int) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()

	maxAge := cfg.RetentionMaxAge
	if maxAgeHours > 0 {
		maxAge = time.Duration(maxAgeHours) * time.Hour
	}

	removed, err := container.RetentionManager().Sweep(ctx, maxAge)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	logger.Info("sweep finished",
		slog.Int("files_removed", removed),
		slog.Duration("max_age", maxAge))

	fmt.Printf("removed %d file(s) older than %s\n", removed, maxAge)
	return nil
}
