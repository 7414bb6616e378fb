package http

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/vidfetch/internal/auth/http"
	"github.com/allisson/vidfetch/internal/httputil"
	"github.com/allisson/vidfetch/internal/storage"
)

// SystemHandler handles HTTP requests for service-level operations.
type SystemHandler struct {
	retention   *storage.RetentionManager
	downloadDir string
	maxAge      time.Duration
	logger      *slog.Logger
}

// NewSystemHandler creates a new system handler with required dependencies.
func NewSystemHandler(
	retention *storage.RetentionManager,
	downloadDir string,
	maxAge time.Duration,
	logger *slog.Logger,
) *SystemHandler {
	return &SystemHandler{
		retention:   retention,
		downloadDir: downloadDir,
		maxAge:      maxAge,
		logger:      logger,
	}
}

// RootHandler reports the service name and version.
// GET / - No authentication required.
func (h *SystemHandler) RootHandler(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "vidfetch api",
			"version": version,
		})
	}
}

// HealthHandler reports service health and download directory availability.
// GET /health - No authentication required.
func (h *SystemHandler) HealthHandler(c *gin.Context) {
	_, err := os.Stat(h.downloadDir)

	c.JSON(http.StatusOK, gin.H{
		"status":              "healthy",
		"timestamp":           time.Now().UTC().Format(time.RFC3339),
		"download_dir_exists": err == nil,
	})
}

// CleanupHandler sweeps artifacts older than the retention age on demand.
// DELETE /cleanup - Requires bearer authentication.
func (h *SystemHandler) CleanupHandler(c *gin.Context) {
	subject, _ := authHTTP.GetSubject(c.Request.Context())

	removed, err := h.retention.Sweep(c.Request.Context(), h.maxAge)
	if err != nil {
		h.logger.Error("cleanup failed",
			slog.String("user", subject),
			slog.Any("error", err))
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("cleanup executed",
		slog.String("user", subject),
		slog.Int("files_removed", removed))

	c.JSON(http.StatusOK, gin.H{
		"message":       "cleanup completed",
		"files_removed": removed,
	})
}
