package http

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/vidfetch/internal/errors"
	"github.com/allisson/vidfetch/internal/httputil"
)

// windowLimiterStore holds per-client rolling window counters with automatic cleanup.
type windowLimiterStore struct {
	entries sync.Map // map[string]*windowLimiterEntry (client key -> counter)
	limit   int
	window  time.Duration
}

// windowLimiterEntry holds one client's window counter. The window start and
// count are only touched under the mutex so increment-and-compare is atomic:
// two racing requests can never both take the last slot.
type windowLimiterEntry struct {
	mu          sync.Mutex
	windowStart time.Time
	count       int
	lastAccess  time.Time
}

// admit counts the request against the client's current window and reports
// whether it fits under the ceiling, along with the time until the window
// rolls over.
func (s *windowLimiterStore) admit(clientKey string) (allowed bool, retryAfter time.Duration) {
	val, _ := s.entries.LoadOrStore(clientKey, &windowLimiterEntry{})
	entry := val.(*windowLimiterEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	entry.lastAccess = now

	// Roll the window over once it has fully elapsed
	if now.Sub(entry.windowStart) >= s.window {
		entry.windowStart = now
		entry.count = 0
	}

	entry.count++
	retryAfter = entry.windowStart.Add(s.window).Sub(now)

	return entry.count <= s.limit, retryAfter
}

// cleanupStale removes counters that haven't been touched recently.
// Runs periodically to prevent unbounded memory growth from client churn.
func (s *windowLimiterStore) cleanupStale(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			threshold := time.Now().Add(-1 * time.Hour)
			s.entries.Range(func(key, value interface{}) bool {
				entry := value.(*windowLimiterEntry)
				entry.mu.Lock()
				shouldDelete := entry.lastAccess.Before(threshold)
				entry.mu.Unlock()

				if shouldDelete {
					s.entries.Delete(key)
				}
				return true
			})
		}
	}
}

// RateLimitMiddleware enforces per-client request ceilings over a rolling window.
//
// Clients are keyed by network address via c.ClientIP(), which handles
// X-Forwarded-For, X-Real-IP and the direct remote address. Each middleware
// instance owns an independent store, so mounting one instance per endpoint
// group gives every group its own counters.
//
// Configuration:
//   - limit: Requests allowed per client within one window
//   - window: Length of the rolling window
//
// Returns:
//   - 429 Too Many Requests once the ceiling is reached (includes Retry-After)
//   - Continues: Request allowed within the window
func RateLimitMiddleware(limit int, window time.Duration, logger *slog.Logger) gin.HandlerFunc {
	store := &windowLimiterStore{
		limit:  limit,
		window: window,
	}

	// Start cleanup goroutine for stale counters (every 5 minutes)
	go store.cleanupStale(context.Background(), 5*time.Minute)

	return func(c *gin.Context) {
		clientKey := c.ClientIP()

		allowed, retryAfter := store.admit(clientKey)
		if !allowed {
			retrySeconds := int(math.Ceil(retryAfter.Seconds()))

			logger.Debug("rate limit exceeded",
				slog.String("client_ip", clientKey),
				slog.String("path", c.Request.URL.Path),
				slog.Int("retry_after", retrySeconds))

			c.Header("Retry-After", fmt.Sprintf("%d", retrySeconds))
			httputil.HandleErrorGin(c, apperrors.ErrRateLimited, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
