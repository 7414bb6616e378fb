// Package http provides the HTTP server and route wiring for the API.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/vidfetch/internal/auth/http"
	authUseCase "github.com/allisson/vidfetch/internal/auth/usecase"
	"github.com/allisson/vidfetch/internal/config"
	"github.com/allisson/vidfetch/internal/metrics"
	videoHTTP "github.com/allisson/vidfetch/internal/video/http"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates the API server with all routes and middleware wired.
// The write timeout is derived from the download timeout since download
// requests are held open until the job finishes.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	version string,
	authHandler *authHTTP.AuthHandler,
	videoHandler *videoHTTP.VideoHandler,
	systemHandler *SystemHandler,
	authUC authUseCase.AuthUseCase,
	metricsProvider *metrics.Provider,
) *Server {
	router := gin.New()

	router.Use(requestid.New(
		requestid.WithGenerator(func() string {
			id, err := uuid.NewV7()
			if err != nil {
				return uuid.NewString()
			}
			return id.String()
		}),
	))
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsEnabled && metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	authenticated := authHTTP.AuthenticationMiddleware(authUC, logger)

	// Unthrottled probes
	router.GET("/", systemHandler.RootHandler(version))
	router.GET("/health", systemHandler.HealthHandler)

	// Each endpoint group gets its own rate limiter instance so counters
	// are tracked per group
	authGroup := router.Group("/auth")
	authGroup.Use(authHTTP.RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow, logger))
	authGroup.POST("/login", authHandler.LoginHandler)

	systemGroup := router.Group("")
	systemGroup.Use(authHTTP.RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow, logger))
	systemGroup.Use(authenticated)
	systemGroup.DELETE("/cleanup", systemHandler.CleanupHandler)

	videoGroup := router.Group("/video")
	videoGroup.Use(authHTTP.RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow, logger))
	videoGroup.Use(authenticated)
	videoGroup.POST("/info", videoHandler.InfoHandler)
	videoGroup.POST("/download", videoHandler.DownloadHandler)
	videoGroup.GET("/download/:filename", videoHandler.FileHandler)

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: cfg.DownloadTimeout + 30*time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
