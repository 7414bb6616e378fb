// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// SecretKey is the symmetric key used to sign access tokens.
	// Production deployments must override the default.
	SecretKey string
	// SigningAlgorithm is the HMAC algorithm used to sign tokens (HS256, HS384, HS512).
	SigningAlgorithm string
	// AccessTokenExpiration is the duration after which an access token expires.
	AccessTokenExpiration time.Duration

	// APIUsername is the single configured login identity.
	APIUsername string
	// APIPassword is the plain password for the configured identity. It is hashed
	// at startup and never compared in plain text.
	APIPassword string

	// DownloadDir is the directory where downloaded media files are stored.
	DownloadDir string

	// RateLimitRequests is the number of requests allowed per client per window.
	RateLimitRequests int
	// RateLimitWindow is the length of the rolling rate limit window.
	RateLimitWindow time.Duration

	// MaxVideoDuration is the longest video the service agrees to download.
	MaxVideoDuration time.Duration
	// MaxFileSize is the hard cap in bytes passed to the extraction engine.
	MaxFileSize int64
	// MaxConcurrentDownloads bounds simultaneous extraction jobs.
	MaxConcurrentDownloads int64
	// DownloadTimeout is the wall-clock ceiling for a single download request.
	DownloadTimeout time.Duration

	// RetentionMaxAge is the age after which stored artifacts are swept.
	RetentionMaxAge time.Duration
	// RetentionSweepInterval is the period of the background sweep.
	// Zero disables the background sweep; cleanup stays on-demand only.
	RetentionSweepInterval time.Duration

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 8000),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Auth
		SecretKey:             env.GetString("SECRET_KEY", "insecure-dev-secret-change-in-production"),
		SigningAlgorithm:      env.GetString("SIGNING_ALGORITHM", "HS256"),
		AccessTokenExpiration: env.GetDuration("ACCESS_TOKEN_EXPIRATION_MINUTES", 30, time.Minute),
		APIUsername:           env.GetString("API_USERNAME", "admin"),
		APIPassword:           env.GetString("API_PASSWORD", "password123"),

		// Storage
		DownloadDir: env.GetString("DOWNLOAD_DIR", "./data/downloads"),

		// Rate limiting
		RateLimitRequests: env.GetInt("RATE_LIMIT_REQUESTS", 10),
		RateLimitWindow:   env.GetDuration("RATE_LIMIT_WINDOW_SECONDS", 60, time.Second),

		// Download policy
		MaxVideoDuration:       env.GetDuration("MAX_VIDEO_DURATION_SECONDS", 3600, time.Second),
		MaxFileSize:            env.GetInt64("MAX_FILE_SIZE_BYTES", 500*1024*1024),
		MaxConcurrentDownloads: env.GetInt64("MAX_CONCURRENT_DOWNLOADS", 3),
		DownloadTimeout:        env.GetDuration("DOWNLOAD_TIMEOUT_MINUTES", 15, time.Minute),

		// Retention
		RetentionMaxAge:        env.GetDuration("RETENTION_MAX_AGE_HOURS", 24, time.Hour),
		RetentionSweepInterval: env.GetDuration("RETENTION_SWEEP_INTERVAL_MINUTES", 0, time.Minute),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", "http://localhost:3000"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "vidfetch"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8001),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	case "info", "warn", "error":
		return "release"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
