// Package http provides HTTP handlers for video operations.
package http

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/vidfetch/internal/auth/http"
	"github.com/allisson/vidfetch/internal/httputil"
	customValidation "github.com/allisson/vidfetch/internal/validation"
	videoDomain "github.com/allisson/vidfetch/internal/video/domain"
	"github.com/allisson/vidfetch/internal/video/http/dto"
	videoUseCase "github.com/allisson/vidfetch/internal/video/usecase"
)

// defaultQuality is used when a download request omits the quality field.
const defaultQuality = "best"

// VideoHandler handles HTTP requests for video operations.
type VideoHandler struct {
	videoUseCase videoUseCase.VideoUseCase
	downloadDir  string
	logger       *slog.Logger
}

// NewVideoHandler creates a new video handler with required dependencies.
func NewVideoHandler(
	videoUseCase videoUseCase.VideoUseCase,
	downloadDir string,
	logger *slog.Logger,
) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
		downloadDir:  downloadDir,
		logger:       logger,
	}
}

// InfoHandler returns engine-reported metadata for a video without downloading it.
// POST /video/info - Requires bearer authentication.
func (h *VideoHandler) InfoHandler(c *gin.Context) {
	var req dto.InfoRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	subject, _ := authHTTP.GetSubject(c.Request.Context())
	h.logger.Info("video info requested",
		slog.String("user", subject),
		slog.String("url", req.URL))

	info, err := h.videoUseCase.GetInfo(c.Request.Context(), req.URL)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.VideoInfoResponse{
		Title:       info.Title,
		Duration:    info.Duration,
		Uploader:    info.Uploader,
		ViewCount:   info.ViewCount,
		UploadDate:  info.UploadDate,
		Description: info.Description,
	}

	c.JSON(http.StatusOK, response)
}

// DownloadHandler downloads a video and reports the stored artifact.
// POST /video/download - Requires bearer authentication.
// The request is held open until the download completes, fails or times out.
func (h *VideoHandler) DownloadHandler(c *gin.Context) {
	var req dto.DownloadRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if req.Quality == "" {
		req.Quality = defaultQuality
	}

	subject, _ := authHTTP.GetSubject(c.Request.Context())
	h.logger.Info("video download requested",
		slog.String("user", subject),
		slog.String("url", req.URL),
		slog.String("quality", req.Quality))

	input := &videoDomain.DownloadInput{
		URL:     req.URL,
		Quality: req.Quality,
	}

	result, err := h.videoUseCase.Download(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.DownloadResponse{
		Success:  result.Success,
		Title:    result.Title,
		Duration: result.Duration,
		Uploader: result.Uploader,
		Filename: result.Filename,
		Message:  result.Message,
	}

	c.JSON(http.StatusOK, response)
}

// FileHandler streams a previously downloaded artifact to the client.
// GET /video/download/:filename - Requires bearer authentication.
func (h *VideoHandler) FileHandler(c *gin.Context) {
	filename := c.Param("filename")

	// Reject anything that is not a bare file name to keep reads
	// inside the download directory
	if filename == "" || filename != filepath.Base(filename) {
		httputil.HandleErrorGin(c, videoDomain.ErrFileNotFound, h.logger)
		return
	}

	path := filepath.Join(h.downloadDir, filename)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		httputil.HandleErrorGin(c, videoDomain.ErrFileNotFound, h.logger)
		return
	}

	subject, _ := authHTTP.GetSubject(c.Request.Context())
	h.logger.Info("file download requested",
		slog.String("user", subject),
		slog.String("filename", filename))

	c.FileAttachment(path, filename)
}
