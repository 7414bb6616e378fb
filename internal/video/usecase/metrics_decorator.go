package usecase

import (
	"context"
	"time"

	"github.com/allisson/vidfetch/internal/metrics"
	videoDomain "github.com/allisson/vidfetch/internal/video/domain"
)

// videoUseCaseWithMetrics decorates VideoUseCase with metrics instrumentation.
type videoUseCaseWithMetrics struct {
	next    VideoUseCase
	metrics metrics.BusinessMetrics
}

// NewVideoUseCaseWithMetrics wraps a VideoUseCase with metrics recording.
func NewVideoUseCaseWithMetrics(useCase VideoUseCase, m metrics.BusinessMetrics) VideoUseCase {
	return &videoUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// GetInfo records metrics for probe operations.
func (v *videoUseCaseWithMetrics) GetInfo(
	ctx context.Context,
	url string,
) (*videoDomain.VideoInfo, error) {
	start := time.Now()
	info, err := v.next.GetInfo(ctx, url)

	status := "success"
	if err != nil {
		status = "error"
	}

	v.metrics.RecordOperation(ctx, "video", "video_info", status)
	v.metrics.RecordDuration(ctx, "video", "video_info", time.Since(start), status)

	return info, err
}

// Download records metrics for download operations.
func (v *videoUseCaseWithMetrics) Download(
	ctx context.Context,
	input *videoDomain.DownloadInput,
) (*videoDomain.DownloadResult, error) {
	start := time.Now()
	result, err := v.next.Download(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	v.metrics.RecordOperation(ctx, "video", "video_download", status)
	v.metrics.RecordDuration(ctx, "video", "video_download", time.Since(start), status)

	return result, err
}
