// Package usecase implements the business logic for video probing and download
// orchestration.
package usecase

import (
	"context"

	videoDomain "github.com/allisson/vidfetch/internal/video/domain"
)

// VideoUseCase defines the business operations for video handling.
type VideoUseCase interface {
	// GetInfo validates the URL and returns engine-reported metadata without
	// transferring media.
	GetInfo(ctx context.Context, url string) (*videoDomain.VideoInfo, error)

	// Download validates the request, runs the extraction job on a bounded
	// worker and returns the terminal result. The call is synchronous from
	// the caller's view; the per-request timeout bounds the wait.
	Download(ctx context.Context, input *videoDomain.DownloadInput) (*videoDomain.DownloadResult, error)
}
