package usecase

import (
	"context"
	"log/slog"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/sync/semaphore"

	"github.com/allisson/vidfetch/internal/config"
	videoDomain "github.com/allisson/vidfetch/internal/video/domain"
	videoService "github.com/allisson/vidfetch/internal/video/service"
)

// maxDescriptionLength bounds the description field in probe responses.
const maxDescriptionLength = 500

// videoUseCase orchestrates probe and download jobs against the extraction
// engine. Download work runs on a bounded worker pool so long transfers
// cannot starve request admission.
type videoUseCase struct {
	engine  videoService.Engine
	cfg     *config.Config
	logger  *slog.Logger
	workers *semaphore.Weighted
}

// NewVideoUseCase creates a video use case with required dependencies.
func NewVideoUseCase(
	engine videoService.Engine,
	cfg *config.Config,
	logger *slog.Logger,
) VideoUseCase {
	return &videoUseCase{
		engine:  engine,
		cfg:     cfg,
		logger:  logger,
		workers: semaphore.NewWeighted(cfg.MaxConcurrentDownloads),
	}
}

// GetInfo validates the URL and probes the engine for metadata.
func (v *videoUseCase) GetInfo(ctx context.Context, url string) (*videoDomain.VideoInfo, error) {
	if err := videoDomain.ValidateURL(url); err != nil {
		return nil, err
	}

	metadata, err := v.engine.Probe(ctx, url)
	if err != nil {
		return nil, err
	}

	return &videoDomain.VideoInfo{
		Title:       metadata.Title,
		Duration:    metadata.Duration,
		Uploader:    metadata.Uploader,
		ViewCount:   metadata.ViewCount,
		UploadDate:  metadata.UploadDate,
		Description: truncateDescription(metadata.Description),
	}, nil
}

// Download validates the request and runs the extraction job on a bounded
// worker while the caller waits for the terminal result.
func (v *videoUseCase) Download(
	ctx context.Context,
	input *videoDomain.DownloadInput,
) (*videoDomain.DownloadResult, error) {
	if err := videoDomain.ValidateURL(input.URL); err != nil {
		return nil, err
	}

	quality, err := videoDomain.ParseQuality(input.Quality)
	if err != nil {
		return nil, err
	}

	job := &videoDomain.DownloadJob{
		URL:            input.URL,
		Quality:        quality,
		FormatSelector: quality.FormatSelector(),
		MaxDuration:    int64(v.cfg.MaxVideoDuration.Seconds()),
		MaxFileSize:    v.cfg.MaxFileSize,
	}

	// Bound the whole job, including the wait for a worker slot
	ctx, cancel := context.WithTimeout(ctx, v.cfg.DownloadTimeout)
	defer cancel()

	if err := v.workers.Acquire(ctx, 1); err != nil {
		v.logger.Warn("download rejected while waiting for a worker slot",
			slog.String("url", job.URL))
		return nil, err
	}

	type jobOutcome struct {
		result *videoDomain.DownloadResult
		err    error
	}
	outcome := make(chan jobOutcome, 1)

	go func() {
		defer v.workers.Release(1)
		result, err := v.runJob(ctx, job)
		outcome <- jobOutcome{result: result, err: err}
	}()

	select {
	case o := <-outcome:
		return o.result, o.err
	case <-ctx.Done():
		// The worker sees the same cancellation and aborts the engine call
		v.logger.Warn("download timed out",
			slog.String("url", job.URL),
			slog.String("quality", string(job.Quality)))
		return nil, ctx.Err()
	}
}

// runJob executes a single download job: probe, enforce the duration ceiling,
// then fetch with a sanitized output name.
func (v *videoUseCase) runJob(
	ctx context.Context,
	job *videoDomain.DownloadJob,
) (*videoDomain.DownloadResult, error) {
	metadata, err := v.engine.Probe(ctx, job.URL)
	if err != nil {
		return nil, err
	}

	if job.MaxDuration > 0 && metadata.Duration > job.MaxDuration {
		v.logger.Warn("download rejected: duration ceiling exceeded",
			slog.String("url", job.URL),
			slog.Int64("duration", metadata.Duration),
			slog.Int64("max_duration", job.MaxDuration))
		return nil, videoDomain.ErrDurationExceeded
	}

	base := videoDomain.SanitizeFilename(metadata.Title)
	outputTemplate := filepath.Join(v.cfg.DownloadDir, base+".%(ext)s")

	fetched, err := v.engine.Fetch(ctx, job.URL, job.FormatSelector, outputTemplate, job.MaxFileSize)
	if err != nil {
		return nil, err
	}

	filename := base
	if fetched.Ext != "" {
		filename = base + "." + fetched.Ext
	}

	v.logger.Info("download completed",
		slog.String("url", job.URL),
		slog.String("quality", string(job.Quality)),
		slog.String("filename", filename))

	return &videoDomain.DownloadResult{
		Success:  true,
		Title:    metadata.Title,
		Duration: metadata.Duration,
		Uploader: metadata.Uploader,
		Filename: filename,
		Message:  "download completed",
	}, nil
}

// truncateDescription caps the description for transport. The cut backs up
// to a rune boundary so the result stays valid UTF-8.
func truncateDescription(description string) string {
	if len(description) <= maxDescriptionLength {
		return description
	}

	cut := maxDescriptionLength
	for cut > 0 && !utf8.RuneStart(description[cut]) {
		cut--
	}
	return description[:cut] + "..."
}
