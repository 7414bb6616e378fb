package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lrstanley/go-ytdlp"

	apperrors "github.com/allisson/vidfetch/internal/errors"
)

// YtdlpEngine implements Engine on top of the yt-dlp binary via go-ytdlp.
// Engine failures are remapped to a sanitized category; the original error
// detail is logged server-side only and never surfaces to callers.
type YtdlpEngine struct {
	logger *slog.Logger
}

// NewYtdlpEngine creates an extraction engine backed by yt-dlp.
func NewYtdlpEngine(logger *slog.Logger) *YtdlpEngine {
	return &YtdlpEngine{logger: logger}
}

// Probe fetches metadata for the URL without transferring media.
func (e *YtdlpEngine) Probe(ctx context.Context, url string) (*Metadata, error) {
	dl := ytdlp.New().
		SkipDownload().
		NoPlaylist().
		DumpJSON()

	result, err := dl.Run(ctx, url)
	if err != nil {
		e.logger.Error("engine probe failed",
			slog.String("url", url),
			slog.Any("error", err))
		return nil, apperrors.Wrap(apperrors.ErrEngineFailure, "failed to fetch video information")
	}

	metadata, err := extractMetadata(result)
	if err != nil {
		e.logger.Error("engine probe returned no usable metadata",
			slog.String("url", url),
			slog.Any("error", err))
		return nil, apperrors.Wrap(apperrors.ErrEngineFailure, "failed to fetch video information")
	}

	return metadata, nil
}

// Fetch downloads the media file described by the URL and format selector.
// The output template controls the artifact path; maxFileSize aborts the
// transfer once exceeded.
func (e *YtdlpEngine) Fetch(
	ctx context.Context,
	url, formatSelector, outputTemplate string,
	maxFileSize int64,
) (*Metadata, error) {
	dl := ytdlp.New().
		Format(formatSelector).
		Output(outputTemplate).
		NoPlaylist().
		ForceOverwrites()

	if maxFileSize > 0 {
		dl = dl.MaxFileSize(fmt.Sprintf("%d", maxFileSize))
	}

	result, err := dl.Run(ctx, url)
	if err != nil {
		e.logger.Error("engine fetch failed",
			slog.String("url", url),
			slog.String("format", formatSelector),
			slog.Any("error", err))
		return nil, apperrors.Wrap(apperrors.ErrEngineFailure, "failed to download video")
	}

	metadata, err := extractMetadata(result)
	if err != nil {
		e.logger.Error("engine fetch returned no usable metadata",
			slog.String("url", url),
			slog.Any("error", err))
		return nil, apperrors.Wrap(apperrors.ErrEngineFailure, "failed to download video")
	}

	return metadata, nil
}

// extractMetadata maps the first extracted info entry to the engine-neutral
// metadata shape. All source fields are optional pointers.
func extractMetadata(result *ytdlp.Result) (*Metadata, error) {
	infos, err := result.GetExtractedInfo()
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("no extracted info in engine output")
	}

	info := infos[0]
	metadata := &Metadata{}

	if info.Title != nil {
		metadata.Title = *info.Title
	}
	if info.Duration != nil {
		metadata.Duration = int64(*info.Duration)
	}
	if info.Uploader != nil {
		metadata.Uploader = *info.Uploader
	}
	if info.ViewCount != nil {
		metadata.ViewCount = int64(*info.ViewCount)
	}
	if info.UploadDate != nil {
		metadata.UploadDate = *info.UploadDate
	}
	if info.Description != nil {
		metadata.Description = *info.Description
	}
	metadata.Ext = info.Extension

	return metadata, nil
}
