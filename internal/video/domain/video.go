// Package domain defines the core domain models and types for video operations.
// Downloads are ephemeral jobs: each request creates a job, runs it against the
// extraction engine and produces a result; nothing is persisted across requests
// except the downloaded artifact itself.
package domain

import (
	"regexp"
	"strings"

	apperrors "github.com/allisson/vidfetch/internal/errors"
)

// Domain errors for video operations.
var (
	// ErrInvalidURL indicates the URL does not match a recognized media-host pattern.
	ErrInvalidURL = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid video url")
	// ErrUnknownQuality indicates an unrecognized quality token.
	ErrUnknownQuality = apperrors.Wrap(apperrors.ErrInvalidInput, "unknown quality")
	// ErrDurationExceeded indicates the video is longer than the configured ceiling.
	ErrDurationExceeded = apperrors.Wrap(apperrors.ErrPolicyViolation, "video duration exceeds the allowed maximum")
	// ErrFileNotFound indicates the requested artifact does not exist.
	ErrFileNotFound = apperrors.Wrap(apperrors.ErrNotFound, "file not found")
)

// Quality is a caller-supplied selector mapped to a concrete media-stream constraint.
type Quality string

// Supported quality selectors.
const (
	QualityWorst Quality = "worst"
	QualityBest  Quality = "best"
	Quality720p  Quality = "720p"
	Quality480p  Quality = "480p"
	Quality360p  Quality = "360p"
	QualityAudio Quality = "audio"
)

// formatSelectors maps each quality to the engine format constraint it resolves to.
// Height-bounded qualities pick the highest stream at or below the bound.
var formatSelectors = map[Quality]string{
	QualityWorst: "worst",
	QualityBest:  "best",
	Quality720p:  "best[height<=720]",
	Quality480p:  "best[height<=480]",
	Quality360p:  "best[height<=360]",
	QualityAudio: "bestaudio",
}

// ParseQuality validates a quality token and returns the typed quality.
// Unrecognized tokens are rejected, never silently defaulted.
func ParseQuality(s string) (Quality, error) {
	q := Quality(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := formatSelectors[q]; !ok {
		return "", ErrUnknownQuality
	}
	return q, nil
}

// FormatSelector returns the engine format constraint for the quality.
func (q Quality) FormatSelector() string {
	return formatSelectors[q]
}

// videoURLPattern matches recognized watch/embed link forms with an
// 11-character video id token.
var videoURLPattern = regexp.MustCompile(
	`^(https?://)?(www\.)?(youtube|youtu|youtube-nocookie)\.(com|be)/(watch\?v=|embed/|v/|.+\?v=)?([^&=%\?]{11})`,
)

// ValidateURL checks that the URL matches a recognized media-host pattern.
func ValidateURL(url string) error {
	if !videoURLPattern.MatchString(strings.TrimSpace(url)) {
		return ErrInvalidURL
	}
	return nil
}

// unsafeFilenameChars matches everything outside the safe filename class.
var unsafeFilenameChars = regexp.MustCompile(`[^\w\s-]`)

// SanitizeFilename derives a filesystem-safe base name from a video title.
// Characters outside the safe class are stripped and surrounding whitespace
// trimmed. An empty result falls back to "unknown". Collisions between
// sanitized titles are not deduplicated; the last write wins.
func SanitizeFilename(title string) string {
	base := unsafeFilenameChars.ReplaceAllString(title, "")
	base = strings.TrimSpace(base)
	if base == "" {
		return "unknown"
	}
	return base
}

// VideoInfo holds metadata reported by the extraction engine for a probe.
type VideoInfo struct {
	// Title is the engine-reported video title.
	Title string
	// Duration is the video length in seconds.
	Duration int64
	// Uploader is the channel or account that published the video.
	Uploader string
	// ViewCount is the engine-reported view count at probe time.
	ViewCount int64
	// UploadDate is the engine-reported publication date (YYYYMMDD).
	UploadDate string
	// Description is the video description, truncated for transport.
	Description string
}

// DownloadJob is the ephemeral per-request unit of download work.
type DownloadJob struct {
	// URL is the validated source URL.
	URL string
	// Quality is the parsed quality selector.
	Quality Quality
	// FormatSelector is the resolved engine format constraint.
	FormatSelector string
	// MaxDuration is the duration ceiling in seconds (0 disables the check).
	MaxDuration int64
	// MaxFileSize is the artifact size cap in bytes passed to the engine.
	MaxFileSize int64
}

// DownloadInput carries the caller's download request into the use case.
type DownloadInput struct {
	URL     string
	Quality string
}

// DownloadResult is the terminal outcome of a download job.
// It is produced once and never mutated afterwards.
type DownloadResult struct {
	// Success reports whether the artifact was written.
	Success bool
	// Title is the engine-reported video title.
	Title string
	// Duration is the video length in seconds.
	Duration int64
	// Uploader is the channel or account that published the video.
	Uploader string
	// Filename is the artifact name in the output directory.
	Filename string
	// Message is a human-readable status line.
	Message string
}
