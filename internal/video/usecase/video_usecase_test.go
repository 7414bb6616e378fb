package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/allisson/vidfetch/internal/config"
	apperrors "github.com/allisson/vidfetch/internal/errors"
	videoDomain "github.com/allisson/vidfetch/internal/video/domain"
	videoService "github.com/allisson/vidfetch/internal/video/service"
	"github.com/allisson/vidfetch/internal/video/service/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testVideoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DownloadDir:            t.TempDir(),
		MaxVideoDuration:       time.Hour,
		MaxFileSize:            500 * 1024 * 1024,
		MaxConcurrentDownloads: 3,
		DownloadTimeout:        5 * time.Second,
	}
}

func TestVideoUseCaseGetInfo(t *testing.T) {
	t.Run("returns metadata for a valid url", func(t *testing.T) {
		engine := new(mocks.MockEngine)
		useCase := NewVideoUseCase(engine, testConfig(t), slog.Default())

		engine.On("Probe", mock.Anything, testVideoURL).Return(&videoService.Metadata{
			Title:       "Test Video",
			Duration:    212,
			Uploader:    "Test Channel",
			ViewCount:   1000000,
			UploadDate:  "20091025",
			Description: "A short description",
		}, nil)

		info, err := useCase.GetInfo(context.Background(), testVideoURL)
		require.NoError(t, err)
		assert.Equal(t, "Test Video", info.Title)
		assert.Equal(t, int64(212), info.Duration)
		assert.Equal(t, "Test Channel", info.Uploader)
		assert.Equal(t, int64(1000000), info.ViewCount)
		assert.Equal(t, "20091025", info.UploadDate)
		assert.Equal(t, "A short description", info.Description)

		engine.AssertExpectations(t)
	})

	t.Run("truncates long descriptions", func(t *testing.T) {
		engine := new(mocks.MockEngine)
		useCase := NewVideoUseCase(engine, testConfig(t), slog.Default())

		engine.On("Probe", mock.Anything, testVideoURL).Return(&videoService.Metadata{
			Title:       "Test Video",
			Description: strings.Repeat("a", 600),
		}, nil)

		info, err := useCase.GetInfo(context.Background(), testVideoURL)
		require.NoError(t, err)
		assert.Len(t, info.Description, 503)
		assert.True(t, strings.HasSuffix(info.Description, "..."))
	})

	t.Run("truncation never splits a multibyte rune", func(t *testing.T) {
		engine := new(mocks.MockEngine)
		useCase := NewVideoUseCase(engine, testConfig(t), slog.Default())

		// The byte cutoff lands in the middle of the two-byte "é"
		engine.On("Probe", mock.Anything, testVideoURL).Return(&videoService.Metadata{
			Title:       "Test Video",
			Description: strings.Repeat("a", 499) + strings.Repeat("é", 10),
		}, nil)

		info, err := useCase.GetInfo(context.Background(), testVideoURL)
		require.NoError(t, err)
		assert.True(t, utf8.ValidString(info.Description))
		assert.Equal(t, strings.Repeat("a", 499)+"...", info.Description)
	})

	t.Run("rejects invalid urls before calling the engine", func(t *testing.T) {
		engine := new(mocks.MockEngine)
		useCase := NewVideoUseCase(engine, testConfig(t), slog.Default())

		_, err := useCase.GetInfo(context.Background(), "not-a-url")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		engine.AssertNotCalled(t, "Probe")
	})

	t.Run("surfaces engine failures", func(t *testing.T) {
		engine := new(mocks.MockEngine)
		useCase := NewVideoUseCase(engine, testConfig(t), slog.Default())

		engine.On("Probe", mock.Anything, testVideoURL).
			Return(nil, apperrors.Wrap(apperrors.ErrEngineFailure, "failed to fetch video information"))

		_, err := useCase.GetInfo(context.Background(), testVideoURL)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEngineFailure)
	})
}

func TestVideoUseCaseDownload(t *testing.T) {
	t.Run("downloads and reports the artifact filename", func(t *testing.T) {
		engine := new(mocks.MockEngine)
		cfg := testConfig(t)
		useCase := NewVideoUseCase(engine, cfg, slog.Default())

		engine.On("Probe", mock.Anything, testVideoURL).Return(&videoService.Metadata{
			Title:    "My Video: Part 1!",
			Duration: 300,
			Uploader: "Test Channel",
		}, nil)
		engine.On("Fetch", mock.Anything, testVideoURL, "best[height<=720]",
			mock.MatchedBy(func(tmpl string) bool {
				return strings.HasSuffix(tmpl, "My Video Part 1.%(ext)s")
			}), cfg.MaxFileSize).Return(&videoService.Metadata{Ext: "mp4"}, nil)

		result, err := useCase.Download(context.Background(), &videoDomain.DownloadInput{
			URL:     testVideoURL,
			Quality: "720p",
		})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "My Video: Part 1!", result.Title)
		assert.Equal(t, int64(300), result.Duration)
		assert.Equal(t, "Test Channel", result.Uploader)
		assert.Equal(t, "My Video Part 1.mp4", result.Filename)
		assert.Equal(t, "download completed", result.Message)

		engine.AssertExpectations(t)
	})

	t.Run("rejects invalid urls before any engine call", func(t *testing.T) {
		engine := new(mocks.MockEngine)
		useCase := NewVideoUseCase(engine, testConfig(t), slog.Default())

		_, err := useCase.Download(context.Background(), &videoDomain.DownloadInput{
			URL:     "not-a-url",
			Quality: "best",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		engine.AssertNotCalled(t, "Probe")
		engine.AssertNotCalled(t, "Fetch")
	})

	t.Run("rejects unknown quality tokens before any engine call", func(t *testing.T) {
		engine := new(mocks.MockEngine)
		useCase := NewVideoUseCase(engine, testConfig(t), slog.Default())

		_, err := useCase.Download(context.Background(), &videoDomain.DownloadInput{
			URL:     testVideoURL,
			Quality: "1080p",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		engine.AssertNotCalled(t, "Probe")
		engine.AssertNotCalled(t, "Fetch")
	})

	t.Run("enforces the duration ceiling without fetching", func(t *testing.T) {
		engine := new(mocks.MockEngine)
		cfg := testConfig(t)
		cfg.MaxVideoDuration = 10 * time.Minute
		useCase := NewVideoUseCase(engine, cfg, slog.Default())

		engine.On("Probe", mock.Anything, testVideoURL).Return(&videoService.Metadata{
			Title:    "Feature Film",
			Duration: 7200,
		}, nil)

		_, err := useCase.Download(context.Background(), &videoDomain.DownloadInput{
			URL:     testVideoURL,
			Quality: "best",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrPolicyViolation)
		engine.AssertNotCalled(t, "Fetch")
	})

	t.Run("surfaces fetch failures", func(t *testing.T) {
		engine := new(mocks.MockEngine)
		useCase := NewVideoUseCase(engine, testConfig(t), slog.Default())

		engine.On("Probe", mock.Anything, testVideoURL).Return(&videoService.Metadata{
			Title:    "Test Video",
			Duration: 300,
		}, nil)
		engine.On("Fetch", mock.Anything, testVideoURL, "best", mock.Anything, mock.Anything).
			Return(nil, apperrors.Wrap(apperrors.ErrEngineFailure, "failed to download video"))

		_, err := useCase.Download(context.Background(), &videoDomain.DownloadInput{
			URL:     testVideoURL,
			Quality: "best",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEngineFailure)
	})

	t.Run("bounds concurrent downloads", func(t *testing.T) {
		engine := new(mocks.MockEngine)
		cfg := testConfig(t)
		cfg.MaxConcurrentDownloads = 2
		cfg.DownloadTimeout = 5 * time.Second
		useCase := NewVideoUseCase(engine, cfg, slog.Default())

		var inflight int64
		var maxInflight int64
		block := make(chan struct{})

		engine.On("Probe", mock.Anything, testVideoURL).
			Run(func(args mock.Arguments) {
				current := atomic.AddInt64(&inflight, 1)
				for {
					prev := atomic.LoadInt64(&maxInflight)
					if current <= prev || atomic.CompareAndSwapInt64(&maxInflight, prev, current) {
						break
					}
				}
				<-block
				atomic.AddInt64(&inflight, -1)
			}).
			Return(&videoService.Metadata{Title: "Test Video", Duration: 300}, nil)
		engine.On("Fetch", mock.Anything, testVideoURL, "best", mock.Anything, mock.Anything).
			Return(&videoService.Metadata{Ext: "mp4"}, nil)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = useCase.Download(context.Background(), &videoDomain.DownloadInput{
					URL:     testVideoURL,
					Quality: "best",
				})
			}()
		}

		// Give the workers time to saturate the pool, then let them run
		time.Sleep(100 * time.Millisecond)
		close(block)
		wg.Wait()

		assert.LessOrEqual(t, atomic.LoadInt64(&maxInflight), int64(2))
	})

	t.Run("honors the per request timeout", func(t *testing.T) {
		engine := new(mocks.MockEngine)
		cfg := testConfig(t)
		cfg.DownloadTimeout = 50 * time.Millisecond
		useCase := NewVideoUseCase(engine, cfg, slog.Default())

		engine.On("Probe", mock.Anything, testVideoURL).
			Run(func(args mock.Arguments) {
				ctx := args.Get(0).(context.Context)
				<-ctx.Done()
			}).
			Return(nil, context.DeadlineExceeded)

		_, err := useCase.Download(context.Background(), &videoDomain.DownloadInput{
			URL:     testVideoURL,
			Quality: "best",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
