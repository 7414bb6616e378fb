package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "github.com/allisson/vidfetch/internal/errors"
	"github.com/allisson/vidfetch/internal/metrics"
	videoDomain "github.com/allisson/vidfetch/internal/video/domain"
	videoUsecaseMocks "github.com/allisson/vidfetch/internal/video/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

func TestMetricsDecorator_GetInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("records success metrics", func(t *testing.T) {
		mockUseCase := new(videoUsecaseMocks.MockVideoUseCase)
		mockMetrics := &mockBusinessMetrics{}

		expectedInfo := &videoDomain.VideoInfo{Title: "Test Video", Duration: 212}

		mockUseCase.On("GetInfo", ctx, testVideoURL).Return(expectedInfo, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "video", "video_info", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "video", "video_info",
			mock.AnythingOfType("time.Duration"), "success").Return().Once()

		decorator := NewVideoUseCaseWithMetrics(mockUseCase, mockMetrics)
		result, err := decorator.GetInfo(ctx, testVideoURL)

		assert.NoError(t, err)
		assert.Equal(t, expectedInfo, result)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("records error metrics", func(t *testing.T) {
		mockUseCase := new(videoUsecaseMocks.MockVideoUseCase)
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("GetInfo", ctx, "not-a-url").Return(nil, videoDomain.ErrInvalidURL).Once()
		mockMetrics.On("RecordOperation", ctx, "video", "video_info", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "video", "video_info",
			mock.AnythingOfType("time.Duration"), "error").Return().Once()

		decorator := NewVideoUseCaseWithMetrics(mockUseCase, mockMetrics)
		result, err := decorator.GetInfo(ctx, "not-a-url")

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		mockMetrics.AssertExpectations(t)
	})
}

func TestMetricsDecorator_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("records success metrics", func(t *testing.T) {
		mockUseCase := new(videoUsecaseMocks.MockVideoUseCase)
		mockMetrics := &mockBusinessMetrics{}

		input := &videoDomain.DownloadInput{URL: testVideoURL, Quality: "best"}
		expectedResult := &videoDomain.DownloadResult{
			Success:  true,
			Title:    "Test Video",
			Filename: "Test Video.mp4",
		}

		mockUseCase.On("Download", ctx, input).Return(expectedResult, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "video", "video_download", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "video", "video_download",
			mock.AnythingOfType("time.Duration"), "success").Return().Once()

		decorator := NewVideoUseCaseWithMetrics(mockUseCase, mockMetrics)
		result, err := decorator.Download(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, expectedResult, result)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("records error metrics", func(t *testing.T) {
		mockUseCase := new(videoUsecaseMocks.MockVideoUseCase)
		mockMetrics := &mockBusinessMetrics{}

		input := &videoDomain.DownloadInput{URL: testVideoURL, Quality: "best"}
		expectedError := apperrors.Wrap(apperrors.ErrEngineFailure, "failed to download video")

		mockUseCase.On("Download", ctx, input).Return(nil, expectedError).Once()
		mockMetrics.On("RecordOperation", ctx, "video", "video_download", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "video", "video_download",
			mock.AnythingOfType("time.Duration"), "error").Return().Once()

		decorator := NewVideoUseCaseWithMetrics(mockUseCase, mockMetrics)
		result, err := decorator.Download(ctx, input)

		assert.Error(t, err)
		assert.Nil(t, result)
		mockMetrics.AssertExpectations(t)
	})
}
