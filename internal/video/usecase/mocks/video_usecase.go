// Package mocks provides mock implementations of the video use case for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	videoDomain "github.com/allisson/vidfetch/internal/video/domain"
)

// MockVideoUseCase is a mock implementation of VideoUseCase for testing.
type MockVideoUseCase struct {
	mock.Mock
}

// GetInfo mocks the GetInfo method of VideoUseCase.
func (m *MockVideoUseCase) GetInfo(ctx context.Context, url string) (*videoDomain.VideoInfo, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*videoDomain.VideoInfo), args.Error(1)
}

// Download mocks the Download method of VideoUseCase.
func (m *MockVideoUseCase) Download(
	ctx context.Context,
	input *videoDomain.DownloadInput,
) (*videoDomain.DownloadResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*videoDomain.DownloadResult), args.Error(1)
}
