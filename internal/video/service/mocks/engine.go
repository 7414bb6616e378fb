// Package mocks provides mock implementations of the extraction engine for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	videoService "github.com/allisson/vidfetch/internal/video/service"
)

// MockEngine is a mock implementation of Engine for testing.
type MockEngine struct {
	mock.Mock
}

// Probe mocks the Probe method of Engine.
func (m *MockEngine) Probe(ctx context.Context, url string) (*videoService.Metadata, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*videoService.Metadata), args.Error(1)
}

// Fetch mocks the Fetch method of Engine.
func (m *MockEngine) Fetch(
	ctx context.Context,
	url, formatSelector, outputTemplate string,
	maxFileSize int64,
) (*videoService.Metadata, error) {
	args := m.Called(ctx, url, formatSelector, outputTemplate, maxFileSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*videoService.Metadata), args.Error(1)
}
