package app

import (
	"fmt"

	"github.com/allisson/vidfetch/internal/http"
	videoHTTP "github.com/allisson/vidfetch/internal/video/http"
	videoService "github.com/allisson/vidfetch/internal/video/service"
	videoUseCase "github.com/allisson/vidfetch/internal/video/usecase"
)

// Engine returns the media extraction engine.
func (c *Container) Engine() videoService.Engine {
	c.engineInit.Do(func() {
		c.engine = videoService.NewYtdlpEngine(c.Logger())
	})
	return c.engine
}

// VideoUseCase returns the video use case.
func (c *Container) VideoUseCase() (videoUseCase.VideoUseCase, error) {
	var err error
	c.videoUseCaseInit.Do(func() {
		c.videoUseCase, err = c.initVideoUseCase()
		if err != nil {
			c.initErrors["videoUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["videoUseCase"]; exists {
		return nil, storedErr
	}
	return c.videoUseCase, nil
}

// VideoHandler returns the HTTP handler for video operations.
func (c *Container) VideoHandler() (*videoHTTP.VideoHandler, error) {
	videoUC, err := c.VideoUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get video use case for video handler: %w", err)
	}
	return videoHTTP.NewVideoHandler(videoUC, c.config.DownloadDir, c.Logger()), nil
}

// SystemHandler returns the HTTP handler for service-level operations.
func (c *Container) SystemHandler() *http.SystemHandler {
	return http.NewSystemHandler(
		c.RetentionManager(),
		c.config.DownloadDir,
		c.config.RetentionMaxAge,
		c.Logger(),
	)
}

// initVideoUseCase creates the video use case with all its dependencies.
func (c *Container) initVideoUseCase() (videoUseCase.VideoUseCase, error) {
	baseUseCase := videoUseCase.NewVideoUseCase(c.Engine(), c.config, c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for video use case: %w", err)
		}
		return videoUseCase.NewVideoUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
