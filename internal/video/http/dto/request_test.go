package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoRequestValidate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := InfoRequest{URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing url", func(t *testing.T) {
		req := InfoRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("blank url", func(t *testing.T) {
		req := InfoRequest{URL: "   "}
		assert.Error(t, req.Validate())
	})
}

func TestDownloadRequestValidate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := DownloadRequest{
			URL:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Quality: "720p",
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("quality is optional", func(t *testing.T) {
		req := DownloadRequest{URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing url", func(t *testing.T) {
		req := DownloadRequest{Quality: "best"}
		assert.Error(t, req.Validate())
	})
}
