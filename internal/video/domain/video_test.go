package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/vidfetch/internal/errors"
)

func TestParseQuality(t *testing.T) {
	t.Run("accepts all supported tokens", func(t *testing.T) {
		cases := map[string]string{
			"worst": "worst",
			"best":  "best",
			"720p":  "best[height<=720]",
			"480p":  "best[height<=480]",
			"360p":  "best[height<=360]",
			"audio": "bestaudio",
		}

		for token, selector := range cases {
			q, err := ParseQuality(token)
			require.NoError(t, err, token)
			assert.Equal(t, selector, q.FormatSelector(), token)
		}
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		q, err := ParseQuality("  BEST ")
		require.NoError(t, err)
		assert.Equal(t, QualityBest, q)
	})

	t.Run("rejects unrecognized tokens", func(t *testing.T) {
		for _, token := range []string{"", "1080p", "hd", "medium"} {
			_, err := ParseQuality(token)
			require.Error(t, err, token)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput, token)
		}
	})
}

func TestValidateURL(t *testing.T) {
	t.Run("accepts recognized link forms", func(t *testing.T) {
		urls := []string{
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			"http://youtube.com/watch?v=dQw4w9WgXcQ",
			"https://youtu.be/dQw4w9WgXcQ",
			"www.youtube.com/watch?v=dQw4w9WgXcQ",
			"https://www.youtube.com/embed/dQw4w9WgXcQ",
			"https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ",
			"https://www.youtube.com/v/dQw4w9WgXcQ",
		}
		for _, url := range urls {
			assert.NoError(t, ValidateURL(url), url)
		}
	})

	t.Run("rejects unrecognized shapes", func(t *testing.T) {
		urls := []string{
			"not-a-url",
			"",
			"https://example.com/watch?v=dQw4w9WgXcQ",
			"https://vimeo.com/12345678",
			"https://www.youtube.com/watch?v=short",
		}
		for _, url := range urls {
			err := ValidateURL(url)
			require.Error(t, err, url)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput, url)
		}
	})
}

func TestSanitizeFilename(t *testing.T) {
	t.Run("strips unsafe characters", func(t *testing.T) {
		assert.Equal(t, "My Video Title", SanitizeFilename(`My Video: Title!?`))
		assert.Equal(t, "hello-world_01", SanitizeFilename("hello-world_01"))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "clip", SanitizeFilename("  clip  "))
	})

	t.Run("falls back for empty results", func(t *testing.T) {
		assert.Equal(t, "unknown", SanitizeFilename(""))
		assert.Equal(t, "unknown", SanitizeFilename("!!!???"))
	})
}

func TestDomainErrorCategories(t *testing.T) {
	assert.ErrorIs(t, ErrInvalidURL, apperrors.ErrInvalidInput)
	assert.ErrorIs(t, ErrUnknownQuality, apperrors.ErrInvalidInput)
	assert.ErrorIs(t, ErrDurationExceeded, apperrors.ErrPolicyViolation)
	assert.ErrorIs(t, ErrFileNotFound, apperrors.ErrNotFound)
}
