// Package dto defines request and response shapes for the video HTTP API.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/vidfetch/internal/validation"
)

// InfoRequest is the request body for probing video metadata.
type InfoRequest struct {
	URL string `json:"url"`
}

// Validate validates the info request fields.
func (r InfoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.URL, validation.Required, customValidation.NotBlank),
	)
}

// DownloadRequest is the request body for downloading a video.
// Quality defaults to "best" when omitted.
type DownloadRequest struct {
	URL     string `json:"url"`
	Quality string `json:"quality"`
}

// Validate validates the download request fields.
func (r DownloadRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.URL, validation.Required, customValidation.NotBlank),
	)
}
