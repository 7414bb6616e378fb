// Package service provides the extraction engine boundary for video operations.
package service

import (
	"context"
)

// Metadata is the engine-reported description of a media source. For fetch
// operations the Ext field carries the extension of the written artifact.
type Metadata struct {
	Title       string
	Duration    int64
	Uploader    string
	ViewCount   int64
	UploadDate  string
	Description string
	Ext         string
}

// Engine is the narrow contract to the media extraction collaborator.
// Probe returns metadata without transferring media. Fetch writes the media
// file according to the output template and reports the resulting metadata;
// maxFileSize is passed to the engine as a hard byte cap and the engine
// aborts the transfer when exceeded.
type Engine interface {
	Probe(ctx context.Context, url string) (*Metadata, error)
	Fetch(ctx context.Context, url, formatSelector, outputTemplate string, maxFileSize int64) (*Metadata, error)
}
