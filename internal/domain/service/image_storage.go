package service

import (
	"context"
	"io"
)

// ImageStorage persists an uploaded image and returns a directly
// fetchable absolute URL, regardless of which backend is configured.
type ImageStorage interface {
	Upload(ctx context.Context, file io.Reader, contentType string) (string, error)
	Close() error
}
