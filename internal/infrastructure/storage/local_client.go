package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"lapakin/pkg/errors"
)

// LocalStorageClient stores images on the local filesystem. Files land in
// uploadDir and are served statically under /uploads, so the returned URL
// is baseURL + "/uploads/" + filename.
type LocalStorageClient struct {
	uploadDir string
	baseURL   string
}

func NewLocalStorageClient(uploadDir, baseURL string) (*LocalStorageClient, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %v", err)
	}

	return &LocalStorageClient{
		uploadDir: uploadDir,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}, nil
}

func (c *LocalStorageClient) Upload(ctx context.Context, file io.Reader, contentType string) (string, error) {
	ext, ok := imageExtension(contentType)
	if !ok {
		return "", errors.Storage(fmt.Sprintf("Image format %q is not allowed", contentType), nil)
	}

	filename := fmt.Sprintf("%s-%s%s", uuid.New().String(), time.Now().Format("20060102150405"), ext)
	path := filepath.Join(c.uploadDir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return "", errors.Storage("Failed to create image file", err)
	}

	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(path)
		return "", errors.Storage("Failed to write image file", err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", errors.Storage("Failed to finish image write", err)
	}

	return fmt.Sprintf("%s/%s/%s", c.baseURL, uploadFolder, filename), nil
}

func (c *LocalStorageClient) Close() error {
	return nil
}
