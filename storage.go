package evaluator

import (
	"context"
	"io"
)

// FileStorage defines operations for blob storage. The report renderer
// fetches image bytes through it and finished documents are stored
// through it.
type FileStorage interface {
	// Upload stores a blob under the given key and returns its URL.
	// The contentType should be a valid MIME type (e.g. "application/pdf").
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) (url string, err error)

	// Fetch reads the blob stored under the given key.
	// Returns ENOTFOUND if the key does not exist.
	Fetch(ctx context.Context, key string) ([]byte, error)

	// Exists checks if a blob exists in storage.
	Exists(ctx context.Context, key string) (bool, error)

	// GetURL returns the public URL for a stored blob.
	GetURL(key string) string
}

// StorageConfig holds configuration for file storage.
type StorageConfig struct {
	// Provider is the storage provider ("local" or "s3").
	Provider string

	// Local storage configuration
	LocalPath string
	LocalURL  string

	// S3 storage configuration
	S3Bucket  string
	S3Region  string
	S3BaseURL string
}
