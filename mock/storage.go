package mock

import (
	"context"
	"io"

	evaluator "github.com/Norikachi123/Container-Evaluator"
)

// Compile-time interface check
var _ evaluator.FileStorage = (*FileStorage)(nil)

// FileStorage is a mock implementation of evaluator.FileStorage backed
// by an in-memory map.
type FileStorage struct {
	UploadFn func(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)
	FetchFn  func(ctx context.Context, key string) ([]byte, error)
	ExistsFn func(ctx context.Context, key string) (bool, error)
	GetURLFn func(key string) string

	Blobs map[string][]byte
}

func (s *FileStorage) Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, key, reader, contentType)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	if s.Blobs == nil {
		s.Blobs = map[string][]byte{}
	}
	s.Blobs[key] = data
	return s.GetURL(key), nil
}

func (s *FileStorage) Fetch(ctx context.Context, key string) ([]byte, error) {
	if s.FetchFn != nil {
		return s.FetchFn(ctx, key)
	}
	data, ok := s.Blobs[key]
	if !ok {
		return nil, evaluator.NotFound("Blob not found")
	}
	return data, nil
}

func (s *FileStorage) Exists(ctx context.Context, key string) (bool, error) {
	if s.ExistsFn != nil {
		return s.ExistsFn(ctx, key)
	}
	_, ok := s.Blobs[key]
	return ok, nil
}

func (s *FileStorage) GetURL(key string) string {
	if s.GetURLFn != nil {
		return s.GetURLFn(key)
	}
	return "mock://" + key
}
