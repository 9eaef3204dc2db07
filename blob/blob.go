// Package blob provides the FileStorage implementations backing image
// retrieval and document archival.
package blob

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	evaluator "github.com/Norikachi123/Container-Evaluator"
)

// Compile-time interface check
var _ evaluator.FileStorage = (*LocalStorage)(nil)
var _ evaluator.FileStorage = (*S3Storage)(nil)

// NewFileStorage creates a file storage instance based on the provider configuration.
func NewFileStorage(ctx context.Context, logger *slog.Logger, cfg evaluator.StorageConfig) (evaluator.FileStorage, error) {
	switch cfg.Provider {
	case "s3":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.S3Region))
		if err != nil {
			return nil, fmt.Errorf("loading AWS config: %w", err)
		}
		client := s3.NewFromConfig(awsCfg)
		logger.Info("initialized S3 storage",
			slog.String("bucket", cfg.S3Bucket),
			slog.String("region", cfg.S3Region))
		return &S3Storage{
			client:  client,
			bucket:  cfg.S3Bucket,
			region:  cfg.S3Region,
			baseURL: cfg.S3BaseURL,
		}, nil
	default:
		if err := os.MkdirAll(cfg.LocalPath, 0755); err != nil {
			return nil, fmt.Errorf("creating storage directory: %w", err)
		}
		logger.Info("initialized local storage",
			slog.String("path", cfg.LocalPath),
			slog.String("url", cfg.LocalURL))
		return &LocalStorage{
			basePath: cfg.LocalPath,
			baseURL:  cfg.LocalURL,
		}, nil
	}
}

// LocalStorage implements evaluator.FileStorage for local disk storage.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// Upload saves a file to local disk.
func (s *LocalStorage) Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	// Generate unique filename if key is empty
	if key == "" {
		key = fmt.Sprintf("%d_%s", time.Now().Unix(), uuid.New().String())
	}

	filePath := filepath.Join(s.basePath, key)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", fmt.Errorf("creating directories: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}

	return s.GetURL(key), nil
}

// Fetch reads a file from local disk.
func (s *LocalStorage) Fetch(ctx context.Context, key string) ([]byte, error) {
	filePath := filepath.Join(s.basePath, key)
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, evaluator.NotFound("File %s not found", key)
		}
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

// GetURL returns the URL to access the file.
func (s *LocalStorage) GetURL(key string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, key)
}

// Exists checks if a file exists in local storage.
func (s *LocalStorage) Exists(ctx context.Context, key string) (bool, error) {
	filePath := filepath.Join(s.basePath, key)
	_, err := os.Stat(filePath)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("checking file: %w", err)
}

// S3Storage implements evaluator.FileStorage for AWS S3.
type S3Storage struct {
	client  *s3.Client
	bucket  string
	region  string
	baseURL string
}

// Upload uploads a file to S3.
func (s *S3Storage) Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	// Generate unique filename if key is empty
	if key == "" {
		key = fmt.Sprintf("%d_%s", time.Now().Unix(), uuid.New().String())
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        reader,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading to S3: %w", err)
	}

	return s.GetURL(key), nil
}

// Fetch downloads a file from S3.
func (s *S3Storage) Fetch(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, evaluator.NotFound("File %s not found", key)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading S3 object: %w", err)
	}
	return data, nil
}

// GetURL returns the URL to access the file.
func (s *S3Storage) GetURL(key string) string {
	if s.baseURL != "" {
		return fmt.Sprintf("%s/%s", s.baseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// Exists checks if a file exists in S3.
func (s *S3Storage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return false, nil
	}
	return true, nil
}
