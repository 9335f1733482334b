package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"ecommerce-backend/config"
)

// AvatarStorage stores uploaded avatar images and returns the URL (or
// relative path) the image is reachable at.
type AvatarStorage interface {
	UploadFile(ctx context.Context, file *multipart.FileHeader, path string) (string, error)
}

// New selects the storage backend named in the configuration.
func New(cfg *config.Config) (AvatarStorage, error) {
	switch cfg.Storage {
	case "local":
		return NewLocalStorage(cfg.LocalStoragePath)
	case "s3":
		return NewS3Storage(cfg.S3Region, cfg.S3Bucket)
	case "gcs":
		return NewGCSStorage(cfg.GCSBucketName, cfg.GCSCredentialsFile)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}
