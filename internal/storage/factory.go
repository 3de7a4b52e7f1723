// Package storage selects the blob store backend for uploaded scans.
package storage

import (
	"context"
	"fmt"

	"landrecords/internal/config"
	"landrecords/internal/port"
	"landrecords/internal/storage/gcs"
	"landrecords/internal/storage/local"
	"landrecords/internal/storage/s3"
)

// New creates the ObjectStorage named by cfg.Provider.
func New(ctx context.Context, cfg *config.StorageConfig) (port.ObjectStorage, error) {
	switch cfg.Provider {
	case "s3":
		return s3.NewS3Client(ctx, &cfg.S3)
	case "gcs":
		return gcs.NewGCSClient(ctx, &cfg.GCS)
	case "", "local":
		return local.NewStorage(&cfg.Local)
	default:
		return nil, fmt.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}
