package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"landrecords/internal/config"
	"landrecords/internal/domain"
	"landrecords/internal/port"
)

type gcsClient struct {
	client *storage.Client
}

// NewGCSClient creates a Google Cloud Storage backed ObjectStorage.
// Without a credentials file, application default credentials are used.
func NewGCSClient(ctx context.Context, cfg *config.GCSConfig) (port.ObjectStorage, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating gcs client: %w", err)
	}
	return &gcsClient{client: client}, nil
}

func (c *gcsClient) Upload(ctx context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	w := c.client.Bucket(input.Bucket).Object(input.Key).NewWriter(ctx)
	w.ContentType = input.ContentType

	if _, err := io.Copy(w, input.Body); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("gcs upload %s: %w", input.Key, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gcs upload finalize %s: %w", input.Key, err)
	}

	attrs := w.Attrs()
	return &port.UploadOutput{
		Location: fmt.Sprintf("gs://%s/%s", input.Bucket, input.Key),
		ETag:     attrs.Etag,
	}, nil
}

func (c *gcsClient) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	r, err := c.client.Bucket(bucket).Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("gcs download %s: %w", key, err)
	}
	defer func() { _ = r.Close() }()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gcs download read %s: %w", key, err)
	}
	return data, nil
}

func (c *gcsClient) Delete(ctx context.Context, bucket, key string) error {
	if err := c.client.Bucket(bucket).Object(key).Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil
		}
		return fmt.Errorf("gcs delete %s: %w", key, err)
	}
	return nil
}

func (c *gcsClient) GetPresignedURL(_ context.Context, bucket, key string, expirySeconds int64) (string, error) {
	url, err := c.client.Bucket(bucket).SignedURL(key, &storage.SignedURLOptions{
		Method:  http.MethodGet,
		Expires: time.Now().Add(time.Duration(expirySeconds) * time.Second),
		Scheme:  storage.SigningSchemeV4,
	})
	if err != nil {
		return "", fmt.Errorf("gcs sign %s: %w", key, err)
	}
	return url, nil
}
