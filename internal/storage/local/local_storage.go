// Package local stores uploaded scans on a filesystem through afero.
package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"

	"landrecords/internal/config"
	"landrecords/internal/domain"
	"landrecords/internal/port"
)

// Storage is an ObjectStorage rooted at a directory. Buckets become top-level
// directories; an empty bucket stores keys directly under the root.
type Storage struct {
	fs        afero.Fs
	publicURL string
}

// NewStorage creates a disk-backed store under cfg.Root.
func NewStorage(cfg *config.LocalConfig) (*Storage, error) {
	root := cfg.Root
	if root == "" {
		root = "./uploads"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage root: %w", err)
	}
	return NewStorageWithFs(afero.NewBasePathFs(afero.NewOsFs(), root), cfg.PublicURL), nil
}

// NewStorageWithFs creates a store over an arbitrary filesystem (for testing).
func NewStorageWithFs(fsys afero.Fs, publicURL string) *Storage {
	return &Storage{fs: fsys, publicURL: strings.TrimSuffix(publicURL, "/")}
}

var _ port.ObjectStorage = (*Storage)(nil)

func objectPath(bucket, key string) string {
	return path.Join("/", bucket, path.Clean("/"+key))
}

func (s *Storage) Upload(_ context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	p := objectPath(input.Bucket, input.Key)
	if err := s.fs.MkdirAll(path.Dir(p), 0o755); err != nil {
		return nil, fmt.Errorf("local upload mkdir %s: %w", input.Key, err)
	}

	f, err := s.fs.Create(p)
	if err != nil {
		return nil, fmt.Errorf("local upload create %s: %w", input.Key, err)
	}
	if _, err := io.Copy(f, input.Body); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("local upload write %s: %w", input.Key, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("local upload close %s: %w", input.Key, err)
	}
	return &port.UploadOutput{Location: p}, nil
}

func (s *Storage) Download(_ context.Context, bucket, key string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, objectPath(bucket, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("local download %s: %w", key, err)
	}
	return data, nil
}

func (s *Storage) Delete(_ context.Context, bucket, key string) error {
	if err := s.fs.Remove(objectPath(bucket, key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("local delete %s: %w", key, err)
	}
	return nil
}

// GetPresignedURL returns the object's URL under the configured public prefix.
// Local files are not signed, so the expiry is ignored.
func (s *Storage) GetPresignedURL(_ context.Context, bucket, key string, _ int64) (string, error) {
	p := objectPath(bucket, key)
	if ok, err := afero.Exists(s.fs, p); err != nil {
		return "", fmt.Errorf("local stat %s: %w", key, err)
	} else if !ok {
		return "", domain.ErrNotFound
	}
	if s.publicURL == "" {
		return "file://" + p, nil
	}
	return s.publicURL + (&url.URL{Path: p}).EscapedPath(), nil
}
