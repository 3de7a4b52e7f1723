package local_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landrecords/internal/domain"
	"landrecords/internal/port"
	"landrecords/internal/storage/local"
)

func TestStorage_UploadDownloadDelete(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s := local.NewStorageWithFs(fsys, "")
	ctx := context.Background()

	out, err := s.Upload(ctx, port.UploadInput{
		Bucket:      "scans",
		Key:         "2024/03/01/fard.jpg",
		Body:        bytes.NewReader([]byte("jpeg-bytes")),
		ContentType: "image/jpeg",
		Size:        10,
	})
	require.NoError(t, err)
	assert.Equal(t, "/scans/2024/03/01/fard.jpg", out.Location)

	data, err := s.Download(ctx, "scans", "2024/03/01/fard.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)

	require.NoError(t, s.Delete(ctx, "scans", "2024/03/01/fard.jpg"))

	_, err = s.Download(ctx, "scans", "2024/03/01/fard.jpg")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStorage_KeysCannotEscapeBucket(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s := local.NewStorageWithFs(fsys, "")

	out, err := s.Upload(context.Background(), port.UploadInput{
		Bucket: "scans",
		Key:    "../../etc/passwd",
		Body:   bytes.NewReader([]byte("x")),
	})
	require.NoError(t, err)
	assert.Equal(t, "/scans/etc/passwd", out.Location)

	exists, err := afero.Exists(fsys, "/etc/passwd")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStorage_DeleteMissingIsNoop(t *testing.T) {
	s := local.NewStorageWithFs(afero.NewMemMapFs(), "")
	assert.NoError(t, s.Delete(context.Background(), "scans", "missing.jpg"))
}

func TestStorage_GetPresignedURL(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/scans/a b.jpg", []byte("x"), 0o644))
	ctx := context.Background()

	s := local.NewStorageWithFs(fsys, "https://files.example.org/")
	url, err := s.GetPresignedURL(ctx, "scans", "a b.jpg", 3600)
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.org/scans/a%20b.jpg", url)

	plain := local.NewStorageWithFs(fsys, "")
	url, err = plain.GetPresignedURL(ctx, "scans", "a b.jpg", 3600)
	require.NoError(t, err)
	assert.Equal(t, "file:///scans/a b.jpg", url)

	_, err = s.GetPresignedURL(ctx, "scans", "missing.jpg", 3600)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStorage_EmptyBucket(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s := local.NewStorageWithFs(fsys, "")

	out, err := s.Upload(context.Background(), port.UploadInput{Key: "doc.png", Body: bytes.NewReader([]byte("png"))})
	require.NoError(t, err)
	assert.Equal(t, "/doc.png", out.Location)
}
