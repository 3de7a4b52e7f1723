package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"landrecords/internal/domain"
	"landrecords/internal/port"
	"landrecords/internal/service"
	"landrecords/mocks"
)

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func uploadInput(name string, data []byte) service.FileUploadInput {
	return service.FileUploadInput{
		File:   memFile{bytes.NewReader(data)},
		Header: &multipart.FileHeader{Filename: name, Size: int64(len(data))},
	}
}

func TestFileService_Upload_PNG(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	svc := service.NewFileService(storage, "scans", 1)
	data := scanPNG(t)

	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		body, _ := io.ReadAll(in.Body)
		return in.Bucket == "scans" &&
			strings.HasPrefix(in.Key, "scans/") &&
			strings.HasSuffix(in.Key, ".png") &&
			in.ContentType == "image/png" &&
			bytes.Equal(body, data)
	})).Return(&port.UploadOutput{}, nil)

	stored, err := svc.Upload(context.Background(), uploadInput("dir/jamabandi.PNG", data))
	require.NoError(t, err)

	assert.Equal(t, domain.FileTypePNG, stored.FileType)
	assert.Equal(t, "jamabandi.PNG", stored.Filename)
	assert.Equal(t, int64(len(data)), stored.Size)
	assert.Equal(t, data, stored.Data)
	storage.AssertExpectations(t)
}

func TestFileService_Upload_TIFF(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	svc := service.NewFileService(storage, "scans", 1)
	storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)

	stored, err := svc.Upload(context.Background(), uploadInput("scan.tif", []byte("II*\x00rest-of-tiff")))
	require.NoError(t, err)
	assert.Equal(t, domain.FileTypeTIFF, stored.FileType)
	assert.Equal(t, "image/tiff", stored.ContentType)
}

func TestFileService_Upload_Rejections(t *testing.T) {
	big := bytes.Repeat([]byte{0}, 1024*1024+1)

	tests := []struct {
		name  string
		input service.FileUploadInput
		want  error
	}{
		{"extension", uploadInput("notes.txt", []byte("hello")), domain.ErrUnsupportedFileType},
		{"content does not match", uploadInput("scan.png", []byte("plain text pretending")), domain.ErrUnsupportedFileType},
		{"empty", uploadInput("scan.png", nil), domain.ErrEmptyFile},
		{"too large", uploadInput("scan.png", big), domain.ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := new(mocks.MockObjectStorage)
			svc := service.NewFileService(storage, "scans", 1)

			_, err := svc.Upload(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.want)
			storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
		})
	}
}

func TestFileService_Upload_StorageFailure(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	svc := service.NewFileService(storage, "scans", 1)
	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("bucket missing"))

	_, err := svc.Upload(context.Background(), uploadInput("scan.png", scanPNG(t)))
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}
