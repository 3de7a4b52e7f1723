package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"landrecords/internal/domain"
	"landrecords/internal/port"
)

// FileUploadInput is the DTO for file upload requests.
type FileUploadInput struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// StoredFile describes an uploaded scan after it reached blob storage.
type StoredFile struct {
	StoragePath string          `json:"storage_path"`
	Filename    string          `json:"filename"`
	FileType    domain.FileType `json:"file_type"`
	ContentType string          `json:"content_type"`
	Size        int64           `json:"size"`
	Data        []byte          `json:"-"`
}

// FileService validates uploaded scans and stores them.
type FileService interface {
	Upload(ctx context.Context, input FileUploadInput) (*StoredFile, error)
}

type fileService struct {
	storage       port.ObjectStorage
	bucket        string
	maxFileSizeMB int64
	now           func() time.Time
}

// NewFileService creates a new FileService implementation.
func NewFileService(storage port.ObjectStorage, bucket string, maxFileSizeMB int64) FileService {
	if maxFileSizeMB <= 0 {
		maxFileSizeMB = 16
	}
	return &fileService{storage: storage, bucket: bucket, maxFileSizeMB: maxFileSizeMB, now: time.Now}
}

var tiffMagic = [][]byte{[]byte("II*\x00"), []byte("MM\x00*")}

// sniffFileType detects the file type from magic bytes. TIFF is checked by
// hand since http.DetectContentType does not recognize it.
func sniffFileType(head []byte) (domain.FileType, bool) {
	for _, m := range tiffMagic {
		if bytes.HasPrefix(head, m) {
			return domain.FileTypeTIFF, true
		}
	}
	ft, ok := domain.AllowedContentTypes[http.DetectContentType(head)]
	return ft, ok
}

func (s *fileService) Upload(ctx context.Context, input FileUploadInput) (*StoredFile, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.maxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(input.File, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if len(data) == 0 {
		return nil, domain.ErrEmptyFile
	}
	if int64(len(data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	fileType, ok := sniffFileType(head)
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	contentType := domain.AllowedFileTypes[fileType]

	key := fmt.Sprintf("scans/%s/%s.%s", s.now().UTC().Format("2006/01/02"), uuid.New(), ext)
	log.Printf("fileService.Upload: storing %s (%s, %d bytes) as %s",
		input.Header.Filename, contentType, len(data), key)

	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.bucket,
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: contentType,
		Size:        int64(len(data)),
	}); err != nil {
		log.Printf("fileService.Upload: storage upload failed for %s: %v", key, err)
		return nil, domain.ErrUploadFailed
	}

	return &StoredFile{
		StoragePath: key,
		Filename:    filepath.Base(input.Header.Filename),
		FileType:    fileType,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}
