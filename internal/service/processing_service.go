package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"landrecords/internal/domain"
	"landrecords/internal/imaging"
	"landrecords/internal/ocr"
	"landrecords/internal/port"
)

// ProcessUploadInput is the DTO for running OCR on an uploaded scan.
type ProcessUploadInput struct {
	Filename    string
	Data        []byte
	StoragePath string
	Hints       []string
}

// ProcessingResult is the outcome of a successful OCR run.
type ProcessingResult struct {
	DocumentID uuid.UUID `json:"document_id"`
	Text       string    `json:"text"`
	Confidence float64   `json:"confidence"`
	Language   string    `json:"language"`
	DurationMS int64     `json:"duration_ms"`
	PageCount  int       `json:"page_count"`
}

// ProcessingService runs the scan-to-text pipeline and records every attempt in the ledger.
type ProcessingService interface {
	ProcessUpload(ctx context.Context, input ProcessUploadInput) (*ProcessingResult, error)
	ProcessStored(ctx context.Context, storagePath string) (*ProcessingResult, error)
}

type processingService struct {
	docRepo      port.DocumentRepository
	storage      port.ObjectStorage
	bucket       string
	preprocessor port.ImagePreprocessor
	recognizer   port.TextRecognizer
	ledger       LedgerService
	hints        []string
	now          func() time.Time
}

// NewProcessingService creates a new ProcessingService implementation.
func NewProcessingService(
	docRepo port.DocumentRepository,
	storage port.ObjectStorage,
	bucket string,
	preprocessor port.ImagePreprocessor,
	recognizer port.TextRecognizer,
	ledger LedgerService,
	hints []string,
) ProcessingService {
	return &processingService{
		docRepo:      docRepo,
		storage:      storage,
		bucket:       bucket,
		preprocessor: preprocessor,
		recognizer:   recognizer,
		ledger:       ledger,
		hints:        hints,
		now:          time.Now,
	}
}

func (s *processingService) ProcessStored(ctx context.Context, storagePath string) (*ProcessingResult, error) {
	data, err := s.storage.Download(ctx, s.bucket, storagePath)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("downloading %s: %w", storagePath, err)
	}
	return s.ProcessUpload(ctx, ProcessUploadInput{
		Filename:    path.Base(storagePath),
		Data:        data,
		StoragePath: storagePath,
	})
}

func (s *processingService) ProcessUpload(ctx context.Context, input ProcessUploadInput) (*ProcessingResult, error) {
	start := s.now()
	if len(input.Data) == 0 {
		s.recordFailure(ctx, start)
		return nil, domain.ErrEmptyFile
	}

	images, fileType, pageCount, err := s.prepare(input)
	if err != nil {
		log.Printf("processingService.ProcessUpload: cannot prepare %s: %v", input.Filename, err)
		s.recordFailure(ctx, start)
		return nil, err
	}

	doc := &domain.Document{
		ID:               uuid.New(),
		Filename:         input.Filename,
		StoragePath:      input.StoragePath,
		FileType:         fileType,
		FileSizeKB:       (len(input.Data) + 1023) / 1024,
		PageCount:        pageCount,
		DetectedLanguage: domain.LanguageUnknown,
		ProcessingStatus: domain.ProcessingStatusPending,
	}
	if err := s.docRepo.Create(ctx, doc); err != nil {
		s.recordFailure(ctx, start)
		return nil, fmt.Errorf("creating document: %w", err)
	}

	hints := input.Hints
	if len(hints) == 0 {
		hints = s.hints
	}

	var pages []port.OCRPage
	for i, img := range images {
		ann, err := s.recognizer.Recognize(ctx, img, hints)
		if err != nil {
			log.WithFields(log.Fields{
				"document_id": doc.ID,
				"page":        i + 1,
			}).Errorf("processingService.ProcessUpload: recognition failed: %v", err)
			s.markFailed(ctx, doc, start, err)
			return nil, err
		}
		if ann != nil {
			pages = append(pages, ann.Pages...)
		}
	}

	res := ocr.Aggregate(pages)
	language := res.Language
	if language == "" {
		language = domain.LanguageUnknown
	}

	processedAt := s.now().UTC()
	doc.OCRText = res.Text
	doc.OCRConfidence = res.Confidence
	doc.DetectedLanguage = language
	doc.ProcessingStatus = domain.ProcessingStatusProcessed
	doc.ProcessingTimeMS = s.now().Sub(start).Milliseconds()
	doc.ProcessedAt = &processedAt
	if err := s.docRepo.UpdateProcessingResult(ctx, doc); err != nil {
		s.recordFailure(ctx, start)
		return nil, fmt.Errorf("saving processing result: %w", err)
	}

	if _, err := s.ledger.RecordAttempt(ctx, start.UTC(), domain.OutcomeSuccess, doc.ProcessingTimeMS, language); err != nil {
		log.Printf("processingService.ProcessUpload: ledger update failed for %s: %v", doc.ID, err)
	}

	log.WithFields(log.Fields{
		"document_id": doc.ID,
		"pages":       pageCount,
		"blocks":      res.Blocks,
		"language":    language,
		"confidence":  res.Confidence,
		"duration_ms": doc.ProcessingTimeMS,
	}).Info("processingService.ProcessUpload: processed")

	return &ProcessingResult{
		DocumentID: doc.ID,
		Text:       res.Text,
		Confidence: res.Confidence,
		Language:   language,
		DurationMS: doc.ProcessingTimeMS,
		PageCount:  pageCount,
	}, nil
}

// prepare turns the upload into preprocessed page images. PDFs contribute one
// image per embedded page scan.
func (s *processingService) prepare(input ProcessUploadInput) ([][]byte, domain.FileType, int, error) {
	if imaging.IsPDF(input.Data) {
		raw, err := imaging.ExtractPDFPages(input.Data)
		if err != nil {
			return nil, domain.FileTypePDF, 0, err
		}
		pageCount, err := imaging.PageCount(input.Data)
		if err != nil {
			pageCount = len(raw)
		}
		images := make([][]byte, 0, len(raw))
		for _, r := range raw {
			img, err := s.preprocessor.Process(r)
			if err != nil {
				return nil, domain.FileTypePDF, 0, err
			}
			images = append(images, img)
		}
		return images, domain.FileTypePDF, pageCount, nil
	}

	img, err := s.preprocessor.Process(input.Data)
	if err != nil {
		return nil, fileTypeFromName(input.Filename), 0, err
	}
	return [][]byte{img}, fileTypeFromName(input.Filename), 1, nil
}

func fileTypeFromName(name string) domain.FileType {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	if ft, ok := domain.AllowedExtensions[ext]; ok {
		return ft
	}
	return domain.FileTypeJPG
}

// markFailed stores the failure on the document and in the ledger. Both writes
// are best-effort so the caller sees the original error.
func (s *processingService) markFailed(ctx context.Context, doc *domain.Document, start time.Time, cause error) {
	doc.ProcessingStatus = domain.ProcessingStatusFailed
	doc.ProcessingError = cause.Error()
	doc.ProcessingTimeMS = s.now().Sub(start).Milliseconds()
	if err := s.docRepo.UpdateProcessingResult(ctx, doc); err != nil {
		log.Printf("processingService.markFailed: cannot mark document %s failed: %v", doc.ID, err)
	}
	s.recordFailure(ctx, start)
}

func (s *processingService) recordFailure(ctx context.Context, start time.Time) {
	if _, err := s.ledger.RecordAttempt(ctx, start.UTC(), domain.OutcomeFailure, 0, ""); err != nil {
		log.Printf("processingService.recordFailure: ledger update failed: %v", err)
	}
}
