package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"landrecords/internal/domain"
	"landrecords/internal/export"
	"landrecords/internal/extraction"
	"landrecords/internal/port"
)

const exportBatchSize = 100

// UpdateDocumentInput is the DTO for editing collaborator metadata on a document.
type UpdateDocumentInput struct {
	DocumentID uuid.UUID
	Notes      *string
	Tags       *string
}

// SaveRecordInput is the DTO for confirming extracted fields as a permanent record.
// Empty fields are filled from the document's own extraction.
type SaveRecordInput struct {
	DocumentID   uuid.UUID
	KhasraNumber string
	OwnerName    string
	AreaKanal    *float64
	AreaMarla    *float64
	Mauza        string
	Tehsil       string
	District     string
	LandType     string
}

// SaveRecordResult holds the records written when a document is saved.
type SaveRecordResult struct {
	Document *domain.Document   `json:"document"`
	Parcel   *domain.LandParcel `json:"parcel"`
	Farmer   *domain.Farmer     `json:"farmer,omitempty"`
}

// DocumentService defines the document management contract.
type DocumentService interface {
	GetByID(ctx context.Context, docID uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, filter port.DocumentFilter, offset, limit int) ([]domain.Document, int, error)
	Update(ctx context.Context, input UpdateDocumentInput) (*domain.Document, error)
	Delete(ctx context.Context, docID uuid.UUID) error
	GetDownloadURL(ctx context.Context, docID uuid.UUID) (string, error)
	ExportCSV(ctx context.Context, filter port.DocumentFilter, w io.Writer) error
	Extract(ctx context.Context, docID uuid.UUID) (*domain.LandRecordExtraction, error)
	Save(ctx context.Context, input SaveRecordInput) (*SaveRecordResult, error)
}

type documentService struct {
	docRepo       port.DocumentRepository
	records       port.RecordSaver
	storage       port.ObjectStorage
	bucket        string
	presignExpiry int64
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	docRepo port.DocumentRepository,
	records port.RecordSaver,
	storage port.ObjectStorage,
	bucket string,
	presignExpiry int64,
) DocumentService {
	if presignExpiry <= 0 {
		presignExpiry = 3600
	}
	return &documentService{
		docRepo:       docRepo,
		records:       records,
		storage:       storage,
		bucket:        bucket,
		presignExpiry: presignExpiry,
	}
}

func (s *documentService) GetByID(ctx context.Context, docID uuid.UUID) (*domain.Document, error) {
	return s.docRepo.GetByID(ctx, docID)
}

func (s *documentService) List(ctx context.Context, filter port.DocumentFilter, offset, limit int) ([]domain.Document, int, error) {
	return s.docRepo.List(ctx, filter, offset, limit)
}

func (s *documentService) Update(ctx context.Context, input UpdateDocumentInput) (*domain.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, input.DocumentID)
	if err != nil {
		return nil, err
	}
	if input.Notes != nil {
		doc.Notes = *input.Notes
	}
	if input.Tags != nil {
		doc.Tags = normalizeTags(*input.Tags)
	}
	if err := s.docRepo.UpdateMetadata(ctx, doc.ID, doc.Notes, doc.Tags); err != nil {
		return nil, err
	}
	return doc, nil
}

// normalizeTags trims and de-duplicates a comma-separated tag list.
func normalizeTags(raw string) string {
	seen := map[string]bool{}
	var out []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t == "" || seen[strings.ToLower(t)] {
			continue
		}
		seen[strings.ToLower(t)] = true
		out = append(out, t)
	}
	return strings.Join(out, ",")
}

func (s *documentService) Delete(ctx context.Context, docID uuid.UUID) error {
	doc, err := s.docRepo.GetByID(ctx, docID)
	if err != nil {
		return err
	}
	if err := s.docRepo.Delete(ctx, docID); err != nil {
		return err
	}
	if doc.StoragePath != "" {
		if err := s.storage.Delete(ctx, s.bucket, doc.StoragePath); err != nil {
			log.Printf("documentService.Delete: removing blob %s for %s: %v", doc.StoragePath, docID, err)
		}
	}
	return nil
}

func (s *documentService) GetDownloadURL(ctx context.Context, docID uuid.UUID) (string, error) {
	doc, err := s.docRepo.GetByID(ctx, docID)
	if err != nil {
		return "", err
	}
	if doc.StoragePath == "" {
		return "", domain.ErrNotFound
	}
	return s.storage.GetPresignedURL(ctx, s.bucket, doc.StoragePath, s.presignExpiry)
}

func (s *documentService) ExportCSV(ctx context.Context, filter port.DocumentFilter, w io.Writer) error {
	if _, err := w.Write(export.BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}
	cw := export.NewCSVWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for offset := 0; ; offset += exportBatchSize {
		docs, total, err := s.docRepo.List(ctx, filter, offset, exportBatchSize)
		if err != nil {
			return fmt.Errorf("listing documents for export: %w", err)
		}
		if err := cw.WriteDocuments(docs); err != nil {
			return fmt.Errorf("writing CSV rows: %w", err)
		}
		if len(docs) < exportBatchSize || offset+len(docs) >= total {
			break
		}
	}

	cw.Flush()
	return cw.Error()
}

func (s *documentService) Extract(ctx context.Context, docID uuid.UUID) (*domain.LandRecordExtraction, error) {
	doc, err := s.docRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(doc.OCRText) == "" {
		return nil, domain.ErrNoText
	}
	ex := extraction.Extract(doc.OCRText)
	if ex.KhasraNumber == "" && doc.TranslatedText != "" {
		fromTranslation := extraction.Extract(doc.TranslatedText)
		mergeExtraction(&ex, fromTranslation)
	}
	return &ex, nil
}

func mergeExtraction(dst *domain.LandRecordExtraction, src domain.LandRecordExtraction) {
	if dst.KhasraNumber == "" {
		dst.KhasraNumber = src.KhasraNumber
	}
	if dst.OwnerName == "" {
		dst.OwnerName = src.OwnerName
	}
	if dst.AreaKanal == nil {
		dst.AreaKanal, dst.AreaMarla = src.AreaKanal, src.AreaMarla
	}
	if dst.Mauza == "" {
		dst.Mauza = src.Mauza
	}
	if dst.Tehsil == "" {
		dst.Tehsil = src.Tehsil
	}
	if dst.District == "" {
		dst.District = src.District
	}
}

func (s *documentService) Save(ctx context.Context, input SaveRecordInput) (*SaveRecordResult, error) {
	doc, err := s.docRepo.GetByID(ctx, input.DocumentID)
	if err != nil {
		return nil, err
	}
	if doc.ProcessingStatus != domain.ProcessingStatusProcessed {
		return nil, domain.ErrDocumentNotProcessed
	}

	fields := domain.LandRecordExtraction{
		KhasraNumber: input.KhasraNumber,
		OwnerName:    input.OwnerName,
		AreaKanal:    input.AreaKanal,
		AreaMarla:    input.AreaMarla,
		Mauza:        input.Mauza,
		Tehsil:       input.Tehsil,
		District:     input.District,
	}
	mergeExtraction(&fields, extraction.Extract(doc.OCRText))
	if fields.KhasraNumber == "" {
		return nil, domain.ErrMissingRequiredFields
	}

	doc.KhasraNumber = fields.KhasraNumber
	doc.OwnerName = fields.OwnerName
	doc.AreaKanal = fields.AreaKanal
	doc.AreaMarla = fields.AreaMarla
	doc.Mauza = fields.Mauza
	doc.Tehsil = fields.Tehsil
	doc.District = fields.District

	rec := &port.SavedRecord{
		Document: doc,
		Parcel: &domain.LandParcel{
			ID:               uuid.New(),
			KhasraNumber:     fields.KhasraNumber,
			Mauza:            fields.Mauza,
			Tehsil:           fields.Tehsil,
			District:         fields.District,
			AreaKanal:        fields.AreaKanal,
			AreaMarla:        fields.AreaMarla,
			LandType:         input.LandType,
			OwnershipStatus:  "recorded",
			SourceDocumentID: &doc.ID,
		},
	}
	if fields.OwnerName != "" {
		rec.Farmer = &domain.Farmer{
			ID:        uuid.New(),
			NameLocal: fields.OwnerName,
			Tehsil:    fields.Tehsil,
			District:  fields.District,
		}
		rec.Parcel.FarmerID = &rec.Farmer.ID
	}
	if err := s.records.SaveRecord(ctx, rec); err != nil {
		return nil, fmt.Errorf("saving record: %w", err)
	}
	parcel := rec.Parcel

	log.WithFields(log.Fields{
		"document_id": doc.ID,
		"khasra":      parcel.KhasraNumber,
		"parcel_id":   parcel.ID,
	}).Info("documentService.Save: record saved")
	return &SaveRecordResult{Document: doc, Parcel: parcel, Farmer: rec.Farmer}, nil
}
