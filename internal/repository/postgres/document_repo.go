package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"landrecords/internal/domain"
	"landrecords/internal/port"
)

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new PostgreSQL-backed DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *domain.Document) error {
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	query := `INSERT INTO documents (
		id, filename, storage_path, file_type, file_size_kb, page_count,
		ocr_text, translated_text, detected_language, ocr_confidence,
		processing_status, processing_error, processing_time_ms, ai_summary,
		khasra_number, owner_name, area_kanal, area_marla, mauza, tehsil, district,
		is_saved, notes, tags, processed_at, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6,
		$7, $8, $9, $10,
		$11, $12, $13, $14,
		$15, $16, $17, $18, $19, $20, $21,
		$22, $23, $24, $25, $26, $27
	)`

	_, err := r.db.ExecContext(ctx, query,
		doc.ID, doc.Filename, doc.StoragePath, doc.FileType, doc.FileSizeKB, doc.PageCount,
		doc.OCRText, doc.TranslatedText, doc.DetectedLanguage, doc.OCRConfidence,
		doc.ProcessingStatus, doc.ProcessingError, doc.ProcessingTimeMS, doc.AISummary,
		doc.KhasraNumber, doc.OwnerName, doc.AreaKanal, doc.AreaMarla, doc.Mauza, doc.Tehsil, doc.District,
		doc.IsSaved, doc.Notes, doc.Tags, doc.ProcessedAt, doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("documentRepo.Create: %w", err)
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, docID uuid.UUID) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.GetContext(ctx, &doc, "SELECT * FROM documents WHERE id = $1", docID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("documentRepo.GetByID: %w", err)
	}
	return &doc, nil
}

// buildDocumentWhere constructs the WHERE clause for document listings.
func buildDocumentWhere(filter port.DocumentFilter) (clause string, args []interface{}) {
	clause = "WHERE TRUE"
	argN := 1

	if filter.SavedOnly {
		clause += " AND is_saved = TRUE"
	}
	if filter.Status != "" {
		clause += fmt.Sprintf(" AND processing_status = $%d", argN)
		args = append(args, filter.Status)
		argN++
	}
	if filter.District != "" {
		clause += fmt.Sprintf(" AND district = $%d", argN)
		args = append(args, filter.District)
		argN++
	}
	if filter.Khasra != "" {
		clause += fmt.Sprintf(" AND khasra_number = $%d", argN)
		args = append(args, filter.Khasra)
		argN++ //nolint:ineffassign // argN kept incremented for consistency
	}
	return clause, args
}

func (r *documentRepo) List(ctx context.Context, filter port.DocumentFilter, offset, limit int) ([]domain.Document, int, error) {
	where, args := buildDocumentWhere(filter)

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM documents "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("documentRepo.List count: %w", err)
	}

	n := len(args)
	query := fmt.Sprintf("SELECT * FROM documents %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d", where, n+1, n+2)
	var docs []domain.Document
	if err := r.db.SelectContext(ctx, &docs, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("documentRepo.List: %w", err)
	}
	return docs, total, nil
}

func (r *documentRepo) ListSavedWithoutSummary(ctx context.Context, limit int) ([]domain.Document, error) {
	var docs []domain.Document
	err := r.db.SelectContext(ctx, &docs,
		`SELECT * FROM documents
		 WHERE is_saved = TRUE AND ai_summary = '' AND ocr_text <> ''
		 ORDER BY created_at LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("documentRepo.ListSavedWithoutSummary: %w", err)
	}
	return docs, nil
}

func (r *documentRepo) UpdateProcessingResult(ctx context.Context, doc *domain.Document) error {
	doc.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE documents SET
			ocr_text = $1, detected_language = $2, ocr_confidence = $3,
			processing_status = $4, processing_error = $5, processing_time_ms = $6,
			page_count = $7, processed_at = $8, updated_at = $9
		 WHERE id = $10`,
		doc.OCRText, doc.DetectedLanguage, doc.OCRConfidence,
		doc.ProcessingStatus, doc.ProcessingError, doc.ProcessingTimeMS,
		doc.PageCount, doc.ProcessedAt, doc.UpdatedAt,
		doc.ID)
	if err != nil {
		return fmt.Errorf("documentRepo.UpdateProcessingResult: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepo) UpdateTranslation(ctx context.Context, docID uuid.UUID, translated string) error {
	return r.updateColumn(ctx, "documentRepo.UpdateTranslation",
		"UPDATE documents SET translated_text = $1, updated_at = $2 WHERE id = $3", translated, docID)
}

func (r *documentRepo) UpdateSummary(ctx context.Context, docID uuid.UUID, summary string) error {
	return r.updateColumn(ctx, "documentRepo.UpdateSummary",
		"UPDATE documents SET ai_summary = $1, updated_at = $2 WHERE id = $3", summary, docID)
}

func (r *documentRepo) updateColumn(ctx context.Context, op, query, value string, docID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, query, value, time.Now().UTC(), docID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepo) UpdateMetadata(ctx context.Context, docID uuid.UUID, notes, tags string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE documents SET notes = $1, tags = $2, updated_at = $3 WHERE id = $4",
		notes, tags, time.Now().UTC(), docID)
	if err != nil {
		return fmt.Errorf("documentRepo.UpdateMetadata: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, docID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM documents WHERE id = $1", docID)
	if err != nil {
		return fmt.Errorf("documentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}
