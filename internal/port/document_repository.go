package port

import (
	"context"

	"github.com/google/uuid"

	"landrecords/internal/domain"
)

// DocumentFilter narrows document listings.
type DocumentFilter struct {
	SavedOnly bool
	Status    domain.ProcessingStatus
	District  string
	Khasra    string
}

// DocumentRepository defines the contract for document persistence.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, docID uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, filter DocumentFilter, offset, limit int) ([]domain.Document, int, error)
	ListSavedWithoutSummary(ctx context.Context, limit int) ([]domain.Document, error)
	UpdateProcessingResult(ctx context.Context, doc *domain.Document) error
	UpdateTranslation(ctx context.Context, docID uuid.UUID, translated string) error
	UpdateSummary(ctx context.Context, docID uuid.UUID, summary string) error
	UpdateMetadata(ctx context.Context, docID uuid.UUID, notes, tags string) error
	Delete(ctx context.Context, docID uuid.UUID) error
}
