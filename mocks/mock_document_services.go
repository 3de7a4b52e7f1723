package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"landrecords/internal/domain"
	"landrecords/internal/port"
	"landrecords/internal/service"
	"landrecords/internal/translation"
)

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) GetByID(ctx context.Context, docID uuid.UUID) (*domain.Document, error) {
	args := m.Called(ctx, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, filter port.DocumentFilter, offset, limit int) ([]domain.Document, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Document), args.Int(1), args.Error(2)
}

func (m *MockDocumentService) Update(ctx context.Context, input service.UpdateDocumentInput) (*domain.Document, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, docID uuid.UUID) error {
	args := m.Called(ctx, docID)
	return args.Error(0)
}

func (m *MockDocumentService) GetDownloadURL(ctx context.Context, docID uuid.UUID) (string, error) {
	args := m.Called(ctx, docID)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) ExportCSV(ctx context.Context, filter port.DocumentFilter, w io.Writer) error {
	args := m.Called(ctx, filter, w)
	return args.Error(0)
}

func (m *MockDocumentService) Extract(ctx context.Context, docID uuid.UUID) (*domain.LandRecordExtraction, error) {
	args := m.Called(ctx, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LandRecordExtraction), args.Error(1)
}

func (m *MockDocumentService) Save(ctx context.Context, input service.SaveRecordInput) (*service.SaveRecordResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SaveRecordResult), args.Error(1)
}

// MockSummaryService is a mock implementation of service.SummaryService.
type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) Summarize(ctx context.Context, docID uuid.UUID, kind domain.SummaryKind) (*service.SummaryResult, error) {
	args := m.Called(ctx, docID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SummaryResult), args.Error(1)
}

func (m *MockSummaryService) Ask(ctx context.Context, docID uuid.UUID, question string) (*service.AnswerResult, error) {
	args := m.Called(ctx, docID, question)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AnswerResult), args.Error(1)
}

func (m *MockSummaryService) Backfill(ctx context.Context, limit int) (*service.BackfillResult, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BackfillResult), args.Error(1)
}

// MockTranslationService is a mock implementation of service.TranslationService.
type MockTranslationService struct {
	mock.Mock
}

func (m *MockTranslationService) TranslateDocument(ctx context.Context, docID uuid.UUID) (*service.TranslationResult, error) {
	args := m.Called(ctx, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TranslationResult), args.Error(1)
}

func (m *MockTranslationService) TranslateText(ctx context.Context, text, srcLang, tgtLang string) (*service.TranslationResult, error) {
	args := m.Called(ctx, text, srcLang, tgtLang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TranslationResult), args.Error(1)
}

func (m *MockTranslationService) DetectedTerms(text string) []translation.Term {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]translation.Term)
}

func (m *MockTranslationService) Glossary() []translation.Category {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]translation.Category)
}
