package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"landrecords/internal/domain"
	"landrecords/internal/port"
	"landrecords/internal/service"
	"landrecords/mocks"
)

func setupSummaryService() (*mocks.MockDocumentRepo, *mocks.MockSummarizer, service.SummaryService) {
	docRepo := new(mocks.MockDocumentRepo)
	summarizer := new(mocks.MockSummarizer)
	return docRepo, summarizer, service.NewSummaryService(docRepo, summarizer)
}

func TestSummaryService_Summarize_PrefersTranslation(t *testing.T) {
	docRepo, summarizer, svc := setupSummaryService()
	doc := &domain.Document{ID: uuid.New(), OCRText: "خسرہ نمبر 45", TranslatedText: "Khasra Number (Plot ID) 45"}

	docRepo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)
	summarizer.On("Summarize", mock.Anything, "Khasra Number (Plot ID) 45", domain.SummaryLandRecord).
		Return(&port.SummaryOutput{Text: "Plot 45.", Model: "gemini-2.0-flash"}, nil)
	docRepo.On("UpdateSummary", mock.Anything, doc.ID, "Plot 45.").Return(nil)

	res, err := svc.Summarize(context.Background(), doc.ID, domain.SummaryLandRecord)
	require.NoError(t, err)

	assert.Equal(t, "Plot 45.", res.Summary)
	assert.Equal(t, "gemini-2.0-flash", res.Model)
	assert.Equal(t, domain.SummaryLandRecord, res.Kind)
	docRepo.AssertExpectations(t)
	summarizer.AssertExpectations(t)
}

func TestSummaryService_Summarize_DefaultKindUsesOCRText(t *testing.T) {
	docRepo, summarizer, svc := setupSummaryService()
	doc := &domain.Document{ID: uuid.New(), OCRText: "raw text"}

	docRepo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)
	summarizer.On("Summarize", mock.Anything, "raw text", domain.SummaryGeneral).
		Return(&port.SummaryOutput{Text: "summary"}, nil)
	docRepo.On("UpdateSummary", mock.Anything, doc.ID, "summary").Return(nil)

	res, err := svc.Summarize(context.Background(), doc.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.SummaryGeneral, res.Kind)
}

func TestSummaryService_Summarize_Errors(t *testing.T) {
	t.Run("invalid kind", func(t *testing.T) {
		docRepo, _, svc := setupSummaryService()
		_, err := svc.Summarize(context.Background(), uuid.New(), "poem")
		assert.ErrorIs(t, err, domain.ErrInvalidSummaryKind)
		docRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("no text", func(t *testing.T) {
		docRepo, summarizer, svc := setupSummaryService()
		doc := &domain.Document{ID: uuid.New(), OCRText: "  "}
		docRepo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)

		_, err := svc.Summarize(context.Background(), doc.ID, domain.SummaryGeneral)
		assert.ErrorIs(t, err, domain.ErrNoText)
		summarizer.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("document missing", func(t *testing.T) {
		docRepo, _, svc := setupSummaryService()
		id := uuid.New()
		docRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrDocumentNotFound)

		_, err := svc.Summarize(context.Background(), id, domain.SummaryGeneral)
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})

	t.Run("summarizer unconfigured", func(t *testing.T) {
		docRepo, summarizer, svc := setupSummaryService()
		doc := &domain.Document{ID: uuid.New(), OCRText: "text"}
		docRepo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)
		summarizer.On("Summarize", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domain.NewConfigurationError("summarizer", "api key is not set"))

		_, err := svc.Summarize(context.Background(), doc.ID, domain.SummaryGeneral)
		var cfgErr *domain.ConfigurationError
		assert.ErrorAs(t, err, &cfgErr)
		docRepo.AssertNotCalled(t, "UpdateSummary", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSummaryService_Ask(t *testing.T) {
	docRepo, summarizer, svc := setupSummaryService()
	doc := &domain.Document{ID: uuid.New(), OCRText: "Owner: Ghulam Nabi"}

	docRepo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)
	summarizer.On("Ask", mock.Anything, "Owner: Ghulam Nabi", "Who owns the plot?").
		Return(&port.SummaryOutput{Text: "Ghulam Nabi", Model: "m"}, nil)

	res, err := svc.Ask(context.Background(), doc.ID, "  Who owns the plot? ")
	require.NoError(t, err)
	assert.Equal(t, "Who owns the plot?", res.Question)
	assert.Equal(t, "Ghulam Nabi", res.Answer)
	docRepo.AssertNotCalled(t, "UpdateSummary", mock.Anything, mock.Anything, mock.Anything)

	_, err = svc.Ask(context.Background(), doc.ID, " ")
	assert.ErrorIs(t, err, domain.ErrMissingRequiredFields)
}

func TestSummaryService_Backfill(t *testing.T) {
	docRepo, summarizer, svc := setupSummaryService()
	ok := domain.Document{ID: uuid.New(), OCRText: "first"}
	bad := domain.Document{ID: uuid.New(), OCRText: "second"}

	docRepo.On("ListSavedWithoutSummary", mock.Anything, 10).Return([]domain.Document{ok, bad}, nil)
	summarizer.On("Summarize", mock.Anything, "first", domain.SummaryLandRecord).
		Return(&port.SummaryOutput{Text: "s1"}, nil)
	summarizer.On("Summarize", mock.Anything, "second", domain.SummaryLandRecord).
		Return(nil, domain.NewTransportError("gemini", errors.New("timeout")))
	docRepo.On("UpdateSummary", mock.Anything, ok.ID, "s1").Return(nil)

	res, err := svc.Backfill(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Processed)
	assert.Equal(t, 1, res.Failed)
	docRepo.AssertExpectations(t)
}

func TestSummaryService_Backfill_StopsOnConfigurationError(t *testing.T) {
	docRepo, summarizer, svc := setupSummaryService()
	docs := []domain.Document{{ID: uuid.New(), OCRText: "a"}, {ID: uuid.New(), OCRText: "b"}}

	docRepo.On("ListSavedWithoutSummary", mock.Anything, 5).Return(docs, nil)
	summarizer.On("Summarize", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.NewConfigurationError("summarizer", "missing key")).Once()

	res, err := svc.Backfill(context.Background(), 5)
	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Zero(t, res.Processed)
	summarizer.AssertNumberOfCalls(t, "Summarize", 1)
}
