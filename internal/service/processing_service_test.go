package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"landrecords/internal/config"
	"landrecords/internal/domain"
	"landrecords/internal/imaging"
	"landrecords/internal/port"
	"landrecords/internal/service"
	"landrecords/internal/translation"
	"landrecords/mocks"
)

type processingFixture struct {
	docRepo    *mocks.MockDocumentRepo
	storage    *mocks.MockObjectStorage
	recognizer *mocks.MockTextRecognizer
	stats      *memStatsRepo
	ledger     service.LedgerService
	svc        service.ProcessingService
}

func newProcessingFixture() *processingFixture {
	f := &processingFixture{
		docRepo:    new(mocks.MockDocumentRepo),
		storage:    new(mocks.MockObjectStorage),
		recognizer: new(mocks.MockTextRecognizer),
		stats:      newMemStatsRepo(),
	}
	f.ledger = service.NewLedgerService(f.stats)
	f.svc = service.NewProcessingService(
		f.docRepo,
		f.storage,
		"scans",
		imaging.NewPreprocessor(config.ImagingConfig{}),
		f.recognizer,
		f.ledger,
		[]string{"ur", "hi", "en"},
	)
	return f
}

func (f *processingFixture) today(t *testing.T) *domain.ProcessingStats {
	t.Helper()
	row, err := f.ledger.GetDay(context.Background(), time.Now().UTC())
	require.NoError(t, err)
	return row
}

func urduKhasraAnnotation() *port.Annotation {
	return &port.Annotation{
		Pages: []port.OCRPage{{
			Blocks: []port.OCRBlock{{
				Words:      []string{"خسرہ", "نمبر", "45"},
				Confidence: floatPtr(0.9),
				Languages:  []string{"ur"},
			}},
		}},
		FullText: "خسرہ نمبر 45",
	}
}

func TestProcessingService_UrduKhasraEndToEnd(t *testing.T) {
	f := newProcessingFixture()
	ctx := context.Background()

	var stored *domain.Document
	f.docRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Document")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.Document) }).
		Return(nil)
	f.docRepo.On("UpdateProcessingResult", mock.Anything, mock.AnythingOfType("*domain.Document")).Return(nil)
	f.recognizer.On("Recognize", mock.Anything, mock.Anything, []string{"ur", "hi", "en"}).
		Return(urduKhasraAnnotation(), nil)

	res, err := f.svc.ProcessUpload(ctx, service.ProcessUploadInput{
		Filename: "jamabandi.png",
		Data:     scanPNG(t),
	})
	require.NoError(t, err)

	assert.Equal(t, "خسرہ نمبر 45", res.Text)
	assert.Equal(t, 90.0, res.Confidence)
	assert.Equal(t, domain.LanguageUrdu, res.Language)
	assert.Equal(t, 1, res.PageCount)

	require.NotNil(t, stored)
	assert.Equal(t, res.DocumentID, stored.ID)
	assert.Equal(t, domain.ProcessingStatusProcessed, stored.ProcessingStatus)
	assert.Equal(t, domain.FileTypePNG, stored.FileType)
	assert.NotNil(t, stored.ProcessedAt)

	row := f.today(t)
	assert.Equal(t, int64(1), row.DocumentsProcessed)
	assert.Equal(t, int64(1), row.UrduCount)
	assert.Zero(t, row.DocumentsFailed)

	f.docRepo.On("GetByID", mock.Anything, stored.ID).Return(stored, nil)
	f.docRepo.On("UpdateTranslation", mock.Anything, stored.ID, mock.AnythingOfType("string")).Return(nil)

	translator := service.NewTranslationService(f.docRepo, identityTranslator{}, translation.NewLandRecordGlossary(), "en")
	tr, err := translator.TranslateDocument(ctx, stored.ID)
	require.NoError(t, err)

	assert.Equal(t, "ur", tr.SourceLanguage)
	assert.Contains(t, tr.TranslatedText, "Khasra Number (Plot ID)")
	assert.Contains(t, tr.TranslatedText, "45")
	require.NotEmpty(t, tr.DetectedTerms)
	assert.Equal(t, "Khasra Number (Plot ID)", tr.DetectedTerms[0].Gloss)
	f.docRepo.AssertExpectations(t)
}

func TestProcessingService_CorruptImage(t *testing.T) {
	f := newProcessingFixture()

	_, err := f.svc.ProcessUpload(context.Background(), service.ProcessUploadInput{
		Filename: "scan.jpg",
		Data:     []byte("definitely not an image"),
	})

	var decodeErr *domain.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	f.docRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.recognizer.AssertNotCalled(t, "Recognize", mock.Anything, mock.Anything, mock.Anything)

	row := f.today(t)
	assert.Equal(t, int64(1), row.DocumentsFailed)
	assert.Zero(t, row.DocumentsProcessed)
}

func TestProcessingService_EmptyFile(t *testing.T) {
	f := newProcessingFixture()

	_, err := f.svc.ProcessUpload(context.Background(), service.ProcessUploadInput{Filename: "scan.png"})

	assert.ErrorIs(t, err, domain.ErrEmptyFile)
	f.docRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	row := f.today(t)
	assert.Equal(t, int64(1), row.DocumentsFailed)
	assert.Zero(t, row.DocumentsProcessed)
}

func TestProcessingService_RecognitionFailureMarksDocument(t *testing.T) {
	f := newProcessingFixture()
	engineErr := domain.NewTransportError("vision", errors.New("deadline exceeded"))

	f.docRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.docRepo.On("UpdateProcessingResult", mock.Anything, mock.MatchedBy(func(d *domain.Document) bool {
		return d.ProcessingStatus == domain.ProcessingStatusFailed && d.ProcessingError != ""
	})).Return(nil)
	f.recognizer.On("Recognize", mock.Anything, mock.Anything, mock.Anything).Return(nil, engineErr)

	_, err := f.svc.ProcessUpload(context.Background(), service.ProcessUploadInput{
		Filename: "scan.png",
		Data:     scanPNG(t),
	})

	assert.ErrorIs(t, err, engineErr)
	f.docRepo.AssertExpectations(t)
	row := f.today(t)
	assert.Equal(t, int64(1), row.DocumentsFailed)
	assert.Zero(t, row.DocumentsProcessed)
}

func TestProcessingService_HintsOverride(t *testing.T) {
	f := newProcessingFixture()
	f.docRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.docRepo.On("UpdateProcessingResult", mock.Anything, mock.Anything).Return(nil)
	f.recognizer.On("Recognize", mock.Anything, mock.Anything, []string{"hi"}).
		Return(&port.Annotation{}, nil)

	res, err := f.svc.ProcessUpload(context.Background(), service.ProcessUploadInput{
		Filename: "scan.png",
		Data:     scanPNG(t),
		Hints:    []string{"hi"},
	})
	require.NoError(t, err)

	assert.Empty(t, res.Text)
	assert.Zero(t, res.Confidence)
	assert.Equal(t, domain.LanguageUnknown, res.Language)
	f.recognizer.AssertExpectations(t)
}

func TestProcessingService_LedgerErrorDoesNotFailProcessing(t *testing.T) {
	docRepo := new(mocks.MockDocumentRepo)
	recognizer := new(mocks.MockTextRecognizer)
	ledger := new(mocks.MockLedgerService)
	svc := service.NewProcessingService(docRepo, new(mocks.MockObjectStorage), "scans",
		imaging.NewPreprocessor(config.ImagingConfig{}), recognizer, ledger, nil)

	docRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	docRepo.On("UpdateProcessingResult", mock.Anything, mock.Anything).Return(nil)
	recognizer.On("Recognize", mock.Anything, mock.Anything, mock.Anything).Return(urduKhasraAnnotation(), nil)
	ledger.On("RecordAttempt", mock.Anything, mock.Anything, domain.OutcomeSuccess, mock.Anything, domain.LanguageUrdu).
		Return(nil, errors.New("ledger unavailable"))

	res, err := svc.ProcessUpload(context.Background(), service.ProcessUploadInput{
		Filename: "scan.png",
		Data:     scanPNG(t),
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.DocumentID)
	ledger.AssertExpectations(t)
}

func TestProcessingService_ProcessStored(t *testing.T) {
	t.Run("downloads and processes", func(t *testing.T) {
		f := newProcessingFixture()
		f.storage.On("Download", mock.Anything, "scans", "uploads/2024/scan.png").Return(scanPNG(t), nil)
		f.docRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *domain.Document) bool {
			return d.Filename == "scan.png" && d.StoragePath == "uploads/2024/scan.png"
		})).Return(nil)
		f.docRepo.On("UpdateProcessingResult", mock.Anything, mock.Anything).Return(nil)
		f.recognizer.On("Recognize", mock.Anything, mock.Anything, mock.Anything).Return(urduKhasraAnnotation(), nil)

		res, err := f.svc.ProcessStored(context.Background(), "uploads/2024/scan.png")
		require.NoError(t, err)
		assert.Equal(t, domain.LanguageUrdu, res.Language)
		f.docRepo.AssertExpectations(t)
	})

	t.Run("missing object", func(t *testing.T) {
		f := newProcessingFixture()
		f.storage.On("Download", mock.Anything, "scans", "missing.png").Return(nil, domain.ErrNotFound)

		_, err := f.svc.ProcessStored(context.Background(), "missing.png")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		f.docRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
