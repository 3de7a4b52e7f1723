package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"landrecords/internal/domain"
	"landrecords/internal/service"
)

// MockFileService is a mock implementation of service.FileService.
type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Upload(ctx context.Context, input service.FileUploadInput) (*service.StoredFile, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StoredFile), args.Error(1)
}

// MockProcessingService is a mock implementation of service.ProcessingService.
type MockProcessingService struct {
	mock.Mock
}

func (m *MockProcessingService) ProcessUpload(ctx context.Context, input service.ProcessUploadInput) (*service.ProcessingResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProcessingResult), args.Error(1)
}

func (m *MockProcessingService) ProcessStored(ctx context.Context, storagePath string) (*service.ProcessingResult, error) {
	args := m.Called(ctx, storagePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProcessingResult), args.Error(1)
}

// MockLedgerService is a mock implementation of service.LedgerService.
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) RecordAttempt(ctx context.Context, date time.Time, outcome domain.Outcome, durationMS int64, language string) (*domain.ProcessingStats, error) {
	args := m.Called(ctx, date, outcome, durationMS, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProcessingStats), args.Error(1)
}

func (m *MockLedgerService) GetDay(ctx context.Context, date time.Time) (*domain.ProcessingStats, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProcessingStats), args.Error(1)
}

func (m *MockLedgerService) ListRange(ctx context.Context, from, to time.Time) ([]domain.ProcessingStats, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProcessingStats), args.Error(1)
}

func (m *MockLedgerService) Summary(ctx context.Context, from, to time.Time) (*domain.StatsSummary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatsSummary), args.Error(1)
}

func (m *MockLedgerService) ExportWorkbook(ctx context.Context, from, to time.Time, w io.Writer) error {
	args := m.Called(ctx, from, to, w)
	return args.Error(0)
}

// MockCapabilityService is a mock implementation of service.CapabilityService.
type MockCapabilityService struct {
	mock.Mock
}

func (m *MockCapabilityService) Capabilities() []domain.Capability {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Capability)
}
