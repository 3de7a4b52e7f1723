package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"landrecords/internal/domain"
	"landrecords/internal/port"
)

// MockFarmerRepo is a mock implementation of port.FarmerRepository.
type MockFarmerRepo struct {
	mock.Mock
}

func (m *MockFarmerRepo) Create(ctx context.Context, farmer *domain.Farmer) error {
	args := m.Called(ctx, farmer)
	return args.Error(0)
}

func (m *MockFarmerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Farmer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farmer), args.Error(1)
}

func (m *MockFarmerRepo) List(ctx context.Context, district string, offset, limit int) ([]domain.Farmer, int, error) {
	args := m.Called(ctx, district, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Farmer), args.Int(1), args.Error(2)
}

// MockLandParcelRepo is a mock implementation of port.LandParcelRepository.
type MockLandParcelRepo struct {
	mock.Mock
}

func (m *MockLandParcelRepo) Create(ctx context.Context, parcel *domain.LandParcel) error {
	args := m.Called(ctx, parcel)
	return args.Error(0)
}

func (m *MockLandParcelRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LandParcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LandParcel), args.Error(1)
}

func (m *MockLandParcelRepo) List(ctx context.Context, khasra string, offset, limit int) ([]domain.LandParcel, int, error) {
	args := m.Called(ctx, khasra, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.LandParcel), args.Int(1), args.Error(2)
}

// MockSubscriberRepo is a mock implementation of port.SubscriberRepository.
type MockSubscriberRepo struct {
	mock.Mock
}

func (m *MockSubscriberRepo) Create(ctx context.Context, sub *domain.NewsletterSubscriber) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriberRepo) GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NewsletterSubscriber), args.Error(1)
}

func (m *MockSubscriberRepo) UpdateStatus(ctx context.Context, sub *domain.NewsletterSubscriber) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

// MockRecordSaver is a mock implementation of port.RecordSaver.
type MockRecordSaver struct {
	mock.Mock
}

func (m *MockRecordSaver) SaveRecord(ctx context.Context, rec *port.SavedRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
