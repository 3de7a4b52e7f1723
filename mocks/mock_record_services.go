package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"landrecords/internal/domain"
	"landrecords/internal/service"
)

// MockDisputedLandService is a mock implementation of service.DisputedLandService.
type MockDisputedLandService struct {
	mock.Mock
}

func (m *MockDisputedLandService) List(ctx context.Context, filter domain.DisputedLandFilter, page, perPage int) (*service.DisputedLandPage, error) {
	args := m.Called(ctx, filter, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DisputedLandPage), args.Error(1)
}

func (m *MockDisputedLandService) MapData(ctx context.Context, district, tehsil string) ([]domain.DisputedLandMapPoint, error) {
	args := m.Called(ctx, district, tehsil)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DisputedLandMapPoint), args.Error(1)
}

func (m *MockDisputedLandService) GetByID(ctx context.Context, id uuid.UUID) (*domain.DisputedLand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisputedLand), args.Error(1)
}

func (m *MockDisputedLandService) Create(ctx context.Context, input service.CreateDisputedLandInput) (*domain.DisputedLand, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisputedLand), args.Error(1)
}

func (m *MockDisputedLandService) CreateBatch(ctx context.Context, inputs []service.CreateDisputedLandInput) (int, error) {
	args := m.Called(ctx, inputs)
	return args.Int(0), args.Error(1)
}

func (m *MockDisputedLandService) Update(ctx context.Context, input service.UpdateDisputedLandInput) (*domain.DisputedLand, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisputedLand), args.Error(1)
}

func (m *MockDisputedLandService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDisputedLandService) Stats(ctx context.Context) (*domain.DisputedLandStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisputedLandStats), args.Error(1)
}

func (m *MockDisputedLandService) Districts(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDisputedLandService) Tehsils(ctx context.Context, district string) ([]string, error) {
	args := m.Called(ctx, district)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockRegistryService is a mock implementation of service.RegistryService.
type MockRegistryService struct {
	mock.Mock
}

func (m *MockRegistryService) CreateFarmer(ctx context.Context, input service.CreateFarmerInput) (*domain.Farmer, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farmer), args.Error(1)
}

func (m *MockRegistryService) GetFarmer(ctx context.Context, id uuid.UUID) (*domain.Farmer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farmer), args.Error(1)
}

func (m *MockRegistryService) ListFarmers(ctx context.Context, district string, offset, limit int) ([]domain.Farmer, int, error) {
	args := m.Called(ctx, district, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Farmer), args.Int(1), args.Error(2)
}

func (m *MockRegistryService) GetParcel(ctx context.Context, id uuid.UUID) (*domain.LandParcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LandParcel), args.Error(1)
}

func (m *MockRegistryService) ListParcels(ctx context.Context, khasra string, offset, limit int) ([]domain.LandParcel, int, error) {
	args := m.Called(ctx, khasra, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.LandParcel), args.Int(1), args.Error(2)
}

// MockNewsletterService is a mock implementation of service.NewsletterService.
type MockNewsletterService struct {
	mock.Mock
}

func (m *MockNewsletterService) Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NewsletterSubscriber), args.Error(1)
}

func (m *MockNewsletterService) Unsubscribe(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
