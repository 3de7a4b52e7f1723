package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"landrecords/internal/domain"
)

// MockDisputedLandRepo is a mock implementation of port.DisputedLandRepository.
type MockDisputedLandRepo struct {
	mock.Mock
}

func (m *MockDisputedLandRepo) Create(ctx context.Context, land *domain.DisputedLand) error {
	args := m.Called(ctx, land)
	return args.Error(0)
}

func (m *MockDisputedLandRepo) CreateBatch(ctx context.Context, lands []domain.DisputedLand) (int, error) {
	args := m.Called(ctx, lands)
	return args.Int(0), args.Error(1)
}

func (m *MockDisputedLandRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DisputedLand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisputedLand), args.Error(1)
}

func (m *MockDisputedLandRepo) List(ctx context.Context, filter domain.DisputedLandFilter, offset, limit int) ([]domain.DisputedLand, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.DisputedLand), args.Int(1), args.Error(2)
}

func (m *MockDisputedLandRepo) ListMapPoints(ctx context.Context, district, tehsil string) ([]domain.DisputedLandMapPoint, error) {
	args := m.Called(ctx, district, tehsil)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DisputedLandMapPoint), args.Error(1)
}

func (m *MockDisputedLandRepo) Update(ctx context.Context, land *domain.DisputedLand) error {
	args := m.Called(ctx, land)
	return args.Error(0)
}

func (m *MockDisputedLandRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDisputedLandRepo) Stats(ctx context.Context) (*domain.DisputedLandStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisputedLandStats), args.Error(1)
}

func (m *MockDisputedLandRepo) Districts(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDisputedLandRepo) Tehsils(ctx context.Context, district string) ([]string, error) {
	args := m.Called(ctx, district)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
