package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"landrecords/internal/domain"
	"landrecords/internal/port"
)

// MockStatsRepo is a mock implementation of port.StatsRepository.
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) Increment(ctx context.Context, inc port.StatsIncrement) (*domain.ProcessingStats, error) {
	args := m.Called(ctx, inc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProcessingStats), args.Error(1)
}

func (m *MockStatsRepo) GetByDate(ctx context.Context, date time.Time) (*domain.ProcessingStats, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProcessingStats), args.Error(1)
}

func (m *MockStatsRepo) ListRange(ctx context.Context, from, to time.Time) ([]domain.ProcessingStats, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProcessingStats), args.Error(1)
}
