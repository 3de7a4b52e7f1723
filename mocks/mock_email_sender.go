package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendSubscriptionConfirmation(ctx context.Context, toEmail string) error {
	args := m.Called(ctx, toEmail)
	return args.Error(0)
}
