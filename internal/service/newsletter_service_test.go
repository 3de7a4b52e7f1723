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

	"landrecords/internal/domain"
	"landrecords/internal/service"
	"landrecords/mocks"
)

func setupNewsletterService() (*mocks.MockSubscriberRepo, *mocks.MockEmailSender, service.NewsletterService) {
	repo := new(mocks.MockSubscriberRepo)
	sender := new(mocks.MockEmailSender)
	return repo, sender, service.NewNewsletterService(repo, sender)
}

func TestNewsletterService_Subscribe_New(t *testing.T) {
	repo, sender, svc := setupNewsletterService()

	repo.On("GetByEmail", mock.Anything, "reader@example.org").Return(nil, domain.ErrSubscriberNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.NewsletterSubscriber) bool {
		return s.Email == "reader@example.org" && s.Status == domain.SubscriberActive
	})).Return(nil)
	sender.On("SendSubscriptionConfirmation", mock.Anything, "reader@example.org").Return(nil)

	sub, err := svc.Subscribe(context.Background(), "  Reader@Example.org ")
	require.NoError(t, err)
	assert.Equal(t, "reader@example.org", sub.Email)
	assert.NotEqual(t, uuid.Nil, sub.ID)
	repo.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestNewsletterService_Subscribe_InvalidEmail(t *testing.T) {
	repo, _, svc := setupNewsletterService()

	for _, email := range []string{"", "not-an-email", "a@b", "a b@example.org"} {
		_, err := svc.Subscribe(context.Background(), email)
		assert.ErrorIs(t, err, domain.ErrInvalidEmail, email)
	}
	repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestNewsletterService_Subscribe_AlreadyActive(t *testing.T) {
	repo, sender, svc := setupNewsletterService()
	repo.On("GetByEmail", mock.Anything, "reader@example.org").
		Return(&domain.NewsletterSubscriber{Email: "reader@example.org", Status: domain.SubscriberActive}, nil)

	_, err := svc.Subscribe(context.Background(), "reader@example.org")
	assert.ErrorIs(t, err, domain.ErrAlreadySubscribed)
	sender.AssertNotCalled(t, "SendSubscriptionConfirmation", mock.Anything, mock.Anything)
}

func TestNewsletterService_Subscribe_Reactivates(t *testing.T) {
	repo, sender, svc := setupNewsletterService()
	left := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	existing := &domain.NewsletterSubscriber{
		ID:             uuid.New(),
		Email:          "reader@example.org",
		Status:         domain.SubscriberUnsubscribed,
		UnsubscribedAt: &left,
	}
	repo.On("GetByEmail", mock.Anything, "reader@example.org").Return(existing, nil)
	repo.On("UpdateStatus", mock.Anything, existing).Return(nil)
	sender.On("SendSubscriptionConfirmation", mock.Anything, "reader@example.org").
		Return(errors.New("smtp down"))

	sub, err := svc.Subscribe(context.Background(), "reader@example.org")
	require.NoError(t, err, "delivery failures do not undo the subscription")
	assert.Equal(t, existing.ID, sub.ID)
	assert.Equal(t, domain.SubscriberActive, sub.Status)
	assert.Nil(t, sub.UnsubscribedAt)
}

func TestNewsletterService_Unsubscribe(t *testing.T) {
	t.Run("active subscriber", func(t *testing.T) {
		repo, _, svc := setupNewsletterService()
		sub := &domain.NewsletterSubscriber{Email: "reader@example.org", Status: domain.SubscriberActive}
		repo.On("GetByEmail", mock.Anything, "reader@example.org").Return(sub, nil)
		repo.On("UpdateStatus", mock.Anything, sub).Return(nil)

		require.NoError(t, svc.Unsubscribe(context.Background(), "READER@example.org"))
		assert.Equal(t, domain.SubscriberUnsubscribed, sub.Status)
		assert.NotNil(t, sub.UnsubscribedAt)
	})

	t.Run("already unsubscribed is a no-op", func(t *testing.T) {
		repo, _, svc := setupNewsletterService()
		repo.On("GetByEmail", mock.Anything, "reader@example.org").
			Return(&domain.NewsletterSubscriber{Status: domain.SubscriberUnsubscribed}, nil)

		require.NoError(t, svc.Unsubscribe(context.Background(), "reader@example.org"))
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo, _, svc := setupNewsletterService()
		repo.On("GetByEmail", mock.Anything, "ghost@example.org").Return(nil, domain.ErrSubscriberNotFound)

		assert.ErrorIs(t, svc.Unsubscribe(context.Background(), "ghost@example.org"), domain.ErrSubscriberNotFound)
	})
}
