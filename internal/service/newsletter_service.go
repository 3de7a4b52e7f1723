package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"landrecords/internal/domain"
	"landrecords/internal/port"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NewsletterService manages newsletter subscriptions.
type NewsletterService interface {
	Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscriber, error)
	Unsubscribe(ctx context.Context, email string) error
}

type newsletterService struct {
	repo   port.SubscriberRepository
	sender port.EmailSender
	now    func() time.Time
}

// NewNewsletterService creates a new NewsletterService implementation.
func NewNewsletterService(repo port.SubscriberRepository, sender port.EmailSender) NewsletterService {
	return &newsletterService{repo: repo, sender: sender, now: time.Now}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Subscribe registers email, or reactivates it after an earlier unsubscribe.
func (s *newsletterService) Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	email = normalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return nil, domain.ErrInvalidEmail
	}

	now := s.now().UTC()
	existing, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil && existing.Status == domain.SubscriberActive:
		return nil, domain.ErrAlreadySubscribed
	case err == nil:
		existing.Status = domain.SubscriberActive
		existing.SubscribedAt = now
		existing.UnsubscribedAt = nil
		if err := s.repo.UpdateStatus(ctx, existing); err != nil {
			return nil, err
		}
		s.confirm(ctx, email)
		return existing, nil
	case !errors.Is(err, domain.ErrSubscriberNotFound):
		return nil, err
	}

	sub := &domain.NewsletterSubscriber{
		ID:           uuid.New(),
		Email:        email,
		Status:       domain.SubscriberActive,
		SubscribedAt: now,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	s.confirm(ctx, email)
	return sub, nil
}

// confirm sends the confirmation email. Delivery failures do not undo the subscription.
func (s *newsletterService) confirm(ctx context.Context, email string) {
	if err := s.sender.SendSubscriptionConfirmation(ctx, email); err != nil {
		log.Printf("newsletterService.Subscribe: confirmation email to %s failed: %v", email, err)
	}
}

func (s *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	sub, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if sub.Status == domain.SubscriberUnsubscribed {
		return nil
	}
	now := s.now().UTC()
	sub.Status = domain.SubscriberUnsubscribed
	sub.UnsubscribedAt = &now
	return s.repo.UpdateStatus(ctx, sub)
}
