package noop

import (
	"context"

	log "github.com/sirupsen/logrus"

	"landrecords/internal/email/ses"
	"landrecords/internal/port"
)

type noopSender struct {
	frontendURL string
}

// NewNoopSender creates a no-op EmailSender that logs confirmation links instead of sending them.
func NewNoopSender(frontendURL string) port.EmailSender {
	return &noopSender{frontendURL: frontendURL}
}

func (s *noopSender) SendSubscriptionConfirmation(_ context.Context, toEmail string) error {
	log.Printf("[NOOP EMAIL] Subscription confirmation for %s (unsubscribe: %s)",
		toEmail, ses.UnsubscribeURL(s.frontendURL, toEmail))
	return nil
}
