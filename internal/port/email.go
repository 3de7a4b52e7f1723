package port

import "context"

// EmailSender defines the contract for sending newsletter emails.
type EmailSender interface {
	SendSubscriptionConfirmation(ctx context.Context, toEmail string) error
}
