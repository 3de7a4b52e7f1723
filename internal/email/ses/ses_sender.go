package ses

import (
	"context"
	"fmt"
	"net/url"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"landrecords/internal/config"
	"landrecords/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	frontendURL string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(ctx context.Context, cfg *config.EmailConfig) (port.EmailSender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(awsCfg),
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		frontendURL: cfg.FrontendURL,
	}, nil
}

func (s *sesSender) SendSubscriptionConfirmation(ctx context.Context, toEmail string) error {
	unsubscribeURL := UnsubscribeURL(s.frontendURL, toEmail)

	subject := "You are subscribed to land record updates"
	htmlBody := buildConfirmationHTML(unsubscribeURL)
	textBody := fmt.Sprintf("Thank you for subscribing to land record and dispute updates.\n\nTo stop receiving these emails, visit:\n%s\n", unsubscribeURL)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

// UnsubscribeURL builds the one-click unsubscribe link for an address.
func UnsubscribeURL(frontendURL, email string) string {
	return fmt.Sprintf("%s/newsletter/unsubscribe?email=%s", frontendURL, url.QueryEscape(email))
}

func buildConfirmationHTML(unsubscribeURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Subscription confirmed</h2>
  <p>Thank you for subscribing to land record and dispute updates.</p>
  <p>You will receive news about digitized records, hearing schedules and resolved cases.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">No longer interested? <a href="%s">Unsubscribe</a>.</p>
</body>
</html>`, unsubscribeURL)
}
