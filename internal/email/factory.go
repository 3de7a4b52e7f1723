// Package email selects the newsletter email sender.
package email

import (
	"context"

	"landrecords/internal/config"
	"landrecords/internal/email/noop"
	"landrecords/internal/email/ses"
	"landrecords/internal/port"
)

// New returns the SES sender when configured, otherwise a logging no-op sender.
func New(ctx context.Context, cfg *config.EmailConfig) (port.EmailSender, error) {
	if cfg.Provider == "ses" {
		return ses.NewSESSender(ctx, cfg)
	}
	return noop.NewNoopSender(cfg.FrontendURL), nil
}
