// Package email provides the notification mailer.
//
// It uses Resend (resend-go) as the email provider when an API key is
// configured. Without a key it logs deliveries instead of sending
// them, which keeps local development and tests free of network
// dependencies.
package email

import (
	"context"
	"time"

	"github.com/campushq/academy-api/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// Client sends notification emails from background jobs.
type Client struct {
	// client is the provider client used to send emails via API.
	// Nil when no API key is configured; deliveries are then log-only.
	client *resend.Client

	logger *zerolog.Logger
	from   string

	// delay simulates the slow part of delivery before the provider
	// call. It runs inside the background job, never on the
	// response-critical path.
	delay time.Duration
}

// NewClient creates a mailer from the notification config.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	notification := cfg.Notification
	if notification == nil {
		notification = config.DefaultNotificationConfig()
	}

	var client *resend.Client
	if notification.ResendAPIKey != "" {
		client = resend.NewClient(notification.ResendAPIKey)
	}

	return &Client{
		client: client,
		logger: logger,
		from:   notification.FromAddress,
		delay:  time.Duration(notification.DelaySeconds) * time.Second,
	}
}

// SendNotification delivers a notification message to the given
// address. It blocks for the configured delay first, so it must only
// be called from a background job.
func (c *Client) SendNotification(ctx context.Context, to, message string) error {
	c.logger.Info().
		Str("to", to).
		Msg("sending email notification in background")

	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if c.client != nil {
		_, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
			From:    c.from,
			To:      []string{to},
			Subject: "Notification",
			Text:    message,
		})
		if err != nil {
			return errors.Wrap(err, "failed to send notification email")
		}
	}

	c.logger.Info().
		Str("to", to).
		Str("message", message).
		Msg("email notification sent")

	return nil
}
