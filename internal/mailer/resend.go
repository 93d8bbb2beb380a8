package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendSender sends notification emails through the Resend API.
type ResendSender struct {
	client *resend.Client
}

// NewResendSender creates a sender backed by the given Resend API key.
func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey)}
}

// Send delivers the message via Resend and returns the provider message ID.
func (s *ResendSender) Send(ctx context.Context, msg *Message) (string, error) {
	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Cc:      msg.Cc,
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send email via Resend: %w", err)
	}
	return sent.Id, nil
}
