package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendMailer sends through the Resend API. It is picked when
// RESEND_API_KEY is configured, so deployments without AWS access can
// still deliver contact-form mail.
type ResendMailer struct {
	client    *resend.Client
	sender    string
	recipient string
}

func NewResendMailer(apiKey, sender, recipient string) *ResendMailer {
	return &ResendMailer{
		client:    resend.NewClient(apiKey),
		sender:    sender,
		recipient: recipient,
	}
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	subject := msg.Subject
	if subject == "" {
		subject = "New contact form message"
	}

	params := &resend.SendEmailRequest{
		From:    m.sender,
		To:      []string{m.recipient},
		Subject: subject,
		Html:    renderBody(msg),
		ReplyTo: msg.Email,
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}
