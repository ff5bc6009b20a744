package mailer

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/spf13/viper"
)

// Message is one contact-form submission.
type Message struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// Mailer delivers contact-form submissions to the site owner.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SESMailer sends through AWS SES.
type SESMailer struct {
	client    *ses.SES
	sender    string
	recipient string
}

// NewSESMailer builds the SES client. Static credentials come from the
// environment when set; otherwise the default AWS credential chain is used.
func NewSESMailer(region, sender, recipient string) (*SESMailer, error) {
	cfg := &aws.Config{Region: aws.String(region)}
	if key := viper.GetString("AWS_ACCESS_KEY"); key != "" {
		cfg.Credentials = credentials.NewStaticCredentials(key, viper.GetString("AWS_SECRET_KEY"), "")
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("create AWS session: %w", err)
	}

	return &SESMailer{
		client:    ses.New(sess),
		sender:    sender,
		recipient: recipient,
	}, nil
}

func (m *SESMailer) Send(ctx context.Context, msg Message) error {
	subject := msg.Subject
	if subject == "" {
		subject = "New contact form message"
	}

	input := &ses.SendEmailInput{
		Source:      aws.String(m.sender),
		Destination: &ses.Destination{ToAddresses: []*string{aws.String(m.recipient)}},
		Message: &ses.Message{
			Subject: &ses.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
			Body: &ses.Body{
				Html: &ses.Content{Data: aws.String(renderBody(msg)), Charset: aws.String("UTF-8")},
			},
		},
		ReplyToAddresses: []*string{aws.String(msg.Email)},
	}

	if _, err := m.client.SendEmailWithContext(ctx, input); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}

func renderBody(msg Message) string {
	var b strings.Builder
	b.WriteString("<h2>New message from the contact form</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", html.EscapeString(msg.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(msg.Email))
	fmt.Fprintf(&b, "<p>%s</p>", strings.ReplaceAll(html.EscapeString(msg.Body), "\n", "<br>"))
	return b.String()
}
