package infrastructure

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailSender is the mail-delivery collaborator. Failures are reported to
// the caller, which logs and moves on; email is never on the request's
// critical path.
type EmailSender interface {
	SendWelcome(ctx context.Context, recipient, firstName string) error
	SendVerification(ctx context.Context, recipient, verifyURL string) error
}

type SendGridSender struct {
	apiKey     string
	senderName string
	senderAddr string
}

func NewSendGridSender(apiKey, senderAddr string) *SendGridSender {
	return &SendGridSender{
		apiKey:     apiKey,
		senderName: "TheHFPV",
		senderAddr: senderAddr,
	}
}

func (s *SendGridSender) SendWelcome(ctx context.Context, recipient, firstName string) error {
	subject := "Welcome to TheHFPV"
	plain := fmt.Sprintf("Hi %s, welcome to TheHFPV!", firstName)
	html := fmt.Sprintf("<strong>Hi %s, welcome to TheHFPV!</strong>", firstName)
	return s.send(recipient, subject, plain, html)
}

func (s *SendGridSender) SendVerification(ctx context.Context, recipient, verifyURL string) error {
	subject := "Verify your email"
	plain := fmt.Sprintf("Verify your email address: %s", verifyURL)
	html := fmt.Sprintf("<a href=%q>Verify your email address</a>", verifyURL)
	return s.send(recipient, subject, plain, html)
}

func (s *SendGridSender) send(recipient, subject, plain, html string) error {
	from := mail.NewEmail(s.senderName, s.senderAddr)
	to := mail.NewEmail("", recipient)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	return nil
}

// NoopSender is used when email delivery is disabled and in tests.
type NoopSender struct{}

func (NoopSender) SendWelcome(ctx context.Context, recipient, firstName string) error { return nil }

func (NoopSender) SendVerification(ctx context.Context, recipient, verifyURL string) error {
	return nil
}
