package infrastructure

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"auth-service/internal/config"
)

// Mailer sends the post-registration welcome mail.
type Mailer interface {
	SendWelcome(ctx context.Context, email, fullName string) error
}

type ResendMailer struct {
	sender string
	client *resend.Client
}

// NewResendMailer returns a disabled mailer (nil client) when no API key is
// configured; SendWelcome then does nothing.
func NewResendMailer(cfg *config.Config) *ResendMailer {
	if cfg.EmailAPIKey == "" {
		logger.Warn().Msg("no email api key, welcome mail disabled")
		return &ResendMailer{sender: cfg.EmailSender}
	}
	return &ResendMailer{
		sender: cfg.EmailSender,
		client: resend.NewClient(cfg.EmailAPIKey),
	}
}

func (m *ResendMailer) SendWelcome(ctx context.Context, email, fullName string) error {
	if m.client == nil {
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    m.sender,
		To:      []string{email},
		Subject: "Welcome!",
		Text:    fmt.Sprintf("Hi %s, your account was created successfully.", fullName),
	}

	sent, err := m.client.Emails.Send(params)
	if err != nil {
		return err
	}

	logger.Info().Str("id", sent.Id).Str("to", email).Msg("welcome mail sent")
	return nil
}

var _ Mailer = (*ResendMailer)(nil)
