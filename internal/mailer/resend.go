package mailer

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
)

// ResendMailer sends account emails through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (m *ResendMailer) SendWelcome(ctx context.Context, email string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{email},
		Subject: "Welcome to Daily Task",
		Html: `
			<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
				<h2 style="color: #333;">Welcome to Daily Task! 🚀</h2>
				<p>Your account is ready. Open the app and start tracking your tasks.</p>
				<p style="color: #aaa; font-size: 12px;">
					If you didn't sign up, you can safely ignore this email.
				</p>
			</div>
		`,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	log.Printf("📧 Welcome email sent to %s (ID: %s)", email, sent.Id)
	return nil
}
