package mailer

import (
	"context"
	"log"
)

// LogMailer implements the Mailer interface by logging instead of sending.
// Used when no email provider is configured (local development).
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendWelcome(ctx context.Context, email string) error {
	log.Printf("📧 [Dev Mode] Would send welcome email to %s", email)
	return nil
}
