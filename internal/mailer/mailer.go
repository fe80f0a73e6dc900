package mailer

import "context"

// Mailer defines the interface for sending account emails. This abstraction
// allows swapping the log-only implementation with a real provider without
// refactoring.
type Mailer interface {
	SendWelcome(ctx context.Context, email string) error
}
