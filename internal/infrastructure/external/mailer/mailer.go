package mailer

import "context"

// Mailer delivers outbound email. Send reports delivery as a boolean so
// callers can log per-recipient outcomes; implementations must never panic
// or surface transport failures as errors.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody, textBody string) bool
}
