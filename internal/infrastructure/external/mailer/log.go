package mailer

import (
	"context"

	"go.uber.org/zap"
)

// logMailer logs messages instead of sending them. Used in development when
// no SendGrid key is configured.
type logMailer struct {
	logger *zap.Logger
}

// NewLogMailer creates a mailer that only logs outbound messages
func NewLogMailer(logger *zap.Logger) Mailer {
	return &logMailer{logger: logger}
}

// Send logs the message and reports success.
func (m *logMailer) Send(ctx context.Context, to, subject, htmlBody, textBody string) bool {
	preview := textBody
	if len(preview) > 400 {
		preview = preview[:400]
	}
	m.logger.Info("mail.send.dev",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("text", preview),
	)
	return true
}
