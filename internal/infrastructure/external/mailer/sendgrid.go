package mailer

import (
	"context"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/middlegroundapp/middleground/pkg/config"
)

// sendGridMailer delivers email through the SendGrid API
type sendGridMailer struct {
	client   *sendgrid.Client
	fromName string
	fromAddr string
	logger   *zap.Logger
}

// NewSendGridMailer creates a SendGrid-backed mailer
func NewSendGridMailer(cfg *config.MailConfig, logger *zap.Logger) Mailer {
	return &sendGridMailer{
		client:   sendgrid.NewSendClient(cfg.SendGridAPIKey),
		fromName: cfg.FromName,
		fromAddr: cfg.FromAddress,
		logger:   logger,
	}
}

// Send delivers one message. Failures are logged and reported as false,
// never propagated.
func (m *sendGridMailer) Send(ctx context.Context, to, subject, htmlBody, textBody string) bool {
	from := mail.NewEmail(m.fromName, m.fromAddr)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, textBody, htmlBody)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		m.logger.Warn("mail.send.failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return false
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		m.logger.Warn("mail.send.rejected",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Int("status_code", response.StatusCode),
			zap.String("body", response.Body),
		)
		return false
	}

	m.logger.Info("mail.send.ok",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("status_code", response.StatusCode),
	)
	return true
}
