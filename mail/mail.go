// Package mail provides the EmailService implementations used for
// customer notifications.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/keighl/postmark"

	evaluator "github.com/Norikachi123/Container-Evaluator"
)

// Compile-time interface check
var _ evaluator.EmailService = (*PostmarkService)(nil)
var _ evaluator.EmailService = (*LogService)(nil)

// NewEmailService creates an email service based on the provider configuration.
func NewEmailService(logger *slog.Logger, cfg evaluator.EmailConfig) evaluator.EmailService {
	switch cfg.Provider {
	case "postmark":
		return &PostmarkService{
			client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
			logger: logger,
			cfg:    cfg,
		}
	default:
		return &LogService{logger: logger}
	}
}

// PostmarkService sends notifications via Postmark.
type PostmarkService struct {
	client *postmark.Client
	logger *slog.Logger
	cfg    evaluator.EmailConfig
}

// SendInvoiceIssued sends the invoice notification via Postmark.
func (s *PostmarkService) SendInvoiceIssued(ctx context.Context, email evaluator.InvoiceIssuedEmail) error {
	msg := postmark.Email{
		From:    fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromAddress),
		To:      email.To,
		Subject: fmt.Sprintf("Invoice %s for container %s", email.InvoiceNumber, email.ContainerNumber),
		TextBody: fmt.Sprintf(
			"Dear %s,\n\nInvoice %s for container %s has been issued.\nAmount due: %s\nDue date: %s\n",
			email.CustomerName, email.InvoiceNumber, email.ContainerNumber,
			email.Total, email.DueAt.Format("2006-01-02")),
		HtmlBody: fmt.Sprintf(`
			<h2>Invoice %s</h2>
			<p>Dear %s,</p>
			<p>An invoice has been issued for the inspection of container <strong>%s</strong>.</p>
			<p>Amount due: <strong>%s</strong></p>
			<p>Due date: %s</p>
		`, email.InvoiceNumber, email.CustomerName, email.ContainerNumber,
			email.Total, email.DueAt.Format("2006-01-02")),
		Tag:        "invoice-issued",
		TrackOpens: true,
	}

	if _, err := s.client.SendEmail(msg); err != nil {
		s.logger.Error("failed to send invoice email via Postmark",
			slog.String("to", email.To),
			slog.String("invoice", email.InvoiceNumber),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to send invoice email: %w", err)
	}

	s.logger.Info("invoice email sent via Postmark",
		slog.String("to", email.To),
		slog.String("invoice", email.InvoiceNumber))
	return nil
}

// LogService is a mock implementation that logs instead of sending emails.
type LogService struct {
	logger *slog.Logger
}

// SendInvoiceIssued logs the invoice notification instead of sending it.
func (s *LogService) SendInvoiceIssued(ctx context.Context, email evaluator.InvoiceIssuedEmail) error {
	s.logger.Info("MOCK EMAIL: Invoice issued",
		slog.String("to", email.To),
		slog.String("customer", email.CustomerName),
		slog.String("container", email.ContainerNumber),
		slog.String("invoice", email.InvoiceNumber),
		slog.String("total", email.Total.String()),
		slog.String("due", email.DueAt.Format("2006-01-02")))
	return nil
}
