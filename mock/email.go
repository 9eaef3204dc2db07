package mock

import (
	"context"

	evaluator "github.com/Norikachi123/Container-Evaluator"
)

// Compile-time interface check
var _ evaluator.EmailService = (*EmailService)(nil)

// EmailService is a mock implementation of evaluator.EmailService.
// Sent messages are collected for assertions.
type EmailService struct {
	SendInvoiceIssuedFn func(ctx context.Context, email evaluator.InvoiceIssuedEmail) error

	Sent []evaluator.InvoiceIssuedEmail
}

func (s *EmailService) SendInvoiceIssued(ctx context.Context, email evaluator.InvoiceIssuedEmail) error {
	if s.SendInvoiceIssuedFn != nil {
		return s.SendInvoiceIssuedFn(ctx, email)
	}
	s.Sent = append(s.Sent, email)
	return nil
}
