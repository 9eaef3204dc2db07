package evaluator

import (
	"context"
	"time"
)

// InvoiceIssuedEmail is the notification sent to a customer when an
// invoice is issued for their container.
type InvoiceIssuedEmail struct {
	To              string
	CustomerName    string
	ContainerNumber string
	InvoiceNumber   string
	Total           Money
	DueAt           time.Time
}

// EmailService defines operations for sending notifications.
type EmailService interface {
	// SendInvoiceIssued notifies a customer that an invoice was issued.
	SendInvoiceIssued(ctx context.Context, email InvoiceIssuedEmail) error
}

// EmailConfig holds configuration for the email service.
type EmailConfig struct {
	// Provider is the email provider ("postmark" or "mock").
	Provider string

	FromAddress string
	FromName    string

	// Postmark configuration
	PostmarkServerToken  string
	PostmarkAccountToken string
}
