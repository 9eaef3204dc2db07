package evaluator

import (
	"context"
	"fmt"
	"time"
)

// InvoiceDueDays is the payment term applied to every invoice: the due
// date is the issue date plus exactly this many calendar days
// (time.AddDate semantics, so Jan 31 + 30 days lands on Mar 2 in a
// non-leap year).
const InvoiceDueDays = 30

// InvoiceDetails captures the billing document allocated when an approved
// quote is invoiced. Created exactly once; immutable thereafter.
type InvoiceDetails struct {
	Number          string    `json:"number"`
	IssuedAt        time.Time `json:"issuedAt"`
	DueAt           time.Time `json:"dueAt"`
	CustomerName    string    `json:"customerName"`
	CustomerAddress string    `json:"customerAddress"`
}

// InvoiceNumber formats an invoice identifier as INV-<year>-<4-digit sequence>.
func InvoiceNumber(year, seq int) string {
	return fmt.Sprintf("INV-%d-%04d", year, seq%10000)
}

// SequenceService allocates invoice sequence numbers. Implementations
// must hand out a monotonic counter per calendar year so invoice numbers
// never collide.
type SequenceService interface {
	// NextInvoiceSequence returns the next unused sequence number for the
	// given year.
	NextInvoiceSequence(ctx context.Context, year int) (int, error)
}
