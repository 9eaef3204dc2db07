package evaluator

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func approvedInspection() *Inspection {
	return &Inspection{
		ID:              uuid.New(),
		ContainerNumber: "MSCU1234567",
		Status:          InspectionStatusInReview,
		Quote: &Quote{
			Subtotal:   12500,
			Tax:        1250,
			Total:      13750,
			Status:     QuoteStatusApproved,
			ApprovedBy: uuid.New(),
		},
	}
}

func TestIssueInvoice(t *testing.T) {
	now := time.Date(2026, time.August, 31, 9, 30, 0, 0, time.UTC)

	t.Run("issues against an approved quote", func(t *testing.T) {
		insp := approvedInspection()
		require.NoError(t, insp.IssueInvoice("Acme", "1 Rd", now, 17))

		require.Equal(t, QuoteStatusInvoiced, insp.Quote.Status)
		require.Equal(t, InspectionStatusCompleted, insp.Status)

		inv := insp.Quote.Invoice
		require.NotNil(t, inv)
		require.Equal(t, "INV-2026-0017", inv.Number)
		require.Regexp(t, regexp.MustCompile(`^INV-\d{4}-\d{4}$`), inv.Number)
		require.Equal(t, now, inv.IssuedAt)
		require.Equal(t, now.AddDate(0, 0, 30), inv.DueAt)
		require.Equal(t, "Acme", inv.CustomerName)
		require.Equal(t, "1 Rd", inv.CustomerAddress)

		// Totals carried forward unchanged.
		require.Equal(t, Money(12500), insp.Quote.Subtotal)
		require.Equal(t, Money(13750), insp.Quote.Total)
	})

	t.Run("due date is exactly 30 calendar days out", func(t *testing.T) {
		insp := approvedInspection()
		jan31 := time.Date(2026, time.January, 31, 12, 0, 0, 0, time.UTC)
		require.NoError(t, insp.IssueInvoice("Acme", "1 Rd", jan31, 1))
		require.Equal(t, time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC), insp.Quote.Invoice.DueAt)
	})

	t.Run("requires approved quote", func(t *testing.T) {
		insp := approvedInspection()
		insp.Quote.Status = QuoteStatusDraft
		err := insp.IssueInvoice("Acme", "1 Rd", now, 1)
		require.Equal(t, EPRECONDITION, ErrorCode(err))
		require.Nil(t, insp.Quote.Invoice)
	})

	t.Run("requires a quote", func(t *testing.T) {
		insp := approvedInspection()
		insp.Quote = nil
		err := insp.IssueInvoice("Acme", "1 Rd", now, 1)
		require.Equal(t, EPRECONDITION, ErrorCode(err))
	})

	t.Run("requires customer details", func(t *testing.T) {
		insp := approvedInspection()
		err := insp.IssueInvoice("", "1 Rd", now, 1)
		require.Equal(t, EPRECONDITION, ErrorCode(err))

		err = insp.IssueInvoice("Acme", "", now, 1)
		require.Equal(t, EPRECONDITION, ErrorCode(err))
		require.Equal(t, QuoteStatusApproved, insp.Quote.Status, "failed issuance leaves the quote unchanged")
	})
}

func TestInvoiceNumber(t *testing.T) {
	require.Equal(t, "INV-2026-0007", InvoiceNumber(2026, 7))
	require.Equal(t, "INV-2025-9999", InvoiceNumber(2025, 9999))
	require.Equal(t, "INV-2025-0000", InvoiceNumber(2025, 10000), "sequence wraps at four digits")
}

func TestDefectsForImage(t *testing.T) {
	img1, img2 := uuid.New(), uuid.New()
	d1 := &Defect{ID: uuid.New(), ImageID: img1}
	d2 := &Defect{ID: uuid.New(), ImageID: img2}
	d3 := &Defect{ID: uuid.New(), ImageID: img1}
	insp := &Inspection{Defects: []*Defect{d1, d2, d3}}

	got := insp.DefectsForImage(img1)
	require.Equal(t, []*Defect{d1, d3}, got, "ledger order is preserved")
	require.Empty(t, insp.DefectsForImage(uuid.New()))
}
