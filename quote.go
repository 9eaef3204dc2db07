package evaluator

import (
	"github.com/google/uuid"
)

// TaxRatePercent is the fixed tax rate applied to every quote subtotal.
const TaxRatePercent = 10

// Quote is the derived financial summary for an inspection at a point in
// time. Totals are always fully determined by the defect ledger at the
// moment of the most recent recompute - a quote is a pure snapshot, never
// independently edited.
type Quote struct {
	Subtotal Money       `json:"subtotal"`
	Tax      Money       `json:"tax"`
	Total    Money       `json:"total"`
	Status   QuoteStatus `json:"status"`

	// ApprovedBy is set only while the quote is approved or invoiced.
	ApprovedBy uuid.UUID `json:"approvedBy,omitempty"`

	// Invoice is set exactly once, on invoicing, and is immutable thereafter.
	Invoice *InvoiceDetails `json:"invoice,omitempty"`
}

// QuoteStatus represents the lifecycle state of a quote.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusInvoiced QuoteStatus = "invoiced"
)

// CanTransitionTo returns true if this status can transition to the target.
// Invoiced is terminal: no forward transition is defined out of it.
func (s QuoteStatus) CanTransitionTo(target QuoteStatus) bool {
	switch s {
	case QuoteStatusDraft:
		return target == QuoteStatusApproved
	case QuoteStatusApproved:
		return target == QuoteStatusDraft || target == QuoteStatusInvoiced
	case QuoteStatusInvoiced:
		return false
	default:
		return false
	}
}

// DeriveQuote computes a draft quote from the defect ledger. Pure and
// total: subtotal is the sum of repair costs over every non-rejected
// defect (an unset cost counts as zero), tax is the fixed rate rounded at
// the cent, total is their sum.
func DeriveQuote(defects []*Defect) Quote {
	var subtotal Money
	for _, d := range defects {
		if d.Billable() {
			subtotal += d.RepairCost
		}
	}
	tax := subtotal.Percent(TaxRatePercent)
	return Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
		Status:   QuoteStatusDraft,
	}
}

// NextQuote applies a defect ledger mutation to the quote lifecycle and
// returns the replacement quote. The first derivation creates a draft;
// mutating under an approved quote reverts it to draft, invalidating the
// approval; mutating under an invoiced quote is rejected with
// EPRECONDITION so a legally issued invoice's totals can never drift from
// its ledger.
func NextQuote(prev *Quote, defects []*Defect) (*Quote, error) {
	if prev != nil && prev.Status == QuoteStatusInvoiced {
		return nil, PreconditionFailed("Defects cannot be modified after an invoice has been issued")
	}
	next := DeriveQuote(defects)
	return &next, nil
}

// Approve transitions the quote from draft to approved, recording the
// approver. The caller is responsible for the reviewer capability check.
func (q *Quote) Approve(approver uuid.UUID) error {
	if !q.Status.CanTransitionTo(QuoteStatusApproved) {
		return PreconditionFailed("Quote cannot be approved from status %q", q.Status)
	}
	q.Status = QuoteStatusApproved
	q.ApprovedBy = approver
	return nil
}
