package evaluator

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Inspection is the aggregate root for a single cargo-container
// inspection. It owns the image list, the defect ledger and the derived
// quote, and is persisted as a single unit after every mutation.
type Inspection struct {
	ID              uuid.UUID        `json:"id"`
	ContainerNumber string           `json:"containerNumber"`
	InspectorName   string           `json:"inspectorName"`
	InspectedAt     time.Time        `json:"inspectedAt"`
	Location        string           `json:"location"`
	Status          InspectionStatus `json:"status"`
	Images          []*ContainerImage `json:"images"`
	Defects         []*Defect        `json:"defects"`
	Quote           *Quote           `json:"quote,omitempty"`
}

// InspectionStatus represents the overall review status of an inspection.
type InspectionStatus string

const (
	InspectionStatusPendingReview InspectionStatus = "pending_review"
	InspectionStatusInReview      InspectionStatus = "in_review"
	InspectionStatusCompleted     InspectionStatus = "completed"
)

// DefectByID returns the defect with the given id, or nil.
func (insp *Inspection) DefectByID(id uuid.UUID) *Defect {
	for _, d := range insp.Defects {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// ImageByID returns the image with the given id, or nil.
func (insp *Inspection) ImageByID(id uuid.UUID) *ContainerImage {
	for _, img := range insp.Images {
		if img.ID == id {
			return img
		}
	}
	return nil
}

// DefectsForImage returns the defects detected on one image, in ledger
// order. Label numbering in rendered documents follows this order.
func (insp *Inspection) DefectsForImage(imageID uuid.UUID) []*Defect {
	var out []*Defect
	for _, d := range insp.Defects {
		if d.ImageID == imageID {
			out = append(out, d)
		}
	}
	return out
}

// BillableDefects returns the defects that count toward the quote and
// appear on rendered documents, in ledger order.
func (insp *Inspection) BillableDefects() []*Defect {
	var out []*Defect
	for _, d := range insp.Defects {
		if d.Billable() {
			out = append(out, d)
		}
	}
	return out
}

// IssueInvoice freezes the approved quote into a numbered, dated billing
// document and marks the inspection completed. The sequence number is
// supplied by the caller so that rendering the same aggregate twice is
// byte-for-byte reproducible.
// Returns EPRECONDITION if the quote is not approved or either customer
// field is empty.
func (insp *Inspection) IssueInvoice(customerName, customerAddress string, now time.Time, seq int) error {
	if insp.Quote == nil || insp.Quote.Status != QuoteStatusApproved {
		return PreconditionFailed("Invoice requires an approved quote")
	}
	if customerName == "" || customerAddress == "" {
		return PreconditionFailed("Customer name and address are required")
	}
	insp.Quote.Invoice = &InvoiceDetails{
		Number:          InvoiceNumber(now.Year(), seq),
		IssuedAt:        now,
		DueAt:           now.AddDate(0, 0, InvoiceDueDays),
		CustomerName:    customerName,
		CustomerAddress: customerAddress,
	}
	insp.Quote.Status = QuoteStatusInvoiced
	insp.Status = InspectionStatusCompleted
	return nil
}

// PendingItem identifies the next inspection awaiting review.
type PendingItem struct {
	InspectionID    uuid.UUID `json:"inspectionId"`
	ContainerNumber string    `json:"containerNumber"`
}

// InspectionService defines persistence operations for inspections. The
// aggregate is stored and loaded as one unit; callers own serialization
// of mutations per inspection.
type InspectionService interface {
	// FindInspectionByID retrieves an inspection by its ID.
	// Returns ENOTFOUND if the inspection does not exist.
	FindInspectionByID(ctx context.Context, id uuid.UUID) (*Inspection, error)

	// CreateInspection stores a new inspection aggregate.
	// Returns ECONFLICT if the container number is already registered.
	CreateInspection(ctx context.Context, inspection *Inspection) error

	// SaveInspection replaces the stored snapshot of an existing inspection.
	// Returns ENOTFOUND if the inspection does not exist.
	SaveInspection(ctx context.Context, inspection *Inspection) error

	// FindNextPending returns the oldest inspection awaiting review.
	// Returns ENOTFOUND when nothing is pending.
	FindNextPending(ctx context.Context) (*PendingItem, error)
}
