// Package review implements the defect review workflow: every reviewer
// action is applied to the inspection aggregate, the quote is recomputed
// against the new ledger, lifecycle guards are enforced and the snapshot
// is persisted as one unit before the next mutation is accepted.
package review

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	evaluator "github.com/Norikachi123/Container-Evaluator"
)

// Service orchestrates review mutations over the inspection aggregate.
// Mutations are serialized per inspection so the quote always reflects
// the defect ledger at last-write time.
type Service struct {
	inspections evaluator.InspectionService
	sequences   evaluator.SequenceService
	email       evaluator.EmailService
	logger      *slog.Logger
	now         func() time.Time

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// Config holds the dependencies for creating a Service.
type Config struct {
	InspectionService evaluator.InspectionService
	SequenceService   evaluator.SequenceService

	// EmailService is optional; when set, invoice issuance sends a
	// best-effort customer notification.
	EmailService evaluator.EmailService

	Logger *slog.Logger

	// Now is the clock used for invoice issuance. Defaults to time.Now.
	Now func() time.Time
}

// NewService creates a review service.
func NewService(cfg Config) *Service {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		inspections: cfg.InspectionService,
		sequences:   cfg.SequenceService,
		email:       cfg.EmailService,
		logger:      logger,
		now:         now,
		locks:       map[uuid.UUID]*sync.Mutex{},
	}
}

// inspectionLock returns the mutex serializing mutations for one inspection.
func (s *Service) inspectionLock(id uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

// SetDefectStatus records a reviewer decision on one defect and
// recomputes the quote.
// Returns EFORBIDDEN without reviewer capability, ENOTFOUND for unknown
// ids, EPRECONDITION once the quote is invoiced.
func (s *Service) SetDefectStatus(ctx context.Context, inspectionID, defectID uuid.UUID, status evaluator.DefectStatus) (*evaluator.Inspection, error) {
	return s.mutate(ctx, inspectionID, func(insp *evaluator.Inspection) error {
		defects, err := evaluator.SetDefectStatus(insp.Defects, defectID, status)
		if err != nil {
			return err
		}
		insp.Defects = defects
		return nil
	})
}

// SetRepairCost records the repair cost for one defect and recomputes
// the quote.
// Returns EINVALID for a negative cost, EFORBIDDEN without reviewer
// capability, ENOTFOUND for unknown ids, EPRECONDITION once the quote is
// invoiced.
func (s *Service) SetRepairCost(ctx context.Context, inspectionID, defectID uuid.UUID, cost evaluator.Money) (*evaluator.Inspection, error) {
	return s.mutate(ctx, inspectionID, func(insp *evaluator.Inspection) error {
		defects, err := evaluator.SetDefectCost(insp.Defects, defectID, cost)
		if err != nil {
			return err
		}
		insp.Defects = defects
		return nil
	})
}

// mutate runs one ledger mutation through the full pipeline: capability
// check, load, apply, quote recompute with lifecycle guards, persist.
// A failed mutation leaves the stored aggregate unchanged.
func (s *Service) mutate(ctx context.Context, inspectionID uuid.UUID, apply func(*evaluator.Inspection) error) (*evaluator.Inspection, error) {
	if !evaluator.CanReview(ctx) {
		return nil, evaluator.Forbidden("Reviewer capability required")
	}

	lock := s.inspectionLock(inspectionID)
	lock.Lock()
	defer lock.Unlock()

	insp, err := s.inspections.FindInspectionByID(ctx, inspectionID)
	if err != nil {
		return nil, err
	}

	// Guard before touching the ledger: an invoiced quote's totals must
	// never drift from the issued document.
	if insp.Quote != nil && insp.Quote.Status == evaluator.QuoteStatusInvoiced {
		return nil, evaluator.PreconditionFailed("Defects cannot be modified after an invoice has been issued")
	}

	if err := apply(insp); err != nil {
		return nil, err
	}

	quote, err := evaluator.NextQuote(insp.Quote, insp.Defects)
	if err != nil {
		return nil, err
	}
	insp.Quote = quote

	if insp.Status == evaluator.InspectionStatusPendingReview {
		insp.Status = evaluator.InspectionStatusInReview
	}

	if err := s.inspections.SaveInspection(ctx, insp); err != nil {
		return nil, err
	}

	s.logger.Info("inspection updated",
		slog.String("inspection_id", insp.ID.String()),
		slog.String("quote_status", string(insp.Quote.Status)),
		slog.String("total", insp.Quote.Total.String()),
	)
	return insp, nil
}

// ApproveQuote transitions the quote from draft to approved, recording
// the caller as approver.
// Returns EFORBIDDEN without reviewer capability, EPRECONDITION if the
// quote is missing or not draft.
func (s *Service) ApproveQuote(ctx context.Context, inspectionID uuid.UUID) (*evaluator.Inspection, error) {
	user := evaluator.UserFromContext(ctx)
	if user == nil || !user.CanReview() {
		return nil, evaluator.Forbidden("Reviewer capability required")
	}

	lock := s.inspectionLock(inspectionID)
	lock.Lock()
	defer lock.Unlock()

	insp, err := s.inspections.FindInspectionByID(ctx, inspectionID)
	if err != nil {
		return nil, err
	}
	if insp.Quote == nil {
		return nil, evaluator.PreconditionFailed("Inspection has no quote to approve")
	}
	if err := insp.Quote.Approve(user.ID); err != nil {
		return nil, err
	}

	if err := s.inspections.SaveInspection(ctx, insp); err != nil {
		return nil, err
	}

	s.logger.Info("quote approved",
		slog.String("inspection_id", insp.ID.String()),
		slog.String("approver_id", user.ID.String()),
		slog.String("total", insp.Quote.Total.String()),
	)
	return insp, nil
}

// CreateInvoice freezes an approved quote into a numbered invoice. The
// sequence number comes from the injected per-year counter; customerEmail
// is optional and only used for the issued notification.
// Returns EFORBIDDEN without reviewer capability, EPRECONDITION if the
// quote is not approved or customer details are incomplete.
func (s *Service) CreateInvoice(ctx context.Context, inspectionID uuid.UUID, customerName, customerAddress, customerEmail string) (*evaluator.Inspection, error) {
	if !evaluator.CanReview(ctx) {
		return nil, evaluator.Forbidden("Reviewer capability required")
	}

	lock := s.inspectionLock(inspectionID)
	lock.Lock()
	defer lock.Unlock()

	insp, err := s.inspections.FindInspectionByID(ctx, inspectionID)
	if err != nil {
		return nil, err
	}

	// Validate preconditions before burning a sequence number.
	if insp.Quote == nil || insp.Quote.Status != evaluator.QuoteStatusApproved {
		return nil, evaluator.PreconditionFailed("Invoice requires an approved quote")
	}
	if customerName == "" || customerAddress == "" {
		return nil, evaluator.PreconditionFailed("Customer name and address are required")
	}

	now := s.now()
	seq, err := s.sequences.NextInvoiceSequence(ctx, now.Year())
	if err != nil {
		return nil, evaluator.Internal("Failed to allocate invoice sequence", err)
	}

	if err := insp.IssueInvoice(customerName, customerAddress, now, seq); err != nil {
		return nil, err
	}

	if err := s.inspections.SaveInspection(ctx, insp); err != nil {
		return nil, err
	}

	s.logger.Info("invoice issued",
		slog.String("inspection_id", insp.ID.String()),
		slog.String("invoice_number", insp.Quote.Invoice.Number),
		slog.String("total", insp.Quote.Total.String()),
	)

	s.notifyInvoiceIssued(ctx, insp, customerEmail)
	return insp, nil
}

// notifyInvoiceIssued sends the customer notification, best effort.
func (s *Service) notifyInvoiceIssued(ctx context.Context, insp *evaluator.Inspection, customerEmail string) {
	if s.email == nil || customerEmail == "" {
		return
	}
	inv := insp.Quote.Invoice
	err := s.email.SendInvoiceIssued(ctx, evaluator.InvoiceIssuedEmail{
		To:              customerEmail,
		CustomerName:    inv.CustomerName,
		ContainerNumber: insp.ContainerNumber,
		InvoiceNumber:   inv.Number,
		Total:           insp.Quote.Total,
		DueAt:           inv.DueAt,
	})
	if err != nil {
		s.logger.Error("invoice notification failed",
			slog.String("invoice_number", inv.Number),
			slog.String("error", err.Error()),
		)
	}
}

// NextPending returns the oldest inspection awaiting review.
func (s *Service) NextPending(ctx context.Context) (*evaluator.PendingItem, error) {
	return s.inspections.FindNextPending(ctx)
}
