package mock

import (
	"context"

	"github.com/google/uuid"

	evaluator "github.com/Norikachi123/Container-Evaluator"
)

// Compile-time interface check
var _ evaluator.InspectionService = (*InspectionService)(nil)

// InspectionService is a mock implementation of evaluator.InspectionService.
type InspectionService struct {
	FindInspectionByIDFn func(ctx context.Context, id uuid.UUID) (*evaluator.Inspection, error)
	CreateInspectionFn   func(ctx context.Context, inspection *evaluator.Inspection) error
	SaveInspectionFn     func(ctx context.Context, inspection *evaluator.Inspection) error
	FindNextPendingFn    func(ctx context.Context) (*evaluator.PendingItem, error)
}

func (s *InspectionService) FindInspectionByID(ctx context.Context, id uuid.UUID) (*evaluator.Inspection, error) {
	if s.FindInspectionByIDFn != nil {
		return s.FindInspectionByIDFn(ctx, id)
	}
	return nil, evaluator.NotFound("Inspection not found")
}

func (s *InspectionService) CreateInspection(ctx context.Context, inspection *evaluator.Inspection) error {
	if s.CreateInspectionFn != nil {
		return s.CreateInspectionFn(ctx, inspection)
	}
	inspection.ID = uuid.New()
	return nil
}

func (s *InspectionService) SaveInspection(ctx context.Context, inspection *evaluator.Inspection) error {
	if s.SaveInspectionFn != nil {
		return s.SaveInspectionFn(ctx, inspection)
	}
	return nil
}

func (s *InspectionService) FindNextPending(ctx context.Context) (*evaluator.PendingItem, error) {
	if s.FindNextPendingFn != nil {
		return s.FindNextPendingFn(ctx)
	}
	return nil, evaluator.NotFound("No inspections pending review")
}
