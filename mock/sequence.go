package mock

import (
	"context"

	evaluator "github.com/Norikachi123/Container-Evaluator"
)

// Compile-time interface check
var _ evaluator.SequenceService = (*SequenceService)(nil)

// SequenceService is a mock implementation of evaluator.SequenceService.
// Without a custom Fn it hands out 1, 2, 3, ... regardless of year.
type SequenceService struct {
	NextInvoiceSequenceFn func(ctx context.Context, year int) (int, error)

	last int
}

func (s *SequenceService) NextInvoiceSequence(ctx context.Context, year int) (int, error) {
	if s.NextInvoiceSequenceFn != nil {
		return s.NextInvoiceSequenceFn(ctx, year)
	}
	s.last++
	return s.last, nil
}
