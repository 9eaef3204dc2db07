package postgres

import (
	"context"

	evaluator "github.com/Norikachi123/Container-Evaluator"
)

// Compile-time check that SequenceService implements evaluator.SequenceService.
var _ evaluator.SequenceService = (*SequenceService)(nil)

// SequenceService implements evaluator.SequenceService using a per-year
// counter row. The upsert-and-return runs as one statement so
// concurrent issuers can never draw the same number.
type SequenceService struct {
	db *DB
}

func (s *SequenceService) NextInvoiceSequence(ctx context.Context, year int) (int, error) {
	var seq int
	err := s.db.pool.QueryRow(ctx,
		`INSERT INTO invoice_sequences (year, last_seq) VALUES ($1, 1)
		 ON CONFLICT (year) DO UPDATE SET last_seq = invoice_sequences.last_seq + 1
		 RETURNING last_seq`,
		year,
	).Scan(&seq)
	if err != nil {
		return 0, evaluator.Internal("Failed to advance invoice sequence", err)
	}
	return seq, nil
}
