package postgres

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	evaluator "github.com/Norikachi123/Container-Evaluator"
)

// Compile-time check that InspectionService implements evaluator.InspectionService.
var _ evaluator.InspectionService = (*InspectionService)(nil)

// InspectionService implements evaluator.InspectionService using
// PostgreSQL. The aggregate is stored as one jsonb snapshot per
// inspection so every mutation persists atomically as a single unit.
type InspectionService struct {
	db *DB
}

func (s *InspectionService) FindInspectionByID(ctx context.Context, id uuid.UUID) (*evaluator.Inspection, error) {
	var snapshot []byte
	err := s.db.pool.QueryRow(ctx,
		`SELECT snapshot FROM inspections WHERE id = $1`, id,
	).Scan(&snapshot)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, evaluator.NotFound("Inspection not found")
		}
		return nil, evaluator.Internal("Failed to fetch inspection", err)
	}

	var inspection evaluator.Inspection
	if err := json.Unmarshal(snapshot, &inspection); err != nil {
		return nil, evaluator.Internal("Failed to decode inspection snapshot", err)
	}
	return &inspection, nil
}

func (s *InspectionService) CreateInspection(ctx context.Context, inspection *evaluator.Inspection) error {
	if inspection.ID == (uuid.UUID{}) {
		inspection.ID = uuid.New()
	}
	if inspection.Status == "" {
		inspection.Status = evaluator.InspectionStatusPendingReview
	}

	snapshot, err := json.Marshal(inspection)
	if err != nil {
		return evaluator.Internal("Failed to encode inspection snapshot", err)
	}

	_, err = s.db.pool.Exec(ctx,
		`INSERT INTO inspections (id, container_number, status, snapshot) VALUES ($1, $2, $3, $4)`,
		inspection.ID, inspection.ContainerNumber, string(inspection.Status), snapshot,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return evaluator.Conflict("Container %s is already registered", inspection.ContainerNumber)
		}
		return evaluator.Internal("Failed to create inspection", err)
	}
	return nil
}

func (s *InspectionService) SaveInspection(ctx context.Context, inspection *evaluator.Inspection) error {
	snapshot, err := json.Marshal(inspection)
	if err != nil {
		return evaluator.Internal("Failed to encode inspection snapshot", err)
	}

	tag, err := s.db.pool.Exec(ctx,
		`UPDATE inspections SET status = $2, snapshot = $3, updated_at = now() WHERE id = $1`,
		inspection.ID, string(inspection.Status), snapshot,
	)
	if err != nil {
		return evaluator.Internal("Failed to save inspection", err)
	}
	if tag.RowsAffected() == 0 {
		return evaluator.NotFound("Inspection not found")
	}
	return nil
}

func (s *InspectionService) FindNextPending(ctx context.Context) (*evaluator.PendingItem, error) {
	var item evaluator.PendingItem
	err := s.db.pool.QueryRow(ctx,
		`SELECT id, container_number FROM inspections
		 WHERE status = $1
		 ORDER BY created_at
		 LIMIT 1`,
		string(evaluator.InspectionStatusPendingReview),
	).Scan(&item.InspectionID, &item.ContainerNumber)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, evaluator.NotFound("No inspections pending review")
		}
		return nil, evaluator.Internal("Failed to find next pending inspection", err)
	}
	return &item, nil
}
