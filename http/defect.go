package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	evaluator "github.com/Norikachi123/Container-Evaluator"
)

// UpdateDefectStatusRequest is the request payload for a review decision.
type UpdateDefectStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleSetDefectStatus(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()

	inspectionID, err := requireUUIDParam(c, "id")
	if err != nil {
		return err
	}
	defectID, err := requireUUIDParam(c, "defectId")
	if err != nil {
		return err
	}

	var req UpdateDefectStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	status := evaluator.DefectStatus(req.Status)
	if !status.Valid() {
		return evaluator.Invalid("Invalid defect status %q", req.Status)
	}

	inspection, err := s.review.SetDefectStatus(ctx, inspectionID, defectID, status)
	if err != nil {
		return err
	}

	s.log(c).Info("defect status updated",
		slog.String("inspection_id", inspectionID.String()),
		slog.String("defect_id", defectID.String()),
		slog.String("status", string(status)),
	)

	return RespondOK(c, inspection)
}

// UpdateDefectCostRequest is the request payload for setting a repair
// cost. The cost is given in minor currency units.
type UpdateDefectCostRequest struct {
	CostCents int64 `json:"costCents"`
}

func (s *Server) handleSetDefectCost(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()

	inspectionID, err := requireUUIDParam(c, "id")
	if err != nil {
		return err
	}
	defectID, err := requireUUIDParam(c, "defectId")
	if err != nil {
		return err
	}

	var req UpdateDefectCostRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	inspection, err := s.review.SetRepairCost(ctx, inspectionID, defectID, evaluator.Money(req.CostCents))
	if err != nil {
		return err
	}

	s.log(c).Info("defect cost updated",
		slog.String("inspection_id", inspectionID.String()),
		slog.String("defect_id", defectID.String()),
		slog.Int64("cost_cents", req.CostCents),
	)

	return RespondOK(c, inspection)
}
