package http

import (
	"github.com/labstack/echo/v4"
)

func (s *Server) handleGetInspection(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()

	inspectionID, err := requireUUIDParam(c, "id")
	if err != nil {
		return err
	}

	inspection, err := s.inspections.FindInspectionByID(ctx, inspectionID)
	if err != nil {
		return err
	}

	return RespondOK(c, inspection)
}

func (s *Server) handleNextPending(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()

	item, err := s.review.NextPending(ctx)
	if err != nil {
		return err
	}

	return RespondOK(c, item)
}
