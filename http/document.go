package http

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// DocumentResponse is returned after a document has been rendered and stored.
type DocumentResponse struct {
	URL string `json:"url"`
}

// documentTimeout allows for image fetches and the PDF upload.
const documentTimeout = 30 * time.Second

func (s *Server) handleExportInvoice(c echo.Context) error {
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

	url, err := s.exporter.ExportInvoice(ctx, inspection)
	if err != nil {
		return err
	}

	s.log(c).Info("invoice document exported",
		slog.String("inspection_id", inspectionID.String()),
		slog.String("url", url),
	)

	return RespondCreated(c, DocumentResponse{URL: url})
}

func (s *Server) handleExportReport(c echo.Context) error {
	// Report rendering fetches every image blob, so it gets a wider
	// deadline than regular handlers.
	ctx, cancel := withTimeoutDuration(c, documentTimeout)
	defer cancel()

	inspectionID, err := requireUUIDParam(c, "id")
	if err != nil {
		return err
	}

	inspection, err := s.inspections.FindInspectionByID(ctx, inspectionID)
	if err != nil {
		return err
	}

	url, err := s.exporter.ExportReport(ctx, inspection)
	if err != nil {
		return err
	}

	s.log(c).Info("report document exported",
		slog.String("inspection_id", inspectionID.String()),
		slog.String("url", url),
	)

	return RespondCreated(c, DocumentResponse{URL: url})
}
