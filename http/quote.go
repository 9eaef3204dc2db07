package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleApproveQuote(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()

	inspectionID, err := requireUUIDParam(c, "id")
	if err != nil {
		return err
	}

	inspection, err := s.review.ApproveQuote(ctx, inspectionID)
	if err != nil {
		return err
	}

	s.log(c).Info("quote approved",
		slog.String("inspection_id", inspectionID.String()),
		slog.String("total", inspection.Quote.Total.String()),
	)

	return RespondOK(c, inspection)
}

// CreateInvoiceRequest is the request payload for issuing an invoice.
type CreateInvoiceRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerAddress string `json:"customerAddress"`
	CustomerEmail   string `json:"customerEmail"`
}

func (s *Server) handleCreateInvoice(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()

	inspectionID, err := requireUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req CreateInvoiceRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	inspection, err := s.review.CreateInvoice(ctx, inspectionID, req.CustomerName, req.CustomerAddress, req.CustomerEmail)
	if err != nil {
		return err
	}

	s.log(c).Info("invoice created",
		slog.String("inspection_id", inspectionID.String()),
		slog.String("invoice_number", inspection.Quote.Invoice.Number),
	)

	return RespondCreated(c, inspection)
}
