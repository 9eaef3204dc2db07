package pdf

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/Norikachi123/Container-Evaluator/document"

	evaluator "github.com/Norikachi123/Container-Evaluator"
)

// Exporter renders inspection documents to PDF and stores them.
type Exporter struct {
	storage   evaluator.FileStorage
	localizer evaluator.Localizer
	lang      string
	logger    *slog.Logger
}

// NewExporter creates an exporter rendering documents in the given language.
func NewExporter(storage evaluator.FileStorage, localizer evaluator.Localizer, lang string, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		storage:   storage,
		localizer: localizer,
		lang:      lang,
		logger:    logger,
	}
}

// ExportInvoice renders the invoice document and stores it as
// <invoiceNumber>.pdf. Returns the stored document's URL.
// Returns EPRECONDITION when no invoice has been issued.
func (e *Exporter) ExportInvoice(ctx context.Context, insp *evaluator.Inspection) (string, error) {
	canvas := NewCanvas()
	if err := document.RenderInvoice(canvas, insp, e.localizer, e.lang); err != nil {
		return "", err
	}
	key := insp.Quote.Invoice.Number + ".pdf"
	return e.store(ctx, canvas, key)
}

// ExportReport renders the inspection report and stores it as
// report_<containerNumber>.pdf. Returns the stored document's URL.
// Missing image blobs are logged and leave an empty frame in the report.
func (e *Exporter) ExportReport(ctx context.Context, insp *evaluator.Inspection) (string, error) {
	canvas := NewCanvas()
	for _, img := range insp.Images {
		data, err := e.storage.Fetch(ctx, img.StorageKey)
		if err != nil {
			e.logger.Warn("image unavailable for report",
				slog.String("storage_key", img.StorageKey),
				slog.String("error", err.Error()),
			)
			continue
		}
		canvas.RegisterImage(img.StorageKey, data)
	}
	if err := document.RenderReport(canvas, insp, e.localizer, e.lang); err != nil {
		return "", err
	}
	key := fmt.Sprintf("report_%s.pdf", insp.ContainerNumber)
	return e.store(ctx, canvas, key)
}

func (e *Exporter) store(ctx context.Context, canvas *Canvas, key string) (string, error) {
	var buf bytes.Buffer
	if err := canvas.Output(&buf); err != nil {
		return "", evaluator.Internal("Failed to produce PDF", err)
	}
	url, err := e.storage.Upload(ctx, key, &buf, "application/pdf")
	if err != nil {
		return "", evaluator.Internal("Failed to store document", err)
	}
	e.logger.Info("document stored", slog.String("key", key))
	return url, nil
}
