package document_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	evaluator "github.com/Norikachi123/Container-Evaluator"
	"github.com/Norikachi123/Container-Evaluator/document"
	"github.com/Norikachi123/Container-Evaluator/i18n"
	"github.com/Norikachi123/Container-Evaluator/mock"
)

func reportInspection() *evaluator.Inspection {
	left := &evaluator.ContainerImage{ID: uuid.New(), Side: evaluator.SideLeft, StorageKey: "img/left.jpg"}
	roof := &evaluator.ContainerImage{ID: uuid.New(), Side: evaluator.SideTop, StorageKey: "img/roof.jpg"}
	return &evaluator.Inspection{
		ID:              uuid.New(),
		ContainerNumber: "MSCU1234567",
		InspectorName:   "J. Okafor",
		InspectedAt:     time.Date(2026, time.August, 30, 14, 45, 0, 0, time.UTC),
		Location:        "Rotterdam Terminal 4",
		Status:          evaluator.InspectionStatusInReview,
		Images:          []*evaluator.ContainerImage{left, roof},
		Defects: []*evaluator.Defect{
			{
				ID:         uuid.New(),
				ImageID:    left.ID,
				Bounds:     evaluator.BoundingBox{XMin: 10, YMin: 20, XMax: 30, YMax: 40},
				Code:       "DENT",
				Severity:   evaluator.SeverityMedium,
				Status:     evaluator.DefectStatusAccepted,
				RepairCost: 10000,
			},
			{
				ID:       uuid.New(),
				ImageID:  left.ID,
				Bounds:   evaluator.BoundingBox{XMin: 50, YMin: 50, XMax: 60, YMax: 70},
				Code:     "RUST",
				Severity: evaluator.SeverityLow,
				Status:   evaluator.DefectStatusRejected,
			},
			{
				ID:         uuid.New(),
				ImageID:    left.ID,
				Bounds:     evaluator.BoundingBox{XMin: 70, YMin: 10, XMax: 90, YMax: 30},
				Code:       "HOLE",
				Severity:   evaluator.SeverityHigh,
				Status:     evaluator.DefectStatusPending,
				RepairCost: 2500,
			},
		},
	}
}

func TestRenderReport(t *testing.T) {
	loc := i18n.NewCatalog()

	t.Run("summary page plus one page per image", func(t *testing.T) {
		insp := reportInspection()
		c := &mock.Canvas{}
		require.NoError(t, document.RenderReport(c, insp, loc, "en"))
		require.Equal(t, 3, c.PageCount())

		ops := fmt.Sprint(c.Ops)
		require.Contains(t, ops, "CONTAINER INSPECTION REPORT")
		require.Contains(t, ops, "MSCU1234567")
		require.Contains(t, ops, "J. Okafor")
		require.Contains(t, ops, "2026-08-30 14:45")
		require.Contains(t, ops, "Rotterdam Terminal 4")
		require.Contains(t, ops, "image img/left.jpg")
		require.Contains(t, ops, "image img/roof.jpg")
	})

	t.Run("financial box shows derived totals without a quote", func(t *testing.T) {
		insp := reportInspection()
		c := &mock.Canvas{}
		require.NoError(t, document.RenderReport(c, insp, loc, "en"))

		ops := fmt.Sprint(c.Ops)
		require.Contains(t, ops, "Subtotal: 125.00")
		require.Contains(t, ops, "Tax (10%): 12.50")
		require.Contains(t, ops, "Total: 137.50 (draft)")
	})

	t.Run("maps normalized boxes into the placed image rectangle", func(t *testing.T) {
		insp := reportInspection()
		c := &mock.Canvas{} // page width 595.28, content width 515.28
		require.NoError(t, document.RenderReport(c, insp, loc, "en"))

		// Defect 1: (10,20)-(30,40) -> x=40+0.10*515.28, y=90+0.20*300,
		// w=0.20*515.28, h=0.20*300.
		require.Contains(t, c.Ops, "rect 91.53 150.00 103.06 60.00")
		// Its numbered label tile sits at the box origin.
		require.Contains(t, c.Ops, "fillrect 91.53 150.00 14.00 14.00")
		require.Contains(t, c.Ops, `text 95.53 160.00 "1"`)

		// Defect 3 keeps its ledger position but is labelled 2 because the
		// rejected defect between them is not drawn.
		require.Contains(t, c.Ops, "rect 400.70 120.00 103.06 60.00")
		require.Contains(t, c.Ops, `text 404.70 130.00 "2"`)

		// The rejected defect's box is never drawn.
		ops := fmt.Sprint(c.Ops)
		require.NotContains(t, ops, "rect 297.64")
	})

	t.Run("lists billable defects below the image", func(t *testing.T) {
		insp := reportInspection()
		c := &mock.Canvas{}
		require.NoError(t, document.RenderReport(c, insp, loc, "en"))

		ops := fmt.Sprint(c.Ops)
		require.Contains(t, ops, "1. Dent in panel (medium)")
		require.Contains(t, ops, "2. Puncture / hole (high)")
		require.NotContains(t, ops, "Corrosion / rust")
	})

	t.Run("image without billable defects renders a notice", func(t *testing.T) {
		insp := reportInspection()
		c := &mock.Canvas{}
		require.NoError(t, document.RenderReport(c, insp, loc, "en"))
		require.Contains(t, fmt.Sprint(c.Ops), "No defects recorded for this view.")
	})

	t.Run("deterministic instruction sequence", func(t *testing.T) {
		insp := reportInspection()
		a, b := &mock.Canvas{}, &mock.Canvas{}
		require.NoError(t, document.RenderReport(a, insp, loc, "en"))
		require.NoError(t, document.RenderReport(b, insp, loc, "en"))
		require.Equal(t, a.Ops, b.Ops)
	})
}
