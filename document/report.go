package document

import (
	"fmt"

	evaluator "github.com/Norikachi123/Container-Evaluator"
)

const timestampLayout = "2006-01-02 15:04"

// RenderReport emits the inspection report: a summary page followed by
// one page per image. Each image is embedded at a fixed size with every
// non-rejected defect drawn as a rectangle mapped from its normalized
// bounding box into the placed image rectangle, labelled with its
// 1-based index in ledger order, and listed textually below with the
// same page-break policy as the invoice line items.
func RenderReport(c evaluator.Canvas, insp *evaluator.Inspection, loc evaluator.Localizer, lang string) error {
	renderSummaryPage(c, insp, loc, lang)
	for _, img := range insp.Images {
		renderImagePage(c, insp, img, loc, lang)
	}
	return nil
}

// renderSummaryPage emits page 1: inspection metadata and the financial box.
func renderSummaryPage(c evaluator.Canvas, insp *evaluator.Inspection, loc evaluator.Localizer, lang string) {
	right := c.PageWidth() - marginX

	c.AddPage()
	c.SetFont("Helvetica", "B", 20)
	c.SetTextColor(33, 37, 41)
	c.Text(marginX, topMargin+14, loc.Localize(lang, "report.title"))

	c.SetFont("Helvetica", "", 10)
	rows := []struct{ key, value string }{
		{"report.container", insp.ContainerNumber},
		{"report.inspector", insp.InspectorName},
		{"report.date", insp.InspectedAt.Format(timestampLayout)},
		{"report.location", insp.Location},
		{"report.status", loc.Localize(lang, "status."+string(insp.Status))},
	}
	y := topMargin + 50
	for _, row := range rows {
		c.SetFont("Helvetica", "B", 10)
		c.Text(marginX, y, loc.Localize(lang, row.key)+":")
		c.SetFont("Helvetica", "", 10)
		c.Text(marginX+110, y, row.value)
		y += lineStep
	}

	// Financial box: the quote snapshot, or derived totals when no quote
	// has been created yet.
	quote := insp.Quote
	if quote == nil {
		derived := evaluator.DeriveQuote(insp.Defects)
		quote = &derived
	}
	boxTop := y + 16
	c.SetDrawColor(33, 37, 41)
	c.SetLineWidth(0.5)
	c.Rect(marginX, boxTop, right-marginX, 4*lineStep+16)

	c.SetFont("Helvetica", "B", 11)
	c.Text(marginX+10, boxTop+20, loc.Localize(lang, "report.financial"))
	c.SetFont("Helvetica", "", 10)
	c.Text(marginX+10, boxTop+20+lineStep, fmt.Sprintf("%s: %s", loc.Localize(lang, "invoice.subtotal"), quote.Subtotal.String()))
	c.Text(marginX+10, boxTop+20+2*lineStep, fmt.Sprintf("%s: %s", loc.Localize(lang, "invoice.tax"), quote.Tax.String()))
	c.Text(marginX+10, boxTop+20+3*lineStep, fmt.Sprintf("%s: %s (%s)",
		loc.Localize(lang, "invoice.total"), quote.Total.String(), loc.Localize(lang, "status.quote."+string(quote.Status))))
}

// renderImagePage emits one page for a container image: the embedded
// photo with defect overlays, then the textual defect list.
func renderImagePage(c evaluator.Canvas, insp *evaluator.Inspection, img *evaluator.ContainerImage, loc evaluator.Localizer, lang string) {
	contentWidth := c.PageWidth() - 2*marginX

	c.AddPage()
	c.SetFont("Helvetica", "B", 14)
	c.SetTextColor(33, 37, 41)
	c.Text(marginX, topMargin+10, loc.LocalizeSide(lang, img.Side))

	c.Image(img.StorageKey, marginX, imageTop, contentWidth, imageHeight)

	// Billable defects on this image, in ledger order. The 1-based index
	// is the label number drawn on the overlay and reused in the list.
	var defects []*evaluator.Defect
	for _, d := range insp.DefectsForImage(img.ID) {
		if d.Billable() {
			defects = append(defects, d)
		}
	}

	for i, d := range defects {
		x, y, w, h := overlayRect(d.Bounds, contentWidth)
		c.SetDrawColor(220, 53, 69)
		c.SetLineWidth(1.5)
		c.Rect(x, y, w, h)

		c.SetFillColor(220, 53, 69)
		c.FillRect(x, y, labelSize, labelSize)
		c.SetFont("Helvetica", "B", 9)
		c.SetTextColor(255, 255, 255)
		c.Text(x+4, y+10, fmt.Sprintf("%d", i+1))
	}

	// Textual defect list below the image.
	listTop := imageTop + imageHeight + 30
	c.SetTextColor(33, 37, 41)
	if len(defects) == 0 {
		c.SetFont("Helvetica", "I", 10)
		c.Text(marginX, listTop, loc.Localize(lang, "report.noDefects"))
		return
	}

	c.SetFont("Helvetica", "", 10)
	cur := cursor{y: listTop}
	for i, d := range defects {
		y := cur.advance(c, lineStep)
		desc := d.Description
		if desc == "" {
			desc = loc.LocalizeDefectCode(lang, d.Code)
		}
		c.Text(marginX, y, fmt.Sprintf("%d. %s (%s) - %s", i+1,
			loc.LocalizeDefectCode(lang, d.Code),
			loc.Localize(lang, "severity."+string(d.Severity)),
			desc,
		))
		c.TextRight(c.PageWidth()-marginX, y, d.RepairCost.String())
	}
}

// overlayRect maps a normalized 0-100 bounding box into the page
// rectangle the image was placed at.
func overlayRect(b evaluator.BoundingBox, contentWidth float64) (x, y, w, h float64) {
	x = marginX + b.XMin/100*contentWidth
	y = imageTop + b.YMin/100*imageHeight
	w = (b.XMax - b.XMin) / 100 * contentWidth
	h = (b.YMax - b.YMin) / 100 * imageHeight
	return x, y, w, h
}
