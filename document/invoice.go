package document

import (
	"fmt"

	evaluator "github.com/Norikachi123/Container-Evaluator"
)

const dateLayout = "2006-01-02"

// RenderInvoice emits the invoice document for an invoiced inspection:
// header, invoice metadata, bill-to block, container identifier, the
// line-item table of non-rejected defects, the totals block and a fixed
// payment footer. Line items that would cross the page-bottom threshold
// continue on a new page without re-emitting already placed rows.
// Returns EPRECONDITION when no invoice has been issued.
func RenderInvoice(c evaluator.Canvas, insp *evaluator.Inspection, loc evaluator.Localizer, lang string) error {
	if insp.Quote == nil || insp.Quote.Invoice == nil {
		return evaluator.PreconditionFailed("Inspection has no issued invoice to render")
	}
	quote := insp.Quote
	inv := quote.Invoice
	right := c.PageWidth() - marginX

	c.AddPage()

	// Header
	c.SetFont("Helvetica", "B", 20)
	c.SetTextColor(33, 37, 41)
	c.Text(marginX, topMargin+14, loc.Localize(lang, "invoice.title"))

	// Invoice metadata block
	c.SetFont("Helvetica", "", 10)
	c.TextRight(right, topMargin, fmt.Sprintf("%s: %s", loc.Localize(lang, "invoice.number"), inv.Number))
	c.TextRight(right, topMargin+14, fmt.Sprintf("%s: %s", loc.Localize(lang, "invoice.issued"), inv.IssuedAt.Format(dateLayout)))
	c.TextRight(right, topMargin+28, fmt.Sprintf("%s: %s", loc.Localize(lang, "invoice.due"), inv.DueAt.Format(dateLayout)))

	// Bill-to block
	billTop := topMargin + 60
	c.SetFont("Helvetica", "B", 11)
	c.Text(marginX, billTop, loc.Localize(lang, "invoice.billTo"))
	c.SetFont("Helvetica", "", 10)
	c.Text(marginX, billTop+14, inv.CustomerName)
	c.Text(marginX, billTop+28, inv.CustomerAddress)

	// Container identifier
	c.Text(marginX, billTop+52, fmt.Sprintf("%s: %s", loc.Localize(lang, "invoice.container"), insp.ContainerNumber))

	// Line-item table header
	tableTop := billTop + 80
	c.SetFont("Helvetica", "B", 10)
	c.Text(marginX, tableTop, loc.Localize(lang, "invoice.description"))
	c.TextRight(right, tableTop, loc.Localize(lang, "invoice.price"))
	c.SetDrawColor(33, 37, 41)
	c.SetLineWidth(0.5)
	c.Line(marginX, tableTop+6, right, tableTop+6)

	// Line items: non-rejected defects in ledger order.
	c.SetFont("Helvetica", "", 10)
	cur := cursor{y: tableTop + lineStep + 6}
	for _, d := range insp.BillableDefects() {
		y := cur.advance(c, lineStep)
		c.Text(marginX, y, lineItemDescription(insp, d, loc, lang))
		c.TextRight(right, y, d.RepairCost.String())
	}

	// Rule and totals block
	ruleY := cur.advance(c, lineStep)
	c.Line(marginX, ruleY-10, right, ruleY-10)
	c.SetFont("Helvetica", "", 10)
	c.TextRight(right, ruleY, fmt.Sprintf("%s: %s", loc.Localize(lang, "invoice.subtotal"), quote.Subtotal.String()))
	taxY := cur.advance(c, lineStep)
	c.TextRight(right, taxY, fmt.Sprintf("%s: %s", loc.Localize(lang, "invoice.tax"), quote.Tax.String()))
	totalY := cur.advance(c, lineStep)
	c.SetFont("Helvetica", "B", 11)
	c.TextRight(right, totalY, fmt.Sprintf("%s: %s", loc.Localize(lang, "invoice.total"), quote.Total.String()))

	// Fixed payment footer
	c.SetFont("Helvetica", "", 8)
	c.SetTextColor(108, 117, 125)
	c.Text(marginX, footerY, loc.Localize(lang, "invoice.paymentTerms"))
	c.Text(marginX, footerY+10, loc.Localize(lang, "invoice.paymentAccount"))

	return nil
}

// lineItemDescription builds the localized description for one defect
// row: category, severity and the container side the defect was found on.
func lineItemDescription(insp *evaluator.Inspection, d *evaluator.Defect, loc evaluator.Localizer, lang string) string {
	side := ""
	if img := insp.ImageByID(d.ImageID); img != nil {
		side = loc.LocalizeSide(lang, img.Side)
	}
	return fmt.Sprintf("%s (%s, %s)",
		loc.LocalizeDefectCode(lang, d.Code),
		loc.Localize(lang, "severity."+string(d.Severity)),
		side,
	)
}
