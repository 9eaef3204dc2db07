// Package i18n provides the static localization catalog for rendered
// documents. Lookup is pure so document projection stays deterministic.
package i18n

import (
	evaluator "github.com/Norikachi123/Container-Evaluator"
)

// DefaultLang is the fallback language for unknown language tags.
const DefaultLang = "en"

// Compile-time interface check
var _ evaluator.Localizer = (*Catalog)(nil)

// Catalog is an in-memory evaluator.Localizer.
type Catalog struct{}

// NewCatalog returns the built-in catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Localize returns the translation for a layout key, falling back to
// English and finally to the key itself.
func (c *Catalog) Localize(lang, key string) string {
	if m, ok := messages[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := messages[DefaultLang][key]; ok {
		return s
	}
	return key
}

// LocalizeSide returns the display label for a container side.
func (c *Catalog) LocalizeSide(lang string, side evaluator.Side) string {
	return c.Localize(lang, "side."+string(side))
}

// LocalizeDefectCode returns the display name for a defect category
// code, falling back to the raw code.
func (c *Catalog) LocalizeDefectCode(lang, code string) string {
	if m, ok := defectCodes[lang]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := defectCodes[DefaultLang][code]; ok {
		return s
	}
	return code
}

var messages = map[string]map[string]string{
	"en": {
		"invoice.title":          "REPAIR INVOICE",
		"invoice.number":         "Invoice no.",
		"invoice.issued":         "Issue date",
		"invoice.due":            "Due date",
		"invoice.billTo":         "Bill to",
		"invoice.container":      "Container",
		"invoice.description":    "Description",
		"invoice.price":          "Price",
		"invoice.subtotal":       "Subtotal",
		"invoice.tax":            "Tax (10%)",
		"invoice.total":          "Total",
		"invoice.paymentTerms":   "Payment within 30 days of issue date.",
		"invoice.paymentAccount": "Bank transfer to IBAN stated in the service agreement, quoting the invoice number.",

		"report.title":     "CONTAINER INSPECTION REPORT",
		"report.container": "Container",
		"report.inspector": "Inspector",
		"report.date":      "Inspected",
		"report.location":  "Location",
		"report.status":    "Status",
		"report.financial": "Repair quote",
		"report.noDefects": "No defects recorded for this view.",

		"severity.low":    "low",
		"severity.medium": "medium",
		"severity.high":   "high",

		"status.pending_review": "pending review",
		"status.in_review":      "in review",
		"status.completed":      "completed",

		"status.quote.draft":    "draft",
		"status.quote.approved": "approved",
		"status.quote.invoiced": "invoiced",

		"side.front":    "Front",
		"side.rear":     "Rear",
		"side.left":     "Left side",
		"side.right":    "Right side",
		"side.top":      "Roof",
		"side.interior": "Interior",
	},
	"es": {
		"invoice.title":          "FACTURA DE REPARACION",
		"invoice.number":         "Factura n.o",
		"invoice.issued":         "Fecha de emision",
		"invoice.due":            "Fecha de vencimiento",
		"invoice.billTo":         "Facturar a",
		"invoice.container":      "Contenedor",
		"invoice.description":    "Descripcion",
		"invoice.price":          "Precio",
		"invoice.subtotal":       "Subtotal",
		"invoice.tax":            "Impuesto (10%)",
		"invoice.total":          "Total",
		"invoice.paymentTerms":   "Pago dentro de los 30 dias posteriores a la fecha de emision.",
		"invoice.paymentAccount": "Transferencia bancaria al IBAN indicado en el contrato de servicio, citando el numero de factura.",

		"report.title":     "INFORME DE INSPECCION DE CONTENEDOR",
		"report.container": "Contenedor",
		"report.inspector": "Inspector",
		"report.date":      "Inspeccionado",
		"report.location":  "Ubicacion",
		"report.status":    "Estado",
		"report.financial": "Presupuesto de reparacion",
		"report.noDefects": "No se registraron defectos para esta vista.",

		"severity.low":    "baja",
		"severity.medium": "media",
		"severity.high":   "alta",

		"status.pending_review": "pendiente de revision",
		"status.in_review":      "en revision",
		"status.completed":      "completada",

		"status.quote.draft":    "borrador",
		"status.quote.approved": "aprobado",
		"status.quote.invoiced": "facturado",

		"side.front":    "Frontal",
		"side.rear":     "Trasera",
		"side.left":     "Lado izquierdo",
		"side.right":    "Lado derecho",
		"side.top":      "Techo",
		"side.interior": "Interior",
	},
}

var defectCodes = map[string]map[string]string{
	"en": {
		"DENT":      "Dent in panel",
		"RUST":      "Corrosion / rust",
		"HOLE":      "Puncture / hole",
		"SCRATCH":   "Deep scratch",
		"FLOOR":     "Floor damage",
		"DOOR_SEAL": "Door seal damage",
	},
	"es": {
		"DENT":      "Abolladura en panel",
		"RUST":      "Corrosion / oxido",
		"HOLE":      "Perforacion / agujero",
		"SCRATCH":   "Rayadura profunda",
		"FLOOR":     "Dano en el piso",
		"DOOR_SEAL": "Dano en la junta de puerta",
	},
}
