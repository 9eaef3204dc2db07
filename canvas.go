package evaluator

// Canvas is the document-drawing primitive consumed by the document
// projections. Coordinates are in points with the origin at the top-left
// of the page. Implementations own page material and byte format; the
// projections only fix layout coordinates, ordering and content.
type Canvas interface {
	// AddPage starts a new page.
	AddPage()

	// PageWidth returns the drawable page width.
	PageWidth() float64

	// SetFont selects the font family, style ("", "B", "I") and size for
	// subsequent text.
	SetFont(family, style string, size float64)

	// SetTextColor sets the RGB color for subsequent text.
	SetTextColor(r, g, b int)

	// SetFillColor sets the RGB color for subsequent filled rectangles.
	SetFillColor(r, g, b int)

	// SetDrawColor sets the RGB color for subsequent outlines and lines.
	SetDrawColor(r, g, b int)

	// SetLineWidth sets the stroke width for outlines and lines.
	SetLineWidth(w float64)

	// Text places a string with its baseline origin at (x, y).
	Text(x, y float64, s string)

	// TextRight places a string right-aligned so it ends at x.
	TextRight(x, y float64, s string)

	// Rect draws an unfilled rectangle.
	Rect(x, y, w, h float64)

	// FillRect draws a filled rectangle.
	FillRect(x, y, w, h float64)

	// Line draws a straight line between two points.
	Line(x1, y1, x2, y2 float64)

	// Image embeds a registered image into the given rectangle. The name
	// refers to an image the implementation already knows how to resolve.
	Image(name string, x, y, w, h float64)
}
