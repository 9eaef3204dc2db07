package mock

import (
	"fmt"

	evaluator "github.com/Norikachi123/Container-Evaluator"
)

// Compile-time interface check
var _ evaluator.Canvas = (*Canvas)(nil)

// Canvas records drawing instructions as formatted strings so projection
// tests can assert on exact content, ordering and page breaks.
type Canvas struct {
	// Width is the reported page width. Defaults to A4 in points.
	Width float64

	// Ops is the recorded instruction sequence.
	Ops []string
}

func (c *Canvas) record(format string, args ...any) {
	c.Ops = append(c.Ops, fmt.Sprintf(format, args...))
}

func (c *Canvas) AddPage() {
	c.record("page")
}

func (c *Canvas) PageWidth() float64 {
	if c.Width == 0 {
		return 595.28
	}
	return c.Width
}

func (c *Canvas) SetFont(family, style string, size float64) {
	c.record("font %s %q %.1f", family, style, size)
}

func (c *Canvas) SetTextColor(r, g, b int) {
	c.record("textcolor %d %d %d", r, g, b)
}

func (c *Canvas) SetFillColor(r, g, b int) {
	c.record("fillcolor %d %d %d", r, g, b)
}

func (c *Canvas) SetDrawColor(r, g, b int) {
	c.record("drawcolor %d %d %d", r, g, b)
}

func (c *Canvas) SetLineWidth(w float64) {
	c.record("linewidth %.2f", w)
}

func (c *Canvas) Text(x, y float64, s string) {
	c.record("text %.2f %.2f %q", x, y, s)
}

func (c *Canvas) TextRight(x, y float64, s string) {
	c.record("textright %.2f %.2f %q", x, y, s)
}

func (c *Canvas) Rect(x, y, w, h float64) {
	c.record("rect %.2f %.2f %.2f %.2f", x, y, w, h)
}

func (c *Canvas) FillRect(x, y, w, h float64) {
	c.record("fillrect %.2f %.2f %.2f %.2f", x, y, w, h)
}

func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c.record("line %.2f %.2f %.2f %.2f", x1, y1, x2, y2)
}

func (c *Canvas) Image(name string, x, y, w, h float64) {
	c.record("image %s %.2f %.2f %.2f %.2f", name, x, y, w, h)
}

// PageCount returns the number of pages started.
func (c *Canvas) PageCount() int {
	n := 0
	for _, op := range c.Ops {
		if op == "page" {
			n++
		}
	}
	return n
}
