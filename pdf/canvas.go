// Package pdf renders document projections to PDF files using gofpdf
// and stores them through the configured file storage.
package pdf

import (
	"bytes"
	"io"
	"path"
	"strings"

	"github.com/jung-kurt/gofpdf"

	evaluator "github.com/Norikachi123/Container-Evaluator"
)

// Compile-time interface check
var _ evaluator.Canvas = (*Canvas)(nil)

// Canvas implements evaluator.Canvas on an A4 portrait PDF in points.
type Canvas struct {
	doc    *gofpdf.Fpdf
	images map[string]bool
}

// NewCanvas creates an empty PDF canvas.
func NewCanvas() *Canvas {
	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	return &Canvas{
		doc:    doc,
		images: map[string]bool{},
	}
}

// RegisterImage makes an image available for embedding under the given
// name. The image type is inferred from the name's extension.
func (c *Canvas) RegisterImage(name string, data []byte) {
	imageType := strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
	if imageType == "jpg" {
		imageType = "jpeg"
	}
	c.doc.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(data))
	c.images[name] = true
}

// Output writes the finished PDF.
func (c *Canvas) Output(w io.Writer) error {
	return c.doc.Output(w)
}

func (c *Canvas) AddPage() {
	c.doc.AddPage()
}

func (c *Canvas) PageWidth() float64 {
	w, _ := c.doc.GetPageSize()
	return w
}

func (c *Canvas) SetFont(family, style string, size float64) {
	c.doc.SetFont(family, style, size)
}

func (c *Canvas) SetTextColor(r, g, b int) {
	c.doc.SetTextColor(r, g, b)
}

func (c *Canvas) SetFillColor(r, g, b int) {
	c.doc.SetFillColor(r, g, b)
}

func (c *Canvas) SetDrawColor(r, g, b int) {
	c.doc.SetDrawColor(r, g, b)
}

func (c *Canvas) SetLineWidth(w float64) {
	c.doc.SetLineWidth(w)
}

func (c *Canvas) Text(x, y float64, s string) {
	c.doc.Text(x, y, s)
}

func (c *Canvas) TextRight(x, y float64, s string) {
	c.doc.Text(x-c.doc.GetStringWidth(s), y, s)
}

func (c *Canvas) Rect(x, y, w, h float64) {
	c.doc.Rect(x, y, w, h, "D")
}

func (c *Canvas) FillRect(x, y, w, h float64) {
	c.doc.Rect(x, y, w, h, "F")
}

func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c.doc.Line(x1, y1, x2, y2)
}

// Image embeds a previously registered image. Unregistered names are
// skipped so a missing photo degrades to an empty frame instead of a
// broken document.
func (c *Canvas) Image(name string, x, y, w, h float64) {
	if !c.images[name] {
		return
	}
	c.doc.ImageOptions(name, x, y, w, h, false, gofpdf.ImageOptions{}, 0, "")
}
