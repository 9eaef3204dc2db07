// Package document projects inspection snapshots into drawing
// instruction sequences for the invoice and report documents. Both
// projections are pure: identical input produces an identical
// instruction sequence on the Canvas.
package document

import (
	evaluator "github.com/Norikachi123/Container-Evaluator"
)

// Page geometry in points (A4 portrait). The canvas owns the physical
// page; these constants fix the layout the projections emit.
const (
	marginX    = 40.0
	topMargin  = 40.0
	pageBottom = 780.0 // vertical cursor threshold that forces a page break
	lineStep   = 18.0  // advance per table row / list line
	footerY    = 800.0 // fixed footer baseline
)

// Report page geometry.
const (
	imageTop    = 90.0  // top edge of the embedded image on image pages
	imageHeight = 300.0 // fixed height the image is scaled into
	labelSize   = 14.0  // numbered defect label tile edge length
)

// cursor tracks the running vertical position while emitting rows and
// starts a new page when the next row would cross the bottom threshold.
type cursor struct {
	y float64
}

// advance reserves one row of the given height, breaking the page first
// when the row would exceed the threshold. It returns the y position the
// row must be drawn at. Rows are never split across pages.
func (cur *cursor) advance(c evaluator.Canvas, step float64) float64 {
	if cur.y+step > pageBottom {
		c.AddPage()
		cur.y = topMargin
	}
	y := cur.y
	cur.y += step
	return y
}
