// seehuhn.de/go/ribbon - variable-width ribbons through pressure-weighted points
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package canvas

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// PDFCanvas is a [Surface] producing a single-page PDF file.  One unit
// is one PDF point.
//
// Drawing operations are recorded and written out by Save, so that the
// same drawing can be saved more than once.
type PDFCanvas struct {
	drawState

	width, height float64
	ops           []pdfOp
}

var _ Surface = (*PDFCanvas)(nil)

// pdfOp is one recorded drawing operation.
type pdfOp struct {
	pen  pen
	path *path.Data // nil for background fills
}

// NewPDFCanvas returns an empty canvas with the given page size.
func NewPDFCanvas(width, height float64) *PDFCanvas {
	return &PDFCanvas{
		drawState: newDrawState(),
		width:     width,
		height:    height,
	}
}

// Background discards everything drawn so far, since it would be hidden.
func (c *PDFCanvas) Background(col color.Color) {
	p := c.pen
	p.colour = color.NRGBAModel.Convert(col).(color.NRGBA)
	c.ops = append(c.ops[:0], pdfOp{pen: p})
}

func (c *PDFCanvas) EndShape() {
	if p := c.takeShape(); p != nil {
		c.record(p)
	}
}

func (c *PDFCanvas) Line(x1, y1, x2, y2 float64) {
	c.record((&path.Data{}).
		MoveTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x2, Y: y2}))
}

// Point relies on the PDF rule that zero-length subpaths are drawn as
// dots when round or square caps are used.
func (c *PDFCanvas) Point(x, y float64) {
	pt := vec.Vec2{X: x, Y: y}
	c.record((&path.Data{}).MoveTo(pt).LineTo(pt))
}

func (c *PDFCanvas) record(p *path.Data) {
	if c.pen.weight <= 0 {
		return
	}
	c.ops = append(c.ops, pdfOp{pen: c.pen, path: p})
}

// Save writes the recorded drawing to a PDF file.  The extension ".pdf"
// is added if name has no extension.
func (c *PDFCanvas) Save(name string) error {
	if c.err != nil {
		return c.err
	}
	name = withExt(name, ".pdf")

	paper := &pdf.Rectangle{URx: c.width, URy: c.height}
	page, err := document.CreateSinglePage(name, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF has the origin in the bottom-left corner
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, c.height})

	for _, op := range c.ops {
		if op.path == nil {
			page.SetFillColor(pdfColour(op.pen.colour))
			page.Rectangle(0, 0, c.width, c.height)
			page.Fill()
			continue
		}

		page.SetStrokeColor(pdfColour(op.pen.colour))
		page.SetLineWidth(op.pen.weight)
		page.SetLineCap(op.pen.cap)
		page.SetLineJoin(op.pen.join)
		forEachSegment(op.path,
			func(v vec.Vec2) { page.MoveTo(v.X, v.Y) },
			func(v vec.Vec2) { page.LineTo(v.X, v.Y) },
			func(c1, c2, end vec.Vec2) { page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y) },
		)
		page.Stroke()
	}

	if err := page.Close(); err != nil {
		return err
	}
	Logger().Info("canvas saved", "file", name, "operations", len(c.ops))
	return nil
}

// pdfColour converts c to DeviceRGB.  Transparency is ignored.
func pdfColour(c color.NRGBA) pdfcolor.Color {
	return pdfcolor.DeviceRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}
