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
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// GGCanvas is a [Surface] drawing on a gogpu/gg context.
type GGCanvas struct {
	drawState
	dc *gg.Context
}

var _ Surface = (*GGCanvas)(nil)

// NewGGCanvas returns a transparent canvas of the given size.
// The canvas must be closed after use.
func NewGGCanvas(width, height int) *GGCanvas {
	return &GGCanvas{
		drawState: newDrawState(),
		dc:        gg.NewContext(width, height),
	}
}

func (c *GGCanvas) Background(col color.Color) {
	c.dc.ClearWithColor(gg.FromColor(col))
}

func (c *GGCanvas) EndShape() {
	p := c.takeShape()
	if p == nil {
		return
	}
	forEachSegment(p,
		func(v vec.Vec2) { c.dc.MoveTo(v.X, v.Y) },
		func(v vec.Vec2) { c.dc.LineTo(v.X, v.Y) },
		func(c1, c2, end vec.Vec2) { c.dc.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y) },
	)
	c.strokePath()
}

func (c *GGCanvas) Line(x1, y1, x2, y2 float64) {
	c.dc.DrawLine(x1, y1, x2, y2)
	c.strokePath()
}

// Point draws a disc with the stroke weight as its diameter.  Square
// caps give a square, butt caps give nothing.
func (c *GGCanvas) Point(x, y float64) {
	if c.pen.weight <= 0 {
		return
	}
	d := c.pen.weight / 2
	switch c.pen.cap {
	case graphics.LineCapRound:
		c.dc.DrawPoint(x, y, d)
	case graphics.LineCapSquare:
		c.dc.DrawRectangle(x-d, y-d, 2*d, 2*d)
	default:
		return
	}
	c.dc.SetColor(c.pen.colour)
	if err := c.dc.Fill(); err != nil {
		c.fail(err)
	}
}

// strokePath strokes the current gg path with the current pen.
func (c *GGCanvas) strokePath() {
	if c.pen.weight <= 0 {
		c.dc.ClearPath()
		return
	}
	c.dc.SetColor(c.pen.colour)
	c.dc.SetLineWidth(c.pen.weight)
	c.dc.SetLineCap(ggCap(c.pen.cap))
	c.dc.SetLineJoin(ggJoin(c.pen.join))
	if err := c.dc.Stroke(); err != nil {
		c.fail(err)
	}
}

func ggCap(c graphics.LineCapStyle) gg.LineCap {
	switch c {
	case graphics.LineCapRound:
		return gg.LineCapRound
	case graphics.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func ggJoin(j graphics.LineJoinStyle) gg.LineJoin {
	switch j {
	case graphics.LineJoinRound:
		return gg.LineJoinRound
	case graphics.LineJoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}

// Image returns the canvas contents.
func (c *GGCanvas) Image() image.Image {
	return c.dc.Image()
}

// Save writes the canvas as a PNG file.  The extension ".png" is added if
// name has no extension.
func (c *GGCanvas) Save(name string) error {
	if c.err != nil {
		return c.err
	}
	name = withExt(name, ".png")
	if err := c.dc.SavePNG(name); err != nil {
		return err
	}
	Logger().Info("canvas saved", "file", name, "backend", "gg")
	return nil
}

// Close releases the resources held by the gg context.
func (c *GGCanvas) Close() error {
	return c.dc.Close()
}
