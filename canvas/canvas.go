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
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ribbon/raster"
)

// Canvas is a [Surface] backed by an RGBA image.
//
// With a scale factor s > 1, drawing happens on an image s times the
// nominal size, which is reduced when the image is read.
type Canvas struct {
	drawState

	width, height int
	scale         int

	img *image.RGBA // device pixels, width*scale × height*scale
	r   *raster.Rasteriser

	// colour being painted by emit, premultiplied, in [0, 0xffff]
	sr, sg, sb, sa float32
}

var _ Surface = (*Canvas)(nil)

// NewCanvas returns a transparent canvas of the given size.
// Scale values below 1 are treated as 1.
func NewCanvas(width, height, scale int) *Canvas {
	scale = max(scale, 1)
	w, h := width*scale, height*scale
	r := raster.NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})
	r.CTM = matrix.Matrix{float64(scale), 0, 0, float64(scale), 0, 0}
	return &Canvas{
		drawState: newDrawState(),
		width:     width,
		height:    height,
		scale:     scale,
		img:       image.NewRGBA(image.Rect(0, 0, w, h)),
		r:         r,
	}
}

// Bounds returns the nominal size of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

func (c *Canvas) Background(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) EndShape() {
	if p := c.takeShape(); p != nil {
		c.stroke(p)
	}
}

func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c.stroke((&path.Data{}).
		MoveTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x2, Y: y2}))
}

// Point draws a dot of the current stroke weight.  As with any zero-length
// line, nothing is drawn unless the cap style is round.
func (c *Canvas) Point(x, y float64) {
	pt := vec.Vec2{X: x, Y: y}
	c.stroke((&path.Data{}).MoveTo(pt).LineTo(pt))
}

func (c *Canvas) stroke(p *path.Data) {
	if c.pen.weight <= 0 || c.pen.colour.A == 0 {
		return
	}
	c.r.Width = c.pen.weight
	c.r.Cap = c.pen.cap
	c.r.Join = c.pen.join

	r, g, b, a := c.pen.colour.RGBA()
	c.sr, c.sg, c.sb, c.sa = float32(r), float32(g), float32(b), float32(a)
	c.r.Stroke(p, c.emit)
}

// emit composites one row of coverage onto the image, using the
// source-over operator.
func (c *Canvas) emit(y, xMin int, coverage []float32) {
	row := c.img.Pix[c.img.PixOffset(xMin, y):]
	for i, cov := range coverage {
		if cov == 0 {
			continue
		}
		k := 1 - cov*c.sa/0xffff
		px := row[4*i : 4*i+4 : 4*i+4]
		px[0] = blend(px[0], c.sr*cov, k)
		px[1] = blend(px[1], c.sg*cov, k)
		px[2] = blend(px[2], c.sb*cov, k)
		px[3] = blend(px[3], c.sa*cov, k)
	}
}

// blend returns src + k*dst, with src in [0, 0xffff] and dst in [0, 255].
func blend(dst uint8, src, k float32) uint8 {
	v := src/0x101 + k*float32(dst)
	return uint8(min(max(v+0.5, 0), 255))
}

// Image returns the canvas contents at the nominal size.  For scale 1 the
// returned image shares memory with the canvas.
func (c *Canvas) Image() *image.RGBA {
	if c.scale == 1 {
		return c.img
	}
	dst := image.NewRGBA(c.Bounds())
	draw.CatmullRom.Scale(dst, dst.Bounds(), c.img, c.img.Bounds(), draw.Src, nil)
	return dst
}

// EncodePNG writes the canvas contents to w in PNG format.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// Save writes the canvas as a PNG file.  The extension ".png" is added if
// name has no extension.
func (c *Canvas) Save(name string) (err error) {
	if c.err != nil {
		return c.err
	}
	name = withExt(name, ".png")

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := c.EncodePNG(f); err != nil {
		return err
	}
	Logger().Info("canvas saved", "file", name, "width", c.width, "height", c.height)
	return nil
}
