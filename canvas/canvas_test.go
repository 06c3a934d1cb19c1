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
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/ribbon"
)

var (
	white = color.Gray{Y: 255}
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func TestCurvePath(t *testing.T) {
	v := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 10}, {X: 30, Y: 10}, {X: 40, Y: 0}}

	assert.Nil(t, curvePath(v[:3], ribbon.Catmull{}))

	p := curvePath(v, ribbon.Catmull{})
	require.NotNil(t, p)
	assert.Equal(t, []path.Command{path.CmdMoveTo, path.CmdCubeTo, path.CmdCubeTo}, p.Cmds)
	require.Len(t, p.Coords, 7)
	assert.Equal(t, v[1], p.Coords[0])
	assert.Equal(t, v[2], p.Coords[3])
	assert.Equal(t, v[3], p.Coords[6])

	// first control point: b + (c-a)/6
	assert.InDelta(t, 10+20.0/6, p.Coords[1].X, 1e-12)
	assert.InDelta(t, 10.0/6, p.Coords[1].Y, 1e-12)

	// tightness 1 puts the control points onto the end points
	straight := curvePath(v, ribbon.Catmull{Tightness: 1})
	assert.Equal(t, v[1], straight.Coords[1])
	assert.Equal(t, v[2], straight.Coords[2])
}

func TestCanvasBackground(t *testing.T) {
	c := NewCanvas(4, 3, 1)
	assert.Equal(t, image.Rect(0, 0, 4, 3), c.Image().Bounds())
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(1, 1))

	c.Background(white)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, c.Image().RGBAAt(3, 2))
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(20, 10, 1)
	c.Background(white)
	c.Stroke(black)
	c.StrokeWeight(2)
	c.Line(2, 5, 18, 5)
	require.NoError(t, c.Err())

	img := c.Image()
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(10, 4))
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(10, 5))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(10, 7))

	// round caps extend the line beyond its end points
	assert.Less(t, img.RGBAAt(1, 4).R, uint8(255))
	assert.Equal(t, uint8(255), img.RGBAAt(0, 0).R)
}

func TestCanvasBlending(t *testing.T) {
	c := NewCanvas(10, 10, 1)
	c.Background(white)
	c.Stroke(color.NRGBA{R: 255, A: 128})
	c.StrokeWeight(4)
	c.StrokeCap(graphics.LineCapButt)
	c.Line(0, 5, 10, 5)

	px := c.Image().RGBAAt(5, 5)
	assert.Equal(t, uint8(255), px.R)
	assert.Equal(t, uint8(255), px.A)
	assert.InDelta(t, 127, int(px.G), 1)
	assert.Equal(t, px.G, px.B)
}

func TestCanvasPoint(t *testing.T) {
	c := NewCanvas(20, 20, 1)
	c.Background(white)
	c.StrokeWeight(6)
	c.Point(10, 10)

	img := c.Image()
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(10, 10))
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(9, 9))
	assert.Equal(t, uint8(255), img.RGBAAt(10, 15).R)

	// butt caps draw nothing for zero-length lines
	c.StrokeCap(graphics.LineCapButt)
	c.Point(3, 3)
	assert.Equal(t, uint8(255), img.RGBAAt(3, 3).R)
}

func TestCanvasShape(t *testing.T) {
	c := NewCanvas(50, 30, 1)
	c.Background(white)
	c.StrokeWeight(3)

	c.BeginShape()
	c.CurveVertex(5, 15)
	c.CurveVertex(5, 15)
	c.CurveVertex(45, 15)
	c.CurveVertex(45, 15)
	c.EndShape()
	require.NoError(t, c.Err())

	// the spline between two equal pairs is a straight line
	img := c.Image()
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(25, 15))
	assert.Equal(t, uint8(255), img.RGBAAt(25, 5).R)

	// too few vertices draw nothing
	c.Background(white)
	c.BeginShape()
	c.CurveVertex(5, 15)
	c.CurveVertex(45, 15)
	c.CurveVertex(45, 15)
	c.EndShape()
	assert.Equal(t, uint8(255), img.RGBAAt(25, 15).R)
	assert.NoError(t, c.Err())
}

func TestCanvasPushPop(t *testing.T) {
	c := NewCanvas(10, 10, 1)
	c.Push()
	c.Stroke(red)
	c.StrokeWeight(5)
	c.Push()
	c.StrokeWeight(7)
	c.Pop()
	assert.Equal(t, 5.0, c.pen.weight)
	c.Pop()
	assert.Equal(t, defaultPen, c.pen)
	assert.NoError(t, c.Err())

	c.Pop()
	assert.ErrorIs(t, c.Err(), errUnbalancedPop)
	assert.ErrorIs(t, c.Save(filepath.Join(t.TempDir(), "x")), errUnbalancedPop)
}

func TestCanvasShapeErrors(t *testing.T) {
	c := NewCanvas(10, 10, 1)
	c.CurveVertex(1, 1)
	assert.ErrorIs(t, c.Err(), errNoShape)

	c = NewCanvas(10, 10, 1)
	c.BeginShape()
	c.BeginShape()
	assert.ErrorIs(t, c.Err(), errNested)

	c = NewCanvas(10, 10, 1)
	c.EndShape()
	assert.ErrorIs(t, c.Err(), errNoShape)
}

func TestCurveTangent(t *testing.T) {
	var s Surface = NewCanvas(1, 1, 1)
	assert.Equal(t, ribbon.CurveTangent(1, 2, 7, 3, 0), s.CurveTangent(1, 2, 7, 3, 0))
	assert.Equal(t, ribbon.CurveTangent(1, 2, 7, 3, 0.3), s.CurveTangent(1, 2, 7, 3, 0.3))

	c := NewCanvas(1, 1, 1)
	c.CurveTightness(1)
	assert.Equal(t, 0.0, c.CurveTangent(1, 2, 7, 3, 0))
}

func TestCanvasSupersample(t *testing.T) {
	c := NewCanvas(20, 20, 4)
	c.Background(white)
	c.StrokeWeight(4)
	c.Line(2, 10, 18, 10)

	img := c.Image()
	assert.Equal(t, image.Rect(0, 0, 20, 20), img.Bounds())
	assert.Less(t, img.RGBAAt(10, 10).R, uint8(20))
	assert.Greater(t, img.RGBAAt(10, 3).R, uint8(235))
}

func TestCanvasSave(t *testing.T) {
	dir := t.TempDir()

	c := NewCanvas(30, 20, 1)
	c.Background(white)
	c.Line(0, 0, 30, 20)
	require.NoError(t, c.Save(filepath.Join(dir, "sketch")))

	data, err := os.ReadFile(filepath.Join(dir, "sketch.png"))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 30, 20), img.Bounds())

	// an explicit extension is kept
	require.NoError(t, c.Save(filepath.Join(dir, "frame.image")))
	assert.FileExists(t, filepath.Join(dir, "frame.image"))
}

func TestGGCanvas(t *testing.T) {
	c := NewGGCanvas(40, 20)
	defer func() { assert.NoError(t, c.Close()) }()

	c.Background(white)
	c.StrokeWeight(6)
	c.Line(5, 10, 35, 10)
	c.Point(20, 3)
	require.NoError(t, c.Err())

	img := c.Image()
	assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds())
	r, _, _, _ := img.At(20, 10).RGBA()
	assert.Less(t, r, uint32(0x4000))
	r, _, _, _ = img.At(20, 18).RGBA()
	assert.Greater(t, r, uint32(0xc000))

	dir := t.TempDir()
	require.NoError(t, c.Save(filepath.Join(dir, "gg")))
	assert.FileExists(t, filepath.Join(dir, "gg.png"))
}

func TestPDFCanvas(t *testing.T) {
	c := NewPDFCanvas(100, 50)
	c.Line(0, 0, 10, 10)
	c.Background(white)
	assert.Len(t, c.ops, 1, "background must drop hidden operations")

	c.Stroke(red)
	c.Line(10, 10, 90, 40)
	c.BeginShape()
	for _, x := range []float64{10, 10, 50, 90, 90} {
		c.CurveVertex(x, 25)
	}
	c.EndShape()
	c.Point(50, 10)
	c.StrokeWeight(0)
	c.Point(60, 10)
	require.Len(t, c.ops, 4)
	assert.Equal(t, uint8(255), c.ops[1].pen.colour.R)

	dir := t.TempDir()
	require.NoError(t, c.Save(filepath.Join(dir, "frame")))
	data, err := os.ReadFile(filepath.Join(dir, "frame.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}
