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

// Package canvas provides drawing surfaces with a small immediate-mode
// API in the style of Processing sketches.
//
// Coordinates have the origin in the top-left corner with y pointing down.
// Shapes are only ever stroked, never filled.  Curves are given as
// Catmull-Rom vertices: a shape with vertices v0, ..., vn draws the
// spline from v1 to v(n-1), so that the outer vertices only set the
// direction at the ends.
//
// Three surfaces are available: [Canvas] renders into an RGBA image using
// package raster, [GGCanvas] uses the gogpu/gg software renderer, and
// [PDFCanvas] writes vector output.
package canvas

import (
	"errors"
	"image/color"
	"path/filepath"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/ribbon"
)

// Surface is a drawing target.
type Surface interface {
	// Background paints the whole surface in the colour c.
	Background(c color.Color)

	// Stroke sets the colour for lines, points and shapes.
	Stroke(c color.Color)

	// StrokeWeight sets the line width.
	StrokeWeight(w float64)

	// Push saves the current drawing style, Pop restores it.
	Push()
	Pop()

	// BeginShape starts collecting curve vertices, EndShape strokes the
	// resulting spline.
	BeginShape()
	CurveVertex(x, y float64)
	EndShape()

	Line(x1, y1, x2, y2 float64)
	Point(x, y float64)

	// CurveTangent evaluates the derivative of the surface's spline
	// segment with control values a, b, c, d at t.  It can be passed to
	// ribbon.Build.
	CurveTangent(a, b, c, d, t float64) float64

	// Save writes the surface to a file.  A default extension is
	// appended if name has none.  Save reports the first error which
	// occurred while drawing.
	Save(name string) error
}

var (
	errUnbalancedPop = errors.New("canvas: Pop without matching Push")
	errNested        = errors.New("canvas: BeginShape inside a shape")
	errNoShape       = errors.New("canvas: vertex outside of a shape")
)

// pen is the part of the drawing state saved by Push.
type pen struct {
	colour color.NRGBA
	weight float64
	cap    graphics.LineCapStyle
	join   graphics.LineJoinStyle
}

// defaultPen matches the Processing defaults: black lines of width 1,
// with round caps and miter joins.
var defaultPen = pen{
	colour: color.NRGBA{A: 255},
	weight: 1,
	cap:    graphics.LineCapRound,
	join:   graphics.LineJoinMiter,
}

// drawState implements the surface-independent part of [Surface].
type drawState struct {
	pen   pen
	saved []pen

	spline   ribbon.Catmull
	vertices []vec.Vec2
	inShape  bool

	err error
}

func newDrawState() drawState {
	return drawState{pen: defaultPen}
}

func (s *drawState) Stroke(c color.Color) {
	s.pen.colour = color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (s *drawState) StrokeWeight(w float64) {
	s.pen.weight = w
}

// StrokeCap sets the shape of line ends and points.
func (s *drawState) StrokeCap(c graphics.LineCapStyle) {
	s.pen.cap = c
}

// StrokeJoin sets the shape of corners.
func (s *drawState) StrokeJoin(j graphics.LineJoinStyle) {
	s.pen.join = j
}

// CurveTightness changes the spline used by CurveVertex and
// CurveTangent.  Tightness 0, the default, gives Catmull-Rom splines.
func (s *drawState) CurveTightness(k float64) {
	s.spline.Tightness = k
}

func (s *drawState) Push() {
	s.saved = append(s.saved, s.pen)
}

func (s *drawState) Pop() {
	n := len(s.saved)
	if n == 0 {
		s.fail(errUnbalancedPop)
		return
	}
	s.pen = s.saved[n-1]
	s.saved = s.saved[:n-1]
}

func (s *drawState) BeginShape() {
	if s.inShape {
		s.fail(errNested)
	}
	s.vertices = s.vertices[:0]
	s.inShape = true
}

func (s *drawState) CurveVertex(x, y float64) {
	if !s.inShape {
		s.fail(errNoShape)
		return
	}
	s.vertices = append(s.vertices, vec.Vec2{X: x, Y: y})
}

// takeShape ends the current shape and returns its path, or nil if there
// is nothing to draw.
func (s *drawState) takeShape() *path.Data {
	if !s.inShape {
		s.fail(errNoShape)
		return nil
	}
	s.inShape = false
	return curvePath(s.vertices, s.spline)
}

func (s *drawState) CurveTangent(a, b, c, d, t float64) float64 {
	return s.spline.Tangent(a, b, c, d, t)
}

// Err returns the first error which occurred while drawing.
func (s *drawState) Err() error {
	return s.err
}

// fail records err, unless an earlier error is pending.
func (s *drawState) fail(err error) {
	Logger().Warn("drawing error", "error", err)
	if s.err == nil {
		s.err = err
	}
}

// withExt appends ext to name, unless name already has an extension.
func withExt(name, ext string) string {
	if filepath.Ext(name) == "" {
		return name + ext
	}
	return name
}
