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

package sketch

import (
	"image/color"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ribbon"
	"seehuhn.de/go/ribbon/canvas"
)

// Style holds the colours used for drawing a [Line].
type Style struct {
	Left, Right color.Color // ribbon edges
	Path        color.Color // debug: spline through the points
	Points      color.Color // debug: point markers
	Width       color.Color // debug: width connectors
}

// DefaultStyle is the standard colour scheme: blue-ish left edge, orange right edge.
var DefaultStyle = Style{
	Left:   color.RGBA{R: 100, G: 100, B: 220, A: 255},
	Right:  color.RGBA{R: 230, G: 130, B: 100, A: 255},
	Path:   color.Black,
	Points: color.Black,
	Width:  color.RGBA{R: 255, G: 100, B: 100, A: 255},
}

// Line is a ribbon together with the code to draw it.
type Line struct {
	Style Style

	r *ribbon.Ribbon
}

// NewLine computes the ribbon through points.  The tangent is normally
// the CurveTangent method of the surface the line is drawn on.
func NewLine(points []ribbon.PressurePoint, tangent ribbon.TangentFunc) (*Line, error) {
	return NewLineWithBuilder(points, ribbon.Builder{Tangent: tangent})
}

// NewLineWithBuilder is like [NewLine], but allows to set the width scale.
func NewLineWithBuilder(points []ribbon.PressurePoint, b ribbon.Builder) (*Line, error) {
	r, err := ribbon.NewWithBuilder(points, b)
	if err != nil {
		return nil, err
	}
	Logger().Debug("line created", "points", len(points))
	return &Line{Style: DefaultStyle, r: r}, nil
}

// SetPoints replaces the points and recomputes the ribbon.
func (l *Line) SetPoints(points []ribbon.PressurePoint) error {
	return l.r.SetPoints(points)
}

// Ribbon returns the current points and edges.
func (l *Line) Ribbon() *ribbon.Ribbon {
	return l.r
}

// Draw strokes the left and right edge of the ribbon as splines.
func (l *Line) Draw(s canvas.Surface) {
	s.Push()
	s.StrokeWeight(1)
	s.Stroke(l.Style.Left)
	curve(s, l.r.Left())
	s.Stroke(l.Style.Right)
	curve(s, l.r.Right())
	s.Pop()
}

// DrawDebug draws the spline through the points, the points themselves
// and the connectors from every point to its two edge points.
func (l *Line) DrawDebug(s canvas.Surface) {
	s.Push()
	s.StrokeWeight(1)
	s.Stroke(l.Style.Path)
	curve(s, l.r.Centre())
	s.Pop()

	s.Push()
	s.StrokeWeight(5)
	s.Stroke(l.Style.Points)
	for _, p := range l.r.Points {
		s.Point(p.X, p.Y)
	}
	s.Pop()

	s.Push()
	s.StrokeWeight(2)
	s.Stroke(l.Style.Width)
	for i, e := range l.r.Edges {
		p := l.r.Points[i]
		s.Line(p.X, p.Y, e.Left.X, e.Left.Y)
		s.Line(p.X, p.Y, e.Right.X, e.Right.Y)
	}
	s.Pop()
}

// curve draws a spline through all of pts.  The end points are repeated,
// so that the curve reaches them.
func curve(s canvas.Surface, pts []vec.Vec2) {
	n := len(pts)
	s.BeginShape()
	s.CurveVertex(pts[0].X, pts[0].Y)
	for _, p := range pts {
		s.CurveVertex(p.X, p.Y)
	}
	s.CurveVertex(pts[n-1].X, pts[n-1].Y)
	s.EndShape()
}
