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

package ribbon

// Catmull describes a cardinal spline through a sequence of control values.
// Each segment runs from b to c; a and d are the neighbouring values which
// determine the slopes at the segment ends.
//
// Tightness 0 gives a Catmull-Rom spline, tightness 1 gives straight lines.
type Catmull struct {
	Tightness float64
}

// Point evaluates the segment at t ∈ [0, 1].
// Point(a, b, c, d, 0) == b and Point(a, b, c, d, 1) == c.
func (s Catmull) Point(a, b, c, d, t float64) float64 {
	k := s.Tightness
	t2 := t * t
	t3 := t2 * t

	f1 := (k-1)/2*t3 + (1-k)*t2 + (k-1)/2*t
	f2 := (k+3)/2*t3 + (-5-k)/2*t2 + 1
	f3 := (-3-k)/2*t3 + (k+2)*t2 + (1-k)/2*t
	f4 := (1-k)/2*t3 + (k-1)/2*t2

	return a*f1 + b*f2 + c*f3 + d*f4
}

// Tangent evaluates the derivative of the segment with respect to t.
// At t=0 this is (1-k)(c-a)/2, where k is the tightness.
func (s Catmull) Tangent(a, b, c, d, t float64) float64 {
	k := s.Tightness
	tt3 := 3 * t * t
	t2 := 2 * t

	f1 := (k-1)/2*tt3 + (1-k)*t2 + (k-1)/2
	f2 := (k+3)/2*tt3 + (-5-k)/2*t2
	f3 := (-3-k)/2*tt3 + (k+2)*t2 + (1-k)/2
	f4 := (1-k)/2*tt3 + (k-1)/2*t2

	return a*f1 + b*f2 + c*f3 + d*f4
}

// BezierControls returns the inner control points of the cubic Bézier
// segment which coincides with the spline segment from b to c.
func (s Catmull) BezierControls(a, b, c, d float64) (c1, c2 float64) {
	w := (1 - s.Tightness) / 6
	return b + w*(c-a), c - w*(d-b)
}

// CurvePoint evaluates a Catmull-Rom segment (tightness 0) at t.
func CurvePoint(a, b, c, d, t float64) float64 {
	return Catmull{}.Point(a, b, c, d, t)
}

// CurveTangent evaluates the derivative of a Catmull-Rom segment
// (tightness 0) at t.  It has the signature of a [TangentFunc].
func CurveTangent(a, b, c, d, t float64) float64 {
	return Catmull{}.Tangent(a, b, c, d, t)
}
