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

import (
	"math"
	"testing"
)

func TestCatmullEndpoints(t *testing.T) {
	for _, k := range []float64{-0.5, 0, 0.3, 1} {
		s := Catmull{Tightness: k}
		if got := s.Point(1, 2, 7, 3, 0); math.Abs(got-2) > 1e-12 {
			t.Errorf("tightness %g: Point(t=0) = %g, want 2", k, got)
		}
		if got := s.Point(1, 2, 7, 3, 1); math.Abs(got-7) > 1e-12 {
			t.Errorf("tightness %g: Point(t=1) = %g, want 7", k, got)
		}
	}
}

// TestTangentAtZero checks that the tangent at the segment start ignores
// the second control value.
func TestTangentAtZero(t *testing.T) {
	for _, b := range []float64{-100, 0, 3, 1e6} {
		got := CurveTangent(2, b, 10, 50, 0)
		if got != 4 {
			t.Errorf("b=%g: got %g, want 4", b, got)
		}
	}
	if got := (Catmull{Tightness: 0.5}).Tangent(2, 0, 10, 0, 0); got != 2 {
		t.Errorf("tightness 0.5: got %g, want 2", got)
	}
}

// TestTangentIsDerivative compares Tangent to a central difference of Point.
func TestTangentIsDerivative(t *testing.T) {
	const h = 1e-6
	s := Catmull{Tightness: 0.2}
	for _, u := range []float64{0.1, 0.25, 0.5, 0.9} {
		numeric := (s.Point(-3, 1, 4, 10, u+h) - s.Point(-3, 1, 4, 10, u-h)) / (2 * h)
		exact := s.Tangent(-3, 1, 4, 10, u)
		if math.Abs(numeric-exact) > 1e-5 {
			t.Errorf("t=%g: numeric %g, exact %g", u, numeric, exact)
		}
	}
}

// TestBezierControls checks that the cubic Bézier built from the control
// values traces the same curve as the spline segment.
func TestBezierControls(t *testing.T) {
	a, b, c, d := 5.0, -1.0, 8.0, 2.0
	for _, k := range []float64{0, 0.4} {
		s := Catmull{Tightness: k}
		c1, c2 := s.BezierControls(a, b, c, d)
		for _, u := range []float64{0, 0.2, 0.5, 0.7, 1} {
			v := 1 - u
			bez := v*v*v*b + 3*v*v*u*c1 + 3*v*u*u*c2 + u*u*u*c
			if want := s.Point(a, b, c, d, u); math.Abs(bez-want) > 1e-12 {
				t.Errorf("tightness %g, t=%g: bezier %g, spline %g", k, u, bez, want)
			}
		}
	}
}
