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

// Package ribbon computes the two boundary curves of a variable-width
// ribbon drawn through a sequence of pressure-weighted points.
//
// For every interior point the local direction of the curve is obtained
// from a spline tangent primitive, and the point is offset perpendicular
// to this direction by |pressure| times a scale factor on both sides.
// The first and last points form zero-width caps.
package ribbon

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// DefaultScale is the factor which converts |pressure| into the half-width
// of the ribbon.
const DefaultScale = 10

// ErrInvalidInput is returned when a ribbon is requested for fewer than
// two points.
var ErrInvalidInput = errors.New("ribbon: invalid input")

// PressurePoint is a position together with a signed pressure value.
// The magnitude of the pressure controls the local half-width of the ribbon.
type PressurePoint struct {
	X, Y     float64
	Pressure float64
}

// Pos returns the position of the point.
func (p PressurePoint) Pos() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// EdgePair holds the two boundary points which correspond to one input
// point.
type EdgePair struct {
	Left, Right vec.Vec2
}

// TangentFunc evaluates the derivative of a spline segment with the four
// control values a, b, c, d at parameter t.
//
// [CurveTangent] and [Catmull.Tangent] are implementations.
type TangentFunc func(a, b, c, d, t float64) float64

// Builder computes ribbon edges.
//
// The zero value uses [DefaultScale] and [CurveTangent].
type Builder struct {
	// Scale converts |pressure| to the half-width of the ribbon.
	// Zero means DefaultScale.
	Scale float64

	// Tangent is the spline tangent primitive.
	// Nil means CurveTangent.
	Tangent TangentFunc
}

// Build computes the edge pairs for points, using the default scale.
// If tangent is nil, [CurveTangent] is used.
func Build(points []PressurePoint, tangent TangentFunc) ([]EdgePair, error) {
	b := Builder{Tangent: tangent}
	return b.Build(points)
}

// Build computes one edge pair for every element of points.
// The result has the same length and order as points.
//
// An error wrapping [ErrInvalidInput] is returned if fewer than two points
// are given.  Degenerate geometry is not guarded against: NaN and infinite
// coordinates propagate into the result.
func (b Builder) Build(points []PressurePoint) ([]EdgePair, error) {
	n := len(points)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidInput, n)
	}

	scale := b.Scale
	if scale == 0 {
		scale = DefaultScale
	}
	tangent := b.Tangent
	if tangent == nil {
		tangent = CurveTangent
	}

	res := make([]EdgePair, n)

	first := points[0].Pos()
	res[0] = EdgePair{Left: first, Right: first}

	for i := 1; i < n-1; i++ {
		ctrl1 := points[i-1]
		curr := points[i]
		next := points[i+1]
		ctrl2 := next
		if i+2 < n {
			ctrl2 = points[i+2]
		}

		// The x-component receives curr.Y as its second control value.
		// For Catmull-Rom tangents at t=0 this argument has zero weight.
		tx := tangent(ctrl1.X, curr.Y, next.X, ctrl2.X, 0)
		ty := tangent(ctrl1.Y, curr.Y, next.Y, ctrl2.Y, 0)

		// atan2(0, 0) == 0, so a vanishing tangent gives angle -π/2.
		angle := math.Atan2(ty, tx) - math.Pi/2
		halfWidth := math.Abs(curr.Pressure * scale)

		res[i] = EdgePair{
			Left:  offset(curr, angle, halfWidth),
			Right: offset(curr, angle+math.Pi, halfWidth),
		}
	}

	last := points[n-1].Pos()
	res[n-1] = EdgePair{Left: last, Right: last}

	return res, nil
}

// offset returns the point at distance dist from p in direction angle.
func offset(p PressurePoint, angle, dist float64) vec.Vec2 {
	return vec.Vec2{
		X: math.Cos(angle)*dist + p.X,
		Y: math.Sin(angle)*dist + p.Y,
	}
}
