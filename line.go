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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Ribbon pairs a point sequence with its edge pairs, index by index.
//
// A Ribbon is rebuilt, never edited: SetPoints replaces both slices.
type Ribbon struct {
	Points []PressurePoint
	Edges  []EdgePair

	builder Builder
}

// New computes the ribbon for points.  A nil tangent means [CurveTangent].
func New(points []PressurePoint, tangent TangentFunc) (*Ribbon, error) {
	return NewWithBuilder(points, Builder{Tangent: tangent})
}

// NewWithBuilder computes the ribbon for points using b.
func NewWithBuilder(points []PressurePoint, b Builder) (*Ribbon, error) {
	r := &Ribbon{builder: b}
	if err := r.SetPoints(points); err != nil {
		return nil, err
	}
	return r, nil
}

// SetPoints replaces the point sequence and recomputes all edges.
// The ribbon keeps a copy of points.  On error the ribbon is left
// unchanged.
func (r *Ribbon) SetPoints(points []PressurePoint) error {
	edges, err := r.builder.Build(points)
	if err != nil {
		return err
	}
	r.Points = slices.Clone(points)
	r.Edges = edges
	return nil
}

// Len returns the number of points.
func (r *Ribbon) Len() int {
	return len(r.Points)
}

// Left returns the left boundary as a polyline.
func (r *Ribbon) Left() []vec.Vec2 {
	res := make([]vec.Vec2, len(r.Edges))
	for i, e := range r.Edges {
		res[i] = e.Left
	}
	return res
}

// Right returns the right boundary as a polyline.
func (r *Ribbon) Right() []vec.Vec2 {
	res := make([]vec.Vec2, len(r.Edges))
	for i, e := range r.Edges {
		res[i] = e.Right
	}
	return res
}

// Centre returns the point positions as a polyline.
func (r *Ribbon) Centre() []vec.Vec2 {
	res := make([]vec.Vec2, len(r.Points))
	for i, p := range r.Points {
		res[i] = p.Pos()
	}
	return res
}
