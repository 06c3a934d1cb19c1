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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ribbon"
)

// curvePath converts spline vertices into cubic Bézier segments.  The
// result runs from v[1] to v[len(v)-2].  Fewer than four vertices give
// nil.
func curvePath(v []vec.Vec2, s ribbon.Catmull) *path.Data {
	if len(v) < 4 {
		return nil
	}

	p := &path.Data{}
	p.MoveTo(v[1])
	for i := 1; i+2 < len(v); i++ {
		a, b, c, d := v[i-1], v[i], v[i+1], v[i+2]
		x1, x2 := s.BezierControls(a.X, b.X, c.X, d.X)
		y1, y2 := s.BezierControls(a.Y, b.Y, c.Y, d.Y)
		p.CubeTo(vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2}, c)
	}
	return p
}

// forEachSegment calls the given functions for the commands of p.
// Only move, line and cubic commands are expected.
func forEachSegment(p *path.Data, moveTo, lineTo func(vec.Vec2), cubeTo func(c1, c2, end vec.Vec2)) {
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			moveTo(p.Coords[k])
			k++
		case path.CmdLineTo:
			lineTo(p.Coords[k])
			k++
		case path.CmdQuadTo:
			// not produced by this package
			k += 2
		case path.CmdCubeTo:
			cubeTo(p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			k += 3
		}
	}
}
