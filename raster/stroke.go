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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a flattened piece of a stroked path, in user space.
type segment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent A→B
	N    vec.Vec2 // unit normal, T rotated by +90°
}

// reversed returns the segment traversed from B to A.
// The normal flips together with the tangent.
func (s segment) reversed() segment {
	return segment{A: s.B, B: s.A, T: s.T.Mul(-1), N: s.N.Mul(-1)}
}

// subpath is a range of r.segs.
type subpath struct {
	start, end int
	closed     bool
}

// Stroke paints the outline of p using Width, Cap, Join and MiterLimit.
//
// Open subpaths are outlined by a single polygon: the +N offset forwards,
// the end cap, the -N offset backwards and the start cap.  Closed subpaths
// become two rings, one on each side.  Subpaths of zero length are drawn as
// dots when round caps are selected.  All polygons are filled together with
// the nonzero winding rule, so that overlaps are painted only once.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	r.flatten(p)

	r.outline = r.outline[:0]
	r.rings = r.rings[:0]
	d := r.Width / 2

	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			r.beginRing()
			r.outline = append(r.outline, pt.Add(vec.Vec2{X: d}))
			r.addArc(pt, d, vec.Vec2{X: 1}, 2*math.Pi)
		}
	}

	for _, sp := range r.subpaths {
		segs := r.segs[sp.start:sp.end]
		r.rev = r.rev[:0]
		for i := len(segs) - 1; i >= 0; i-- {
			r.rev = append(r.rev, segs[i].reversed())
		}

		if sp.closed {
			r.beginRing()
			r.addOffset(segs, d, true)
			r.beginRing()
			r.addOffset(r.rev, d, true)
			continue
		}

		first, last := segs[0], segs[len(segs)-1]
		r.beginRing()
		r.addOffset(segs, d, false)
		r.addCap(last.B, last.T, d)
		r.addOffset(r.rev, d, false)
		r.addCap(first.A, first.T.Mul(-1), d)
	}

	r.fillRings(emit)
}

// flatten converts p into line segments, grouped by subpath.
func (r *Rasteriser) flatten(p *path.Data) {
	r.segs = r.segs[:0]
	r.subpaths = r.subpaths[:0]
	r.dots = r.dots[:0]

	start := 0
	r.walk(p, r.addSegment, func(pt, _ vec.Vec2, closed, drawn bool) {
		switch {
		case len(r.segs) > start:
			r.subpaths = append(r.subpaths, subpath{start: start, end: len(r.segs), closed: closed})
		case drawn:
			r.dots = append(r.dots, pt)
		}
		start = len(r.segs)
	})
}

// addSegment appends the segment a→b unless it is too short to have a
// direction.
func (r *Rasteriser) addSegment(a, b vec.Vec2) {
	v := b.Sub(a)
	l := v.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := v.Mul(1 / l)
	r.segs = append(r.segs, segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// beginRing starts a new polygon in the outline buffer.
func (r *Rasteriser) beginRing() {
	r.rings = append(r.rings, len(r.outline))
}

// addOffset appends the offset curve at distance d on the +N side of segs,
// with joins at all corners.  For closed paths the corner between the last
// and first segment is included and no end points are added.
func (r *Rasteriser) addOffset(segs []segment, d float64, closed bool) {
	n := len(segs)
	if !closed {
		r.outline = append(r.outline, segs[0].A.Add(segs[0].N.Mul(d)))
	}
	corners := n - 1
	if closed {
		corners = n
	}
	for i := range corners {
		r.addCorner(segs[i], segs[(i+1)%n], d)
	}
	if !closed {
		r.outline = append(r.outline, segs[n-1].B.Add(segs[n-1].N.Mul(d)))
	}
}

// addCorner appends the +N side outline around the vertex where s ends
// and next begins.
func (r *Rasteriser) addCorner(s, next segment, d float64) {
	p := s.B
	p1 := p.Add(s.N.Mul(d))
	p2 := p.Add(next.N.Mul(d))

	sinTheta := s.T.X*next.T.Y - s.T.Y*next.T.X
	cosTheta := s.T.Dot(next.T)

	switch {
	case math.Abs(sinTheta) < collinearityThreshold && cosTheta > 0:
		r.outline = append(r.outline, p1)

	case math.Abs(sinTheta) < collinearityThreshold:
		// the path doubles back on itself
		r.outline = append(r.outline, p1)
		r.addCap(p, s.T, d)
		r.outline = append(r.outline, p2)

	case sinTheta > 0:
		// The path turns towards +N, so this is the inner side.  Going
		// through the vertex keeps the winding number positive where the
		// two offset lines overlap.
		r.outline = append(r.outline, p1, p, p2)

	default:
		r.outline = append(r.outline, p1)
		r.addJoin(p, s, next, d, sinTheta, cosTheta)
		r.outline = append(r.outline, p2)
	}
}

// addJoin appends the points strictly between the two outer offset points
// at a corner.
func (r *Rasteriser) addJoin(p vec.Vec2, s, next segment, d, sinTheta, cosTheta float64) {
	switch r.Join {
	case graphics.LineJoinRound:
		r.addArc(p, d, s.N, math.Atan2(sinTheta, cosTheta))

	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/cos(θ/2),
		// where θ is the turning angle.
		cosHalf := math.Sqrt((1 + cosTheta) / 2)
		const eps = 1e-10
		if cosHalf <= 0 || 1/cosHalf > r.MiterLimit+eps {
			return // bevel
		}
		bisector := s.N.Add(next.N)
		l := bisector.Length()
		if l < zeroLengthThreshold {
			return
		}
		r.outline = append(r.outline, p.Add(bisector.Mul(d/(l*cosHalf))))
	}
	// bevel: the outer offset points are joined directly
}

// addCap appends the cap at p, where t is the outward tangent.  The outline
// arrives at p+N·d and continues from p-N·d, with N = t rotated by +90°.
func (r *Rasteriser) addCap(p, t vec.Vec2, d float64) {
	n := vec.Vec2{X: -t.Y, Y: t.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := p.Add(t.Mul(d))
		r.outline = append(r.outline, ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)))
	case graphics.LineCapRound:
		// sweeping by -π from N passes through t
		r.addArc(p, d, n, -math.Pi)
	}
}

// addArc appends the interior vertices of a circular arc around center.
// The arc starts in direction dir (a unit vector) and sweeps by the given
// angle, counter-clockwise for positive values.  Neither end point is
// added.
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, dir vec.Vec2, sweep float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length(),
	)

	// A chord spanning angle φ deviates from the circle by r·(1-cos(φ/2)).
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 {
			n = max(n, int(math.Ceil(math.Abs(sweep)/step)))
		}
	}

	dt := sweep / float64(n)
	for i := 1; i < n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		v := vec.Vec2{
			X: dir.X*cos - dir.Y*sin,
			Y: dir.X*sin + dir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(v.Mul(radius)))
	}
}

// fillRings fills all outline polygons as one shape.
func (r *Rasteriser) fillRings(emit EmitFunc) {
	r.beginEdges()
	for i, start := range r.rings {
		end := len(r.outline)
		if i+1 < len(r.rings) {
			end = r.rings[i+1]
		}
		ring := r.outline[start:end]
		if len(ring) < 3 {
			continue
		}
		for j := 1; j < len(ring); j++ {
			r.addEdge(ring[j-1], ring[j])
		}
		r.addEdge(ring[len(ring)-1], ring[0])
	}
	r.scan(emit)
}
