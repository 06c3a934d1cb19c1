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

// Package raster converts vector paths into anti-aliased pixel coverage.
//
// Coverage is computed exactly from the signed area of the path inside
// every pixel, using the nonzero winding rule.  Strokes are converted into
// outline polygons first and then filled.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one pixel row.  coverage[i] belongs
// to pixel (xMin+i, y) and lies in [0, 1].  The slice is only valid for
// the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates, oriented top to bottom.
type edge struct {
	x0         float64 // x at yMin
	yMin, yMax float64
	dxdy       float64 // inverse slope
	dir        float32 // +1 if the original segment pointed down, -1 otherwise
}

// xAt returns the x-coordinate of the edge at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.yMin)
}

// Rasteriser turns paths into coverage values.  One instance can be reused
// for many paths; internal buffers grow as needed and are kept between
// calls.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip limits the output, in device coordinates.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments used to approximate it.  Must be positive.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	// Cap is the shape used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the shape used at corners.
	Join graphics.LineJoinStyle

	// MiterLimit converts miter joins to bevel joins when the ratio of
	// miter length to stroke width exceeds this value.  Must be >= 1.
	MiterLimit float64

	cover  []float32 // per-pixel change of winding, reused as output
	area   []float32 // per-pixel partial area
	edges  []edge
	active []int // indices into edges, for the current scanline

	box      rect.Rect // device-space bounding box of edges
	boxEmpty bool

	// stroke state
	segs     []segment
	rev      []segment
	subpaths []subpath
	dots     []vec.Vec2 // zero-length subpaths
	outline  []vec.Vec2 // vertices of all outline polygons
	rings    []int      // start index of every polygon in outline
}

// NewRasteriser returns a Rasteriser for the given clip rectangle.
// All other parameters are set to the PDF defaults.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is retained.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
}

// Fill fills p using the nonzero winding rule.  Open subpaths are closed
// implicitly.
func (r *Rasteriser) Fill(p *path.Data, emit EmitFunc) {
	r.beginEdges()
	r.walk(p, r.addEdge, func(start, current vec.Vec2, closed, _ bool) {
		if !closed && current != start {
			r.addEdge(current, start)
		}
	})
	r.scan(emit)
}

// walk flattens p into line segments in user space.  Every segment is
// passed to line.  At the end of every subpath, done is called with the
// start and current point, whether the subpath was closed with CmdClose,
// and whether any drawing command occurred in the subpath.
// Closing segments are passed to line before done is called.
func (r *Rasteriser) walk(p *path.Data, line func(a, b vec.Vec2), done func(start, current vec.Vec2, closed, drawn bool)) {
	var start, current vec.Vec2
	open := false
	drawn := false

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				done(start, current, false, drawn)
			}
			start = p.Coords[k]
			current = start
			open = true
			drawn = false
			k++

		case path.CmdLineTo:
			if open {
				line(current, p.Coords[k])
				current = p.Coords[k]
				drawn = true
			}
			k++

		case path.CmdQuadTo:
			if open {
				r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], line)
				current = p.Coords[k+1]
				drawn = true
			}
			k += 2

		case path.CmdCubeTo:
			if open {
				r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], line)
				current = p.Coords[k+2]
				drawn = true
			}
			k += 3

		case path.CmdClose:
			if open {
				if current != start {
					line(current, start)
				}
				done(start, current, true, drawn)
				current = start
				open = false
			}
		}
	}
	if open {
		done(start, current, false, drawn)
	}
}

// transformLinear applies the linear part of the CTM to v.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments.  The number of segments is chosen from the device-space
// distance between the curve and its chord.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, line func(a, b vec.Vec2)) {
	dev := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		line(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier curve p0, ..., p3 by line
// segments, using Wang's bound for the number of segments.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, line func(a, b vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if k := math.Sqrt(3 * m / (4 * r.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		line(prev, pt)
		prev = pt
	}
}

// beginEdges clears the edge list.
func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.boxEmpty = true
}

// addEdge transforms the segment a→b to device space and appends it to the
// edge list.  Horizontal edges do not contribute to coverage and are
// dropped.  Dropping a non-finite edge may leave a polygon open, which
// only affects the rows the polygon touches.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	// non-finite input (for example from NaN pressure values) is ignored
	if s := x0 + y0 + x1 + y1; math.IsNaN(s) || math.IsInf(s, 0) {
		return
	}

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}

	e := edge{dir: 1, dxdy: (x1 - x0) / dy}
	if dy > 0 {
		e.x0, e.yMin, e.yMax = x0, y0, y1
	} else {
		e.x0, e.yMin, e.yMax = x1, y1, y0
		e.dir = -1
	}
	r.edges = append(r.edges, e)

	eb := rect.Rect{LLx: min(x0, x1), LLy: e.yMin, URx: max(x0, x1), URy: e.yMax}
	if r.boxEmpty {
		r.box = eb
		r.boxEmpty = false
	} else {
		r.box.LLx = min(r.box.LLx, eb.LLx)
		r.box.LLy = min(r.box.LLy, eb.LLy)
		r.box.URx = max(r.box.URx, eb.URx)
		r.box.URy = max(r.box.URy, eb.URy)
	}
}

// bounds returns the pixel range touched by the edge list, clipped to the
// clip rectangle.
func (r *Rasteriser) bounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if r.boxEmpty {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.box.LLx)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.box.URx))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.box.LLy)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.box.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Every pixel keeps two accumulators:
//
//	cover: the signed height of all edge pieces inside the pixel column
//	area:  the same, weighted by the fraction of the pixel right of the edge
//
// Walking a row from left to right, the winding of pixel i is
// sum(cover[:i]) + area[i].  Pixels left of the clip region are folded
// into pixel 0 with full weight.

// scan sweeps the edge list from top to bottom and emits the coverage of
// every non-empty row.
func (r *Rasteriser) scan(emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.bounds()
	if !ok {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin, b.yMin)
	})

	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top, bottom := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].yMin < bottom {
			if r.edges[next].yMax > top {
				r.active = append(r.active, next)
			}
			next++
		}

		// drop edges which ended above this row
		keep := r.active[:0]
		for _, i := range r.active {
			if r.edges[i].yMax > top {
				keep = append(keep, i)
			}
		}
		r.active = keep
		if len(r.active) == 0 {
			if next == len(r.edges) {
				break
			}
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], top, bottom, xMin)
		}
		integrateNonZero(r.cover, r.area)

		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the part of e between the heights top and bottom to the
// accumulators.  Pixel column xMin corresponds to index 0.
func (r *Rasteriser) accumulate(e *edge, top, bottom float64, xMin int) {
	top = max(top, e.yMin)
	bottom = min(bottom, e.yMax)
	h := bottom - top
	if h <= 0 {
		return
	}

	xa, xb := e.xAt(top), e.xAt(bottom)
	lo, hi := min(xa, xb), max(xa, xb)
	colLo := int(math.Floor(lo))
	colHi := int(math.Floor(hi))

	if colLo == colHi {
		r.deposit(colLo-xMin, e.dir*float32(h), (lo+hi)/2-float64(colLo))
		return
	}

	// split the piece at the column boundaries; each part gets the share
	// of the height which matches its share of the horizontal extent
	dx := hi - lo
	for col := colLo; col <= colHi; col++ {
		left := max(lo, float64(col))
		right := min(hi, float64(col+1))
		if right <= left {
			continue
		}
		part := h * (right - left) / dx
		r.deposit(col-xMin, e.dir*float32(part), (left+right)/2-float64(col))
	}
}

// deposit records a piece of edge with signed height c in column idx.
// frac is the mean horizontal position of the piece inside the column.
func (r *Rasteriser) deposit(idx int, c float32, frac float64) {
	switch {
	case idx < 0:
		r.cover[0] += c
		r.area[0] += c
	case idx < len(r.cover):
		r.cover[idx] += c
		r.area[idx] += c * float32(1-frac)
	}
}

// integrateNonZero turns the accumulators into coverage values, in place
// in cover.
func integrateNonZero(cover, area []float32) {
	var winding float32
	for i := range cover {
		raw := winding + area[i]
		winding += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, together with its offset.  If all values are zero, nil
// is returned.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the default curve tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the PDF default.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which still contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the shortest stroke segment kept.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold bounds |sin θ| for corners which need no join.
	collinearityThreshold = 1e-6
)
