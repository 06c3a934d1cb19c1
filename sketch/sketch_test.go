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
	"bytes"
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/ribbon"
	"seehuhn.de/go/ribbon/canvas"
)

// recorder is a canvas.Surface which logs all calls.
type recorder struct {
	calls  []string
	weight float64
	colour color.Color
	shape  int // vertices in the current shape
	shapes []int
	points []float64 // stroke weight for every Point call
	saved  []string
}

var _ canvas.Surface = (*recorder)(nil)

func (r *recorder) Background(c color.Color) { r.calls = append(r.calls, "background") }
func (r *recorder) Stroke(c color.Color)     { r.colour = c }
func (r *recorder) StrokeWeight(w float64)   { r.weight = w }
func (r *recorder) Push()                    { r.calls = append(r.calls, "push") }
func (r *recorder) Pop()                     { r.calls = append(r.calls, "pop") }
func (r *recorder) BeginShape()              { r.shape = 0 }
func (r *recorder) CurveVertex(x, y float64) { r.shape++ }
func (r *recorder) EndShape() {
	r.shapes = append(r.shapes, r.shape)
	r.calls = append(r.calls, fmt.Sprintf("shape %v", r.colour))
}
func (r *recorder) Line(x1, y1, x2, y2 float64) { r.calls = append(r.calls, "line") }
func (r *recorder) Point(x, y float64) {
	r.points = append(r.points, r.weight)
	r.calls = append(r.calls, "point")
}
func (r *recorder) CurveTangent(a, b, c, d, t float64) float64 {
	return ribbon.CurveTangent(a, b, c, d, t)
}
func (r *recorder) Save(name string) error {
	r.saved = append(r.saved, name)
	return nil
}

func (r *recorder) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

func TestFrameTime(t *testing.T) {
	assert.Equal(t, 0.0, FrameTime(0))
	assert.InDelta(t, math.Pi/6, FrameTime(30), 1e-15)
	assert.InDelta(t, math.Pi, FrameTime(180), 1e-15)
}

func TestPoints(t *testing.T) {
	pts := Points(NumPoints, 0, 123)
	require.Len(t, pts, NumPoints)
	for i, p := range pts {
		assert.Equal(t, float64(i*20+20), p.X)
	}

	// at t=0 the pointer has no influence
	assert.Equal(t, Points(NumPoints, 0, 0), pts)
	assert.InDelta(t, 80, pts[0].Y, 1e-12)
	assert.InDelta(t, 160, pts[3].Y, 1e-12)
	assert.InDelta(t, math.Cos(0.4), pts[0].Pressure, 1e-12)

	moved := Points(NumPoints, 1, 50)
	assert.InDelta(t, math.Sin(1)*80+80, moved[0].Y, 1e-12)
	assert.InDelta(t, math.Cos(0.4+5), moved[0].Pressure, 1e-12)
}

func TestLineDraw(t *testing.T) {
	pts := Points(NumPoints, 0, 0)
	l, err := NewLine(pts, ribbon.CurveTangent)
	require.NoError(t, err)

	r := &recorder{}
	l.Draw(r)

	// both edges, each with the end vertices repeated
	assert.Equal(t, []int{NumPoints + 2, NumPoints + 2}, r.shapes)
	assert.Equal(t, []string{
		"push",
		fmt.Sprintf("shape %v", DefaultStyle.Left),
		fmt.Sprintf("shape %v", DefaultStyle.Right),
		"pop",
	}, r.calls)
	assert.Equal(t, 1.0, r.weight)
}

func TestLineDrawDebug(t *testing.T) {
	l, err := NewLine(Points(NumPoints, FrameTime(20), 300), nil)
	require.NoError(t, err)

	r := &recorder{}
	l.DrawDebug(r)
	assert.Equal(t, []int{NumPoints + 2}, r.shapes)
	assert.Equal(t, NumPoints, r.count("point"))
	assert.Equal(t, 2*NumPoints, r.count("line"))
	assert.Equal(t, r.count("push"), r.count("pop"))
	for _, w := range r.points {
		assert.Equal(t, 5.0, w)
	}
}

func TestLineSetPoints(t *testing.T) {
	l, err := NewLine(Points(NumPoints, 0, 0), nil)
	require.NoError(t, err)

	next := Points(NumPoints, 1, 100)
	require.NoError(t, l.SetPoints(next))
	assert.Equal(t, next, l.Ribbon().Points)

	assert.ErrorIs(t, l.SetPoints(next[:1]), ribbon.ErrInvalidInput)
	assert.Equal(t, next, l.Ribbon().Points)

	_, err = NewLine(nil, nil)
	assert.ErrorIs(t, err, ribbon.ErrInvalidInput)
}

func TestSketchDraw(t *testing.T) {
	r := &recorder{}
	sk := New(r, DefaultOptions())

	assert.Error(t, sk.Draw(1))

	require.NoError(t, sk.Setup())
	require.NotNil(t, sk.Line())
	setup := sk.Line().Ribbon().Points
	assert.Equal(t, Points(NumPoints, 0, 0), setup)

	sk.SetPointer(300)
	require.NoError(t, sk.Draw(45))
	assert.Equal(t, "background", r.calls[0])
	assert.Equal(t, Points(NumPoints, FrameTime(45), 300), sk.Line().Ribbon().Points)
	assert.Equal(t, NumPoints, r.count("point"))
	assert.Equal(t, 45, sk.Frame())

	// without debug overlays only the two edges are drawn
	r2 := &recorder{}
	opts := DefaultOptions()
	opts.Debug = false
	sk2 := New(r2, opts)
	require.NoError(t, sk2.Setup())
	require.NoError(t, sk2.Draw(2))
	assert.Len(t, r2.shapes, 2)
	assert.Zero(t, r2.count("point"))
}

func TestSketchWidthScale(t *testing.T) {
	opts := DefaultOptions()
	opts.WidthScale = 3
	sk := New(&recorder{}, opts)
	require.NoError(t, sk.Setup())

	rb := sk.Line().Ribbon()
	p := rb.Points[4]
	d := rb.Edges[4].Left.Sub(p.Pos()).Length()
	assert.InDelta(t, 3*math.Abs(p.Pressure), d, 1e-9)
}

func TestSketchSetupTooFewPoints(t *testing.T) {
	opts := DefaultOptions()
	opts.NumPoints = 1
	sk := New(&recorder{}, opts)
	assert.ErrorIs(t, sk.Setup(), ribbon.ErrInvalidInput)
}

func TestKeyPressed(t *testing.T) {
	r := &recorder{}
	sk := New(r, DefaultOptions())
	require.NoError(t, sk.Setup())

	require.NoError(t, sk.KeyPressed(81))
	assert.Empty(t, r.saved)

	require.NoError(t, sk.KeyPressed(KeySave))
	assert.Equal(t, []string{"sketch"}, r.saved)
}

func TestSketchOnCanvas(t *testing.T) {
	dir := t.TempDir()
	c := canvas.NewCanvas(600, 600, 1)

	opts := DefaultOptions()
	opts.SaveName = filepath.Join(dir, "sketch")
	sk := New(c, opts)
	require.NoError(t, sk.Setup())
	require.NoError(t, sk.Draw(1))
	require.NoError(t, c.Err())

	// something is drawn at every point
	for _, p := range sk.Line().Ribbon().Points {
		px := c.Image().RGBAAt(int(p.X), int(p.Y))
		assert.NotEqual(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, px, "point %v", p)
	}

	// the far corner stays white
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, c.Image().RGBAAt(590, 590))

	require.NoError(t, sk.KeyPressed(KeySave))
	assert.FileExists(t, filepath.Join(dir, "sketch.png"))
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	ctx := context.Background()
	assert.False(t, Logger().Enabled(ctx, slog.LevelError), "logging is off by default")

	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	sk := New(&recorder{}, DefaultOptions())
	require.NoError(t, sk.Setup())
	require.NoError(t, sk.KeyPressed(65))
	assert.Contains(t, buf.String(), "sketch set up")
	assert.Contains(t, buf.String(), "key ignored")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(ctx, slog.LevelError))
}
