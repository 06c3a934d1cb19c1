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

package testcases

import (
	"math"

	"seehuhn.de/go/ribbon"
	"seehuhn.de/go/ribbon/sketch"
)

var lineCases = []TestCase{
	{
		Name: "straight",
		Points: []ribbon.PressurePoint{
			pp(0, 0, 1), pp(10, 0, 2), pp(20, 0, 1), pp(30, 0, 0.5), pp(40, 0, 1),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "symmetric",
		Points: horizontal(10, 32, 10, 9, []float64{0.2, 0.8, 1.5, 2, 2.4, 2, 1.5, 0.8, 0.2}),
		Width:  120,
		Height: 64,
		Mirror: true,
	},
	{
		Name:   "negative_pressure",
		Points: horizontal(10, 32, 12, 7, []float64{-1, -2, 1.5, 0, -1.5, 2, 1}),
		Width:  100,
		Height: 64,
	},
	{
		Name: "diagonal",
		Points: []ribbon.PressurePoint{
			pp(10, 10, 0), pp(20, 20, 1), pp(30, 30, 1.5), pp(40, 40, 1), pp(50, 50, 0),
		},
		Width:  64,
		Height: 64,
	},
}

var minimalCases = []TestCase{
	{
		Name:   "two_points",
		Points: []ribbon.PressurePoint{pp(10, 32, 3), pp(54, 32, 3)},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "three_points",
		Points: []ribbon.PressurePoint{pp(10, 40, 1), pp(32, 20, 2), pp(54, 40, 1)},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "coincident",
		Points: []ribbon.PressurePoint{pp(32, 32, 1), pp(32, 32, 1), pp(32, 32, 1), pp(32, 32, 1)},
		Width:  64,
		Height: 64,
	},
}

var waveCases = []TestCase{
	{
		Name:   "sine",
		Points: sine(20, 10, 8, 40, 24, 0),
		Width:  200,
		Height: 80,
	},
	{
		Name:   "sine_dense",
		Points: sine(50, 4, 6, 40, 24, 1.2),
		Width:  220,
		Height: 80,
	},
	{
		Name:   "spiral",
		Points: spiral(100, 100, 10, 80, 2.5, 40),
		Width:  200,
		Height: 200,
	},
}

var sketchCases = []TestCase{
	{
		Name:   "setup",
		Points: sketch.Points(sketch.NumPoints, 0, 0),
		Width:  600,
		Height: 600,
	},
	{
		Name:   "frame_45",
		Points: sketch.Points(sketch.NumPoints, sketch.FrameTime(45), 300),
		Width:  600,
		Height: 600,
	},
	{
		Name:   "frame_180",
		Points: sketch.Points(sketch.NumPoints, sketch.FrameTime(180), 120),
		Width:  600,
		Height: 600,
	},
}

// horizontal places len(pressure) points on the line y, starting at x0
// with spacing dx.
func horizontal(x0, y, dx float64, n int, pressure []float64) []ribbon.PressurePoint {
	res := make([]ribbon.PressurePoint, n)
	for i := range n {
		res[i] = pp(x0+float64(i)*dx, y, pressure[i])
	}
	return res
}

// sine samples n points of a sine wave with varying pressure.
func sine(n int, dx, x0, y0, amplitude, phase float64) []ribbon.PressurePoint {
	res := make([]ribbon.PressurePoint, n)
	for i := range n {
		u := float64(i) / float64(n-1)
		res[i] = pp(
			x0+float64(i)*dx,
			y0+amplitude*math.Sin(2*math.Pi*u+phase),
			0.3+0.7*math.Sin(math.Pi*u),
		)
	}
	return res
}

// spiral samples n points of an Archimedean spiral, pressure growing
// with the radius.
func spiral(cx, cy, rMin, rMax, turns float64, n int) []ribbon.PressurePoint {
	res := make([]ribbon.PressurePoint, n)
	for i := range n {
		u := float64(i) / float64(n-1)
		r := rMin + (rMax-rMin)*u
		a := 2 * math.Pi * turns * u
		res[i] = pp(cx+r*math.Cos(a), cy+r*math.Sin(a), 0.2+u)
	}
	return res
}
