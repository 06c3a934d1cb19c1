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

// Package testcases holds named point sequences for exercising ribbon
// construction and rendering.
package testcases

import "seehuhn.de/go/ribbon"

// TestCase defines a single ribbon input.
type TestCase struct {
	Name   string                 // lowercase a-z, 0-9 and _ only
	Points []ribbon.PressurePoint // the ribbon's spine
	Width  int                    // canvas width in pixels
	Height int                    // canvas height in pixels

	// Mirror is set for cases whose points are collinear on a horizontal
	// line and whose pressures are symmetric about the middle point.
	Mirror bool
}

// pp is a helper to create a ribbon.PressurePoint.
func pp(x, y, p float64) ribbon.PressurePoint {
	return ribbon.PressurePoint{X: x, Y: y, Pressure: p}
}
