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
	"math"

	"seehuhn.de/go/ribbon"
)

// NumPoints is the number of points in the animation.
const NumPoints = 10

// FramesPerSecond is the nominal frame rate used to convert frame numbers
// into animation time.
const FramesPerSecond = 30

// FrameTime returns the animation time of a frame.  One second of
// animation advances the phase by π/6.
func FrameTime(frame int) float64 {
	return float64(frame) / FramesPerSecond * math.Pi / 6
}

// Points returns the n animated points at time t.  Point i is placed at
// x = 20i+20 on a sine wave; its pressure oscillates at a speed which
// grows with the horizontal pointer position.
func Points(n int, t, pointerX float64) []ribbon.PressurePoint {
	res := make([]ribbon.PressurePoint, n)
	for i := range n {
		fi := float64(i)
		res[i] = ribbon.PressurePoint{
			X:        fi*20 + 20,
			Y:        math.Sin(fi/6*math.Pi+t)*80 + 80,
			Pressure: math.Cos(fi/8*math.Pi + 0.4 + t*pointerX/10),
		}
	}
	return res
}
