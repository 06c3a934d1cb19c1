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

// Package sketch contains the ribbon animation: a row of points moving
// along a sine wave, with a ribbon drawn through them.
//
// Input which would come from a window system in an interactive setting,
// namely the pointer position and key presses, is passed in explicitly.
package sketch

import (
	"errors"
	"image/color"

	"seehuhn.de/go/ribbon"
	"seehuhn.de/go/ribbon/canvas"
)

// KeySave is the key code ("P") which saves the current frame.
const KeySave = 80

// SaveName is the file name used for saving frames, without extension.
const SaveName = "sketch"

var errNotSetUp = errors.New("sketch: Draw called before Setup")

// Options configure a [Sketch].  The zero value is not useful; start
// from [DefaultOptions].
type Options struct {
	NumPoints  int
	PointerX   float64
	WidthScale float64 // ribbon half-width per unit of pressure
	Debug      bool    // draw the debug overlays
	Background color.Color
	Style      Style
	SaveName   string
}

// DefaultOptions returns the standard animation settings.
func DefaultOptions() Options {
	return Options{
		NumPoints:  NumPoints,
		WidthScale: ribbon.DefaultScale,
		Debug:      true,
		Background: color.White,
		Style:      DefaultStyle,
		SaveName:   SaveName,
	}
}

// Sketch drives the animation on a drawing surface.
type Sketch struct {
	Options

	surface canvas.Surface
	line    *Line
	frame   int
}

// New returns a sketch drawing on s.
func New(s canvas.Surface, opts Options) *Sketch {
	return &Sketch{Options: opts, surface: s}
}

// Setup computes the initial ribbon, at animation time 0.
func (sk *Sketch) Setup() error {
	b := ribbon.Builder{Scale: sk.WidthScale, Tangent: sk.surface.CurveTangent}
	line, err := NewLineWithBuilder(Points(sk.NumPoints, 0, 0), b)
	if err != nil {
		return err
	}
	line.Style = sk.Style
	sk.line = line
	sk.frame = 0
	Logger().Info("sketch set up", "points", sk.NumPoints)
	return nil
}

// Draw renders the given frame.  The points are regenerated from the
// frame time and the current pointer position.
func (sk *Sketch) Draw(frame int) error {
	if sk.line == nil {
		return errNotSetUp
	}
	t := FrameTime(frame)
	if err := sk.line.SetPoints(Points(sk.NumPoints, t, sk.PointerX)); err != nil {
		return err
	}
	sk.frame = frame

	s := sk.surface
	s.Background(sk.Background)
	sk.line.Draw(s)
	if sk.Debug {
		sk.line.DrawDebug(s)
	}
	Logger().Debug("frame drawn", "frame", frame, "t", t, "pointerX", sk.PointerX)
	return nil
}

// SetPointer moves the pointer to the horizontal position x.
func (sk *Sketch) SetPointer(x float64) {
	sk.PointerX = x
}

// KeyPressed handles a key press.  [KeySave] saves the surface under
// SaveName; all other keys are ignored.
func (sk *Sketch) KeyPressed(code int) error {
	if code != KeySave {
		Logger().Debug("key ignored", "code", code)
		return nil
	}
	Logger().Info("saving frame", "frame", sk.frame, "name", sk.SaveName)
	return sk.surface.Save(sk.SaveName)
}

// Line returns the current ribbon line, or nil before Setup.
func (sk *Sketch) Line() *Line {
	return sk.line
}

// Frame returns the number of the frame drawn last.
func (sk *Sketch) Frame() int {
	return sk.frame
}
