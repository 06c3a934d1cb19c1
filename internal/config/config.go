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

// Package config reads the settings of the ribbon command from a TOML
// file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/ribbon/sketch"
)

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid configuration")

// Backend names.
const (
	BackendRaster = "raster"
	BackendGG     = "gg"
)

// Config holds all settings.  Missing values in a file keep their
// defaults.
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Points is the number of animated points.
	Points int `toml:"points"`

	// PointerX is the horizontal pointer position, which controls the
	// speed of the pressure oscillation.
	PointerX float64 `toml:"pointer_x"`

	Frames Frames `toml:"frames"`

	// Scale is the supersampling factor of the raster backend.
	Scale int `toml:"scale"`

	Backend   string `toml:"backend"`
	OutputDir string `toml:"output_dir"`
	Debug     bool   `toml:"debug"`

	Tightness  float64 `toml:"tightness"`
	WidthScale float64 `toml:"width_scale"`

	Colours Colours `toml:"colours"`
}

// Frames is a half-open range of frame numbers.
type Frames struct {
	From int `toml:"from"`
	To   int `toml:"to"`
}

// Len returns the number of frames in the range.
func (f Frames) Len() int {
	return max(f.To-f.From, 0)
}

// Colours are hex colour strings, like "#6464dc" or "#fff".
type Colours struct {
	Background string `toml:"background"`
	Left       string `toml:"left"`
	Right      string `toml:"right"`
	Path       string `toml:"path"`
	Points     string `toml:"points"`
	Width      string `toml:"width"`
}

// Default returns the standard animation settings, rendering the
// first second of frames.
func Default() *Config {
	return &Config{
		Width:      600,
		Height:     600,
		Points:     sketch.NumPoints,
		Frames:     Frames{From: 1, To: 1 + sketch.FramesPerSecond},
		Scale:      1,
		Backend:    BackendRaster,
		OutputDir:  "out",
		Debug:      true,
		WidthScale: 10,
		Colours: Colours{
			Background: "#ffffff",
			Left:       "#6464dc",
			Right:      "#e68264",
			Path:       "#000000",
			Points:     "#000000",
			Width:      "#ff6464",
		},
	}
}

// Load reads a configuration file.  Settings missing from the file keep
// their default values.  Unknown keys are an error.
func Load(fname string) (*Config, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

// Decode reads a configuration in TOML format from r and validates it.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes the configuration to w in TOML format.
func (c *Config) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(c)
}

// Validate checks all settings and reports every problem found.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Width <= 0 || c.Height <= 0 {
		bad("size %dx%d", c.Width, c.Height)
	}
	if c.Points < 2 {
		bad("need at least 2 points, got %d", c.Points)
	}
	if c.Frames.To < c.Frames.From {
		bad("frame range [%d, %d)", c.Frames.From, c.Frames.To)
	}
	if c.Scale < 1 {
		bad("scale %d", c.Scale)
	}
	if c.Backend != BackendRaster && c.Backend != BackendGG {
		bad("unknown backend %q", c.Backend)
	}
	if !(c.WidthScale > 0) || math.IsInf(c.WidthScale, 0) {
		bad("width scale %g", c.WidthScale)
	}
	if math.IsNaN(c.PointerX) || math.IsInf(c.PointerX, 0) {
		bad("pointer position %g", c.PointerX)
	}
	if math.IsNaN(c.Tightness) || math.IsInf(c.Tightness, 0) {
		bad("tightness %g", c.Tightness)
	}
	for _, col := range c.colourList() {
		if _, err := colorful.Hex(col.value); err != nil {
			bad("colour %s %q", col.name, col.value)
		}
	}

	return errors.Join(errs...)
}

type namedColour struct {
	name, value string
}

func (c *Config) colourList() []namedColour {
	return []namedColour{
		{"background", c.Colours.Background},
		{"left", c.Colours.Left},
		{"right", c.Colours.Right},
		{"path", c.Colours.Path},
		{"points", c.Colours.Points},
		{"width", c.Colours.Width},
	}
}

// ParseColour converts a hex colour string into an opaque colour.
func ParseColour(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: colour %q", ErrInvalid, s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// SketchOptions converts the configuration into options for the
// animation.
func (c *Config) SketchOptions() (sketch.Options, error) {
	opts := sketch.DefaultOptions()
	opts.NumPoints = c.Points
	opts.PointerX = c.PointerX
	opts.WidthScale = c.WidthScale
	opts.Debug = c.Debug

	targets := []*color.Color{
		&opts.Background,
		&opts.Style.Left,
		&opts.Style.Right,
		&opts.Style.Path,
		&opts.Style.Points,
		&opts.Style.Width,
	}
	for i, col := range c.colourList() {
		v, err := ParseColour(col.value)
		if err != nil {
			return sketch.Options{}, err
		}
		*targets[i] = v
	}
	return opts, nil
}
