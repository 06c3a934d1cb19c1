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

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/ribbon/canvas"
	"seehuhn.de/go/ribbon/internal/config"
	"seehuhn.de/go/ribbon/sketch"
)

func (a *app) renderCmd() *cobra.Command {
	var keyList []string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a range of frames to PNG files",
		Long: `Render the frames [from, to) of the configuration into
frame-NNNN.png files in the output directory.

Key presses can be replayed with --keys frame:code.  Key code 80 saves the
frame as sketch.png, as in the interactive version.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := parseKeys(keyList)
			if err != nil {
				return err
			}
			return a.render(cmd.Context(), a.cfg, a.cfg.Frames, keys)
		},
	}
	cmd.Flags().StringSliceVar(&keyList, "keys", nil, "key presses as `frame:code` pairs")
	return cmd
}

// parseKeys converts "frame:code" pairs into a map from frame number to
// the key codes pressed after that frame.
func parseKeys(list []string) (map[int][]int, error) {
	keys := make(map[int][]int)
	for _, item := range list {
		frameStr, codeStr, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("key %q: want frame:code", item)
		}
		frame, err := strconv.Atoi(frameStr)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", item, err)
		}
		code, err := strconv.Atoi(codeStr)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", item, err)
		}
		keys[frame] = append(keys[frame], code)
	}
	return keys, nil
}

// render draws the given frames and saves every frame to the output
// directory.
func (a *app) render(ctx context.Context, cfg *config.Config, frames config.Frames, keys map[int][]int) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return err
	}

	surface, closeSurface, err := newSurface(cfg)
	if err != nil {
		return err
	}
	defer closeSurface()

	sk, err := newSketch(cfg, surface)
	if err != nil {
		return err
	}

	for frame := frames.From; frame < frames.To; frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sk.Draw(frame); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		name := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame-%04d", frame))
		if err := surface.Save(name); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		for _, code := range keys[frame] {
			if err := sk.KeyPressed(code); err != nil {
				return fmt.Errorf("frame %d, key %d: %w", frame, code, err)
			}
		}
	}
	a.logger.Info("frames rendered",
		"from", frames.From, "to", frames.To, "dir", cfg.OutputDir, "backend", cfg.Backend)
	return nil
}

// newSketch creates an animation drawing onto s and places the points
// for the first frame.
func newSketch(cfg *config.Config, s canvas.Surface) (*sketch.Sketch, error) {
	opts, err := cfg.SketchOptions()
	if err != nil {
		return nil, err
	}
	opts.SaveName = filepath.Join(cfg.OutputDir, sketch.SaveName)

	sk := sketch.New(s, opts)
	if err := sk.Setup(); err != nil {
		return nil, err
	}
	return sk, nil
}

// newSurface creates the drawing surface selected in cfg.  The returned
// function releases its resources.
func newSurface(cfg *config.Config) (canvas.Surface, func(), error) {
	switch cfg.Backend {
	case config.BackendRaster:
		c := canvas.NewCanvas(cfg.Width, cfg.Height, cfg.Scale)
		c.CurveTightness(cfg.Tightness)
		return c, func() {}, nil
	case config.BackendGG:
		c := canvas.NewGGCanvas(cfg.Width, cfg.Height)
		c.CurveTightness(cfg.Tightness)
		return c, func() {
			if err := c.Close(); err != nil {
				canvas.Logger().Warn("closing gg context", "error", err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown backend %q", config.ErrInvalid, cfg.Backend)
	}
}
