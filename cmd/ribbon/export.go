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
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"seehuhn.de/go/ribbon/canvas"
)

func (a *app) exportCmd() *cobra.Command {
	var frame int
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write one frame as a PDF file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("frame") {
				frame = a.cfg.Frames.From
			}
			if out == "" {
				out = filepath.Join(a.cfg.OutputDir, "sketch.pdf")
			}
			return a.export(frame, out)
		},
	}
	cmd.Flags().IntVar(&frame, "frame", 0, "frame `number` (default: first configured frame)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output `file`")
	return cmd
}

func (a *app) export(frame int, out string) error {
	cfg := a.cfg
	if dir := filepath.Dir(out); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	c := canvas.NewPDFCanvas(float64(cfg.Width), float64(cfg.Height))
	c.CurveTightness(cfg.Tightness)

	sk, err := newSketch(cfg, c)
	if err != nil {
		return err
	}
	if err := sk.Draw(frame); err != nil {
		return err
	}
	if err := c.Save(out); err != nil {
		return err
	}
	a.logger.Info("frame exported", "frame", frame, "file", out)
	return nil
}
