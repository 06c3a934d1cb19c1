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
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"seehuhn.de/go/ribbon"
	"seehuhn.de/go/ribbon/internal/config"
	"seehuhn.de/go/ribbon/sketch"
	"seehuhn.de/go/ribbon/testcases"
)

func (a *app) dumpCmd() *cobra.Command {
	var caseID, out string
	var all bool
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the ribbon edges as JSON",
		Long: `Print the input points and the computed edge pairs as JSON.

By default the configured frame range of the animation is used.  With
--case, a named test case like "line_straight" is dumped instead, and
--all dumps every test case.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []jsonRibbon
			var err error
			switch {
			case all:
				entries, err = dumpAllCases(a.cfg)
			case caseID != "":
				tc, ok := testcases.Find(caseID)
				if !ok {
					return fmt.Errorf("unknown test case %q", caseID)
				}
				var e jsonRibbon
				e, err = dumpPoints(a.cfg, tc.Points)
				e.Name = caseID
				entries = []jsonRibbon{e}
			default:
				entries, err = dumpFrames(a.cfg)
			}
			if err != nil {
				return err
			}

			if out != "" {
				return writeJSONFile(out, entries)
			}
			return writeJSON(cmd.OutOrStdout(), entries)
		},
	}
	cmd.Flags().StringVar(&caseID, "case", "", "test case `id` (category_name)")
	cmd.Flags().BoolVar(&all, "all", false, "dump all test cases")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output `file` (default: standard output)")
	cmd.MarkFlagsMutuallyExclusive("case", "all")
	return cmd
}

// jsonRibbon is one dumped ribbon.  Test cases set Name, animation frames
// set Frame.
type jsonRibbon struct {
	Name   string      `json:"name,omitempty"`
	Frame  *int        `json:"frame,omitempty"`
	Points []jsonPoint `json:"points"`
	Edges  []jsonEdge  `json:"edges"`
}

type jsonPoint struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Pressure float64 `json:"pressure"`
}

type jsonEdge struct {
	Left  []float64 `json:"left"`
	Right []float64 `json:"right"`
}

func builder(cfg *config.Config) ribbon.Builder {
	return ribbon.Builder{
		Scale:   cfg.WidthScale,
		Tangent: ribbon.Catmull{Tightness: cfg.Tightness}.Tangent,
	}
}

func dumpFrames(cfg *config.Config) ([]jsonRibbon, error) {
	var res []jsonRibbon
	for frame := cfg.Frames.From; frame < cfg.Frames.To; frame++ {
		t := sketch.FrameTime(frame)
		points := sketch.Points(cfg.Points, t, cfg.PointerX)
		e, err := dumpPoints(cfg, points)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", frame, err)
		}
		e.Frame = &frame
		res = append(res, e)
	}
	return res, nil
}

func dumpAllCases(cfg *config.Config) ([]jsonRibbon, error) {
	var res []jsonRibbon
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			id := category + "_" + tc.Name
			e, err := dumpPoints(cfg, tc.Points)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", id, err)
			}
			e.Name = id
			res = append(res, e)
		}
	}
	return res, nil
}

func dumpPoints(cfg *config.Config, points []ribbon.PressurePoint) (jsonRibbon, error) {
	edges, err := builder(cfg).Build(points)
	if err != nil {
		return jsonRibbon{}, err
	}

	e := jsonRibbon{
		Points: make([]jsonPoint, len(points)),
		Edges:  make([]jsonEdge, len(edges)),
	}
	for i, p := range points {
		e.Points[i] = jsonPoint{X: p.X, Y: p.Y, Pressure: p.Pressure}
	}
	for i, pair := range edges {
		e.Edges[i] = jsonEdge{
			Left:  []float64{pair.Left.X, pair.Left.Y},
			Right: []float64{pair.Right.X, pair.Right.Y},
		}
	}
	return e, nil
}

func writeJSONFile(fname string, entries []jsonRibbon) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return writeJSON(f, entries)
}

func writeJSON(w io.Writer, entries []jsonRibbon) error {
	var out struct {
		Ribbons []jsonRibbon `json:"ribbons"`
	}
	out.Ribbons = entries

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
