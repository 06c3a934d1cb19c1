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
	"errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"seehuhn.de/go/ribbon/internal/config"
)

// settle is the time to wait after the last change of the configuration
// file before rendering.  Editors often write a file in several steps.
const settle = 200 * time.Millisecond

func (a *app) watchCmd() *cobra.Command {
	var frame int
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render one frame whenever the configuration file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.configFile == "" {
				return errors.New("watch needs --config")
			}
			if !cmd.Flags().Changed("frame") {
				frame = a.cfg.Frames.From
			}
			return a.watch(cmd.Context(), frame)
		},
	}
	cmd.Flags().IntVar(&frame, "frame", 0, "frame `number` (default: first configured frame)")
	return cmd
}

// watch renders the given frame once, and again after every change of the
// configuration file, until ctx is cancelled.
func (a *app) watch(ctx context.Context, frame int) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, since editors may replace the file.
	target := filepath.Clean(a.configFile)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	a.renderOne(ctx, a.cfg, frame)

	var timer <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				timer = time.After(settle)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("watch error", "error", err)

		case <-timer:
			timer = nil
			cfg, err := config.Load(a.configFile)
			if err != nil {
				// keep the last good configuration
				a.logger.Error("reloading configuration", "error", err)
				continue
			}
			a.cfg = cfg
			a.renderOne(ctx, cfg, frame)
		}
	}
}

func (a *app) renderOne(ctx context.Context, cfg *config.Config, frame int) {
	frames := config.Frames{From: frame, To: frame + 1}
	if err := a.render(ctx, cfg, frames, nil); err != nil {
		a.logger.Error("rendering failed", "frame", frame, "error", err)
	}
}
