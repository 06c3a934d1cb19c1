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

// Command ribbon renders the ribbon animation off-screen.
//
// Usage:
//
//	ribbon render [--keys frame:code ...]   render frames to PNG files
//	ribbon export [--frame n]               write one frame as PDF
//	ribbon dump [--case name]               print edge pairs as JSON
//	ribbon watch                            re-render when the config changes
//
// All commands read their settings from the TOML file given by --config.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"seehuhn.de/go/ribbon/canvas"
	"seehuhn.de/go/ribbon/internal/config"
	"seehuhn.de/go/ribbon/sketch"
)

// app holds the state shared by all subcommands.
type app struct {
	configFile string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		slog.Error("ribbon failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "ribbon",
		Short:         "Render variable-width ribbons through moving points",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(logOut)
		},
	}
	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "TOML configuration `file`")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		a.renderCmd(),
		a.exportCmd(),
		a.dumpCmd(),
		a.watchCmd(),
	)
	return root
}

// setup installs the logger and reads the configuration.
func (a *app) setup(logOut io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	a.logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)
	canvas.SetLogger(a.logger.With("pkg", "canvas"))
	sketch.SetLogger(a.logger.With("pkg", "sketch"))

	return a.loadConfig()
}

func (a *app) loadConfig() error {
	if a.configFile == "" {
		a.cfg = config.Default()
		return nil
	}
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.Debug("configuration loaded", "file", a.configFile)
	return nil
}
