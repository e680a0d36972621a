// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/adaptive/base/errors"
	"cogentcore.org/adaptive/base/logx"
	"cogentcore.org/adaptive/settings"
	"cogentcore.org/adaptive/sim"
	"github.com/spf13/cobra"
)

var (
	// settingsFile is the settings file given with --settings.
	settingsFile string
	// showFrames prints every recorded frame.
	showFrames bool
	// watch reruns the scenarios when the settings file changes.
	watch bool
	// settingsOut is the file written by the settings command.
	settingsOut string
)

func init() {
	runCmd.Flags().StringVar(&settingsFile, "settings", "", "settings file to use instead of the default locations")
	runCmd.Flags().BoolVar(&showFrames, "frames", false, "print the recorded frames")
	runCmd.Flags().BoolVar(&watch, "watch", false, "rerun the scenarios whenever the settings file changes")
	settingsCmd.Flags().StringVarP(&settingsOut, "output", "o", settings.DefaultFile, "settings file to write")
}

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>...",
	Short: "Run scenarios and report the results",
	Long: `Run each scenario, stopping it at its first failing step.

Examples:
  # Run all scenarios of a directory
  flapsim run testdata/*.yaml

  # Print the frames and rerun on every settings change
  flapsim run --frames --watch --settings slow.toml fold.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Write the default settings to a file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := settings.Save(settings.Default(), settingsOut); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), logx.SuccessColor("wrote "+settingsOut))
		return nil
	},
}

func runRun(cmd *cobra.Command, args []string) error {
	set, err := loadSettings()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !watch {
		return report(out, runScenarios(out, set, args, showFrames), len(args))
	}
	if settingsFile == "" {
		return fmt.Errorf("--watch needs a --settings file")
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return watchScenarios(ctx, out, set, args)
}

// loadSettings opens the settings file, or searches the default paths.
func loadSettings() (*settings.Settings, error) {
	if settingsFile == "" {
		return settings.Load(settings.DefaultPaths, settings.DefaultFile)
	}
	set := settings.Default()
	return set, settings.Open(set, settingsFile)
}

// watchScenarios runs the scenarios, then runs them again with every
// new version of the settings file until the context is done.
func watchScenarios(ctx context.Context, out io.Writer, set *settings.Settings, files []string) error {
	ch, err := settings.Watch(ctx, settings.Default(), settingsFile)
	if err != nil {
		return err
	}
	errors.Log(report(out, runScenarios(out, set, files, showFrames), len(files)))
	for next := range ch {
		slog.Info("settings changed, rerunning scenarios", "file", settingsFile)
		errors.Log(report(out, runScenarios(out, next, files, showFrames), len(files)))
	}
	return nil
}

// runScenarios runs the scenario files with the given settings,
// writing a line per scenario, and returns the number of failures.
func runScenarios(out io.Writer, set *settings.Settings, files []string, frames bool) int {
	failed := 0
	for _, file := range files {
		s, err := sim.LoadScenario(file)
		if err != nil {
			fmt.Fprintln(out, logx.ErrorColor("FAIL"), file, err)
			failed++
			continue
		}
		h, err := s.Play(set.Clone())
		if h != nil && frames {
			for _, fr := range h.Frames {
				fmt.Fprintln(out, "   ", fr)
			}
		}
		if err != nil {
			fmt.Fprintln(out, logx.ErrorColor("FAIL"), err)
			failed++
			continue
		}
		fmt.Fprintln(out, logx.SuccessColor("PASS"), s.Name, logx.CmdColor(fmt.Sprint(h.Elapsed())))
	}
	return failed
}

// report returns an error if any scenario failed.
func report(out io.Writer, failed, total int) error {
	if failed == 0 {
		fmt.Fprintf(out, "%d scenarios passed\n", total)
		return nil
	}
	return fmt.Errorf("%d of %d scenarios failed", failed, total)
}
