// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command flapsim runs flap scenarios on a headless host
// and reports which of them pass.
package main

import (
	"os"

	"cogentcore.org/adaptive/base/logx"
	"github.com/spf13/cobra"
)

var (
	// debug, verbose and quiet select the log level.
	debug   bool
	verbose bool
	quiet   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapsim",
	Short: "Run flap scenarios on a headless host",
	Long: `flapsim loads scenarios from YAML files, each describing a flap, its
children and a list of steps such as resizes, touch and scroll input,
frame ticks and expectations, and runs them on a headless host.

Settings are read from adaptive-settings.toml in the current directory
and in ~/.config/adaptive, unless a file is given with --settings.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logx.UserLevel = logx.LevelFromFlags(debug, verbose, quiet)
		logx.SetDefaultLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "show debug messages, including gesture states")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show informational messages")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only show errors")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(settingsCmd)
}
