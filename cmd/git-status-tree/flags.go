// Package main provides CLI flag definitions for git-status-tree.
package main

import (
	urfavecli "github.com/urfave/cli/v2"
)

// globalFlags returns all global flags for the application.
// Note: --version is provided automatically by urfave/cli via App.Version.
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Override the color theme",
		},
		&urfavecli.StringFlag{
			Name:  "color",
			Usage: "When to color output: auto, always or never",
		},
		&urfavecli.BoolFlag{
			Name:  "no-icons",
			Usage: "Disable Nerd Font icons in the interactive view",
		},
		&urfavecli.BoolFlag{
			Name:    "interactive",
			Aliases: []string{"i"},
			Usage:   "Browse the tree interactively",
		},
		&urfavecli.BoolFlag{
			Name:    "watch",
			Aliases: []string{"w"},
			Usage:   "Re-render whenever the repository changes",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
	}
}
