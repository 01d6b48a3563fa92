// Package buildinfo centralises build metadata for the git-status-tree
// binary. The linker injects values into cmd/git-status-tree/main.go; main()
// calls Set() to forward them here.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Set stores the build metadata received from linker-injected variables.
func Set(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Version returns the build version string.
func Version() string { return version }

// Describe returns a one-line description of the build, filling a missing
// commit from runtime/debug.ReadBuildInfo when the linker did not inject one.
func Describe() string {
	c := commit
	if c == "none" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" {
					c = setting.Value
				}
			}
		}
	}
	if c == "none" && date == "unknown" {
		return version
	}
	return fmt.Sprintf("%s (commit %s, built %s)", version, c, date)
}
