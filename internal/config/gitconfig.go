package config

import (
	"os/exec"
	"strings"
)

// gitConfigMock allows tests to mock git config output.
var gitConfigMock func(args []string, repoPath string) (string, error)

// runGitConfig executes git config and returns raw output.
func runGitConfig(args []string, repoPath string) (string, error) {
	if gitConfigMock != nil {
		return gitConfigMock(args, repoPath)
	}

	cmd := exec.Command("git", args...)
	if repoPath != "" {
		cmd.Dir = repoPath
	}

	output, err := cmd.Output()
	if err != nil {
		// git config exits 1 when no key matches; that is not an error here
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", err
	}
	return string(output), nil
}

// ApplyGitConfig overlays per-repository overrides from the "gst" git config
// section, e.g. `git config gst.theme dracula`. Git config keys are
// case-insensitive and come back lowercased. Failures to read git config are
// ignored: the tool must keep working outside any configuration.
func ApplyGitConfig(cfg *AppConfig, repoPath string) {
	output, err := runGitConfig([]string{"config", "--get-regexp", `^gst\.`}, repoPath)
	if err != nil || output == "" {
		return
	}

	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if line == "" {
			continue
		}
		// Format: "gst.theme dracula"
		key, value, found := strings.Cut(line, " ")
		if !found {
			continue
		}
		key = strings.TrimPrefix(key, "gst.")
		cfg.applyKey(key, strings.TrimSpace(value))
	}
}
