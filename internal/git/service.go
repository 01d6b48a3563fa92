// Package git wraps the git commands git-status-tree relies on.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	log "github.com/chmouel/git-status-tree/internal/log"
)

// LookupPath is used to find executables in PATH. It's exposed as a package
// variable so tests can mock it and avoid depending on system binaries.
var LookupPath = exec.LookPath

// Service runs git for the status pipeline. The zero directory means the
// current working directory.
type Service struct {
	dir string
}

// NewService constructs a Service rooted at dir.
func NewService(dir string) *Service {
	return &Service{dir: dir}
}

// StatusRaw captures the raw porcelain v2 byte stream, forwarding extraArgs
// to git status verbatim. A non-zero git exit is surfaced with git's own
// stderr text so the caller can propagate it unchanged.
func (s *Service) StatusRaw(ctx context.Context, extraArgs []string) ([]byte, error) {
	args := append([]string{"status", "--porcelain=v2", "-z"}, extraArgs...)
	log.Printf("run: git %s (cwd=%s)", strings.Join(args, " "), s.dir)

	// #nosec G204 -- arguments come from the CLI surface and are passed to git without shell interpolation
	cmd := exec.CommandContext(ctx, "git", args...)
	if s.dir != "" {
		cmd.Dir = s.dir
	}

	output, err := cmd.Output()
	if err != nil {
		return nil, statusError(err)
	}
	log.Printf("ok: git status (%d bytes)", len(output))
	return output, nil
}

func statusError(err error) error {
	if exitErr, ok := err.(*exec.ExitError); ok {
		detail := strings.TrimSpace(string(exitErr.Stderr))
		if detail != "" {
			log.Printf("error: git status: %s", detail)
			return fmt.Errorf("git status: %s", detail)
		}
		log.Printf("error: git status exited %d", exitErr.ExitCode())
		return fmt.Errorf("git status: exit status %d", exitErr.ExitCode())
	}
	log.Printf("error: git status: %v", err)
	return fmt.Errorf("git status: %w", err)
}

// CommonDir resolves the git common directory, used by watch mode to follow
// index and ref updates.
func (s *Service) CommonDir(ctx context.Context) (string, error) {
	return s.revParse(ctx, "--git-common-dir")
}

// TopLevel resolves the working tree root, used by watch mode to follow
// working tree changes.
func (s *Service) TopLevel(ctx context.Context) (string, error) {
	return s.revParse(ctx, "--show-toplevel")
}

func (s *Service) revParse(ctx context.Context, flag string) (string, error) {
	// #nosec G204 -- flag is one of two fixed rev-parse options
	cmd := exec.CommandContext(ctx, "git", "rev-parse", flag)
	if s.dir != "" {
		cmd.Dir = s.dir
	}
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			detail := strings.TrimSpace(string(exitErr.Stderr))
			if detail != "" {
				return "", fmt.Errorf("git rev-parse %s: %s", flag, detail)
			}
		}
		return "", fmt.Errorf("git rev-parse %s: %w", flag, err)
	}
	return strings.TrimSpace(string(output)), nil
}
