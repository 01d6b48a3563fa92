// Package main is the entry point for the git-status-tree command.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/git-status-tree/internal/buildinfo"
	"github.com/chmouel/git-status-tree/internal/config"
	"github.com/chmouel/git-status-tree/internal/git"
	"github.com/chmouel/git-status-tree/internal/log"
	"github.com/chmouel/git-status-tree/internal/status"
	"github.com/chmouel/git-status-tree/internal/theme"
	"github.com/chmouel/git-status-tree/internal/tree"
	"github.com/chmouel/git-status-tree/internal/tui"
	"github.com/chmouel/git-status-tree/internal/watch"
	urfavecli "github.com/urfave/cli/v2"
	"golang.org/x/term"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	buildinfo.Set(version, commit, date)

	cliApp := &urfavecli.App{
		Name:      "git-status-tree",
		Usage:     "Show git status as a colorized directory tree",
		ArgsUsage: "[-- git status flags]",
		Version:   buildinfo.Describe(),

		Flags:  globalFlags(),
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(c *urfavecli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	svc := git.NewService("")
	th := theme.ByName(cfg.Theme)
	color := colorEnabled(cfg.Color)
	passthrough := append(append([]string{}, cfg.StatusArgs...), c.Args().Slice()...)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()
	defer func() { _ = log.Close() }()

	if c.Bool("interactive") {
		return runInteractive(ctx, svc, cfg, th, passthrough)
	}
	if c.Bool("watch") {
		return runWatch(ctx, svc, th, color, passthrough)
	}
	return render(ctx, svc, th, color, passthrough)
}

// loadConfig assembles the effective configuration: YAML file, then git
// config overrides, then command line flags (highest precedence).
func loadConfig(c *urfavecli.Context) (*config.AppConfig, error) {
	cfg, err := config.LoadConfig(c.String("config-file"))
	if err != nil {
		return nil, err
	}
	config.ApplyGitConfig(cfg, "")

	if themeName := c.String("theme"); themeName != "" {
		normalized := theme.NormalizeThemeName(themeName)
		if normalized == "" {
			return nil, fmt.Errorf("unknown theme %q", themeName)
		}
		cfg.Theme = normalized
	}
	if mode := c.String("color"); mode != "" {
		switch mode {
		case config.ColorAuto, config.ColorAlways, config.ColorNever:
			cfg.Color = mode
		default:
			return nil, fmt.Errorf("unknown color mode %q", mode)
		}
	}
	if c.Bool("no-icons") {
		cfg.ShowIcons = false
	}
	if debugLog := c.String("debug-log"); debugLog != "" {
		cfg.DebugLog = debugLog
	}

	if err := log.SetFile(cfg.DebugLog); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", cfg.DebugLog, err)
	}
	return cfg, nil
}

// colorEnabled resolves the color mode; "auto" follows whether stdout is a
// terminal. The decision is made here and injected into the renderer.
func colorEnabled(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// buildForest runs the full pipeline up to the folded forest: capture the
// raw status stream, parse it, sort the entries, fold them.
func buildForest(ctx context.Context, svc *git.Service, passthrough []string) (*tree.Forest, error) {
	raw, err := svc.StatusRaw(ctx, passthrough)
	if err != nil {
		return nil, err
	}
	res, err := status.Parse(raw)
	if err != nil {
		return nil, err
	}
	return tree.Build(tree.SortEntries(res.Codes, res.Renames)), nil
}

func render(ctx context.Context, svc *git.Service, th *theme.Theme, color bool, passthrough []string) error {
	forest, err := buildForest(ctx, svc, passthrough)
	if err != nil {
		return err
	}
	for _, line := range tree.NewRenderer(th, color).Render(forest) {
		fmt.Println(line)
	}
	return nil
}

func runInteractive(ctx context.Context, svc *git.Service, cfg *config.AppConfig, th *theme.Theme, passthrough []string) error {
	forest, err := buildForest(ctx, svc, passthrough)
	if err != nil {
		return err
	}
	model := tui.NewModel(forest, th, cfg.ShowIcons)
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func runWatch(ctx context.Context, svc *git.Service, th *theme.Theme, color bool, passthrough []string) error {
	refresh := func() {
		// Home the cursor and clear before repainting.
		fmt.Print("\033[H\033[2J")
		if err := render(ctx, svc, th, color, passthrough); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
	}
	refresh()

	commonDir, err := svc.CommonDir(ctx)
	if err != nil {
		return err
	}
	topLevel, err := svc.TopLevel(ctx)
	if err != nil {
		return err
	}

	w, err := watch.New([]string{commonDir, topLevel})
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	if err := w.Run(ctx, refresh); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
