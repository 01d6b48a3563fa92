// Package config loads application configuration from YAML and per-repo
// git config overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/chmouel/git-status-tree/internal/theme"
	"gopkg.in/yaml.v3"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// AppConfig defines the global git-status-tree configuration options.
type AppConfig struct {
	Theme      string   `yaml:"theme"`       // Theme name: see theme.AvailableThemes
	Color      string   `yaml:"color"`       // "auto", "always" or "never"
	ShowIcons  bool     `yaml:"show_icons"`  // Render Nerd Font icons in the interactive view
	DebugLog   string   `yaml:"debug_log"`   // Path to debug log file
	StatusArgs []string `yaml:"status_args"` // Extra arguments always passed to git status
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Theme:     theme.ClassicName,
		Color:     ColorAuto,
		ShowIcons: true,
	}
}

// DefaultConfigPath returns the default config file location under the user
// config directory.
func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "git-status-tree", "config.yaml")
}

// LoadConfig reads the YAML config at path, falling back to the default
// location when path is empty. A missing file yields the defaults without an
// error; a present but unreadable or invalid file is reported.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = DefaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %q: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c *AppConfig) validate() error {
	switch c.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}

	if c.Theme != "" {
		normalized := theme.NormalizeThemeName(c.Theme)
		if normalized == "" {
			return fmt.Errorf("unknown theme %q", c.Theme)
		}
		c.Theme = normalized
	} else {
		c.Theme = theme.ClassicName
	}
	return nil
}

// applyKey sets a single config value from a git-config style key. Unknown
// keys are ignored so newer keys do not break older binaries.
func (c *AppConfig) applyKey(key, value string) {
	switch key {
	case "theme":
		if normalized := theme.NormalizeThemeName(value); normalized != "" {
			c.Theme = normalized
		}
	case "color":
		switch value {
		case ColorAuto, ColorAlways, ColorNever:
			c.Color = value
		}
	case "show_icons", "show-icons":
		c.ShowIcons = parseBool(value, c.ShowIcons)
	case "debug_log", "debug-log":
		c.DebugLog = value
	}
}

func parseBool(value string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0":
		return false
	}
	return fallback
}
