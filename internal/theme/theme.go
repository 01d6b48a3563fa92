// Package theme provides the color palettes used when rendering status trees.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors the tree renderer and the interactive view use.
type Theme struct {
	StagedFg   lipgloss.Color // X column of the status pair
	UnstagedFg lipgloss.Color // Y column of the status pair
	AlertFg    lipgloss.Color // Untracked/ignored/conflict pairs
	TextFg     lipgloss.Color // Primary text
	MutedFg    lipgloss.Color // Directory names, help text
	Accent     lipgloss.Color // Cursor row background in interactive mode
	AccentFg   lipgloss.Color // Text on Accent background
}

// Theme names.
const (
	ClassicName       = "classic"
	DraculaName       = "dracula"
	NarnaName         = "narna"
	CleanLightName    = "clean-light"
	GruvboxDarkName   = "gruvbox-dark"
	NordName          = "nord"
	SolarizedDarkName = "solarized-dark"
)

// Classic returns the traditional green/red palette of git status itself.
func Classic() *Theme {
	return &Theme{
		StagedFg:   lipgloss.Color("2"), // ANSI green
		UnstagedFg: lipgloss.Color("1"), // ANSI red
		AlertFg:    lipgloss.Color("1"),
		TextFg:     lipgloss.Color("7"),
		MutedFg:    lipgloss.Color("8"),
		Accent:     lipgloss.Color("4"),
		AccentFg:   lipgloss.Color("0"),
	}
}

// Dracula returns the Dracula palette (dark background, vibrant colors).
func Dracula() *Theme {
	return &Theme{
		StagedFg:   lipgloss.Color("#50FA7B"), // Green
		UnstagedFg: lipgloss.Color("#FF5555"), // Red
		AlertFg:    lipgloss.Color("#FF5555"),
		TextFg:     lipgloss.Color("#F8F8F2"), // Foreground
		MutedFg:    lipgloss.Color("#6272A4"), // Comment
		Accent:     lipgloss.Color("#BD93F9"), // Purple
		AccentFg:   lipgloss.Color("#282A36"), // Background
	}
}

// Narna returns a balanced dark theme with blue accents.
func Narna() *Theme {
	return &Theme{
		StagedFg:   lipgloss.Color("#3FB950"),
		UnstagedFg: lipgloss.Color("#F47067"),
		AlertFg:    lipgloss.Color("#F47067"),
		TextFg:     lipgloss.Color("#E6EDF3"),
		MutedFg:    lipgloss.Color("#8B949E"),
		Accent:     lipgloss.Color("#41ADFF"),
		AccentFg:   lipgloss.Color("#0D1117"),
	}
}

// CleanLight returns a palette tuned for light terminal backgrounds.
func CleanLight() *Theme {
	return &Theme{
		StagedFg:   lipgloss.Color("#1A7F37"),
		UnstagedFg: lipgloss.Color("#CF222E"),
		AlertFg:    lipgloss.Color("#CF222E"),
		TextFg:     lipgloss.Color("#24292F"),
		MutedFg:    lipgloss.Color("#6E7781"),
		Accent:     lipgloss.Color("#DDF4FF"),
		AccentFg:   lipgloss.Color("#24292F"),
	}
}

// GruvboxDark returns the Gruvbox dark palette.
func GruvboxDark() *Theme {
	return &Theme{
		StagedFg:   lipgloss.Color("#B8BB26"),
		UnstagedFg: lipgloss.Color("#FB4934"),
		AlertFg:    lipgloss.Color("#FB4934"),
		TextFg:     lipgloss.Color("#EBDBB2"),
		MutedFg:    lipgloss.Color("#928374"),
		Accent:     lipgloss.Color("#FABD2F"),
		AccentFg:   lipgloss.Color("#282828"),
	}
}

// Nord returns the Nord palette.
func Nord() *Theme {
	return &Theme{
		StagedFg:   lipgloss.Color("#A3BE8C"),
		UnstagedFg: lipgloss.Color("#BF616A"),
		AlertFg:    lipgloss.Color("#BF616A"),
		TextFg:     lipgloss.Color("#ECEFF4"),
		MutedFg:    lipgloss.Color("#4C566A"),
		Accent:     lipgloss.Color("#88C0D0"),
		AccentFg:   lipgloss.Color("#2E3440"),
	}
}

// SolarizedDark returns the Solarized dark palette.
func SolarizedDark() *Theme {
	return &Theme{
		StagedFg:   lipgloss.Color("#859900"),
		UnstagedFg: lipgloss.Color("#DC322F"),
		AlertFg:    lipgloss.Color("#DC322F"),
		TextFg:     lipgloss.Color("#839496"),
		MutedFg:    lipgloss.Color("#586E75"),
		Accent:     lipgloss.Color("#268BD2"),
		AccentFg:   lipgloss.Color("#002B36"),
	}
}

var themes = map[string]func() *Theme{
	ClassicName:       Classic,
	DraculaName:       Dracula,
	NarnaName:         Narna,
	CleanLightName:    CleanLight,
	GruvboxDarkName:   GruvboxDark,
	NordName:          Nord,
	SolarizedDarkName: SolarizedDark,
}

// AvailableThemes returns the names of all built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	return names
}

// NormalizeThemeName maps user input to a canonical theme name, or returns
// the empty string when no theme matches.
func NormalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	if _, ok := themes[normalized]; ok {
		return normalized
	}
	return ""
}

// ByName returns the theme for a canonical name, falling back to Classic for
// unknown names.
func ByName(name string) *Theme {
	if build, ok := themes[name]; ok {
		return build()
	}
	return Classic()
}
