package tree

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/git-status-tree/internal/theme"
)

// Branch glyphs, one per depth/position combination.
const (
	glyphBranch = "├── "
	glyphLast   = "└── "
	glyphPipe   = "│   "
	glyphSpace  = "    "
)

// alertCodes are the conflict pairs that render as a single alert unit.
// See git-status(1) for the unmerged combinations.
var alertCodes = map[string]bool{
	"DD": true,
	"AU": true,
	"UD": true,
	"UA": true,
	"DU": true,
	"AA": true,
	"UU": true,
}

// IsAlertCode reports whether the whole XY pair renders in the alert color:
// untracked ("??"), ignored ("!!") and the unmerged conflict pairs. Every
// other pair colors X and Y independently.
func IsAlertCode(code string) bool {
	if code == "" {
		return false
	}
	if code[0] == '?' || code[0] == '!' {
		return true
	}
	return alertCodes[code]
}

// Renderer walks a forest and emits one formatted line per node. The color
// policy is injected: the caller decides whether the output stream supports
// color, the renderer never inspects the environment.
type Renderer struct {
	color    bool
	staged   lipgloss.Style
	unstaged lipgloss.Style
	alert    lipgloss.Style
}

// NewRenderer builds a renderer for the given theme. When color is false
// every style application is a no-op and the output is plain text.
func NewRenderer(th *theme.Theme, color bool) *Renderer {
	return &Renderer{
		color:    color,
		staged:   lipgloss.NewStyle().Foreground(th.StagedFg),
		unstaged: lipgloss.NewStyle().Foreground(th.UnstagedFg),
		alert:    lipgloss.NewStyle().Foreground(th.AlertFg),
	}
}

// Render traverses the forest depth-first in pre-order, roots in creation
// order and children in insertion order, and returns one line per node.
func (r *Renderer) Render(f *Forest) []string {
	var lines []string
	for _, root := range f.Roots {
		r.walk(f, root, "", "", &lines)
	}
	return lines
}

func (r *Renderer) walk(f *Forest, idx int, prefix, childPrefix string, lines *[]string) {
	node := &f.Nodes[idx]
	*lines = append(*lines, prefix+r.Line(node))

	for i, child := range node.Children {
		if i == len(node.Children)-1 {
			r.walk(f, child, childPrefix+glyphLast, childPrefix+glyphSpace, lines)
		} else {
			r.walk(f, child, childPrefix+glyphBranch, childPrefix+glyphPipe, lines)
		}
	}
}

// Line formats a single node without its branch prefix. Plain directories
// render as "name/" with no styling; status-bearing nodes render the colored
// XY pair, the rename source when present, then the name.
func (r *Renderer) Line(node *Node) string {
	if !node.HasStatus() {
		return node.Name + "/"
	}

	renamed := ""
	if node.OldPath != "" {
		renamed = node.OldPath + " -> "
	}
	return r.StatusLabel(node.Code) + " " + renamed + node.Name
}

// StatusLabel colors the XY pair according to its class: alert codes as one
// unit, everything else with X in the staged color and Y in the unstaged
// color, leaving "." positions unstyled.
func (r *Renderer) StatusLabel(code string) string {
	if !r.color {
		return code
	}
	if IsAlertCode(code) {
		return r.alert.Render(code)
	}

	x := code[:1]
	y := code[1:]
	if x != "." {
		x = r.staged.Render(x)
	}
	if y != "." {
		y = r.unstaged.Render(y)
	}
	return x + y
}
