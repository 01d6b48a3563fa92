// Package tui implements the optional interactive tree browser.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/git-status-tree/internal/theme"
	"github.com/chmouel/git-status-tree/internal/tree"
	"github.com/muesli/reflow/truncate"
)

// row is one visible line: a node index plus its indentation depth.
type row struct {
	node  int
	depth int
}

// Model is the bubbletea model for the interactive tree view.
type Model struct {
	forest   *tree.Forest
	renderer *tree.Renderer
	keys     KeyMap
	help     help.Model

	collapsed map[string]bool
	rows      []row
	cursor    int
	offset    int

	width     int
	height    int
	showIcons bool

	cursorStyle lipgloss.Style
	dirStyle    lipgloss.Style
	titleStyle  lipgloss.Style
}

// NewModel builds the interactive view over an already-folded forest.
func NewModel(f *tree.Forest, th *theme.Theme, showIcons bool) *Model {
	m := &Model{
		forest:      f,
		renderer:    tree.NewRenderer(th, true),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		collapsed:   make(map[string]bool),
		showIcons:   showIcons,
		cursorStyle: lipgloss.NewStyle().Background(th.Accent).Foreground(th.AccentFg),
		dirStyle:    lipgloss.NewStyle().Foreground(th.MutedFg),
		titleStyle:  lipgloss.NewStyle().Bold(true).Foreground(th.TextFg),
	}
	m.rebuildRows()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			m.clampScroll()
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			m.clampScroll()
		case key.Matches(msg, m.keys.Top):
			m.cursor = 0
			m.clampScroll()
		case key.Matches(msg, m.keys.Bottom):
			if len(m.rows) > 0 {
				m.cursor = len(m.rows) - 1
			}
			m.clampScroll()
		case key.Matches(msg, m.keys.Toggle):
			m.toggleCursor()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// SelectedPath returns the path under the cursor, empty when the tree is
// empty.
func (m *Model) SelectedPath() string {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return ""
	}
	return m.forest.Nodes[m.rows[m.cursor].node].Path
}

// toggleCursor collapses or expands the directory under the cursor and
// rebuilds the visible rows, keeping the cursor on the same node.
func (m *Model) toggleCursor() {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return
	}
	node := &m.forest.Nodes[m.rows[m.cursor].node]
	if !node.IsDir {
		return
	}
	m.collapsed[node.Path] = !m.collapsed[node.Path]
	selected := node.Path
	m.rebuildRows()
	for i, r := range m.rows {
		if m.forest.Nodes[r.node].Path == selected {
			m.cursor = i
			break
		}
	}
	m.clampScroll()
}

// rebuildRows flattens the forest into visible rows, skipping the children
// of collapsed directories.
func (m *Model) rebuildRows() {
	m.rows = m.rows[:0]
	for _, root := range m.forest.Roots {
		m.flatten(root, 0)
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) flatten(idx, depth int) {
	m.rows = append(m.rows, row{node: idx, depth: depth})
	node := &m.forest.Nodes[idx]
	if node.IsDir && m.collapsed[node.Path] {
		return
	}
	for _, child := range node.Children {
		m.flatten(child, depth+1)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.titleStyle.Render("git status"))
	b.WriteString("\n")

	visible := m.visibleHeight()
	end := m.offset + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}
	if len(m.rows) == 0 {
		b.WriteString(m.dirStyle.Render("working tree clean"))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderRow(i int) string {
	r := m.rows[i]
	node := &m.forest.Nodes[r.node]

	var line strings.Builder
	line.WriteString(strings.Repeat("  ", r.depth))

	if node.IsDir {
		if m.collapsed[node.Path] {
			line.WriteString("▸ ")
		} else {
			line.WriteString("▾ ")
		}
	}
	if m.showIcons {
		if icon := iconForName(strings.TrimSuffix(node.Name, "/"), node.IsDir); icon != "" {
			line.WriteString(icon)
			line.WriteString(" ")
		}
	}

	if i == m.cursor {
		// One style for the whole row so the highlight is unbroken.
		text := line.String() + m.plainLine(node)
		return m.cursorStyle.Render(m.fit(text))
	}

	if node.HasStatus() {
		line.WriteString(m.renderer.Line(node))
	} else {
		line.WriteString(m.dirStyle.Render(node.Name + "/"))
	}
	return m.fit(line.String())
}

// plainLine formats a node without colors, for the highlighted cursor row.
func (m *Model) plainLine(node *tree.Node) string {
	if !node.HasStatus() {
		return node.Name + "/"
	}
	renamed := ""
	if node.OldPath != "" {
		renamed = node.OldPath + " -> "
	}
	return node.Code + " " + renamed + node.Name
}

func (m *Model) fit(line string) string {
	if m.width <= 0 {
		return line
	}
	return truncate.StringWithTail(line, uint(m.width), "…") //nolint:gosec
}

func (m *Model) visibleHeight() int {
	// Title plus help line; full help takes more but scrolling a little
	// short is harmless.
	reserved := 2
	if m.height <= reserved {
		return len(m.rows)
	}
	return m.height - reserved
}

func (m *Model) clampScroll() {
	visible := m.visibleHeight()
	if visible <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
