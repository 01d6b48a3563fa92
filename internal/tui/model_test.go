package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/chmouel/git-status-tree/internal/theme"
	"github.com/chmouel/git-status-tree/internal/tree"
)

func testForest() *tree.Forest {
	return tree.Build(tree.SortEntries(map[string]string{
		"src/a.txt": "M.",
		"src/b.txt": "??",
		"top.txt":   ".M",
	}, nil))
}

func TestNewModelFlattensForest(t *testing.T) {
	m := NewModel(testForest(), theme.Classic(), false)

	// src/, src/a.txt, src/b.txt, top.txt
	if len(m.rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(m.rows))
	}
	if m.SelectedPath() != "src" {
		t.Errorf("initial selection = %q, want %q", m.SelectedPath(), "src")
	}
}

func TestToggleCollapseHidesChildren(t *testing.T) {
	m := NewModel(testForest(), theme.Classic(), false)

	m.toggleCursor() // collapse src
	if len(m.rows) != 2 {
		t.Fatalf("collapsed tree has %d rows, want 2", len(m.rows))
	}
	if m.SelectedPath() != "src" {
		t.Errorf("cursor moved off the toggled directory: %q", m.SelectedPath())
	}

	m.toggleCursor() // expand again
	if len(m.rows) != 4 {
		t.Errorf("expanded tree has %d rows, want 4", len(m.rows))
	}
}

func TestToggleOnFileIsNoop(t *testing.T) {
	m := NewModel(testForest(), theme.Classic(), false)
	m.cursor = 1 // src/a.txt

	m.toggleCursor()
	if len(m.rows) != 4 {
		t.Errorf("toggling a file changed the row count to %d", len(m.rows))
	}
}

func TestEmptyForestView(t *testing.T) {
	m := NewModel(tree.Build(nil), theme.Classic(), false)

	if m.SelectedPath() != "" {
		t.Errorf("SelectedPath on empty forest = %q", m.SelectedPath())
	}
	view := m.View()
	if view == "" {
		t.Error("empty forest should still render a view")
	}
}

func TestKeyboardNavigation(t *testing.T) {
	tm := teatest.NewTestModel(
		t,
		NewModel(testForest(), theme.Classic(), false),
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	time.Sleep(50 * time.Millisecond)
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	time.Sleep(50 * time.Millisecond)
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	fm := tm.FinalModel(t)
	m, ok := fm.(*Model)
	if !ok {
		t.Fatal("final model is not *Model")
	}
	if m.cursor != 2 {
		t.Errorf("cursor = %d after two downs, want 2", m.cursor)
	}
}
