package tree

import (
	"strings"
	"testing"

	"github.com/chmouel/git-status-tree/internal/theme"
)

func renderPlain(codes, renames map[string]string) []string {
	f := Build(SortEntries(codes, renames))
	r := NewRenderer(theme.Classic(), false)
	return r.Render(f)
}

func TestRenderSingleRootEntry(t *testing.T) {
	lines := renderPlain(map[string]string{"a.txt": "M."}, nil)

	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0] != "M. a.txt" {
		t.Errorf("line = %q, want %q", lines[0], "M. a.txt")
	}
}

func TestRenderRename(t *testing.T) {
	lines := renderPlain(
		map[string]string{"new.txt": "R."},
		map[string]string{"new.txt": "old.txt"},
	)

	if lines[0] != "R. old.txt -> new.txt" {
		t.Errorf("line = %q, want %q", lines[0], "R. old.txt -> new.txt")
	}
}

func TestRenderDirectoryGrouping(t *testing.T) {
	lines := renderPlain(map[string]string{
		"src/a.txt": "??",
		"src/b.txt": "??",
	}, nil)

	want := []string{
		"src/",
		"├── ?? a.txt",
		"└── ?? b.txt",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), strings.Join(lines, "\n"))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRenderPseudoEntryDirectory(t *testing.T) {
	lines := renderPlain(map[string]string{"ignored_dir/": "!!"}, nil)

	if lines[0] != "!! ignored_dir/" {
		t.Errorf("line = %q, want %q", lines[0], "!! ignored_dir/")
	}
}

func TestRenderNestedPrefixes(t *testing.T) {
	lines := renderPlain(map[string]string{
		"a/b/deep.txt": "M.",
		"a/b/last.txt": ".M",
		"a/top.txt":    "A.",
	}, nil)

	want := []string{
		"a/",
		"├── b/",
		"│   ├── M. deep.txt",
		"│   └── .M last.txt",
		"└── A. top.txt",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	codes := map[string]string{
		"src/a.txt":  "M.",
		"src/b.txt":  "??",
		"docs/x.md":  ".M",
		"top.txt":    "A.",
		"ignored_d/": "!!",
	}

	first := strings.Join(renderPlain(codes, nil), "\n")
	second := strings.Join(renderPlain(codes, nil), "\n")
	if first != second {
		t.Errorf("render is not deterministic:\n%s\n----\n%s", first, second)
	}
}

func TestIsAlertCode(t *testing.T) {
	alerts := []string{"??", "!!", "DD", "AU", "UD", "UA", "DU", "AA", "UU"}
	for _, code := range alerts {
		if !IsAlertCode(code) {
			t.Errorf("IsAlertCode(%q) = false, want true", code)
		}
	}

	independent := []string{"M.", ".M", "MM", "A.", ".D", "R.", "T.", "C.", "UM", "..", ""}
	for _, code := range independent {
		if code == "" {
			if IsAlertCode(code) {
				t.Error("IsAlertCode(\"\") = true, want false")
			}
			continue
		}
		if IsAlertCode(code) {
			t.Errorf("IsAlertCode(%q) = true, want false", code)
		}
	}
}

func TestStatusLabelColorDisabledIsPlain(t *testing.T) {
	r := NewRenderer(theme.Classic(), false)

	for _, code := range []string{"M.", "??", "UU", ".M"} {
		if got := r.StatusLabel(code); got != code {
			t.Errorf("StatusLabel(%q) with color off = %q, want plain code", code, got)
		}
	}
}

func TestAlertCodeRendersAsSingleUnit(t *testing.T) {
	r := NewRenderer(theme.Classic(), true)

	// Alert pairs go through one style application; the two characters must
	// stay adjacent in the output regardless of the active color profile.
	for _, code := range []string{"UU", "??", "!!"} {
		if got := r.StatusLabel(code); !strings.Contains(got, code) {
			t.Errorf("StatusLabel(%q) = %q, pair was split", code, got)
		}
	}
}
