package tree

import (
	"testing"

	"github.com/chmouel/git-status-tree/internal/models"
)

func TestSortEntriesDeepestFirst(t *testing.T) {
	codes := map[string]string{
		"a.txt":       "M.",
		"src/b.txt":   ".M",
		"src/x/c.txt": "A.",
		"src/a.txt":   "??",
	}

	entries := SortEntries(codes, nil)

	want := []string{"src/x/c.txt", "src/a.txt", "src/b.txt", "a.txt"}
	if len(entries) != len(want) {
		t.Fatalf("SortEntries returned %d entries, want %d", len(entries), len(want))
	}
	for i, path := range want {
		if entries[i].Path != path {
			t.Errorf("entries[%d].Path = %q, want %q", i, entries[i].Path, path)
		}
	}
}

func TestSortEntriesTrailingSlashDepth(t *testing.T) {
	codes := map[string]string{
		"vendor":  "M.",
		"vendor/": "!!",
	}

	entries := SortEntries(codes, nil)

	if entries[0].Path != "vendor/" {
		t.Errorf("trailing-slash path should sort first, got %q", entries[0].Path)
	}
}

func TestSortEntriesCarriesRenames(t *testing.T) {
	codes := map[string]string{"new.txt": "R."}
	renames := map[string]string{"new.txt": "old.txt"}

	entries := SortEntries(codes, renames)

	if entries[0].OldPath != "old.txt" {
		t.Errorf("OldPath = %q, want %q", entries[0].OldPath, "old.txt")
	}
}

func TestSortEntriesDeterministic(t *testing.T) {
	codes := map[string]string{
		"b/x.txt": "M.",
		"a/y.txt": ".M",
		"c.txt":   "??",
		"a/z.txt": "A.",
	}

	first := SortEntries(codes, nil)
	second := SortEntries(codes, nil)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("sort is not deterministic: run 1 %v, run 2 %v", first[i], second[i])
		}
	}
}

func TestBuildRootEntry(t *testing.T) {
	f := Build([]StatusEntry{{Path: "a.txt", Code: "M."}})

	if len(f.Roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(f.Roots))
	}
	root := f.Nodes[f.Roots[0]]
	if root.Name != "a.txt" || root.Code != "M." || root.IsDir {
		t.Errorf("unexpected root node %+v", root)
	}
}

func TestBuildSharedDirectoryPrefix(t *testing.T) {
	f := Build(SortEntries(map[string]string{
		"src/a.txt": "??",
		"src/b.txt": "??",
	}, nil))

	if len(f.Roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(f.Roots))
	}
	src := f.Nodes[f.Roots[0]]
	if src.Name != "src" || !src.IsDir || src.HasStatus() {
		t.Errorf("unexpected src node %+v", src)
	}
	if len(src.Children) != 2 {
		t.Fatalf("src has %d children, want 2", len(src.Children))
	}
	if f.Nodes[src.Children[0]].Name != "a.txt" || f.Nodes[src.Children[1]].Name != "b.txt" {
		t.Errorf("children out of order: %q, %q",
			f.Nodes[src.Children[0]].Name, f.Nodes[src.Children[1]].Name)
	}
}

func TestBuildDepthInvariant(t *testing.T) {
	f := Build(SortEntries(map[string]string{
		"a/b/c/deep.txt": "M.",
		"a/b/mid.txt":    ".M",
		"a/top.txt":      "A.",
	}, nil))

	// Exactly one node per distinct prefix segment: a, a/b, a/b/c.
	var dirs int
	for _, n := range f.Nodes {
		if n.IsDir {
			dirs++
		}
	}
	if dirs != 3 {
		t.Fatalf("got %d directory nodes, want 3", dirs)
	}

	// a is an ancestor of everything.
	a := f.Nodes[f.Roots[0]]
	if a.Path != "a" {
		t.Fatalf("root path = %q, want %q", a.Path, "a")
	}
	var paths []string
	var collect func(idx int)
	collect = func(idx int) {
		paths = append(paths, f.Nodes[idx].Path)
		for _, c := range f.Nodes[idx].Children {
			collect(c)
		}
	}
	collect(f.Roots[0])
	want := map[string]bool{
		"a": true, "a/b": true, "a/b/c": true,
		"a/b/c/deep.txt": true, "a/b/mid.txt": true, "a/top.txt": true,
	}
	for _, p := range paths {
		if !want[p] {
			t.Errorf("unexpected node path %q", p)
		}
	}
	if len(paths) != len(want) {
		t.Errorf("forest holds %d nodes, want %d", len(paths), len(want))
	}
}

func TestDirCreationIdempotent(t *testing.T) {
	f := Build(nil)

	first := f.dir("x/y")
	childrenBefore := len(f.Nodes[first].Children)
	second := f.dir("x/y")

	if first != second {
		t.Errorf("dir() returned different nodes %d and %d for the same prefix", first, second)
	}
	if len(f.Nodes[first].Children) != childrenBefore {
		t.Error("repeated dir() request mutated children")
	}
}

func TestBuildPseudoEntryDirectoryAtRoot(t *testing.T) {
	f := Build([]StatusEntry{{Path: "ignored_dir/", Code: "!!"}})

	if len(f.Roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(f.Roots))
	}
	root := f.Nodes[f.Roots[0]]
	if root.Name != "ignored_dir/" {
		t.Errorf("Name = %q, want %q", root.Name, "ignored_dir/")
	}
	if root.Code != "!!" {
		t.Errorf("Code = %q, want %q", root.Code, "!!")
	}
	if !root.IsDir {
		t.Error("pseudo-entry directory should stay a directory node")
	}
}

func TestBuildPseudoEntryClaimsExistingDirectory(t *testing.T) {
	// The deeper entry creates the directory node first; the pseudo-entry
	// must attach its status to that node instead of adding a sibling.
	f := Build([]StatusEntry{
		{Path: "src/gen/out.txt", Code: "??"},
		{Path: "src/gen/", Code: "!!"},
	})

	src := f.Nodes[f.Roots[0]]
	if len(src.Children) != 1 {
		t.Fatalf("src has %d children, want 1", len(src.Children))
	}
	gen := f.Nodes[src.Children[0]]
	if gen.Name != "gen/" || gen.Code != "!!" {
		t.Errorf("unexpected gen node %+v", gen)
	}
	if len(gen.Children) != 1 || f.Nodes[gen.Children[0]].Name != "out.txt" {
		t.Error("deep entry is not nested under the pseudo-entry directory")
	}
}

func TestBuildNestedPseudoEntryBeforeDeepEntry(t *testing.T) {
	// Fold order with the pseudo-entry first: the later deep entry must nest
	// under the status-carrying directory, not duplicate it.
	f := Build([]StatusEntry{
		{Path: "src/gen/", Code: "!!"},
		{Path: "src/gen/out.txt", Code: "??"},
	})

	src := f.Nodes[f.Roots[0]]
	gen := f.Nodes[src.Children[0]]
	if gen.Code != "!!" || len(gen.Children) != 1 {
		t.Errorf("unexpected gen node %+v", gen)
	}
}

func TestBuildRenameEntry(t *testing.T) {
	f := Build([]StatusEntry{{Path: "docs/new.md", Code: "R.", OldPath: "docs/old.md"}})

	docs := f.Nodes[f.Roots[0]]
	leaf := f.Nodes[docs.Children[0]]
	if leaf.OldPath != "docs/old.md" {
		t.Errorf("OldPath = %q, want %q", leaf.OldPath, "docs/old.md")
	}
}

func TestBuildEmpty(t *testing.T) {
	f := Build(nil)
	if len(f.Roots) != 0 || len(f.Nodes) != 0 {
		t.Errorf("empty build produced %d roots, %d nodes", len(f.Roots), len(f.Nodes))
	}
}

func TestStatusEntryIsRename(t *testing.T) {
	if (models.StatusEntry{Path: "a", Code: "M."}).IsRename() {
		t.Error("entry without OldPath reported as rename")
	}
	if !(models.StatusEntry{Path: "a", Code: "R.", OldPath: "b"}).IsRename() {
		t.Error("entry with OldPath not reported as rename")
	}
}
