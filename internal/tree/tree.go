// Package tree folds status entries into a directory forest and renders it.
package tree

import (
	"strings"

	"github.com/chmouel/git-status-tree/internal/models"
)

// StatusEntry is one parsed record ready for folding.
type StatusEntry = models.StatusEntry

// Node is one directory or file entry in the forest. Nodes live in the
// forest's arena and reference their children by index, in insertion order.
type Node struct {
	Name     string // Final path segment; keeps a trailing "/" for directory pseudo-entries
	Path     string // Full path without trailing slash
	Code     string // XY status pair; empty for plain directories
	OldPath  string // Rename source, empty otherwise
	IsDir    bool
	Children []int
}

// HasStatus reports whether the node carries a status of its own. Plain
// directories never do; directory pseudo-entries (e.g. an ignored directory
// reported as a single unit) do.
func (n *Node) HasStatus() bool {
	return n.Code != ""
}

// Forest is the rooted forest built by folding sorted entries. Directories
// are memoized by full prefix path so shared prefixes resolve to a single
// node.
type Forest struct {
	Nodes []Node
	Roots []int

	dirs map[string]int
}

// Build folds the already-sorted entries into a forest. Entries are assumed
// well formed and deduplicated (the parser enforces both); Build performs no
// validation of its own.
func Build(entries []StatusEntry) *Forest {
	f := &Forest{dirs: make(map[string]int)}
	for _, e := range entries {
		f.add(e)
	}
	return f
}

func (f *Forest) add(e StatusEntry) {
	trailing := strings.HasSuffix(e.Path, "/")
	trimmed := strings.TrimSuffix(e.Path, "/")
	segments := strings.Split(trimmed, "/")
	name := segments[len(segments)-1]

	// Directory pseudo-entry: git reports the whole directory as one unit
	// (status --ignored and friends). The directory node itself carries the
	// status, whether it already exists from a deeper entry or not.
	if trailing {
		if idx, ok := f.dirs[trimmed]; ok {
			f.Nodes[idx].Name = name + "/"
			f.Nodes[idx].Code = e.Code
			f.Nodes[idx].OldPath = e.OldPath
			return
		}
		idx := f.newNode(Node{Name: name + "/", Path: trimmed, Code: e.Code, OldPath: e.OldPath, IsDir: true})
		f.attach(segments, idx)
		f.dirs[trimmed] = idx
		return
	}

	idx := f.newNode(Node{Name: name, Path: trimmed, Code: e.Code, OldPath: e.OldPath})
	f.attach(segments, idx)
}

// attach links a freshly created node under its parent directory, creating
// the directory chain above it as needed. Single-segment paths become roots.
func (f *Forest) attach(segments []string, idx int) {
	if len(segments) == 1 {
		f.Roots = append(f.Roots, idx)
		return
	}
	parent := f.dir(strings.Join(segments[:len(segments)-1], "/"))
	f.Nodes[parent].Children = append(f.Nodes[parent].Children, idx)
}

// dir returns the node index for a directory prefix, creating the chain up
// to it on first request. Creation is idempotent: repeated requests return
// the same node untouched.
func (f *Forest) dir(path string) int {
	if idx, ok := f.dirs[path]; ok {
		return idx
	}

	var idx int
	if i := strings.LastIndex(path, "/"); i < 0 {
		idx = f.newNode(Node{Name: path, Path: path, IsDir: true})
		f.Roots = append(f.Roots, idx)
	} else {
		parent := f.dir(path[:i])
		idx = f.newNode(Node{Name: path[i+1:], Path: path, IsDir: true})
		f.Nodes[parent].Children = append(f.Nodes[parent].Children, idx)
	}
	f.dirs[path] = idx
	return idx
}

func (f *Forest) newNode(n Node) int {
	f.Nodes = append(f.Nodes, n)
	return len(f.Nodes) - 1
}
