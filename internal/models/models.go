// Package models defines the data objects shared across git-status-tree packages.
package models

// StatusEntry represents one parsed porcelain v2 record, ready for folding
// into the directory tree.
type StatusEntry struct {
	Path    string // Forward-slash separated, trailing "/" only for directory pseudo-entries
	Code    string // XY status pair (e.g. "M.", ".M"), or "??" / "!!"
	OldPath string // Prior path for renames/copies, empty otherwise
}

// IsRename reports whether the entry carries a rename/copy source.
func (e StatusEntry) IsRename() bool {
	return e.OldPath != ""
}
