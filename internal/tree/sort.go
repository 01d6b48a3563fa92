package tree

import (
	"sort"
	"strings"

	"github.com/chmouel/git-status-tree/internal/models"
)

// SortEntries converts the parsed mappings into a deterministic fold order:
// deepest paths first, lexicographic within a depth. Deeper entries must be
// folded in before a shallower pseudo-directory entry for the same prefix can
// claim its node.
func SortEntries(codes, renames map[string]string) []models.StatusEntry {
	entries := make([]models.StatusEntry, 0, len(codes))
	for path, code := range codes {
		entries = append(entries, models.StatusEntry{
			Path:    path,
			Code:    code,
			OldPath: renames[path],
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		di := pathDepth(entries[i].Path)
		dj := pathDepth(entries[j].Path)
		if di != dj {
			return di > dj
		}
		return entries[i].Path < entries[j].Path
	})

	return entries
}

// pathDepth counts slash-separated segments the way the sort key needs them:
// a trailing slash still contributes a segment, so "dir/" orders ahead of "dir".
func pathDepth(path string) int {
	return strings.Count(path, "/") + 1
}
