// Package watch re-renders the status tree whenever the repository changes.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/chmouel/git-status-tree/internal/log"
	"github.com/fsnotify/fsnotify"
)

// Debounce is the quiet window collapsed into a single refresh. Git touches
// several files per operation; refreshing once per burst is enough.
const Debounce = 400 * time.Millisecond

// Watcher follows a repository's common dir and working tree and invokes a
// refresh callback after each debounced burst of changes.
type Watcher struct {
	fsw   *fsnotify.Watcher
	roots []string
	paths map[string]struct{}
}

// New creates a watcher over the given roots. The common dir root covers
// index and ref updates; the working tree root covers file edits.
func New(roots []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:   fsw,
		roots: roots,
		paths: make(map[string]struct{}),
	}
	for _, root := range roots {
		w.addTree(root)
	}
	return w, nil
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run blocks until ctx is done, calling refresh after each debounced burst
// of filesystem changes.
func (w *Watcher) Run(ctx context.Context, refresh func()) error {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				w.maybeAddNewDir(event.Name)
			}
			if timer == nil {
				timer = time.NewTimer(Debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			refresh()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

// maybeAddNewDir registers directories created under a watch root so nested
// changes keep arriving.
func (w *Watcher) maybeAddNewDir(path string) {
	if !w.underRoot(path) {
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	w.addDir(path)
}

func (w *Watcher) underRoot(path string) bool {
	for _, root := range w.roots {
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (w *Watcher) addDir(path string) {
	if path == "" {
		return
	}
	if _, ok := w.paths[path]; ok {
		return
	}
	if err := w.fsw.Add(path); err != nil {
		log.Printf("watcher add failed for %s: %v", path, err)
		return
	}
	w.paths[path] = struct{}{}
}

func (w *Watcher) addTree(root string) {
	if root == "" {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		// The common dir is watched as its own root; the object store is
		// huge and never affects status output.
		if path != root && d.Name() == ".git" {
			return filepath.SkipDir
		}
		if d.Name() == "objects" {
			return filepath.SkipDir
		}
		w.addDir(path)
		return nil
	})
}
