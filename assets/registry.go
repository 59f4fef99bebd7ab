package assets

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/automoto/darkvania/assets/aseprite"
	"github.com/automoto/darkvania/logging"
)

// Registry owns every loaded sprite sheet, keyed by descriptor path relative
// to the asset root. Factories ask it for sheets; it loads once and caches.
// All mutation happens on the game loop goroutine: the optional file watcher
// only posts changed paths to a channel that Poll drains each frame.
type Registry struct {
	root   string
	fsys   fs.FS
	scale  int
	sheets map[string]*aseprite.Sheet

	watcher *fsnotify.Watcher
	changes chan string
	done    chan struct{}
}

// NewRegistry roots a registry at an asset directory on disk.
func NewRegistry(root string, scale int) *Registry {
	return &Registry{
		root:   root,
		fsys:   os.DirFS(root),
		scale:  scale,
		sheets: make(map[string]*aseprite.Sheet),
	}
}

// NewRegistryFS roots a registry at an arbitrary filesystem. Watch is
// unavailable in this mode; tests use it with fstest.MapFS.
func NewRegistryFS(fsys fs.FS, scale int) *Registry {
	return &Registry{
		fsys:   fsys,
		scale:  scale,
		sheets: make(map[string]*aseprite.Sheet),
	}
}

// FS exposes the registry's asset filesystem so level loading shares the
// same root.
func (r *Registry) FS() fs.FS { return r.fsys }

// Sheet returns the sliced sheet for a descriptor path, loading it on first
// use.
func (r *Registry) Sheet(jsonPath string) (*aseprite.Sheet, error) {
	jsonPath = path.Clean(jsonPath)
	if s, ok := r.sheets[jsonPath]; ok {
		return s, nil
	}
	s, err := aseprite.Load(r.fsys, jsonPath, r.scale)
	if err != nil {
		return nil, err
	}
	r.sheets[jsonPath] = s
	logging.L().WithField("sheet", jsonPath).Debug("sheet loaded")
	return s, nil
}

// Reload re-slices an already loaded sheet in place. Unknown paths are a
// no-op; a failed reload keeps the old sheet and reports the error.
func (r *Registry) Reload(jsonPath string) error {
	jsonPath = path.Clean(jsonPath)
	old, ok := r.sheets[jsonPath]
	if !ok {
		return nil
	}
	fresh, err := aseprite.Load(r.fsys, jsonPath, r.scale)
	if err != nil {
		return fmt.Errorf("reload %s: %w", jsonPath, err)
	}
	// Swap contents so existing *Sheet references pick up the new frames.
	old.Animations = fresh.Animations
	logging.L().WithField("sheet", jsonPath).Info("sheet reloaded")
	return nil
}

// Watch starts a filesystem watcher over the asset root. Descriptor writes
// are surfaced through Poll on the game loop; nothing is mutated here.
func (r *Registry) Watch() error {
	if r.root == "" {
		return fmt.Errorf("registry has no on-disk root to watch")
	}
	if r.watcher != nil {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch assets: %w", err)
	}
	if err := addWatchTree(w, r.root); err != nil {
		w.Close()
		return fmt.Errorf("watch assets: %w", err)
	}

	r.watcher = w
	r.changes = make(chan string, 16)
	r.done = make(chan struct{})
	go r.forwardEvents()
	logging.L().WithField("root", r.root).Info("watching assets for changes")
	return nil
}

func addWatchTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(p)
		}
		return nil
	})
}

func (r *Registry) forwardEvents() {
	for {
		select {
		case <-r.done:
			return
		case ev, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !strings.HasSuffix(ev.Name, ".json") {
				continue
			}
			rel, err := filepath.Rel(r.root, ev.Name)
			if err != nil {
				continue
			}
			select {
			case r.changes <- filepath.ToSlash(rel):
			default:
				// Frame loop is behind; the next write will catch it.
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			logging.L().WithError(err).Warn("asset watcher error")
		}
	}
}

// Poll drains pending descriptor changes and reloads the affected sheets.
// Call once per frame; returns the paths that were reloaded.
func (r *Registry) Poll() []string {
	if r.changes == nil {
		return nil
	}
	var reloaded []string
	for {
		select {
		case p := <-r.changes:
			if err := r.Reload(p); err != nil {
				logging.L().WithFields(logrus.Fields{"sheet": p}).WithError(err).Warn("hot reload failed")
				continue
			}
			if _, ok := r.sheets[path.Clean(p)]; ok {
				reloaded = append(reloaded, p)
			}
		default:
			return reloaded
		}
	}
}

// Close stops the watcher. The cached sheets stay usable.
func (r *Registry) Close() {
	if r.watcher == nil {
		return
	}
	close(r.done)
	r.watcher.Close()
	r.watcher = nil
	r.changes = nil
}
