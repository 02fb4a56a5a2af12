// Package watch monitors the launcher theme file and re-enters the icon
// rebuild path when it changes.
//
// Events are debounced so an editor's write-then-rename dance coalesces
// into one callback, and the file content is hashed before each callback
// so racing or spurious events with identical content trigger no redundant
// rebuild. The callback must therefore be idempotent, which the icon
// rebuild path is: icons are rendered file by file and cache writes are
// last-writer-wins.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/danieljhkim/projswitch/internal/hash"
)

// defaultDebounce is the quiet period after the last filesystem event
// before the callback fires.
const defaultDebounce = 500 * time.Millisecond

// Config holds the parameters for a Watcher.
type Config struct {
	// Path is the theme file to watch.
	Path string

	// Debounce is the quiet period after the last event before the
	// callback fires. Zero or negative values fall back to the default.
	Debounce time.Duration

	// Hasher fingerprints the file content to suppress callbacks for
	// events that changed nothing.
	Hasher hash.Hasher

	// OnChange is invoked after the debounce window closes when the file
	// content actually changed. Errors are logged, not fatal.
	OnChange func(ctx context.Context) error

	// Logger receives watch diagnostics.
	Logger *log.Logger
}

// Watcher monitors a single file and fires a debounced, content-gated
// callback when it changes.
type Watcher struct {
	cfg      Config
	fsw      *fsnotify.Watcher
	debounce time.Duration

	mu       sync.Mutex
	lastHash string
}

// New creates a Watcher for cfg.Path. The parent directory is registered
// with fsnotify rather than the file itself, so atomic replacements
// (write temp + rename) keep being observed.
func New(cfg Config) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("watch: no path configured")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: failed to create fsnotify watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(cfg.Path)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch: failed to watch %s: %w", filepath.Dir(cfg.Path), err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &Watcher{cfg: cfg, fsw: fsw, debounce: debounce}

	// Seed the content hash so startup does not count as a change.
	if h, err := cfg.Hasher.HashFile(cfg.Path); err == nil {
		w.lastHash = h
	}

	return w, nil
}

// Run blocks until ctx is cancelled, dispatching debounced callbacks for
// theme file changes. It returns nil on clean cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		_ = w.fsw.Close()
	}()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		var fire <-chan time.Time
		if timer != nil {
			fire = timer.C
		}

		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watch: event channel closed unexpectedly")
			}
			if filepath.Clean(evt.Name) != filepath.Clean(w.cfg.Path) {
				continue
			}
			if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watch: error channel closed unexpectedly")
			}
			w.cfg.Logger.Warn("watch error", "err", err)

		case <-fire:
			timer = nil
			w.dispatch(ctx)
		}
	}
}

// dispatch invokes the callback if the file content actually changed since
// the last dispatch. Exported indirectly through Run; also safe to call
// from tests.
func (w *Watcher) dispatch(ctx context.Context) {
	current, err := w.cfg.Hasher.HashFile(w.cfg.Path)
	if err != nil {
		// File gone or unreadable mid-rename: wait for the next event.
		w.cfg.Logger.Debug("theme file unreadable, skipping", "err", err)
		return
	}

	w.mu.Lock()
	unchanged := current == w.lastHash
	w.lastHash = current
	w.mu.Unlock()

	if unchanged {
		w.cfg.Logger.Debug("theme content unchanged, skipping rebuild")
		return
	}

	w.cfg.Logger.Info("theme changed, rebuilding icons")
	if w.cfg.OnChange != nil {
		if err := w.cfg.OnChange(ctx); err != nil {
			w.cfg.Logger.Warn("icon rebuild failed", "err", err)
		}
	}
}
