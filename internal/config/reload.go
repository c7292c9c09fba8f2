package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 500 * time.Millisecond

// Reloader watches rule and keyword files and calls their reload function
// after writes settle. Directories are watched rather than files so editors
// that replace a file by rename are still seen.
type Reloader struct {
	watcher  *fsnotify.Watcher
	targets  map[string]func() error
	log      *slog.Logger
	debounce time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewReloader creates a file watcher for the given paths. Paths whose
// directory does not exist are skipped.
func NewReloader(targets map[string]func() error, log *slog.Logger) (*Reloader, error) {
	if log == nil {
		log = slog.Default()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	r := &Reloader{
		watcher:  watcher,
		targets:  make(map[string]func() error),
		log:      log,
		debounce: defaultDebounce,
		timers:   make(map[string]*time.Timer),
	}
	dirs := make(map[string]bool)
	for p, fn := range targets {
		if p == "" || fn == nil {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		dir := filepath.Dir(abs)
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if !dirs[dir] {
			if err := watcher.Add(dir); err != nil {
				watcher.Close()
				return nil, fmt.Errorf("failed to watch %q: %w", dir, err)
			}
			dirs[dir] = true
		}
		r.targets[abs] = fn
	}
	return r, nil
}

// Watching returns the number of files being watched.
func (r *Reloader) Watching() int { return len(r.targets) }

// Run watches for file changes and reloads. Blocks until ctx is cancelled.
func (r *Reloader) Run(ctx context.Context) error {
	defer r.watcher.Close()
	defer r.stopTimers()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-r.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			name := filepath.Clean(event.Name)
			if fn, ok := r.targets[name]; ok {
				r.schedule(name, fn)
			}

		case err, ok := <-r.watcher.Errors:
			if !ok {
				return nil
			}
			r.log.Warn("file watcher error", "error", err)
		}
	}
}

// schedule debounces: the reload runs once writes to path pause.
func (r *Reloader) schedule(path string, fn func() error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.timers[path]; ok {
		t.Stop()
	}
	r.timers[path] = time.AfterFunc(r.debounce, func() {
		if err := fn(); err != nil {
			r.log.Warn("hot-reload failed, keeping previous version", "file", path, "error", err)
			return
		}
		r.log.Info("hot-reload", "file", path)
	})
}

func (r *Reloader) stopTimers() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.timers {
		t.Stop()
	}
}
