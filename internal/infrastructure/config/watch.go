package config

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reports changed level files. Events carries the level name
// (file name without extension).
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches the given directories for YAML changes.
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

// Drain returns every pending level name without blocking.
func (w *Watcher) Drain() []string {
	var names []string
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return names
			}
			names = append(names, name)
		default:
			return names
		}
	}
}

func (w *Watcher) run() {
	defer func() {
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	recent := newDebouncer(debounce)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isLevelFile(event.Name) {
				continue
			}
			if !recent.allow(event.Name, time.Now()) {
				continue
			}
			select {
			case w.Events <- levelName(event.Name):
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// debouncer drops repeats of a name seen within window. Entries older than
// window are pruned on every call.
type debouncer struct {
	window time.Duration
	last   map[string]time.Time
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window: window,
		last:   make(map[string]time.Time),
	}
}

func (d *debouncer) allow(name string, now time.Time) bool {
	for n, t := range d.last {
		if now.Sub(t) >= d.window {
			delete(d.last, n)
		}
	}
	if _, ok := d.last[name]; ok {
		return false
	}
	d.last[name] = now
	return true
}

func isLevelFile(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	return ext == ".yaml" || ext == ".yml"
}

func levelName(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
