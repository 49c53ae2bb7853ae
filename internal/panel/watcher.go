package panel

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors one directory for external changes and signals the app
// to reload the panel. Only the panel's current directory is watched; it is
// re-pointed on every directory change.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan struct{}
	stop      chan struct{}
	debounce  *time.Timer
	mu        sync.Mutex
	dir       string
	closed    bool
}

// NewWatcher creates a watcher pointed at dir.
func NewWatcher(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsw,
		events:    make(chan struct{}, 1),
		stop:      make(chan struct{}),
		dir:       dir,
	}
	go w.run()
	return w, nil
}

// SetDir re-points the watcher at a new directory.
func (w *Watcher) SetDir(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || dir == w.dir {
		return nil
	}
	// Removing a vanished directory fails harmlessly.
	_ = w.fsWatcher.Remove(w.dir)
	if err := w.fsWatcher.Add(dir); err != nil {
		return err
	}
	w.dir = dir
	return nil
}

func (w *Watcher) run() {
	defer func() {
		w.mu.Lock()
		w.closed = true
		if w.debounce != nil {
			w.debounce.Stop()
		}
		w.mu.Unlock()
		close(w.events)
	}()

	for {
		select {
		case <-w.stop:
			return
		case _, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			w.mu.Lock()
			// Debounce: wait 100ms for more events before signaling.
			if w.debounce != nil {
				w.debounce.Stop()
			}
			w.debounce = time.AfterFunc(100*time.Millisecond, func() {
				w.mu.Lock()
				defer w.mu.Unlock()

				if w.closed {
					return
				}

				select {
				case w.events <- struct{}{}:
				default: // Channel full, skip
				}
			})
			w.mu.Unlock()
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Ignore errors, continue watching
		}
	}
}

// Events returns a channel that signals when the directory changes.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Stop shuts down the watcher.
func (w *Watcher) Stop() {
	close(w.stop)
	w.fsWatcher.Close()
}
