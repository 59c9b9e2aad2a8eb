// Package watcher re-runs a callback when the base menu or a template
// directory changes on disk.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mark3labs/templatetouch/internal/logger"
)

// DefaultDebounce groups bursts of events into one callback.
const DefaultDebounce = 250 * time.Millisecond

// Watcher watches a fixed set of directories (not recursively) and calls
// OnChange once per burst of relevant events.
type Watcher struct {
	watcher  *fsnotify.Watcher
	dirs     []string
	ignore   map[string]bool // cleaned paths whose events never trigger
	onChange func()
	debounce time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	done    chan struct{}
	stopped chan struct{}
}

// New creates a watcher for dirs. Events on any path in ignore are dropped;
// pass the generated menu file there so writing it does not retrigger.
func New(dirs, ignore []string, onChange func()) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ignored := make(map[string]bool, len(ignore))
	for _, p := range ignore {
		ignored[filepath.Clean(p)] = true
	}

	return &Watcher{
		watcher:  w,
		dirs:     dirs,
		ignore:   ignored,
		onChange: onChange,
		debounce: DefaultDebounce,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}, nil
}

// SetDebounce changes the debounce interval. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Start adds the watches and starts the event loop.
func (w *Watcher) Start() error {
	for _, dir := range w.dirs {
		if err := w.watcher.Add(dir); err != nil {
			_ = w.watcher.Close()
			return err
		}
	}

	go w.eventLoop()
	logger.Info("Watching %d directories for template changes", len(w.dirs))
	return nil
}

// Stop shuts down the event loop and cancels a pending callback.
func (w *Watcher) Stop() error {
	close(w.done)
	<-w.stopped

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	return w.watcher.Close()
}

func (w *Watcher) eventLoop() {
	defer close(w.stopped)

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return
	}
	if w.ignore[filepath.Clean(event.Name)] {
		return
	}

	logger.Debug("Watcher event: %s", event)
	w.schedule()
}

// schedule (re)arms the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.onChange)
}
