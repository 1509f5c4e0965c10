package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"
	"time"
	"unique"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/taxa/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 50 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify. Editors that save by
// renaming a temporary file over the original drop the inode being watched,
// so the parent directories are watched and events are filtered by path.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	debouncer *Debouncer

	mu      sync.Mutex
	watched map[unique.Handle[string]]struct{}
	events  chan ports.WatchEvent
	closed  bool
}

// NewWatcher creates a new file system watcher.
func NewWatcher(logger ports.Logger, window time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatcherFailed.Error())
	}
	w := &Watcher{
		fsWatcher: fsw,
		logger:    logger,
		watched:   make(map[unique.Handle[string]]struct{}),
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}
	w.debouncer = NewDebouncer(window, w.publish)
	return w, nil
}

// Start begins watching the given files.
func (w *Watcher) Start(ctx context.Context, paths []string) error {
	dirs := make(map[string]struct{})

	w.mu.Lock()
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.mu.Unlock()
			return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", p)
		}
		w.watched[unique.Make(abs)] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	w.mu.Unlock()

	for dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "dir", dir)
		}
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of debounced file events. It ends when the
// watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer w.shutdown()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if watchEvent, ok := w.convertEvent(event); ok {
				w.debouncer.Add(watchEvent)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error: " + err.Error())
		}
	}
}

// shutdown drops pending events and closes the event stream.
func (w *Watcher) shutdown() {
	w.debouncer.Stop()

	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	close(w.events)
}

// publish forwards debounced events. Events are dropped when the consumer
// falls behind or the watcher has stopped.
func (w *Watcher) publish(events []ports.WatchEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	for _, e := range events {
		select {
		case w.events <- e:
		default:
			w.logger.Warn("dropping file event for " + e.Path)
		}
	}
}

func (w *Watcher) convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	path := filepath.Clean(event.Name)

	w.mu.Lock()
	_, ok := w.watched[unique.Make(path)]
	w.mu.Unlock()
	if !ok {
		return ports.WatchEvent{}, false
	}

	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}
	return ports.WatchEvent{Path: path, Operation: op}, true
}
