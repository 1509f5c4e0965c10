// Package watcher reports changes to label files so open trees can reload.
package watcher

import (
	"sync"
	"time"
	"unique"

	"go.trai.ch/taxa/internal/core/ports"
)

// Debouncer coalesces rapid file system events into one event per path.
// Editors often write a file several times on save; only the last
// operation seen for a path within the window is reported.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]ports.WatchOp
	order    []unique.Handle[string]
	timer    *time.Timer
	window   time.Duration
	callback func(events []ports.WatchEvent)
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(events []ports.WatchEvent)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]ports.WatchOp),
		window:   window,
		callback: callback,
	}
}

// Add records an event and restarts the window.
func (d *Debouncer) Add(event ports.WatchEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	handle := unique.Make(event.Path)
	if _, ok := d.pending[handle]; !ok {
		d.order = append(d.order, handle)
	}
	d.pending[handle] = event.Operation

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// drain returns the pending events in arrival order and resets the set.
// The caller must hold d.mu.
func (d *Debouncer) drain() []ports.WatchEvent {
	events := make([]ports.WatchEvent, 0, len(d.order))
	for _, handle := range d.order {
		events = append(events, ports.WatchEvent{Path: handle.Value(), Operation: d.pending[handle]})
	}
	d.pending = make(map[unique.Handle[string]]ports.WatchOp)
	d.order = nil
	return events
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	d.timer = nil
	if len(d.pending) == 0 {
		d.mu.Unlock()
		return
	}
	events := d.drain()
	d.mu.Unlock()

	if d.callback != nil {
		go d.callback(events)
	}
}

// Flush immediately delivers all pending events. It blocks until the
// callback returns.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Already fired.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	events := d.drain()
	d.mu.Unlock()

	if len(events) > 0 && d.callback != nil {
		d.callback(events)
	}
}

// Stop discards pending events and cancels the timer.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = make(map[unique.Handle[string]]ports.WatchOp)
	d.order = nil
}
