// Package notify collects errors that should be shown to the user.
package notify

import (
	"sync"

	"go.trai.ch/taxa/internal/core/ports"
)

// DefaultLimit is the number of messages kept by default.
const DefaultLimit = 5

var _ ports.Notifier = (*Notifier)(nil)

// Notifier logs every error and keeps the most recent messages for display.
type Notifier struct {
	logger ports.Logger
	limit  int

	mu        sync.Mutex
	messages  []string
	observers []func(err error)
}

// New creates a notifier that keeps at most limit messages.
func New(logger ports.Logger, limit int) *Notifier {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Notifier{
		logger: logger,
		limit:  limit,
	}
}

// Notify implements ports.Notifier. Nil errors are ignored.
func (n *Notifier) Notify(err error) {
	if err == nil {
		return
	}
	n.logger.Error(err)

	n.mu.Lock()
	n.messages = append(n.messages, err.Error())
	if over := len(n.messages) - n.limit; over > 0 {
		n.messages = append(n.messages[:0], n.messages[over:]...)
	}
	observers := append([]func(error){}, n.observers...)
	n.mu.Unlock()

	for _, fn := range observers {
		fn(err)
	}
}

// Messages returns the kept messages, oldest first.
func (n *Notifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

// Clear drops all kept messages.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = nil
}

// Observe registers fn to be called after every notification.
func (n *Notifier) Observe(fn func(err error)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.observers = append(n.observers, fn)
}
