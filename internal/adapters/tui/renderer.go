package tui

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/taxa/internal/core/ports"
)

// EventBufferSize is the number of notices and request events queued for
// the UI before new ones are dropped. Label changes are never dropped.
const EventBufferSize = 256

var _ ports.Renderer = (*Renderer)(nil)

// Renderer wraps the picker model as a ports.Renderer.
//
// Events may be raised from inside Update, where program.Send would block,
// so they are queued and delivered by a separate goroutine. Label changes
// carry whole collections and are coalesced per tree, only the latest one
// is delivered.
type Renderer struct {
	program *tea.Program
	model   *Model
	events  chan tea.Msg
	done    chan struct{}
	errCh   chan error
	once    sync.Once

	mu      sync.Mutex
	pending map[string][]*domain.Label
	order   []string
	wake    chan struct{}
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		model:   model,
		events:  make(chan tea.Msg, EventBufferSize),
		done:    make(chan struct{}),
		errCh:   make(chan error, 1),
		pending: make(map[string][]*domain.Label),
		wake:    make(chan struct{}, 1),
	}
}

// Model returns the hosted model.
func (r *Renderer) Model() *Model {
	return r.model
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go r.forward()
	go func() {
		_, err := r.program.Run()
		r.shutdown()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnLabelsChanged forwards a new collection to the TUI. It replaces any
// collection of the same tree that was not delivered yet.
func (r *Renderer) OnLabelsChanged(tree string, labels []*domain.Label) {
	r.mu.Lock()
	if _, ok := r.pending[tree]; !ok {
		r.order = append(r.order, tree)
	}
	r.pending[tree] = labels
	r.mu.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// OnNotice forwards an error notice to the TUI.
func (r *Renderer) OnNotice(err error) {
	r.enqueue(MsgNotice{Err: err})
}

// OnRequestComplete forwards a finished outbound request to the TUI.
func (r *Renderer) OnRequestComplete(name string, duration time.Duration, err error) {
	r.enqueue(MsgRequestComplete{Name: name, Duration: duration, Err: err})
}

func (r *Renderer) enqueue(msg tea.Msg) {
	select {
	case <-r.done:
	case r.events <- msg:
	default:
	}
}

func (r *Renderer) forward() {
	for {
		select {
		case <-r.done:
			return
		case msg := <-r.events:
			r.program.Send(msg)
		case <-r.wake:
			for _, msg := range r.takeChanges() {
				r.program.Send(msg)
			}
		}
	}
}

// takeChanges empties the pending label changes in arrival order.
func (r *Renderer) takeChanges() []MsgLabelsChanged {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]MsgLabelsChanged, 0, len(r.order))
	for _, tree := range r.order {
		out = append(out, MsgLabelsChanged{Tree: tree, Labels: r.pending[tree]})
	}
	clear(r.pending)
	r.order = r.order[:0]
	return out
}

func (r *Renderer) shutdown() {
	r.once.Do(func() { close(r.done) })
}
