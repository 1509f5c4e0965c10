// Package lookup implements the form that searches an external label source
// and turns a chosen result into a label draft.
package lookup

import (
	"context"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/taxa/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultColor is used for imported labels when no color is configured.
const DefaultColor = "#0099ff"

// Request is one search issued by the form.
type Request struct {
	// ID correlates the request across logs and traces.
	ID string
	// Seq orders requests; only the latest one may update the results.
	Seq   uint64
	Query domain.SearchQuery
}

// Form holds the state of the external lookup panel.
//
// Every Begin emits load-start and every Complete emits load-finish, also
// for failed and superseded requests. Results of a superseded request are
// discarded.
type Form struct {
	mu sync.Mutex

	source   ports.LabelSource
	notifier ports.Notifier
	sink     ports.IntentSink
	validate *validator.Validate

	sourceID   int64
	color      string
	parent     *domain.Label
	recursive  bool
	unaccepted bool

	results     []domain.ExternalLabel
	hasSearched bool
	seq         uint64
	inflight    int
}

// NewForm creates a form bound to the label source with the given id.
func NewForm(source ports.LabelSource, notifier ports.Notifier, sink ports.IntentSink, sourceID int64, color string) *Form {
	f := &Form{
		source:   source,
		notifier: notifier,
		sink:     sink,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		sourceID: sourceID,
	}
	f.SetColor(color)
	return f
}

// Search runs a complete lookup for name. The error is also routed to the
// notifier.
func (f *Form) Search(ctx context.Context, name string) error {
	req, err := f.Begin(name)
	if err != nil {
		return err
	}

	var results []domain.ExternalLabel
	defer func() {
		f.Complete(req, results, err)
	}()

	results, err = f.Fetch(ctx, req)
	return err
}

// Fetch queries the label source for req without touching the form state.
// Hosts that run lookups asynchronously call it between Begin and Complete.
func (f *Form) Fetch(ctx context.Context, req Request) ([]domain.ExternalLabel, error) {
	return f.source.Search(domain.WithRequestID(ctx, req.ID), req.Query)
}

// Begin starts a request for name and emits load-start.
func (f *Form) Begin(name string) (Request, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Request{}, domain.ErrEmptyQuery
	}

	f.mu.Lock()
	f.seq++
	f.inflight++
	req := Request{
		ID:  uuid.NewString(),
		Seq: f.seq,
		Query: domain.SearchQuery{
			SourceID:   f.sourceID,
			Query:      name,
			Unaccepted: f.unaccepted,
		},
	}
	f.mu.Unlock()

	f.emit(domain.Intent{Kind: domain.IntentLoadStart})
	return req, nil
}

// Complete finishes req and emits load-finish. Results are stored only if
// req is the latest request and err is nil; a failed request keeps the
// previous results. It reports whether req was still current.
func (f *Form) Complete(req Request, results []domain.ExternalLabel, err error) bool {
	defer f.emit(domain.Intent{Kind: domain.IntentLoadFinish})

	f.mu.Lock()
	f.inflight--
	current := req.Seq == f.seq
	f.hasSearched = true
	if current {
		if err == nil {
			if results == nil {
				results = []domain.ExternalLabel{}
			}
			f.results = results
		}
	}
	f.mu.Unlock()

	if err != nil && f.notifier != nil {
		f.notifier.Notify(zerr.With(err, "query", req.Query.Query))
	}
	return current
}

// Import builds a draft for item, validates it and emits submit.
func (f *Form) Import(item domain.ExternalLabel) (*domain.LabelDraft, error) {
	f.mu.Lock()
	draft := domain.NewLabelDraft(item, f.color, f.sourceID, f.parent, f.recursive)
	f.mu.Unlock()

	if err := f.validate.Struct(draft); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidDraft.Error()), "name", item.Name)
	}

	f.emit(domain.Intent{Kind: domain.IntentSubmit, Draft: draft})
	return draft, nil
}

// ToggleRecursive flips the recursive import flag and returns the new value.
func (f *Form) ToggleRecursive() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recursive = !f.recursive
	return f.recursive
}

// ToggleUnaccepted flips whether unaccepted names are searched and returns the new value.
func (f *Form) ToggleUnaccepted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unaccepted = !f.unaccepted
	return f.unaccepted
}

// SetParent sets the label new imports are attached to. nil imports roots.
// The form keeps a copy, imports run off the goroutine that owns the tree.
func (f *Form) SetParent(parent *domain.Label) {
	if parent != nil {
		parent = parent.Clone()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.parent = parent
}

// SetColor sets the color of new imports. An empty color resets to DefaultColor.
func (f *Form) SetColor(color string) {
	color = strings.TrimSpace(color)
	switch {
	case color == "":
		color = DefaultColor
	case color[0] != '#':
		color = "#" + color
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.color = color
}

// Parent returns the label new imports are attached to.
func (f *Form) Parent() *domain.Label {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.parent
}

// Color returns the color of new imports.
func (f *Form) Color() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.color
}

// Recursive reports whether imports bring their whole classification.
func (f *Form) Recursive() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recursive
}

// Unaccepted reports whether unaccepted names are searched.
func (f *Form) Unaccepted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unaccepted
}

// Results returns the results of the latest successful search.
func (f *Form) Results() []domain.ExternalLabel {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.ExternalLabel, len(f.results))
	copy(out, f.results)
	return out
}

// HasResults reports whether the latest search returned anything.
func (f *Form) HasResults() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.results) > 0
}

// HasSearched reports whether any search has finished.
func (f *Form) HasSearched() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasSearched
}

// Busy reports whether a request is in flight.
func (f *Form) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inflight > 0
}

func (f *Form) emit(intent domain.Intent) {
	if f.sink != nil {
		f.sink.Emit(intent)
	}
}
