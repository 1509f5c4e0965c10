package labeltree

import (
	"fmt"

	"github.com/sahilm/fuzzy"
	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/taxa/internal/core/ports"
)

// Row is one visible line of a rendered tree.
type Row struct {
	Label       *domain.Label
	Depth       int
	HasChildren bool
	// Last reports whether the label is the last of its siblings.
	Last bool
}

// Tree holds the view state of one label collection.
//
// A standalone tree applies its own select and deselect intents and only
// reports the others. An embedded tree only reports intents and changes
// state when its broadcaster tells it to.
type Tree struct {
	name      string
	opts      domain.TreeOptions
	index     *Index
	collapsed bool

	sink        ports.IntentSink
	broadcaster ports.Broadcaster
	logger      ports.Logger
	unsubscribe func()
}

var _ ports.Listener = (*Tree)(nil)

// Option configures a Tree.
type Option func(*Tree)

// WithSink sets where emitted intents go.
func WithSink(sink ports.IntentSink) Option {
	return func(t *Tree) {
		t.sink = sink
	}
}

// WithBroadcaster subscribes an embedded tree to container events.
func WithBroadcaster(b ports.Broadcaster) Option {
	return func(t *Tree) {
		t.broadcaster = b
	}
}

// WithLogger sets the logger used for data integrity warnings.
func WithLogger(l ports.Logger) Option {
	return func(t *Tree) {
		t.logger = l
	}
}

// New creates a tree over labels.
func New(name string, labels []*domain.Label, opts domain.TreeOptions, options ...Option) *Tree {
	t := &Tree{
		name: name,
		opts: opts,
	}
	for _, o := range options {
		o(t)
	}

	t.SetLabels(labels)

	if !opts.Standalone && t.broadcaster != nil {
		t.unsubscribe = t.broadcaster.Subscribe(t)
	}
	return t
}

// Name returns the tree's title.
func (t *Tree) Name() string {
	return t.name
}

// Options returns the options the tree was created with.
func (t *Tree) Options() domain.TreeOptions {
	return t.opts
}

// Index returns the current index.
func (t *Tree) Index() *Index {
	return t.index
}

// Labels returns the collection the tree was last built from.
func (t *Tree) Labels() []*domain.Label {
	return t.index.Labels()
}

// Has reports whether the tree contains a label with the given id.
func (t *Tree) Has(id domain.LabelID) bool {
	return t.index.Has(id)
}

// Collapsed reports whether the whole tree is hidden.
func (t *Tree) Collapsed() bool {
	return t.collapsed
}

// SetLabels replaces the collection and rebuilds the index. New records
// take over the expanded and selected flags of the record with the same id.
func (t *Tree) SetLabels(labels []*domain.Label) {
	if t.index != nil {
		for _, l := range labels {
			if prev, ok := t.index.Lookup(l.ID); ok && prev != l {
				l.Expanded = prev.Expanded
				l.Selected = prev.Selected
			}
		}
	}
	t.index = NewIndex(labels, t.opts.Flat)

	for _, id := range t.index.Duplicates() {
		t.warn(fmt.Sprintf("tree %q: duplicate label id %s, the last occurrence wins", t.name, id))
	}
	for _, l := range t.index.Orphans() {
		t.warn(fmt.Sprintf("tree %q: label %s references missing parent %s", t.name, l.ID, l.ParentOrZero()))
	}
}

// Sync rebuilds the index if any id or parent id of the current collection
// changed since the last build. It reports whether a rebuild happened.
func (t *Tree) Sync() bool {
	if Fingerprint(t.index.Labels()) == t.index.Fingerprint() {
		return false
	}
	t.SetLabels(t.index.Labels())
	return true
}

// Close detaches the tree from its broadcaster.
func (t *Tree) Close() {
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}
}

// Select marks the label as selected, uncollapses the tree and expands the
// label's ancestors. Labels not in the tree are ignored. Without multiselect
// every other label of the tree is deselected first.
func (t *Tree) Select(label *domain.Label) {
	target, ok := t.own(label)
	if !ok {
		return
	}

	if !t.opts.Multiselect {
		t.ClearSelected()
	}

	target.Selected = true
	t.collapsed = false

	if t.opts.Flat {
		return
	}

	chain, err := t.index.AncestorChain(target)
	if err != nil {
		t.warn(fmt.Sprintf("tree %q: %v", t.name, err))
	}
	for _, id := range chain {
		if parent, ok := t.index.Lookup(id); ok {
			parent.Expanded = true
		}
	}
}

// Deselect clears the label's selected flag.
func (t *Tree) Deselect(label *domain.Label) {
	if target, ok := t.own(label); ok {
		target.Selected = false
	}
}

// ClearSelected deselects every label of the tree.
func (t *Tree) ClearSelected() {
	for _, l := range t.index.Labels() {
		l.Selected = false
	}
}

// ToggleCollapse hides or shows the whole tree.
func (t *Tree) ToggleCollapse() {
	t.collapsed = !t.collapsed
}

// AddFavourite marks the label as favourite.
func (t *Tree) AddFavourite(label *domain.Label) {
	if target, ok := t.own(label); ok {
		target.Favourite = true
	}
}

// RemoveFavourite clears the label's favourite flag.
func (t *Tree) RemoveFavourite(label *domain.Label) {
	if target, ok := t.own(label); ok {
		target.Favourite = false
	}
}

// ToggleExpanded opens or closes a label. Labels without children stay closed.
func (t *Tree) ToggleExpanded(label *domain.Label) {
	if target, ok := t.own(label); ok {
		t.SetExpanded(target, !target.Expanded)
	}
}

// SetExpanded opens or closes a label. Labels without children stay closed.
func (t *Tree) SetExpanded(label *domain.Label, expanded bool) {
	target, ok := t.own(label)
	if !ok {
		return
	}
	target.Expanded = expanded && t.index.HasChildren(target.ID)
}

// OnSelect implements ports.Listener.
func (t *Tree) OnSelect(tree string, label *domain.Label) {
	if t.addressed(tree) {
		t.Select(label)
	}
}

// OnDeselect implements ports.Listener.
func (t *Tree) OnDeselect(tree string, label *domain.Label) {
	if t.addressed(tree) {
		t.Deselect(label)
	}
}

// OnClear implements ports.Listener.
func (t *Tree) OnClear() { t.ClearSelected() }

// OnAddFavourite implements ports.Listener.
func (t *Tree) OnAddFavourite(tree string, label *domain.Label) {
	if t.addressed(tree) {
		t.AddFavourite(label)
	}
}

// OnRemoveFavourite implements ports.Listener.
func (t *Tree) OnRemoveFavourite(tree string, label *domain.Label) {
	if t.addressed(tree) {
		t.RemoveFavourite(label)
	}
}

// addressed reports whether a broadcast for tree concerns t.
func (t *Tree) addressed(tree string) bool {
	return tree == "" || tree == t.name
}

// EmitSelect reports a select intent. A standalone tree applies it first.
func (t *Tree) EmitSelect(label *domain.Label) {
	if t.opts.Standalone {
		t.Select(label)
	}
	t.emit(domain.IntentSelect, label)
}

// EmitDeselect reports a deselect intent. A standalone tree applies it first.
func (t *Tree) EmitDeselect(label *domain.Label) {
	if t.opts.Standalone {
		t.Deselect(label)
	}
	t.emit(domain.IntentDeselect, label)
}

// ToggleSelect emits deselect for a selected label and select otherwise.
func (t *Tree) ToggleSelect(label *domain.Label) {
	if label.Selected {
		t.EmitDeselect(label)
		return
	}
	t.EmitSelect(label)
}

// EmitDelete asks the owner to delete the label. It does nothing unless
// the tree is deletable.
func (t *Tree) EmitDelete(label *domain.Label) {
	if !t.opts.Deletable {
		return
	}
	t.emit(domain.IntentDelete, label)
}

// EmitAddFavourite reports an add-favourite intent when favourites are shown.
// Favourites only change through a broadcast, also for standalone trees.
func (t *Tree) EmitAddFavourite(label *domain.Label) {
	if !t.opts.ShowFavourites {
		return
	}
	t.emit(domain.IntentAddFavourite, label)
}

// EmitRemoveFavourite reports a remove-favourite intent when favourites are shown.
func (t *Tree) EmitRemoveFavourite(label *domain.Label) {
	if !t.opts.ShowFavourites {
		return
	}
	t.emit(domain.IntentRemoveFavourite, label)
}

// ToggleFavourite emits remove-favourite for favourites and add-favourite otherwise.
func (t *Tree) ToggleFavourite(label *domain.Label) {
	if label.Favourite {
		t.EmitRemoveFavourite(label)
		return
	}
	t.EmitAddFavourite(label)
}

// Selected returns the selected labels in collection order.
func (t *Tree) Selected() []*domain.Label {
	return t.filter(func(l *domain.Label) bool { return l.Selected })
}

// Favourites returns the favourite labels in collection order.
func (t *Tree) Favourites() []*domain.Label {
	return t.filter(func(l *domain.Label) bool { return l.Favourite })
}

// Rows returns the visible labels depth first. Children of closed labels
// are skipped and a collapsed tree has no rows.
func (t *Tree) Rows() []Row {
	if t.collapsed {
		return nil
	}

	var rows []Row
	seen := make(map[*domain.Label]struct{}, t.index.Len())

	var walk func(siblings []*domain.Label, depth int)
	walk = func(siblings []*domain.Label, depth int) {
		for i, l := range siblings {
			if _, ok := seen[l]; ok {
				continue
			}
			seen[l] = struct{}{}

			hasChildren := t.index.HasChildren(l.ID)
			rows = append(rows, Row{
				Label:       l,
				Depth:       depth,
				HasChildren: hasChildren,
				Last:        i == len(siblings)-1,
			})
			if hasChildren && l.Expanded {
				walk(t.index.ChildrenOf(&l.ID), depth+1)
			}
		}
	}
	walk(t.index.Roots(), 0)

	return rows
}

// Search returns labels whose names fuzzy-match query, best match first.
func (t *Tree) Search(query string) []*domain.Label {
	if query == "" {
		return nil
	}

	labels := t.index.Labels()
	matches := fuzzy.FindFrom(query, labelNames(labels))
	out := make([]*domain.Label, 0, len(matches))
	for _, m := range matches {
		out = append(out, labels[m.Index])
	}
	return out
}

// labelNames adapts a label slice to fuzzy.Source.
type labelNames []*domain.Label

func (n labelNames) String(i int) string { return n[i].Name }
func (n labelNames) Len() int            { return len(n) }

// own resolves label to the tree's record with the same id.
func (t *Tree) own(label *domain.Label) (*domain.Label, bool) {
	if label == nil {
		return nil, false
	}
	return t.index.Lookup(label.ID)
}

func (t *Tree) emit(kind domain.IntentKind, label *domain.Label) {
	if t.sink == nil || label == nil {
		return
	}
	t.sink.Emit(domain.Intent{
		Kind:  kind,
		Tree:  t.name,
		Label: label,
	})
}

func (t *Tree) filter(keep func(*domain.Label) bool) []*domain.Label {
	var out []*domain.Label
	for _, l := range t.index.Labels() {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}

func (t *Tree) warn(msg string) {
	if t.logger != nil {
		t.logger.Warn(msg)
	}
}
