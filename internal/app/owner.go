package app

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/taxa/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.IntentSink = (*Owner)(nil)

// ChangeFunc receives the new collection of a tree.
type ChangeFunc func(tree string, labels []*domain.Label)

// Owner holds the authoritative label collections of a workspace and
// applies the intents trees report upward. New collections are handed to
// the change callback as copies; trees never see the owner's records, so
// their view flags may change on another goroutine.
type Owner struct {
	mu sync.Mutex

	store    ports.LabelStore
	source   ports.LabelSource
	logger   ports.Logger
	notifier ports.Notifier
	persist  bool

	importTree string
	order      []string
	trees      map[string]*ownedTree
	onChange   ChangeFunc
}

type ownedTree struct {
	path   string
	labels []*domain.Label
}

// OwnerOption configures an Owner.
type OwnerOption func(*Owner)

// WithPersistence writes changed collections back to their label files.
func WithPersistence(store ports.LabelStore) OwnerOption {
	return func(o *Owner) {
		o.store = store
		o.persist = store != nil
	}
}

// WithLabelSource enables recursive imports.
func WithLabelSource(source ports.LabelSource) OwnerOption {
	return func(o *Owner) {
		o.source = source
	}
}

// WithNotifier routes intent failures to notifier instead of the logger.
func WithNotifier(notifier ports.Notifier) OwnerOption {
	return func(o *Owner) {
		o.notifier = notifier
	}
}

// NewOwner takes ownership of the collections of ws.
func NewOwner(ws *domain.Workspace, logger ports.Logger, opts ...OwnerOption) *Owner {
	o := &Owner{
		logger:     logger,
		importTree: ws.ImportTree(),
		trees:      make(map[string]*ownedTree, len(ws.Trees)),
	}
	for _, spec := range ws.Trees {
		o.order = append(o.order, spec.Name)
		o.trees[spec.Name] = &ownedTree{
			path:   spec.LabelsPath,
			labels: domain.CloneLabels(spec.Labels),
		}
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// OnChange sets the callback that receives changed collections.
func (o *Owner) OnChange(fn ChangeFunc) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.onChange = fn
}

// Labels returns a copy of the named collection.
func (o *Owner) Labels(tree string) []*domain.Label {
	o.mu.Lock()
	defer o.mu.Unlock()

	t, ok := o.trees[tree]
	if !ok {
		return nil
	}
	return domain.CloneLabels(t.labels)
}

// TreeForPath returns the tree whose labels live in path.
func (o *Owner) TreeForPath(path string) (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, name := range o.order {
		if t := o.trees[name]; t.path != "" && t.path == path {
			return name, true
		}
	}
	return "", false
}

// Paths returns the label files of all file-backed trees.
func (o *Owner) Paths() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	var paths []string
	for _, name := range o.order {
		if p := o.trees[name].path; p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// Emit implements ports.IntentSink.
func (o *Owner) Emit(intent domain.Intent) {
	var err error

	switch intent.Kind {
	case domain.IntentDelete:
		if intent.Label != nil {
			err = o.Delete(intent.Tree, intent.Label.ID)
		}
	case domain.IntentSubmit:
		if intent.Draft != nil {
			_, err = o.Submit(context.Background(), *intent.Draft)
		}
	case domain.IntentAddFavourite, domain.IntentRemoveFavourite:
		if intent.Label != nil {
			err = o.setFavourite(intent.Tree, intent.Label.ID, intent.Kind == domain.IntentAddFavourite)
		}
	default:
	}

	if err != nil {
		o.report(err)
	}
}

// Delete removes a label that has no children.
func (o *Owner) Delete(tree string, id domain.LabelID) error {
	o.mu.Lock()
	t, err := o.tree(tree)
	if err != nil {
		o.mu.Unlock()
		return err
	}

	idx := slices.IndexFunc(t.labels, func(l *domain.Label) bool { return l.ID == id })
	if idx < 0 {
		o.mu.Unlock()
		return zerr.With(zerr.With(domain.ErrLabelNotFound, "tree", tree), "label_id", int64(id))
	}
	if slices.ContainsFunc(t.labels, func(l *domain.Label) bool { return l.HasParent(id) }) {
		o.mu.Unlock()
		return zerr.With(zerr.With(domain.ErrLabelHasChildren, "tree", tree), "label_id", int64(id))
	}

	t.labels = slices.Delete(t.labels, idx, idx+1)
	o.mu.Unlock()

	return o.commit(tree)
}

// Submit adds the label described by draft and returns it. A recursive
// draft first creates the missing ancestors from the label source's
// classification, reusing labels with a matching source id. A label whose
// source id already exists in the tree is returned unchanged.
func (o *Owner) Submit(ctx context.Context, draft domain.LabelDraft) (*domain.Label, error) {
	var chain []domain.ClassificationNode
	if draft.Recursive {
		if o.source == nil {
			return nil, zerr.With(domain.ErrLookupFailed, "source_id", draft.SourceID)
		}
		var err error
		chain, err = o.source.Classification(ctx, draft.SourceID)
		if err != nil {
			return nil, err
		}
	}

	o.mu.Lock()
	name, t, err := o.target(draft.ParentID)
	if err != nil {
		o.mu.Unlock()
		return nil, err
	}

	if existing := findSource(t.labels, draft.SourceID); existing != nil {
		existing = existing.Clone()
		o.mu.Unlock()
		o.logger.Info(fmt.Sprintf("%s is already in tree %q", existing.Name, name))
		return existing, nil
	}

	next := o.nextID()
	add := func(parent *domain.LabelID, labelName, sourceID string) *domain.Label {
		l := &domain.Label{
			ID:       next,
			ParentID: parent,
			Name:     labelName,
			Color:    draft.Color,
			SourceID: sourceID,
		}
		next++
		t.labels = append(t.labels, l)
		return l
	}

	parent := draft.ParentID
	for _, node := range chain {
		if existing := findSource(t.labels, node.SourceID); existing != nil {
			parent = existing.ID.Ptr()
			continue
		}
		parent = add(parent, node.Name, node.SourceID).ID.Ptr()
	}
	label := add(parent, draft.Name, draft.SourceID).Clone()
	o.mu.Unlock()

	if err := o.commit(name); err != nil {
		return label, err
	}
	return label, nil
}

// Replace swaps the named collection, for example after its file changed
// on disk. The tree receiving the change keeps its own view state.
func (o *Owner) Replace(tree string, labels []*domain.Label) error {
	o.mu.Lock()
	t, err := o.tree(tree)
	if err != nil {
		o.mu.Unlock()
		return err
	}
	t.labels = domain.CloneLabels(labels)
	changed := domain.CloneLabels(t.labels)
	onChange := o.onChange
	o.mu.Unlock()

	if onChange != nil {
		onChange(tree, changed)
	}
	return nil
}

func (o *Owner) setFavourite(tree string, id domain.LabelID, favourite bool) error {
	o.mu.Lock()
	t, err := o.tree(tree)
	if err != nil {
		o.mu.Unlock()
		return err
	}
	for _, l := range t.labels {
		if l.ID == id {
			l.Favourite = favourite
		}
	}
	o.mu.Unlock()

	return o.save(tree)
}

// commit saves the named collection and hands a copy to the change callback.
func (o *Owner) commit(tree string) error {
	o.mu.Lock()
	labels := domain.CloneLabels(o.trees[tree].labels)
	onChange := o.onChange
	o.mu.Unlock()

	if onChange != nil {
		onChange(tree, labels)
	}
	return o.save(tree)
}

func (o *Owner) save(tree string) error {
	if !o.persist {
		return nil
	}

	o.mu.Lock()
	t := o.trees[tree]
	path := t.path
	labels := domain.CloneLabels(t.labels)
	o.mu.Unlock()

	if path == "" {
		return nil
	}
	if err := o.store.SaveLabels(path, labels); err != nil {
		return zerr.With(err, "tree", tree)
	}
	return nil
}

// target picks the tree a new label goes to: the tree holding the parent,
// preferring the import tree, or the import tree itself. The caller must
// hold o.mu.
func (o *Owner) target(parent *domain.LabelID) (string, *ownedTree, error) {
	if parent == nil {
		t, err := o.tree(o.importTree)
		return o.importTree, t, err
	}

	candidates := append([]string{o.importTree}, o.order...)
	for _, name := range candidates {
		t, ok := o.trees[name]
		if !ok {
			continue
		}
		if slices.ContainsFunc(t.labels, func(l *domain.Label) bool { return l.ID == *parent }) {
			return name, t, nil
		}
	}
	return "", nil, zerr.With(domain.ErrUnknownParent, "parent_id", int64(*parent))
}

// tree returns the named collection. The caller must hold o.mu.
func (o *Owner) tree(name string) (*ownedTree, error) {
	t, ok := o.trees[name]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownTree, "tree", name)
	}
	return t, nil
}

// nextID returns an id above every id of every tree, so a label moved
// between files keeps a unique id. The caller must hold o.mu.
func (o *Owner) nextID() domain.LabelID {
	var top domain.LabelID
	for _, t := range o.trees {
		for _, l := range t.labels {
			top = max(top, l.ID)
		}
	}
	return top + 1
}

func (o *Owner) report(err error) {
	if o.notifier != nil {
		o.notifier.Notify(err)
		return
	}
	o.logger.Error(err)
}

func findSource(labels []*domain.Label, sourceID string) *domain.Label {
	if sourceID == "" {
		return nil
	}
	for _, l := range labels {
		if l.SourceID == sourceID {
			return l
		}
	}
	return nil
}
