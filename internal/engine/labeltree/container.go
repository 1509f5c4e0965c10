package labeltree

import (
	"sync"

	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/taxa/internal/core/ports"
	"go.trai.ch/zerr"
)

// Selection is a selected label together with the tree it lives in.
type Selection struct {
	Tree  string
	Label *domain.Label
}

// Container hosts embedded trees. It receives their raw intents, rebroadcasts
// state changes to every tree and forwards all intents to its owner.
//
// Without multiselect a select intent first clears every tree, so at most
// one label is selected across the whole container. Broadcasts carry the
// emitting tree, since ids are only unique within one tree.
type Container struct {
	mu          sync.Mutex
	multiselect bool
	owner       ports.IntentSink
	logger      ports.Logger

	trees     []*Tree
	listeners []subscription
	nextSubID int
}

type subscription struct {
	id int
	l  ports.Listener
}

var (
	_ ports.Broadcaster = (*Container)(nil)
	_ ports.IntentSink  = (*Container)(nil)
)

// NewContainer creates an empty container. owner may be nil.
func NewContainer(multiselect bool, owner ports.IntentSink, logger ports.Logger) *Container {
	return &Container{
		multiselect: multiselect,
		owner:       owner,
		logger:      logger,
	}
}

// AddTree creates an embedded tree and subscribes it to the container.
func (c *Container) AddTree(name string, labels []*domain.Label, opts domain.TreeOptions) (*Tree, error) {
	if _, ok := c.Tree(name); ok {
		return nil, zerr.With(domain.ErrDuplicateTreeName, "tree", name)
	}

	opts.Standalone = false
	t := New(name, labels, opts,
		WithSink(c),
		WithBroadcaster(c),
		WithLogger(c.logger),
	)

	c.mu.Lock()
	c.trees = append(c.trees, t)
	c.mu.Unlock()

	return t, nil
}

// Tree returns the tree with the given name.
func (c *Container) Tree(name string) (*Tree, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, t := range c.trees {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

// Trees returns the trees in the order they were added.
func (c *Container) Trees() []*Tree {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*Tree, len(c.trees))
	copy(out, c.trees)
	return out
}

// SetLabels replaces the collection of the named tree.
func (c *Container) SetLabels(name string, labels []*domain.Label) error {
	t, ok := c.Tree(name)
	if !ok {
		return zerr.With(domain.ErrUnknownTree, "tree", name)
	}
	t.SetLabels(labels)
	return nil
}

// Multiselect reports whether selections may span several labels.
func (c *Container) Multiselect() bool {
	return c.multiselect
}

// Emit implements ports.IntentSink for the embedded trees.
func (c *Container) Emit(intent domain.Intent) {
	switch intent.Kind {
	case domain.IntentSelect:
		if !c.multiselect {
			c.BroadcastClear()
		}
		c.BroadcastSelect(intent.Tree, intent.Label)
	case domain.IntentDeselect:
		c.BroadcastDeselect(intent.Tree, intent.Label)
	case domain.IntentAddFavourite:
		c.BroadcastAddFavourite(intent.Tree, intent.Label)
	case domain.IntentRemoveFavourite:
		c.BroadcastRemoveFavourite(intent.Tree, intent.Label)
	default:
	}

	if c.owner != nil {
		c.owner.Emit(intent)
	}
}

// Subscribe implements ports.Broadcaster.
func (c *Container) Subscribe(l ports.Listener) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextSubID++
	id := c.nextSubID
	c.listeners = append(c.listeners, subscription{id: id, l: l})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.listeners {
			if s.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// BroadcastSelect implements ports.Broadcaster.
func (c *Container) BroadcastSelect(tree string, label *domain.Label) {
	c.each(func(l ports.Listener) { l.OnSelect(tree, label) })
}

// BroadcastDeselect implements ports.Broadcaster.
func (c *Container) BroadcastDeselect(tree string, label *domain.Label) {
	c.each(func(l ports.Listener) { l.OnDeselect(tree, label) })
}

// BroadcastClear implements ports.Broadcaster.
func (c *Container) BroadcastClear() {
	c.each(func(l ports.Listener) { l.OnClear() })
}

// BroadcastAddFavourite implements ports.Broadcaster.
func (c *Container) BroadcastAddFavourite(tree string, label *domain.Label) {
	c.each(func(l ports.Listener) { l.OnAddFavourite(tree, label) })
}

// BroadcastRemoveFavourite implements ports.Broadcaster.
func (c *Container) BroadcastRemoveFavourite(tree string, label *domain.Label) {
	c.each(func(l ports.Listener) { l.OnRemoveFavourite(tree, label) })
}

// Selected returns the selected labels of all trees in tree order.
func (c *Container) Selected() []Selection {
	var out []Selection
	for _, t := range c.Trees() {
		for _, l := range t.Selected() {
			out = append(out, Selection{Tree: t.Name(), Label: l})
		}
	}
	return out
}

// Favourites returns the favourite labels of all trees that show favourites.
func (c *Container) Favourites() []Selection {
	var out []Selection
	for _, t := range c.Trees() {
		if !t.Options().ShowFavourites {
			continue
		}
		for _, l := range t.Favourites() {
			out = append(out, Selection{Tree: t.Name(), Label: l})
		}
	}
	return out
}

// SelectFavourite emits a select intent for the n-th favourite, counting
// from one. It reports whether such a favourite exists.
func (c *Container) SelectFavourite(n int) bool {
	favs := c.Favourites()
	if n < 1 || n > len(favs) {
		return false
	}

	fav := favs[n-1]
	t, ok := c.Tree(fav.Tree)
	if !ok {
		return false
	}
	t.EmitSelect(fav.Label)
	return true
}

// Close detaches every tree.
func (c *Container) Close() {
	for _, t := range c.Trees() {
		t.Close()
	}
}

// each calls fn for every listener without holding the lock, so listeners
// may subscribe or unsubscribe while handling an event.
func (c *Container) each(fn func(ports.Listener)) {
	c.mu.Lock()
	snapshot := make([]ports.Listener, len(c.listeners))
	for i, s := range c.listeners {
		snapshot[i] = s.l
	}
	c.mu.Unlock()

	for _, l := range snapshot {
		fn(l)
	}
}
