package labeltree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/taxa/internal/engine/labeltree"
)

// label builds a label with an optional parent id; parent 0 means root.
func label(id, parent domain.LabelID, name string) *domain.Label {
	l := &domain.Label{ID: id, Name: name, Color: "#00ff00"}
	if parent != 0 {
		l.ParentID = parent.Ptr()
	}
	return l
}

func ids(labels []*domain.Label) []domain.LabelID {
	out := make([]domain.LabelID, 0, len(labels))
	for _, l := range labels {
		out = append(out, l.ID)
	}
	return out
}

func TestIndex_ChildrenOf(t *testing.T) {
	labels := []*domain.Label{
		label(1, 0, "Animalia"),
		label(2, 1, "Chordata"),
		label(3, 1, "Mollusca"),
		label(4, 2, "Mammalia"),
		label(5, 0, "Plantae"),
	}
	idx := labeltree.NewIndex(labels, false)

	assert.Equal(t, []domain.LabelID{1, 5}, ids(idx.ChildrenOf(nil)))
	assert.Equal(t, []domain.LabelID{2, 3}, ids(idx.ChildrenOf(domain.LabelID(1).Ptr())))
	assert.Equal(t, []domain.LabelID{4}, ids(idx.ChildrenOf(domain.LabelID(2).Ptr())))
	assert.Empty(t, idx.ChildrenOf(domain.LabelID(4).Ptr()))
	assert.True(t, idx.HasChildren(1))
	assert.False(t, idx.HasChildren(3))
	assert.Equal(t, 5, idx.Len())
}

func TestIndex_Flat(t *testing.T) {
	labels := []*domain.Label{
		label(1, 0, "a"),
		label(2, 1, "b"),
		label(3, 2, "c"),
	}
	idx := labeltree.NewIndex(labels, true)

	assert.Equal(t, labels, idx.ChildrenOf(nil))
	assert.Empty(t, idx.ChildrenOf(domain.LabelID(1).Ptr()))
	assert.False(t, idx.HasChildren(1))
	assert.True(t, idx.Flat())
}

func TestIndex_Lookup(t *testing.T) {
	idx := labeltree.NewIndex([]*domain.Label{label(7, 0, "seven")}, false)

	l, ok := idx.Lookup(7)
	require.True(t, ok)
	assert.Equal(t, "seven", l.Name)

	_, ok = idx.Lookup(8)
	assert.False(t, ok)
}

func TestIndex_DuplicateIDs(t *testing.T) {
	first := label(1, 0, "first")
	second := label(1, 0, "second")
	idx := labeltree.NewIndex([]*domain.Label{first, second, label(2, 0, "two")}, false)

	l, ok := idx.Lookup(1)
	require.True(t, ok)
	assert.Same(t, second, l, "last occurrence wins")
	assert.Equal(t, []domain.LabelID{1}, idx.Duplicates())
	assert.Len(t, idx.Roots(), 3)
}

func TestIndex_AncestorChain(t *testing.T) {
	t.Run("root to parent", func(t *testing.T) {
		labels := []*domain.Label{label(1, 0, "a"), label(2, 1, "b"), label(3, 2, "c")}
		idx := labeltree.NewIndex(labels, false)

		chain, err := idx.AncestorChain(labels[2])
		require.NoError(t, err)
		assert.Equal(t, []domain.LabelID{1, 2}, chain)
	})

	t.Run("root has no ancestors", func(t *testing.T) {
		labels := []*domain.Label{label(1, 0, "a")}
		idx := labeltree.NewIndex(labels, false)

		chain, err := idx.AncestorChain(labels[0])
		require.NoError(t, err)
		assert.Empty(t, chain)
	})

	t.Run("cycle is reported", func(t *testing.T) {
		labels := []*domain.Label{label(1, 2, "a"), label(2, 1, "b")}
		idx := labeltree.NewIndex(labels, false)

		_, err := idx.AncestorChain(labels[0])
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrCyclicParent.Error())
	})

	t.Run("self parent is a cycle", func(t *testing.T) {
		labels := []*domain.Label{label(1, 1, "a")}
		idx := labeltree.NewIndex(labels, false)

		_, err := idx.AncestorChain(labels[0])
		assert.ErrorContains(t, err, domain.ErrCyclicParent.Error())
	})

	t.Run("missing parent returns partial chain", func(t *testing.T) {
		labels := []*domain.Label{label(2, 9, "b"), label(3, 2, "c")}
		idx := labeltree.NewIndex(labels, false)

		chain, err := idx.AncestorChain(labels[1])
		assert.ErrorContains(t, err, domain.ErrUnknownParent.Error())
		assert.Equal(t, []domain.LabelID{2}, chain)
		assert.Equal(t, []domain.LabelID{2}, ids(idx.Orphans()))
	})
}

func TestIndex_LeavesAreClosed(t *testing.T) {
	parent := label(1, 0, "parent")
	child := label(2, 1, "child")
	parent.Expanded = true
	child.Expanded = true

	labeltree.NewIndex([]*domain.Label{parent, child}, false)
	assert.True(t, parent.Expanded)
	assert.False(t, child.Expanded)

	// Removing the last child closes the parent on rebuild.
	labeltree.NewIndex([]*domain.Label{parent}, false)
	assert.False(t, parent.Expanded)
}

func TestFingerprint(t *testing.T) {
	a := []*domain.Label{label(1, 0, "a"), label(2, 1, "b")}
	b := []*domain.Label{label(1, 0, "renamed"), label(2, 1, "also renamed")}
	c := []*domain.Label{label(1, 0, "a"), label(2, 0, "b")}

	assert.Equal(t, labeltree.Fingerprint(a), labeltree.Fingerprint(b), "names do not affect structure")
	assert.NotEqual(t, labeltree.Fingerprint(a), labeltree.Fingerprint(c))
	assert.Equal(t, labeltree.Fingerprint(a), labeltree.NewIndex(a, false).Fingerprint())
}
