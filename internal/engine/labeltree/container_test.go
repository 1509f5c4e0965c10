package labeltree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/taxa/internal/core/ports"
	"go.trai.ch/taxa/internal/engine/labeltree"
)

func newContainer(t *testing.T, multiselect bool, owner *recorder) (*labeltree.Container, *labeltree.Tree, *labeltree.Tree) {
	t.Helper()

	opts := domain.DefaultTreeOptions()
	opts.ShowFavourites = true

	var sink ports.IntentSink
	if owner != nil {
		sink = owner
	}

	c := labeltree.NewContainer(multiselect, sink, nil)
	animals, err := c.AddTree("animals", chainLabels(), opts)
	require.NoError(t, err)
	plants, err := c.AddTree("plants", []*domain.Label{
		label(10, 0, "Rosaceae"),
		label(11, 10, "Rosa"),
	}, opts)
	require.NoError(t, err)

	return c, animals, plants
}

func lookup(t *testing.T, tree *labeltree.Tree, id domain.LabelID) *domain.Label {
	t.Helper()
	l, ok := tree.Index().Lookup(id)
	require.True(t, ok)
	return l
}

func TestContainer_SingleSelectionAcrossTrees(t *testing.T) {
	owner := &recorder{}
	c, animals, plants := newContainer(t, false, owner)

	animals.EmitSelect(lookup(t, animals, 3))
	require.Len(t, c.Selected(), 1)

	plants.EmitSelect(lookup(t, plants, 11))

	selected := c.Selected()
	require.Len(t, selected, 1)
	assert.Equal(t, "plants", selected[0].Tree)
	assert.Equal(t, domain.LabelID(11), selected[0].Label.ID)
	assert.True(t, lookup(t, plants, 10).Expanded)
	assert.Equal(t, []domain.IntentKind{domain.IntentSelect, domain.IntentSelect}, owner.kinds())
}

func TestContainer_Multiselect(t *testing.T) {
	c, animals, plants := newContainer(t, true, &recorder{})

	animals.EmitSelect(lookup(t, animals, 3))
	plants.EmitSelect(lookup(t, plants, 11))

	assert.Len(t, c.Selected(), 2)

	plants.EmitDeselect(lookup(t, plants, 11))
	assert.Len(t, c.Selected(), 1)
}

func TestContainer_BroadcastForUnknownLabel(t *testing.T) {
	c, animals, _ := newContainer(t, false, nil)
	before := lookup(t, animals, 1).Selected

	c.BroadcastSelect("", &domain.Label{ID: 404})

	assert.Equal(t, before, lookup(t, animals, 1).Selected)
	assert.Empty(t, c.Selected())
}

func TestContainer_Favourites(t *testing.T) {
	owner := &recorder{}
	c, animals, plants := newContainer(t, false, owner)

	animals.ToggleFavourite(lookup(t, animals, 4))
	plants.ToggleFavourite(lookup(t, plants, 11))

	favs := c.Favourites()
	require.Len(t, favs, 2)
	assert.Equal(t, domain.LabelID(4), favs[0].Label.ID)

	assert.True(t, c.SelectFavourite(2))
	assert.True(t, lookup(t, plants, 11).Selected)
	assert.False(t, c.SelectFavourite(3))
	assert.False(t, c.SelectFavourite(0))

	plants.ToggleFavourite(lookup(t, plants, 11))
	assert.Len(t, c.Favourites(), 1)
}

func TestContainer_ForwardsOwnerIntents(t *testing.T) {
	owner := &recorder{}
	c := labeltree.NewContainer(false, owner, nil)
	opts := domain.DefaultTreeOptions()
	opts.Deletable = true
	opts.Standalone = true
	tree, err := c.AddTree("animals", chainLabels(), opts)
	require.NoError(t, err)
	assert.False(t, tree.Options().Standalone, "container trees are always embedded")

	tree.EmitDelete(lookup(t, tree, 4))

	require.Len(t, owner.intents, 1)
	assert.Equal(t, domain.IntentDelete, owner.intents[0].Kind)
	assert.Equal(t, "animals", owner.intents[0].Tree)
}

func TestContainer_DuplicateTree(t *testing.T) {
	c, _, _ := newContainer(t, false, nil)

	_, err := c.AddTree("animals", nil, domain.DefaultTreeOptions())
	assert.ErrorContains(t, err, domain.ErrDuplicateTreeName.Error())
}

func TestContainer_SetLabels(t *testing.T) {
	c, _, plants := newContainer(t, false, nil)

	require.NoError(t, c.SetLabels("plants", []*domain.Label{label(20, 0, "Fabaceae")}))
	assert.True(t, plants.Has(20))
	assert.False(t, plants.Has(10))

	err := c.SetLabels("fungi", nil)
	assert.ErrorContains(t, err, domain.ErrUnknownTree.Error())
}

func TestContainer_CloseUnsubscribes(t *testing.T) {
	c, animals, _ := newContainer(t, false, nil)
	c.Close()

	c.BroadcastSelect("animals", lookup(t, animals, 1))
	assert.False(t, lookup(t, animals, 1).Selected)
}

func TestContainer_SharedIDsStayInTheirTree(t *testing.T) {
	opts := domain.DefaultTreeOptions()
	opts.ShowFavourites = true

	c := labeltree.NewContainer(false, nil, nil)
	animals, err := c.AddTree("animals", []*domain.Label{label(1, 0, "Fish")}, opts)
	require.NoError(t, err)
	plants, err := c.AddTree("plants", []*domain.Label{label(1, 0, "Algae")}, opts)
	require.NoError(t, err)

	animals.EmitSelect(lookup(t, animals, 1))

	selected := c.Selected()
	require.Len(t, selected, 1)
	assert.Equal(t, "animals", selected[0].Tree)
	assert.False(t, lookup(t, plants, 1).Selected)

	plants.EmitSelect(lookup(t, plants, 1))
	selected = c.Selected()
	require.Len(t, selected, 1)
	assert.Equal(t, "plants", selected[0].Tree)

	animals.ToggleFavourite(lookup(t, animals, 1))
	assert.True(t, lookup(t, animals, 1).Favourite)
	assert.False(t, lookup(t, plants, 1).Favourite)

	plants.EmitDeselect(lookup(t, plants, 1))
	assert.Empty(t, c.Selected())
}
