package labeltree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/taxa/internal/core/ports/mocks"
	"go.trai.ch/taxa/internal/engine/labeltree"
	"go.uber.org/mock/gomock"
)

// recorder collects emitted intents.
type recorder struct {
	intents []domain.Intent
}

func (r *recorder) Emit(intent domain.Intent) {
	r.intents = append(r.intents, intent)
}

func (r *recorder) kinds() []domain.IntentKind {
	out := make([]domain.IntentKind, 0, len(r.intents))
	for _, i := range r.intents {
		out = append(out, i.Kind)
	}
	return out
}

func chainLabels() []*domain.Label {
	return []*domain.Label{
		label(1, 0, "Animalia"),
		label(2, 1, "Chordata"),
		label(3, 2, "Mammalia"),
		label(4, 0, "Plantae"),
	}
}

func TestTree_SelectExpandsAncestors(t *testing.T) {
	labels := chainLabels()
	tree := labeltree.New("taxa", labels, domain.DefaultTreeOptions())
	tree.ToggleCollapse()
	require.True(t, tree.Collapsed())

	tree.Select(&domain.Label{ID: 3})

	assert.True(t, labels[0].Expanded)
	assert.True(t, labels[1].Expanded)
	assert.False(t, labels[2].Expanded, "leaf stays closed")
	assert.True(t, labels[2].Selected)
	assert.False(t, tree.Collapsed())

	chain, err := tree.Index().AncestorChain(labels[2])
	require.NoError(t, err)
	assert.Equal(t, []domain.LabelID{1, 2}, chain)
}

func TestTree_SingleSelect(t *testing.T) {
	labels := chainLabels()
	tree := labeltree.New("taxa", labels, domain.DefaultTreeOptions())

	tree.Select(labels[2])
	tree.Select(labels[3])

	assert.Equal(t, []*domain.Label{labels[3]}, tree.Selected())
}

func TestTree_Multiselect(t *testing.T) {
	labels := chainLabels()
	opts := domain.DefaultTreeOptions()
	opts.Multiselect = true
	tree := labeltree.New("taxa", labels, opts)

	tree.Select(labels[2])
	tree.Select(labels[3])
	assert.Len(t, tree.Selected(), 2)

	tree.Deselect(labels[2])
	assert.Equal(t, []*domain.Label{labels[3]}, tree.Selected())

	tree.Select(labels[0])
	tree.ClearSelected()
	assert.Empty(t, tree.Selected())
}

func TestTree_UnknownLabelIsIgnored(t *testing.T) {
	labels := chainLabels()
	labels[0].Selected = true
	tree := labeltree.New("taxa", labels, domain.DefaultTreeOptions())
	tree.ToggleCollapse()

	stranger := &domain.Label{ID: 99}
	tree.Select(stranger)
	tree.Deselect(stranger)
	tree.AddFavourite(stranger)
	tree.Select(nil)

	assert.True(t, labels[0].Selected, "selection in single mode is untouched")
	assert.True(t, tree.Collapsed())
	assert.False(t, stranger.Selected)
	assert.False(t, stranger.Favourite)
}

func TestTree_SelectOperatesOnOwnRecord(t *testing.T) {
	labels := chainLabels()
	tree := labeltree.New("taxa", labels, domain.DefaultTreeOptions())

	copyOf := labels[3].Clone()
	tree.Select(copyOf)

	assert.True(t, labels[3].Selected)
	assert.False(t, copyOf.Selected)
}

func TestTree_ToggleCollapseTwice(t *testing.T) {
	tree := labeltree.New("taxa", chainLabels(), domain.DefaultTreeOptions())

	before := tree.Collapsed()
	tree.ToggleCollapse()
	tree.ToggleCollapse()
	assert.Equal(t, before, tree.Collapsed())
}

func TestTree_Favourites(t *testing.T) {
	labels := chainLabels()
	tree := labeltree.New("taxa", labels, domain.DefaultTreeOptions())

	tree.AddFavourite(labels[1])
	tree.AddFavourite(labels[3])
	assert.Equal(t, []*domain.Label{labels[1], labels[3]}, tree.Favourites())

	tree.RemoveFavourite(labels[1])
	assert.Equal(t, []*domain.Label{labels[3]}, tree.Favourites())
}

func TestTree_ToggleExpanded(t *testing.T) {
	labels := chainLabels()
	tree := labeltree.New("taxa", labels, domain.DefaultTreeOptions())

	tree.ToggleExpanded(labels[0])
	assert.True(t, labels[0].Expanded)
	tree.ToggleExpanded(labels[0])
	assert.False(t, labels[0].Expanded)

	tree.ToggleExpanded(labels[3])
	assert.False(t, labels[3].Expanded, "labels without children cannot open")
}

func TestTree_SetLabelsRebuilds(t *testing.T) {
	labels := chainLabels()
	tree := labeltree.New("taxa", labels, domain.DefaultTreeOptions())
	tree.Select(labels[2])
	require.True(t, labels[1].Expanded)

	// Drop Mammalia, Chordata loses its only child.
	tree.SetLabels([]*domain.Label{labels[0], labels[1], labels[3]})

	assert.False(t, labels[1].Expanded)
	assert.False(t, tree.Has(3))
}

func TestTree_SetLabelsKeepsViewState(t *testing.T) {
	labels := chainLabels()
	tree := labeltree.New("taxa", labels, domain.DefaultTreeOptions())
	tree.Select(labels[2])

	reloaded := domain.CloneLabels(chainLabels())
	reloaded = append(reloaded, label(5, 2, "Aves"))
	tree.SetLabels(reloaded)

	assert.True(t, reloaded[0].Expanded)
	assert.True(t, reloaded[1].Expanded)
	assert.True(t, reloaded[2].Selected)
	assert.False(t, reloaded[4].Selected)
	assert.Same(t, reloaded[2], tree.Labels()[2])

	// Dropping the only child still closes the parent.
	tree.SetLabels([]*domain.Label{reloaded[0], reloaded[1], reloaded[3]})
	assert.False(t, reloaded[1].Expanded)
}

func TestTree_SyncDetectsReparenting(t *testing.T) {
	labels := chainLabels()
	tree := labeltree.New("taxa", labels, domain.DefaultTreeOptions())

	assert.False(t, tree.Sync())

	labels[3].ParentID = domain.LabelID(1).Ptr()
	assert.True(t, tree.Sync())
	assert.Equal(t, []domain.LabelID{2, 4}, ids(tree.Index().ChildrenOf(domain.LabelID(1).Ptr())))
}

func TestTree_Rows(t *testing.T) {
	labels := chainLabels()
	tree := labeltree.New("taxa", labels, domain.DefaultTreeOptions())

	rows := tree.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, domain.LabelID(1), rows[0].Label.ID)
	assert.True(t, rows[0].HasChildren)
	assert.False(t, rows[0].Last)
	assert.True(t, rows[1].Last)

	tree.Select(labels[2])
	rows = tree.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, []int{0, 1, 2, 0}, []int{rows[0].Depth, rows[1].Depth, rows[2].Depth, rows[3].Depth})

	tree.ToggleCollapse()
	assert.Empty(t, tree.Rows())
}

func TestTree_RowsSurviveDuplicateCycles(t *testing.T) {
	// id 1 appears as a root and again below its own child.
	labels := []*domain.Label{label(1, 0, "a"), label(2, 1, "b"), label(1, 2, "a again")}
	for _, l := range labels {
		l.Expanded = true
	}
	tree := labeltree.New("taxa", labels, domain.DefaultTreeOptions())

	assert.Len(t, tree.Rows(), 3)
}

func TestTree_FlatSelectDoesNotExpand(t *testing.T) {
	labels := chainLabels()
	opts := domain.DefaultTreeOptions()
	opts.Flat = true
	tree := labeltree.New("taxa", labels, opts)

	tree.Select(labels[2])

	assert.True(t, labels[2].Selected)
	assert.False(t, labels[0].Expanded)
	assert.Len(t, tree.Rows(), 4)
}

func TestTree_Search(t *testing.T) {
	tree := labeltree.New("taxa", chainLabels(), domain.DefaultTreeOptions())

	found := tree.Search("mam")
	require.NotEmpty(t, found)
	assert.Equal(t, "Mammalia", found[0].Name)
	assert.Nil(t, tree.Search(""))
	assert.Empty(t, tree.Search("zzz"))
}

func TestTree_StandaloneAppliesOwnIntents(t *testing.T) {
	labels := chainLabels()
	sink := &recorder{}
	opts := domain.DefaultTreeOptions()
	opts.Standalone = true
	tree := labeltree.New("taxa", labels, opts, labeltree.WithSink(sink))

	tree.EmitSelect(labels[3])
	assert.True(t, labels[3].Selected)

	tree.ToggleSelect(labels[3])
	assert.False(t, labels[3].Selected)

	assert.Equal(t, []domain.IntentKind{domain.IntentSelect, domain.IntentDeselect}, sink.kinds())
	assert.Equal(t, "taxa", sink.intents[0].Tree)
}

func TestTree_StandaloneOnlyReportsFavourites(t *testing.T) {
	labels := chainLabels()
	sink := &recorder{}
	opts := domain.DefaultTreeOptions()
	opts.Standalone = true
	opts.ShowFavourites = true
	tree := labeltree.New("taxa", labels, opts, labeltree.WithSink(sink))

	tree.ToggleFavourite(labels[3])
	assert.False(t, labels[3].Favourite)

	labels[1].Favourite = true
	tree.ToggleFavourite(labels[1])
	assert.True(t, labels[1].Favourite)

	assert.Equal(t, []domain.IntentKind{domain.IntentAddFavourite, domain.IntentRemoveFavourite}, sink.kinds())
}

func TestTree_EmbeddedOnlyReports(t *testing.T) {
	labels := chainLabels()
	sink := &recorder{}
	tree := labeltree.New("taxa", labels, domain.DefaultTreeOptions(), labeltree.WithSink(sink))

	tree.EmitSelect(labels[3])

	assert.False(t, labels[3].Selected)
	assert.Equal(t, []domain.IntentKind{domain.IntentSelect}, sink.kinds())
}

func TestTree_GatedIntents(t *testing.T) {
	labels := chainLabels()
	sink := &recorder{}
	tree := labeltree.New("taxa", labels, domain.DefaultTreeOptions(), labeltree.WithSink(sink))

	tree.EmitDelete(labels[0])
	tree.ToggleFavourite(labels[0])
	assert.Empty(t, sink.intents, "delete and favourites are disabled by default")

	opts := domain.DefaultTreeOptions()
	opts.Deletable = true
	opts.ShowFavourites = true
	tree = labeltree.New("taxa", labels, opts, labeltree.WithSink(sink))

	tree.EmitDelete(labels[0])
	tree.ToggleFavourite(labels[0])
	labels[0].Favourite = true
	tree.ToggleFavourite(labels[0])

	assert.Equal(t, []domain.IntentKind{
		domain.IntentDelete,
		domain.IntentAddFavourite,
		domain.IntentRemoveFavourite,
	}, sink.kinds())
}

func TestTree_EmbeddedSubscribes(t *testing.T) {
	ctrl := gomock.NewController(t)
	broadcaster := mocks.NewMockBroadcaster(ctrl)
	unsubscribed := false

	broadcaster.EXPECT().Subscribe(gomock.Any()).Return(func() { unsubscribed = true })

	tree := labeltree.New("taxa", chainLabels(), domain.DefaultTreeOptions(), labeltree.WithBroadcaster(broadcaster))
	tree.Close()
	tree.Close()

	assert.True(t, unsubscribed)
}

func TestTree_StandaloneIgnoresBroadcaster(t *testing.T) {
	ctrl := gomock.NewController(t)
	broadcaster := mocks.NewMockBroadcaster(ctrl)

	opts := domain.DefaultTreeOptions()
	opts.Standalone = true
	labeltree.New("taxa", chainLabels(), opts, labeltree.WithBroadcaster(broadcaster))
}

func TestTree_DataIntegrityWarnings(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	// One duplicate and one orphan while building.
	logger.EXPECT().Warn(gomock.Any()).Times(2)

	labels := []*domain.Label{label(1, 0, "a"), label(1, 0, "b"), label(5, 9, "orphan")}
	tree := labeltree.New("taxa", labels, domain.DefaultTreeOptions(), labeltree.WithLogger(logger))

	// The orphan's broken parent chain while selecting.
	logger.EXPECT().Warn(gomock.Any()).Times(1)
	tree.Select(labels[2])
	assert.True(t, labels[2].Selected, "selection applies despite the broken chain")
}
