package tui_test

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taxa/internal/adapters/tui"
	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/taxa/internal/core/ports/mocks"
	"go.trai.ch/taxa/internal/engine/labeltree"
	"go.trai.ch/taxa/internal/engine/lookup"
	"go.uber.org/mock/gomock"
)

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

func send(m *tui.Model, msgs ...tea.Msg) (*tui.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(*tui.Model)
	}
	return m, cmd
}

// run executes cmd and feeds every resulting message back into the model.
func run(m *tui.Model, cmd tea.Cmd) *tui.Model {
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = run(m, c)
		}
		return m
	}
	m, _ = send(m, msg)
	return m
}

func animals() []*domain.Label {
	return []*domain.Label{
		{ID: 1, Name: "Animalia", Color: "ff0000"},
		{ID: 2, ParentID: domain.LabelID(1).Ptr(), Name: "Mollusca", Color: "00ff00"},
		{ID: 3, Name: "Plantae", Color: "0000ff"},
	}
}

func newContainer(t *testing.T, labels []*domain.Label) *labeltree.Container {
	t.Helper()
	c := labeltree.NewContainer(false, nil, nil)
	_, err := c.AddTree("Animals", labels, domain.TreeOptions{
		ShowTitle:      true,
		Collapsible:    true,
		ShowFavourites: true,
	})
	require.NoError(t, err)
	return c
}

func TestModel_Navigation(t *testing.T) {
	labels := animals()
	m := tui.NewModel(t.Context(), newContainer(t, labels), nil)
	m, _ = send(m, tea.WindowSizeMsg{Width: 80, Height: 30})

	// Title, Animalia, Plantae.
	require.Equal(t, 3, m.EntryCount())
	assert.Equal(t, 0, m.Cursor())

	m, _ = send(m, keys("j"), keys("l"))
	assert.Equal(t, 4, m.EntryCount(), "Mollusca is visible after expanding")
	assert.Equal(t, 1, m.Cursor())

	m, _ = send(m, keys("j"), enter)
	assert.True(t, labels[1].Selected)

	m, _ = send(m, keys("h"))
	assert.Equal(t, 1, m.Cursor(), "closing a leaf moves to its parent")

	m, _ = send(m, keys("h"))
	assert.False(t, labels[0].Expanded)
	assert.Equal(t, 3, m.EntryCount())

	m, _ = send(m, keys("k"), keys("k"), keys("k"))
	assert.Equal(t, 0, m.Cursor(), "cursor stops at the top")
}

func TestModel_SingleSelect(t *testing.T) {
	labels := animals()
	m := tui.NewModel(t.Context(), newContainer(t, labels), nil)

	m, _ = send(m, keys("j"), enter, keys("j"), enter)
	assert.False(t, labels[0].Selected)
	assert.True(t, labels[2].Selected)

	// Enter on a selected label deselects it.
	_, _ = send(m, enter)
	assert.False(t, labels[2].Selected)
}

func TestModel_FavouritesAndCollapse(t *testing.T) {
	labels := animals()
	m := tui.NewModel(t.Context(), newContainer(t, labels), nil)

	m, _ = send(m, keys("j"), keys("f"))
	assert.True(t, labels[0].Favourite)

	m, _ = send(m, keys("1"))
	assert.True(t, labels[0].Selected, "number keys pick favourites")

	m, _ = send(m, keys("c"))
	assert.Equal(t, 1, m.EntryCount(), "only the title of a collapsed tree is shown")
	assert.Equal(t, 0, m.Cursor())

	m, _ = send(m, enter)
	assert.Equal(t, 3, m.EntryCount(), "enter on the title reopens the tree")
}

func TestModel_Filter(t *testing.T) {
	labels := animals()
	m := tui.NewModel(t.Context(), newContainer(t, labels), nil)

	m, _ = send(m, tea.WindowSizeMsg{Width: 80, Height: 30}, keys("/"))
	require.True(t, m.Filtering())

	m, _ = send(m, keys("Moll"))
	assert.Contains(t, m.View(), "Mollusca")

	m, _ = send(m, enter)
	assert.False(t, m.Filtering())
	assert.True(t, labels[1].Selected)
	assert.True(t, labels[0].Expanded, "ancestors of the selected label are opened")
	assert.Equal(t, 2, m.Cursor(), "cursor moves to the selected label")

	m, _ = send(m, keys("/"), keys("q"))
	assert.True(t, m.Filtering(), "q is typed into the search box")
	m, _ = send(m, esc)
	assert.False(t, m.Filtering())
}

func TestModel_LabelsChanged(t *testing.T) {
	labels := animals()
	m := tui.NewModel(t.Context(), newContainer(t, labels), nil)
	m, _ = send(m, keys("j"), keys("j"))

	updated := append(animals(), &domain.Label{ID: 4, Name: "Fungi", Color: "999999"})
	m, _ = send(m, tui.MsgLabelsChanged{Tree: "Animals", Labels: updated})

	assert.Equal(t, 4, m.EntryCount())
	assert.Equal(t, 2, m.Cursor(), "cursor stays on Plantae")

	m, _ = send(m, tui.MsgLabelsChanged{Tree: "Plants", Labels: nil})
	require.Len(t, m.Notices(), 1)
	assert.Contains(t, m.Notices()[0], domain.ErrUnknownTree.Error())
}

func TestModel_NoticesAndStatus(t *testing.T) {
	m := tui.NewModel(t.Context(), newContainer(t, animals()), nil)

	for i := range 5 {
		m, _ = send(m, tui.MsgNotice{Err: errors.New("notice " + string(rune('a'+i)))})
	}
	assert.Equal(t, []string{"notice c", "notice d", "notice e"}, m.Notices())

	m, _ = send(m, tui.MsgRequestComplete{Name: "worms.search", Duration: 120 * time.Millisecond})
	assert.Contains(t, m.Status(), "worms.search 120ms")

	m, _ = send(m, tui.MsgRequestComplete{Name: "worms.search", Err: errors.New("boom")})
	assert.Contains(t, m.Status(), "failed")
}

func TestModel_Lookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockLabelSource(ctrl)
	sink := mocks.NewMockIntentSink(ctrl)

	labels := animals()
	form := lookup.NewForm(source, nil, sink, 1, "")
	m := tui.NewModel(t.Context(), newContainer(t, labels), form)
	m, _ = send(m, tea.WindowSizeMsg{Width: 80, Height: 40})

	source.EXPECT().
		Search(gomock.Any(), domain.SearchQuery{SourceID: 1, Query: "Bellis"}).
		Return([]domain.ExternalLabel{
			{Name: "Bellis perennis", SourceID: "1000", Rank: "Species", Accepted: true},
		}, nil)

	var submitted *domain.LabelDraft
	sink.EXPECT().Emit(gomock.Any()).AnyTimes().Do(func(intent domain.Intent) {
		if intent.Kind == domain.IntentSubmit {
			submitted = intent.Draft
		}
	})

	m, _ = send(m, keys("j"), keys("s"))
	require.True(t, m.LookingUp())
	assert.Equal(t, "Animalia", form.Parent().Name)

	m, _ = send(m, keys("Bellis"))
	m, cmd := send(m, enter)
	m = run(m, cmd)

	require.True(t, form.HasResults())
	assert.Contains(t, m.View(), "Bellis perennis")

	m, cmd = send(m, enter)
	m = run(m, cmd)

	require.NotNil(t, submitted)
	assert.Equal(t, "1000", submitted.SourceID)
	assert.True(t, submitted.ParentID != nil && *submitted.ParentID == 1)
	assert.Equal(t, "imported Bellis perennis", m.Status())

	m, _ = send(m, keys("r"))
	assert.True(t, form.Recursive())

	m, _ = send(m, tab)
	m, _ = send(m, esc)
	assert.False(t, m.LookingUp())
}

func TestModel_LookupEmptyQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	form := lookup.NewForm(mocks.NewMockLabelSource(ctrl), nil, nil, 1, "")
	m := tui.NewModel(t.Context(), newContainer(t, animals()), form)

	m, _ = send(m, keys("s"))
	m, cmd := send(m, enter)
	assert.Nil(t, cmd)
	require.Len(t, m.Notices(), 1)
	assert.Equal(t, domain.ErrEmptyQuery.Error(), m.Notices()[0])
}

func TestModel_LookupDisabledWithoutForm(t *testing.T) {
	m := tui.NewModel(t.Context(), newContainer(t, animals()), nil)
	m, _ = send(m, keys("s"))
	assert.False(t, m.LookingUp())
}

func TestModel_Quit(t *testing.T) {
	m := tui.NewModel(t.Context(), newContainer(t, animals()), nil)
	m, cmd := send(m, keys("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}
