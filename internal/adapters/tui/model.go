// Package tui provides the interactive label picker.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/taxa/internal/engine/labeltree"
	"go.trai.ch/taxa/internal/engine/lookup"
	"go.trai.ch/taxa/internal/ui/style"
)

const (
	maxNotices = 3
	// chromeHeight is the number of lines taken by the header and footer.
	chromeHeight = 4
	// lookupHeight is the number of lines reserved for the lookup panel.
	lookupHeight = 12
)

type mode int

const (
	modeBrowse mode = iota
	modeFilter
	modeLookup
)

// entry is one line of the tree view: a tree title or a label row.
type entry struct {
	tree   *labeltree.Tree
	header bool
	row    labeltree.Row
	guide  string
}

// match is a search hit in one of the trees.
type match struct {
	tree  *labeltree.Tree
	label *domain.Label
}

// Model is the Bubble Tea model of the picker.
type Model struct {
	ctx       context.Context
	container *labeltree.Container
	form      *lookup.Form

	keys    keyMap
	help    help.Model
	filter  textinput.Model
	query   textinput.Model
	spinner spinner.Model

	mode    mode
	entries []entry
	cursor  int
	offset  int
	width   int
	height  int

	matches     []match
	matchCursor int

	resultsFocused bool
	resultCursor   int

	notices  []string
	status   string
	quitting bool
}

// NewModel creates a picker over the trees of container. form may be nil,
// which disables the lookup panel.
func NewModel(ctx context.Context, container *labeltree.Container, form *lookup.Form) *Model {
	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "search labels"

	query := textinput.New()
	query.Prompt = "? "
	query.Placeholder = "scientific name"

	m := &Model{
		ctx:       ctx,
		container: container,
		form:      form,
		keys:      defaultKeyMap(),
		help:      help.New(),
		filter:    filter,
		query:     query,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(cursorStyle)),
	}
	m.keys.Lookup.SetEnabled(form != nil)
	m.rebuild()
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // message dispatch
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ensureVisible()
		return m, nil

	case MsgLabelsChanged:
		if err := m.container.SetLabels(msg.Tree, msg.Labels); err != nil {
			m.notice(err)
		}
		m.rebuild()
		return m, nil

	case MsgNotice:
		m.notice(msg.Err)
		return m, nil

	case MsgRequestComplete:
		m.status = requestStatus(msg)
		return m, nil

	case msgLookupDone:
		if m.form.Complete(msg.req, msg.results, msg.err) {
			m.resultCursor = 0
			m.resultsFocused = m.form.HasResults()
			if m.resultsFocused {
				m.query.Blur()
			}
		}
		return m, nil

	case msgImportDone:
		if msg.err != nil {
			m.notice(msg.err)
		} else {
			m.status = fmt.Sprintf("imported %s", msg.draft.Name)
		}
		return m, nil

	case spinner.TickMsg:
		if m.form == nil || !m.form.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && (msg.String() == "ctrl+c" || !m.typing()) {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case modeFilter:
			return m, m.updateFilter(msg)
		case modeLookup:
			return m, m.updateLookup(msg)
		default:
			return m, m.updateBrowse(msg)
		}
	}

	return m, nil
}

// typing reports whether key presses go to a text input.
func (m *Model) typing() bool {
	return m.filter.Focused() || m.query.Focused()
}

//nolint:cyclop // one branch per binding
func (m *Model) updateBrowse(msg tea.KeyMsg) tea.Cmd {
	e, ok := m.current()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.Select):
		if !ok {
			return nil
		}
		if e.header {
			m.toggleTree(e.tree)
		} else {
			e.tree.ToggleSelect(e.row.Label)
		}
	case key.Matches(msg, m.keys.Expand):
		if ok && !e.header && e.row.HasChildren {
			e.tree.SetExpanded(e.row.Label, true)
		}
	case key.Matches(msg, m.keys.Close):
		if ok && !e.header {
			m.close(e)
		}
	case key.Matches(msg, m.keys.Collapse):
		if ok {
			m.toggleTree(e.tree)
		}
	case key.Matches(msg, m.keys.Favourite):
		if ok && !e.header {
			e.tree.ToggleFavourite(e.row.Label)
		}
	case key.Matches(msg, m.keys.Delete):
		if ok && !e.header {
			e.tree.EmitDelete(e.row.Label)
		}
	case key.Matches(msg, m.keys.Pick):
		n, _ := strconv.Atoi(msg.String())
		m.container.SelectFavourite(n)
	case key.Matches(msg, m.keys.Filter):
		m.mode = modeFilter
		m.filter.Reset()
		m.matches = nil
		m.matchCursor = 0
		return m.filter.Focus()
	case key.Matches(msg, m.keys.Lookup):
		return m.openLookup(e, ok)
	default:
		return nil
	}

	m.rebuild()
	return nil
}

func (m *Model) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.filter.Blur()
		m.mode = modeBrowse
		return nil
	case "up", "ctrl+p":
		m.matchCursor = max(m.matchCursor-1, 0)
		return nil
	case "down", "ctrl+n":
		m.matchCursor = min(m.matchCursor+1, max(len(m.matches)-1, 0))
		return nil
	case "enter":
		if m.matchCursor < len(m.matches) {
			hit := m.matches[m.matchCursor]
			hit.tree.EmitSelect(hit.label)
			m.rebuild()
			m.focus(hit.tree, hit.label.ID)
		}
		m.filter.Blur()
		m.mode = modeBrowse
		return nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.search()
	return cmd
}

//nolint:cyclop // two focus states
func (m *Model) updateLookup(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.query.Blur()
		m.mode = modeBrowse
		return nil
	case key.Matches(msg, m.keys.Focus):
		if m.query.Focused() && m.form.HasResults() {
			m.query.Blur()
			m.resultsFocused = true
			return nil
		}
		m.resultsFocused = false
		return m.query.Focus()
	}

	if m.query.Focused() {
		if msg.String() == "enter" {
			return m.startLookup()
		}
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		return cmd
	}

	results := m.form.Results()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.resultCursor = max(m.resultCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.resultCursor = min(m.resultCursor+1, max(len(results)-1, 0))
	case key.Matches(msg, m.keys.Recursive):
		m.form.ToggleRecursive()
	case key.Matches(msg, m.keys.Accepted):
		m.form.ToggleUnaccepted()
	case key.Matches(msg, m.keys.Select):
		if m.resultCursor < len(results) {
			return m.importCmd(results[m.resultCursor])
		}
	}
	return nil
}

func (m *Model) openLookup(e entry, ok bool) tea.Cmd {
	if m.form == nil {
		return nil
	}
	var parent *domain.Label
	if ok && !e.header {
		parent = e.row.Label
	}
	m.form.SetParent(parent)
	m.mode = modeLookup
	m.resultsFocused = false
	return m.query.Focus()
}

func (m *Model) startLookup() tea.Cmd {
	req, err := m.form.Begin(m.query.Value())
	if err != nil {
		m.notice(err)
		return nil
	}

	form, ctx := m.form, m.ctx
	fetch := func() tea.Msg {
		results, err := form.Fetch(ctx, req)
		return msgLookupDone{req: req, results: results, err: err}
	}
	return tea.Batch(fetch, m.spinner.Tick)
}

func (m *Model) importCmd(item domain.ExternalLabel) tea.Cmd {
	form := m.form
	return func() tea.Msg {
		draft, err := form.Import(item)
		return msgImportDone{draft: draft, err: err}
	}
}

// toggleTree collapses or opens a whole tree. Trees without a title cannot
// be reopened, so they are never collapsed.
func (m *Model) toggleTree(t *labeltree.Tree) {
	opts := t.Options()
	if opts.Collapsible && opts.ShowTitle {
		t.ToggleCollapse()
	}
}

// close closes an open label or moves the cursor to its parent.
func (m *Model) close(e entry) {
	if e.row.HasChildren && e.row.Label.Expanded {
		e.tree.SetExpanded(e.row.Label, false)
		return
	}
	if e.row.Label.ParentID != nil {
		m.focus(e.tree, *e.row.Label.ParentID)
	}
}

func (m *Model) search() {
	m.matches = m.matches[:0]
	query := m.filter.Value()
	for _, t := range m.container.Trees() {
		for _, l := range t.Search(query) {
			m.matches = append(m.matches, match{tree: t, label: l})
		}
	}
	m.matchCursor = min(m.matchCursor, max(len(m.matches)-1, 0))
}

// rebuild recomputes the visible entries and keeps the cursor on the same
// label when it is still visible.
func (m *Model) rebuild() {
	prev, hadPrev := m.current()

	m.entries = m.entries[:0]
	for _, t := range m.container.Trees() {
		if t.Options().ShowTitle {
			m.entries = append(m.entries, entry{tree: t, header: true})
		}
		var guides style.Guides
		for _, row := range t.Rows() {
			m.entries = append(m.entries, entry{
				tree:  t,
				row:   row,
				guide: guides.Next(row.Depth, row.Last),
			})
		}
	}

	if hadPrev {
		for i, e := range m.entries {
			if e.tree == prev.tree && e.header == prev.header && (e.header || e.row.Label.ID == prev.row.Label.ID) {
				m.cursor = i
				break
			}
		}
	}
	m.cursor = min(m.cursor, max(len(m.entries)-1, 0))
	m.ensureVisible()
}

// focus moves the cursor to the row of label id in t.
func (m *Model) focus(t *labeltree.Tree, id domain.LabelID) {
	for i, e := range m.entries {
		if e.tree == t && !e.header && e.row.Label.ID == id {
			m.cursor = i
			m.ensureVisible()
			return
		}
	}
}

func (m *Model) current() (entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return entry{}, false
	}
	return m.entries[m.cursor], true
}

func (m *Model) move(delta int) {
	m.cursor = min(max(m.cursor+delta, 0), max(len(m.entries)-1, 0))
	m.ensureVisible()
}

func (m *Model) listHeight() int {
	h := m.height - chromeHeight
	if m.mode == modeLookup {
		h -= lookupHeight
	}
	return max(h, 1)
}

func (m *Model) ensureVisible() {
	if m.height <= 0 {
		return
	}
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func (m *Model) notice(err error) {
	if err == nil {
		return
	}
	m.notices = append(m.notices, err.Error())
	if over := len(m.notices) - maxNotices; over > 0 {
		m.notices = m.notices[over:]
	}
}

func requestStatus(msg MsgRequestComplete) string {
	d := msg.Duration.Round(time.Millisecond)
	if msg.Err != nil {
		return fmt.Sprintf("%s %s failed after %s", style.Cross, msg.Name, d)
	}
	return fmt.Sprintf("%s %s %s", style.Check, msg.Name, d)
}
