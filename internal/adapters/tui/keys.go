package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Expand    key.Binding
	Close     key.Binding
	Collapse  key.Binding
	Favourite key.Binding
	Delete    key.Binding
	Pick      key.Binding
	Filter    key.Binding
	Lookup    key.Binding
	Recursive key.Binding
	Accepted  key.Binding
	Focus     key.Binding
	Back      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Expand:    key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "expand")),
		Close:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "close")),
		Collapse:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collapse tree")),
		Favourite: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favourite")),
		Delete:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "pick favourite"),
		),
		Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Lookup:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "lookup")),
		Recursive: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recursive")),
		Accepted:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unaccepted")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "query/results")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// browseHelp is the help.KeyMap of the tree view.
type browseHelp struct{ keyMap }

func (k browseHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Favourite, k.Filter, k.Lookup, k.Quit}
}

func (k browseHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Expand, k.Close},
		{k.Collapse, k.Favourite, k.Delete, k.Pick},
		{k.Filter, k.Lookup, k.Quit},
	}
}

// lookupHelp is the help.KeyMap of the lookup panel.
type lookupHelp struct{ keyMap }

func (k lookupHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Select, k.Recursive, k.Accepted, k.Back}
}

func (k lookupHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
