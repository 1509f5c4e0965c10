package tui

// Cursor returns the index of the highlighted entry.
func (m *Model) Cursor() int { return m.cursor }

// EntryCount returns the number of visible entries.
func (m *Model) EntryCount() int { return len(m.entries) }

// Notices returns the notices shown in the footer.
func (m *Model) Notices() []string { return m.notices }

// Status returns the status line.
func (m *Model) Status() string { return m.status }

// Filtering reports whether the search box is open.
func (m *Model) Filtering() bool { return m.mode == modeFilter }

// LookingUp reports whether the lookup panel is open.
func (m *Model) LookingUp() bool { return m.mode == modeLookup }
