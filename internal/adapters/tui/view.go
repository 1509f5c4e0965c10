package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/taxa/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.height == 0 {
		return "Initializing..."
	}

	sections := []string{m.header(), m.treeList()}
	if m.mode == modeFilter {
		sections = append(sections, m.filterPanel())
	}
	if m.mode == modeLookup {
		sections = append(sections, m.lookupPanel())
	}
	if len(m.notices) > 0 {
		sections = append(sections, m.noticeList())
	}
	sections = append(sections, m.footer())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) header() string {
	title := titleStyle.Render("TAXA")
	selected := len(m.container.Selected())
	info := mutedStyle.Render(fmt.Sprintf(" %d selected", selected))
	if m.status != "" {
		info += mutedStyle.Render("  " + m.status)
	}
	return title + info + "\n"
}

func (m *Model) treeList() string {
	if len(m.entries) == 0 {
		return mutedStyle.Render("no labels")
	}

	start := min(m.offset, len(m.entries))
	end := min(start+m.listHeight(), len(m.entries))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderEntry(i, m.entries[i]))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderEntry(index int, e entry) string {
	cursor := "  "
	if index == m.cursor && m.mode == modeBrowse {
		cursor = cursorStyle.Render("> ")
	}

	if e.header {
		title := treeTitleStyle.Render(e.tree.Name())
		if e.tree.Collapsed() {
			title += mutedStyle.Render(" (collapsed)")
		}
		return cursor + title
	}

	l := e.row.Label
	var b strings.Builder
	b.WriteString(cursor)
	b.WriteString(mutedStyle.Render(e.guide))

	if !e.tree.Options().Flat {
		switch {
		case !e.row.HasChildren:
			b.WriteString(style.Leaf)
		case l.Expanded:
			b.WriteString(style.Open)
		default:
			b.WriteString(style.Closed)
		}
		b.WriteString(" ")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(l.HexColor())).Render(style.Dot))
	b.WriteString(" ")

	if l.Selected {
		b.WriteString(selectedStyle.Render(l.Name))
		b.WriteString(" " + checkStyle.Render(style.Check))
	} else {
		b.WriteString(l.Name)
	}
	if l.Favourite && e.tree.Options().ShowFavourites {
		b.WriteString(" " + starStyle.Render(style.Star))
	}
	return b.String()
}

func (m *Model) filterPanel() string {
	var b strings.Builder
	b.WriteString(m.filter.View())

	for i, hit := range m.matches {
		if i >= lookupHeight-2 {
			break
		}
		line := fmt.Sprintf("%s  %s", hit.label.Name, mutedStyle.Render(hit.tree.Name()))
		if i == m.matchCursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString("\n" + line)
	}
	if m.filter.Value() != "" && len(m.matches) == 0 {
		b.WriteString("\n" + mutedStyle.Render("no matches"))
	}

	return panelStyle.Render(b.String())
}

func (m *Model) lookupPanel() string {
	var b strings.Builder

	b.WriteString(m.query.View())
	if m.form.Busy() {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.lookupOptions()))

	results := m.form.Results()
	switch {
	case len(results) > 0:
		for i, r := range results {
			if i >= lookupHeight-4 {
				break
			}
			b.WriteString("\n" + m.renderResult(i, r))
		}
	case m.form.HasSearched():
		b.WriteString("\n" + mutedStyle.Render("no matches"))
	}

	return panelStyle.Render(b.String())
}

func (m *Model) lookupOptions() string {
	parent := "root"
	if p := m.form.Parent(); p != nil && !m.form.Recursive() {
		parent = p.Name
	}
	return fmt.Sprintf("into %s  recursive %s  unaccepted %s",
		parent, onOff(m.form.Recursive()), onOff(m.form.Unaccepted()))
}

func (m *Model) renderResult(index int, r domain.ExternalLabel) string {
	cursor := "  "
	if m.resultsFocused && index == m.resultCursor {
		cursor = cursorStyle.Render("> ")
	}

	line := r.Name
	if r.Authority != "" {
		line += " " + mutedStyle.Render(r.Authority)
	}
	if r.Rank != "" {
		line += " " + mutedStyle.Render("["+r.Rank+"]")
	}
	if !r.Accepted {
		line = mutedStyle.Render(r.Name + " (" + r.Status + ")")
	}
	return cursor + line
}

func (m *Model) noticeList() string {
	lines := make([]string, 0, len(m.notices))
	for _, n := range m.notices {
		lines = append(lines, errorStyle.Render(style.Warning+" "+n))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) footer() string {
	if m.mode == modeLookup {
		return "\n" + m.help.View(lookupHelp{m.keys})
	}
	return "\n" + m.help.View(browseHelp{m.keys})
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
