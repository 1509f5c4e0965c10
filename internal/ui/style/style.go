// Package style provides the shared brand colors and icons.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check    = "✓"
	Cross    = "✗"
	Warning  = "!"
	Dot      = "●"
	Circle   = "○"
	Star     = "★"
	Open     = "▾"
	Closed   = "▸"
	Leaf     = " "
	Branch   = "├─"
	LastLeaf = "└─"
	Pipe     = "│ "
	Space    = "  "
)

// Guides draws the connector lines in front of tree rows. Rows must be fed
// depth first.
type Guides struct {
	lasts []bool
}

// Next returns the guide for a row at depth. last reports whether the row
// is the last of its siblings. Roots have no guide.
func (g *Guides) Next(depth int, last bool) string {
	for len(g.lasts) < depth {
		g.lasts = append(g.lasts, false)
	}
	g.lasts = append(g.lasts[:depth], last)
	if depth == 0 {
		return ""
	}

	var b strings.Builder
	for _, ancestorLast := range g.lasts[1:depth] {
		if ancestorLast {
			b.WriteString(Space + " ")
		} else {
			b.WriteString(Pipe + " ")
		}
	}
	if last {
		b.WriteString(LastLeaf + " ")
	} else {
		b.WriteString(Branch + " ")
	}
	return b.String()
}
