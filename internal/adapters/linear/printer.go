// Package linear writes label trees and lookup results as plain,
// non-interactive text.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/taxa/internal/engine/labeltree"
	"go.trai.ch/taxa/internal/ui/style"
)

// Printer writes trees line by line.
type Printer struct {
	w       io.Writer
	output  *termenv.Output
	profile termenv.Profile
}

// NewPrinter creates a printer styling its output with profile.
func NewPrinter(w io.Writer, profile termenv.Profile) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		w:       w,
		output:  termenv.NewOutput(w, termenv.WithProfile(profile)),
		profile: profile,
	}
}

// PrintTree writes the visible rows of t.
func (p *Printer) PrintTree(t *labeltree.Tree) error {
	var b strings.Builder

	if t.Options().ShowTitle {
		title := p.output.String(t.Name()).Bold().String()
		if t.Collapsed() {
			title += " " + p.output.String("(collapsed)").Faint().String()
		}
		b.WriteString(title + "\n")
	}

	var guides style.Guides
	for _, row := range t.Rows() {
		b.WriteString(guides.Next(row.Depth, row.Last))
		b.WriteString(p.row(row, t.Options().Flat))
		b.WriteString("\n")
	}

	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *Printer) row(row labeltree.Row, flat bool) string {
	l := row.Label

	var b strings.Builder
	if !flat {
		switch {
		case !row.HasChildren:
			b.WriteString(style.Leaf)
		case l.Expanded:
			b.WriteString(style.Open)
		default:
			b.WriteString(style.Closed)
		}
		b.WriteString(" ")
	}

	b.WriteString(p.output.String(style.Dot).Foreground(p.output.Color(l.HexColor())).String())
	b.WriteString(" ")

	name := p.output.String(l.Name)
	if l.Selected {
		name = name.Bold()
	}
	b.WriteString(name.String())

	if l.Selected {
		b.WriteString(" " + p.output.String(style.Check).Foreground(p.output.Color(string(style.Green))).String())
	}
	if l.Favourite {
		b.WriteString(" " + p.output.String(style.Star).Foreground(p.output.Color(string(style.Yellow))).String())
	}
	return b.String()
}

// PrintResults writes lookup results as a table.
func (p *Printer) PrintResults(results []domain.ExternalLabel) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(p.w, "no matches")
		return err
	}

	renderer := lipgloss.NewRenderer(p.w, termenv.WithProfile(p.profile))
	header := renderer.NewStyle().Bold(true).Padding(0, 1)
	cell := renderer.NewStyle().Padding(0, 1)
	muted := cell.Foreground(style.Slate)

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.SourceID, r.Name, r.Authority, r.Rank, r.Status})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(renderer.NewStyle().Foreground(style.Slate)).
		Headers("ID", "NAME", "AUTHORITY", "RANK", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case !results[row].Accepted:
				return muted
			default:
				return cell
			}
		})

	_, err := fmt.Fprintln(p.w, t.Render())
	return err
}
