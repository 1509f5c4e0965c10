package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/taxa/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	treeTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(style.Iris)

	cursorStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Bold(true)

	checkStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	starStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	mutedStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.Slate).
			Padding(0, 1)
)
