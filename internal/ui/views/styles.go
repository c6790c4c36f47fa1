package views

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Hint        lipgloss.Style
	Clear       lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Card        lipgloss.Style
	Message     lipgloss.Style
	StatusError lipgloss.Style
	Spinner     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Hint:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Clear: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Message:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(1, 2),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Padding(1, 2), // red
		Spinner:     lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	}
}

// TableStyles returns the styles for the countries table
func TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	return s
}
