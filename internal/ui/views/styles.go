package views

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title     lipgloss.Style
	Dim       lipgloss.Style
	Status    lipgloss.Style
	Loading   lipgloss.Style
	SearchBox lipgloss.Style
	Help      lipgloss.Style
	Main      lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Selected  lipgloss.Style
	Label     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Loading: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().Padding(1, 2),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("17")).
			Background(lipgloss.Color("153")).
			Padding(0, 1),
		Cell:     lipgloss.NewStyle().Padding(0, 1),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		Label:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	}
}

// TableStyles adapts the palette for a bubbles table
func (s *Styles) TableStyles() table.Styles {
	ts := table.DefaultStyles()
	ts.Header = s.Header
	ts.Cell = s.Cell
	ts.Selected = s.Selected
	return ts
}
