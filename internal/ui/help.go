package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"munros/internal/ui/views"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// renderHelpContent renders the help information shown in the pager
func (r *HelpRenderer) renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(key, desc string) string {
		return fmt.Sprintf("  %s%s\n", keyStyle.Render(key), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render(views.AppTitle + " Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	help.WriteString(line("type", "Search by name; the list refreshes on every change"))
	help.WriteString(line("backspace", "Delete a character"))
	help.WriteString(line("←/→", "Move within the search text"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Table"))
	help.WriteString("\n")
	help.WriteString(line("↑/↓", "Move the selection"))
	help.WriteString(line("PgUp/PgDn", "Page up/down"))
	help.WriteString(line("Enter", "Show the selected munro in full"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line("F1", "Show this help"))
	help.WriteString(line("Esc, Ctrl+C", "Quit"))

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Press q to leave the pager"))

	return help.String()
}
