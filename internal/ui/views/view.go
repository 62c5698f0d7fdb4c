package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AppTitle is shown at the top left of the screen
const AppTitle = "Munro Explorer"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width    int
	Height   int
	Input    string // rendered search input
	Table    string // rendered table
	Count    int    // rows currently held
	Loading  bool   // a fetch is in flight
	Search   string // search text the rows belong to
	HelpLine string // rendered key help
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{styles: styles}
}

// Styles exposes the renderer's palette
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// ChromeHeight is the number of lines the view uses around the table body:
// container padding, title, search box, table header and help line.
const ChromeHeight = 11

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")

	boxWidth := state.Width - 4 - 2 // container padding and box border
	if boxWidth < 20 {
		boxWidth = 20
	}
	content.WriteString(r.styles.SearchBox.Width(boxWidth).Render(state.Input))
	content.WriteString("\n")

	// An empty listing renders an empty table body, never a message
	content.WriteString(state.Table)

	if state.HelpLine != "" {
		// Push help to the bottom of the screen
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}
		if padding := availableLines - currentLines - 1; padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpLine))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitleLine renders the title with right-aligned status indicators
func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render(AppTitle)

	indicators := []string{}
	if state.Loading {
		indicators = append(indicators, r.styles.Loading.Render("↻ Loading"))
	}
	noun := "munros"
	if state.Count == 1 {
		noun = "munro"
	}
	status := fmt.Sprintf("%d %s", state.Count, noun)
	if state.Search != "" {
		status = fmt.Sprintf("%s [Search: %s]", status, state.Search)
	}
	indicators = append(indicators, r.styles.Status.Render(status))
	rightContent := strings.Join(indicators, r.styles.Dim.Render(" | "))

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	availableWidth := termWidth - 4 // Account for main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	// If not enough space, just show with minimal spacing
	return logo + "  " + rightContent
}
