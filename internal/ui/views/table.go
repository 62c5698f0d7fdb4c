package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"

	"munros/internal/domain"
)

// Column headers, in cell order
var Headers = []string{"Name", "Distance (km)", "Time (hrs)", "Grade", "Bog"}

const (
	minNameWidth = 24
	numericWidth = 13
	smallWidth   = 7
)

// Columns returns the table columns sized for the given total width.
// The name column takes whatever the numeric columns leave over.
func Columns(width int) []table.Column {
	// Each cell carries one column of padding on either side
	fixed := numericWidth*2 + smallWidth*2 + 2*len(Headers)
	nameWidth := width - fixed
	if nameWidth < minNameWidth {
		nameWidth = minNameWidth
	}
	return []table.Column{
		{Title: Headers[0], Width: nameWidth},
		{Title: Headers[1], Width: numericWidth},
		{Title: Headers[2], Width: numericWidth},
		{Title: Headers[3], Width: smallWidth},
		{Title: Headers[4], Width: smallWidth},
	}
}

// Cells returns the visible cells of one munro: name, distance, time, grade, bog
func Cells(m domain.Munro) []string {
	return []string{
		m.Name,
		FormatMeasure(m.Distance),
		FormatMeasure(m.Time),
		FormatMeasure(m.Grade),
		FormatMeasure(m.Bog),
	}
}

// Rows converts a listing into table rows, one per munro, in listing order
func Rows(munros []domain.Munro) []table.Row {
	rows := make([]table.Row, 0, len(munros))
	for _, m := range munros {
		rows = append(rows, table.Row(Cells(m)))
	}
	return rows
}

// FormatNumber prints a number the shortest way that round-trips: 17, 8.5
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatMeasure is FormatNumber for an optional value; a missing value is an
// empty cell
func FormatMeasure(v *float64) string {
	if v == nil {
		return ""
	}
	return FormatNumber(*v)
}

// RenderPlainTable renders a listing as a bordered table for non-interactive output
func RenderPlainTable(munros []domain.Munro, styles *Styles) string {
	t := lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Dim).
		Headers(Headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == lgtable.HeaderRow {
				return style.Bold(true)
			}
			if col > 0 {
				return style.Align(lipgloss.Right)
			}
			return style
		})
	for _, m := range munros {
		t.Row(Cells(m)...)
	}
	return t.String()
}

// RenderDetails renders the full record of one munro for the pager
func RenderDetails(m domain.Munro, styles *Styles) string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(m.Name))
	b.WriteString("\n\n")

	field := func(label, value string) {
		if value == "" {
			value = "-"
		}
		b.WriteString(fmt.Sprintf("  %s%s\n", styles.Label.Width(16).Render(label), value))
	}
	field("Distance (km)", FormatMeasure(m.Distance))
	field("Time (hrs)", FormatMeasure(m.Time))
	field("Grade", FormatMeasure(m.Grade))
	field("Bog", FormatMeasure(m.Bog))
	field("Start", m.Start)

	if m.Summary != "" {
		b.WriteString("\n")
		b.WriteString(styles.Label.Render("Summary"))
		b.WriteString("\n")
		b.WriteString(m.Summary)
		b.WriteString("\n")
	}

	return b.String()
}
