package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"munros/internal/domain"
)

var testMunros = []domain.Munro{
	{ID: 1, Name: "Ben Nevis", Summary: "The Ben", Distance: domain.Measure(17), Time: domain.Measure(8), Grade: domain.Measure(3), Bog: domain.Measure(2), Start: "Glen Nevis"},
	{ID: 2, Name: "Ben Macdui", Distance: domain.Measure(28.5), Time: domain.Measure(9.25), Grade: domain.Measure(3), Bog: domain.Measure(1)},
	{ID: 3, Name: "Schiehallion", Distance: domain.Measure(10), Time: domain.Measure(5), Grade: domain.Measure(2), Bog: domain.Measure(2)},
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		17:    "17",
		8:     "8",
		8.5:   "8.5",
		9.25:  "9.25",
		0:     "0",
		0.1:   "0.1",
		1234:  "1234",
		-1.75: "-1.75",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatNumber(in), "FormatNumber(%v)", in)
	}
}

func TestCells(t *testing.T) {
	assert.Equal(t, []string{"Ben Nevis", "17", "8", "3", "2"}, Cells(testMunros[0]))
}

func TestCells_MissingMeasuresAreEmpty(t *testing.T) {
	partial := domain.Munro{Name: "Beinn a' Chlaidheimh", Time: domain.Measure(0)}

	assert.Equal(t, []string{"Beinn a' Chlaidheimh", "", "0", "", ""}, Cells(partial))
	assert.Equal(t, "", FormatMeasure(nil))
	assert.Equal(t, "9.25", FormatMeasure(domain.Measure(9.25)))
}

func TestRows_OnePerMunroInOrder(t *testing.T) {
	rows := Rows(testMunros)

	require.Len(t, rows, len(testMunros))
	assert.Equal(t, table.Row{"Ben Nevis", "17", "8", "3", "2"}, rows[0])
	assert.Equal(t, table.Row{"Ben Macdui", "28.5", "9.25", "3", "1"}, rows[1])
	assert.Equal(t, table.Row{"Schiehallion", "10", "5", "2", "2"}, rows[2])
}

func TestRows_NoDeduplication(t *testing.T) {
	dup := []domain.Munro{testMunros[0], testMunros[0]}
	assert.Len(t, Rows(dup), 2)
}

func TestRows_Empty(t *testing.T) {
	rows := Rows(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestColumns(t *testing.T) {
	narrow := Columns(40)
	require.Len(t, narrow, len(Headers))
	assert.Equal(t, minNameWidth, narrow[0].Width)

	wide := Columns(200)
	assert.Greater(t, wide[0].Width, minNameWidth)

	total := 0
	for i, c := range wide {
		assert.Equal(t, Headers[i], c.Title)
		total += c.Width + 2
	}
	assert.Equal(t, 200, total, "columns plus cell padding fill the width")
}

func TestRenderPlainTable(t *testing.T) {
	out := RenderPlainTable(testMunros, NewStyles())

	for _, h := range Headers {
		assert.Contains(t, out, h)
	}
	nevis := strings.Index(out, "Ben Nevis")
	macdui := strings.Index(out, "Ben Macdui")
	schie := strings.Index(out, "Schiehallion")
	require.True(t, nevis >= 0 && macdui >= 0 && schie >= 0)
	assert.True(t, nevis < macdui && macdui < schie, "rows keep listing order")
	assert.Contains(t, out, "28.5")
}

func TestRenderPlainTable_EmptyHasHeadersOnly(t *testing.T) {
	out := RenderPlainTable(nil, NewStyles())
	assert.Contains(t, out, "Name")
	assert.NotContains(t, out, "Ben")
}

func TestRenderDetails(t *testing.T) {
	out := RenderDetails(testMunros[0], NewStyles())

	assert.Contains(t, out, "Ben Nevis")
	assert.Contains(t, out, "Glen Nevis")
	assert.Contains(t, out, "The Ben")
	assert.Contains(t, out, "17")

	noSummary := RenderDetails(testMunros[1], NewStyles())
	assert.NotContains(t, noSummary, "Summary")
	assert.Contains(t, noSummary, "-", "missing start is shown as a dash")
}

func TestRenderDetails_MissingMeasures(t *testing.T) {
	out := RenderDetails(domain.Munro{Name: "Sgurr nan Gillean", Grade: domain.Measure(5)}, NewStyles())

	assert.Contains(t, out, "5")
	assert.Equal(t, 4, strings.Count(out, "-\n"), "distance, time, bog and start are dashes")
}
