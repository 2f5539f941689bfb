package results

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"sensorq/cli/internal/backend"
)

// Render writes the answer's table in the requested format. The summary and
// chart are the caller's concern except in json format, which emits the whole
// answer. Unknown formats fall back to the plain table.
func Render(w io.Writer, ans *backend.Answer, format string) error {
	switch format {
	case "json":
		return RenderJSON(w, ans)
	case "csv":
		grid, ok := BuildGrid(ans.Table)
		if !ok {
			return nil
		}
		return RenderCSV(w, grid)
	case "md", "markdown":
		grid, ok := BuildGrid(ans.Table)
		if !ok {
			return nil
		}
		return RenderMarkdown(w, grid)
	default:
		grid, ok := BuildGrid(ans.Table)
		if !ok {
			return nil
		}
		return RenderTable(w, grid)
	}
}

// RenderTable writes the grid as a box-drawn table with a row count footer.
func RenderTable(w io.Writer, grid Grid) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	// Column names are the backend's keys; show them verbatim.
	t.Style().Format.Header = text.FormatDefault

	headerRow := make(table.Row, len(grid.Columns))
	for i, col := range grid.Columns {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)

	for _, cells := range grid.Rows {
		row := make(table.Row, len(cells))
		for i, cell := range cells {
			row[i] = cell
		}
		t.AppendRow(row)
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(grid.Rows))
	return nil
}

// RenderJSON writes the whole answer, records in wire key order.
func RenderJSON(w io.Writer, ans *backend.Answer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ans)
}

// RenderCSV writes the grid as comma-separated values with a header line.
func RenderCSV(w io.Writer, grid Grid) error {
	_, _ = fmt.Fprintln(w, strings.Join(grid.Columns, ","))

	for _, cells := range grid.Rows {
		values := make([]string, len(cells))
		for i, cell := range cells {
			values[i] = escapeCSV(cell)
		}
		_, _ = fmt.Fprintln(w, strings.Join(values, ","))
	}
	return nil
}

// RenderMarkdown writes the grid as a GitHub-style markdown table.
func RenderMarkdown(w io.Writer, grid Grid) error {
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(grid.Columns, " | "))

	seps := make([]string, len(grid.Columns))
	for i := range seps {
		seps[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | "))

	for _, cells := range grid.Rows {
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
	}
	return nil
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
