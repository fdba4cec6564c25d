package table

import (
	"fmt"
	"io"

	pretty "github.com/jedib0t/go-pretty/v6/table"
)

const noDataMessage = "No data"

// Render draws the current page to w: headers with a marker on the active
// sort column, the page rows, and the pagination footer. With zero rows a
// single "No data" row spans all columns and the footer is suppressed.
func (m *Model[T]) Render(w io.Writer) {
	t := pretty.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(pretty.StyleLight)

	header := make(pretty.Row, 0, len(m.columns))
	for _, col := range m.columns {
		header = append(header, col.Title+m.sortMarker(col.ID))
	}
	t.AppendHeader(header)

	if len(m.rows) == 0 {
		empty := make(pretty.Row, len(m.columns))
		for i := range empty {
			empty[i] = noDataMessage
		}
		t.AppendRow(empty, pretty.RowConfig{AutoMerge: true})
		t.Render()
		return
	}

	for _, row := range m.Page() {
		cells := make(pretty.Row, 0, len(m.columns))
		for _, col := range m.columns {
			cells = append(cells, col.Cell(row))
		}
		t.AppendRow(cells)
	}
	t.Render()

	fmt.Fprintf(w, "%s (page %d of %d)\n", m.Footer(), m.pageIndex+1, m.TotalPages())
}

// sortMarker returns the header suffix for the active sort column.
func (m *Model[T]) sortMarker(columnID string) string {
	if m.sortSpec.ColumnID != columnID {
		return ""
	}
	switch m.sortSpec.Direction {
	case Ascending:
		return " ↑"
	case Descending:
		return " ↓"
	default:
		return ""
	}
}
