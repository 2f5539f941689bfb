// Package results turns a backend answer into display-ready output without
// prior knowledge of the table's schema.
package results

import (
	"encoding/json"
	"fmt"

	"sensorq/cli/internal/backend"
)

// Grid is a derived table layout: a fixed header list and rows of cell text.
type Grid struct {
	Columns []string
	Rows    [][]string
}

// BuildGrid derives a grid from the answer's records. The column list comes
// from the first record's keys, in wire order, and is reused unchanged for
// every row. Rows are read positionally from each record's own value sequence:
// a record with fewer values than columns is padded with blanks, one with more
// is cut at the column count. Records are assumed homogeneous; nothing
// validates or reconciles their keys beyond that.
//
// The second return value is false when there is no table to render.
func BuildGrid(records []backend.Record) (Grid, bool) {
	if len(records) == 0 {
		return Grid{}, false
	}

	g := Grid{Columns: records[0].Keys}
	if len(g.Columns) == 0 {
		return Grid{}, false
	}

	g.Rows = make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(g.Columns))
		for i := range g.Columns {
			if i < len(rec.Values) {
				row[i] = CellText(rec.Values[i])
			}
		}
		g.Rows = append(g.Rows, row)
	}
	return g, true
}

// CellText formats one value for display. Numbers keep their wire form,
// null renders as NULL.
func CellText(v any) string {
	switch t := v.(type) {
	case nil:
		return "NULL"
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		// nested arrays/objects render as compact JSON
		if b, err := json.Marshal(t); err == nil {
			return string(b)
		}
		return fmt.Sprintf("%v", t)
	}
}
