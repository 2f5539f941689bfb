package results

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sensorq/cli/internal/backend"
)

func decodeRecords(t *testing.T, raw string) []backend.Record {
	t.Helper()
	var recs []backend.Record
	require.NoError(t, json.Unmarshal([]byte(raw), &recs))
	return recs
}

func TestBuildGridDerivesColumnsFromFirstRecord(t *testing.T) {
	recs := decodeRecords(t, `[{"a":1,"b":2},{"a":3,"b":4}]`)

	grid, ok := BuildGrid(recs)
	require.True(t, ok)

	assert.Equal(t, []string{"a", "b"}, grid.Columns)
	assert.Equal(t, [][]string{{"1", "2"}, {"3", "4"}}, grid.Rows)
}

func TestBuildGridEmptyTable(t *testing.T) {
	_, ok := BuildGrid(nil)
	assert.False(t, ok)

	_, ok = BuildGrid([]backend.Record{})
	assert.False(t, ok)

	// a first record with no keys yields no usable schema either
	_, ok = BuildGrid(decodeRecords(t, `[{}]`))
	assert.False(t, ok)
}

func TestBuildGridReadsPositionally(t *testing.T) {
	// later records' keys are ignored; values are read by position
	recs := decodeRecords(t, `[{"room":"Room 1","avg":20.1},{"zone":"Room 2","level":22.4}]`)

	grid, ok := BuildGrid(recs)
	require.True(t, ok)

	assert.Equal(t, []string{"room", "avg"}, grid.Columns)
	assert.Equal(t, [][]string{{"Room 1", "20.1"}, {"Room 2", "22.4"}}, grid.Rows)
}

func TestBuildGridPadsAndTruncatesRaggedRows(t *testing.T) {
	recs := decodeRecords(t, `[{"a":1,"b":2,"c":3},{"a":4},{"a":5,"b":6,"c":7,"d":8}]`)

	grid, ok := BuildGrid(recs)
	require.True(t, ok)

	assert.Equal(t, []string{"a", "b", "c"}, grid.Columns)
	assert.Equal(t, [][]string{
		{"1", "2", "3"},
		{"4", "", ""},    // short row padded
		{"5", "6", "7"},  // long row truncated
	}, grid.Rows)
}

func TestBuildGridScenarioShape(t *testing.T) {
	recs := decodeRecords(t, `[{"room":"Room 3","avg_temp":24.5}]`)

	grid, ok := BuildGrid(recs)
	require.True(t, ok)

	assert.Equal(t, []string{"room", "avg_temp"}, grid.Columns)
	require.Len(t, grid.Rows, 1)
	assert.Equal(t, []string{"Room 3", "24.5"}, grid.Rows[0])
}

func TestCellText(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: "NULL"},
		{name: "string", in: "Room 3", want: "Room 3"},
		{name: "number keeps wire form", in: json.Number("24.50"), want: "24.50"},
		{name: "bool true", in: true, want: "true"},
		{name: "bool false", in: false, want: "false"},
		{name: "array", in: []any{json.Number("1"), "two"}, want: `[1,"two"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CellText(tt.in))
		})
	}
}
