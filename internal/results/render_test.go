package results

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sensorq/cli/internal/backend"
)

func answerFromJSON(t *testing.T, raw string) *backend.Answer {
	t.Helper()
	var ans backend.Answer
	require.NoError(t, json.Unmarshal([]byte(raw), &ans))
	return &ans
}

func TestRenderTableFormat(t *testing.T) {
	ans := answerFromJSON(t, `{"table":[{"room":"Room 3","avg_temp":24.5}]}`)

	var buf strings.Builder
	require.NoError(t, Render(&buf, ans, "table"))
	out := buf.String()

	assert.Contains(t, out, "room")
	assert.Contains(t, out, "avg_temp")
	assert.Contains(t, out, "Room 3")
	assert.Contains(t, out, "24.5")
	assert.Contains(t, out, "(1 rows)")
}

func TestRenderEmptyTableRendersNothing(t *testing.T) {
	ans := answerFromJSON(t, `{"summary":"nothing tabular","table":[]}`)

	for _, format := range []string{"table", "csv", "md"} {
		var buf strings.Builder
		require.NoError(t, Render(&buf, ans, format))
		assert.Empty(t, buf.String(), "format %s", format)
	}
}

func TestRenderCSV(t *testing.T) {
	ans := answerFromJSON(t, `{"table":[{"room":"Room 1, annex","avg":20},{"room":"Room 2","avg":null}]}`)

	var buf strings.Builder
	require.NoError(t, Render(&buf, ans, "csv"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "room,avg", lines[0])
	assert.Equal(t, `"Room 1, annex",20`, lines[1])
	assert.Equal(t, "Room 2,NULL", lines[2])
}

func TestRenderMarkdown(t *testing.T) {
	ans := answerFromJSON(t, `{"table":[{"a":1,"b":2}]}`)

	var buf strings.Builder
	require.NoError(t, Render(&buf, ans, "md"))

	assert.Equal(t, "| a | b |\n| --- | --- |\n| 1 | 2 |\n", buf.String())
}

func TestRenderJSONKeepsKeyOrder(t *testing.T) {
	ans := answerFromJSON(t, `{"summary":"s","table":[{"z":1,"a":2}]}`)

	var buf strings.Builder
	require.NoError(t, Render(&buf, ans, "json"))
	out := buf.String()

	// z must come before a, mirroring the wire order
	assert.Less(t, strings.Index(out, `"z"`), strings.Index(out, `"a"`))

	// and the output must still be valid JSON
	var back map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &back))
	assert.Equal(t, "s", back["summary"])
}
