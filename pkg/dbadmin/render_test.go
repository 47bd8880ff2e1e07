package dbadmin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	t.Run("zero rows returns literal message", func(t *testing.T) {
		assert.Equal(t, "Query returned no results",
			renderTable([]string{"id", "name"}, nil, false))
	})

	t.Run("zero rows and zero columns does not panic", func(t *testing.T) {
		assert.Equal(t, "Query returned no results", renderTable(nil, nil, false))
	})

	t.Run("columns padded to widest cell", func(t *testing.T) {
		out := renderTable(
			[]string{"id", "name"},
			[][]string{{"1", "a-very-long-name"}, {"2", "b"}},
			false,
		)
		lines := strings.Split(out, "\n")
		assert.Equal(t, "id | name            ", lines[0])
		assert.Equal(t, "---+-----------------", lines[1])
		assert.Equal(t, "1  | a-very-long-name", lines[2])
		assert.Contains(t, out, "2 row(s)")
		assert.NotContains(t, out, "limited to")
	})

	t.Run("cap annotation when row cap hit", func(t *testing.T) {
		rows := make([][]string, maxQueryRows)
		for i := range rows {
			rows[i] = []string{"x"}
		}
		out := renderTable([]string{"col"}, rows, true)
		assert.Contains(t, out, "100 row(s) (limited to 100 rows)")
	})

	t.Run("short row renders empty cells", func(t *testing.T) {
		out := renderTable([]string{"a", "b"}, [][]string{{"only"}}, false)
		assert.Contains(t, out, "only | ")
	})
}

func TestRenderBulletList(t *testing.T) {
	t.Run("empty list returns message", func(t *testing.T) {
		assert.Equal(t, "No user databases found",
			renderBulletList(nil, "No user databases found"))
	})

	t.Run("names rendered as bullets", func(t *testing.T) {
		out := renderBulletList([]string{"app", "staging"}, "none")
		assert.Equal(t, "- app\n- staging", out)
	})
}

func TestFormatRow(t *testing.T) {
	cells := formatRow([]any{nil, []byte("bytes"), int64(7), "text"})
	assert.Equal(t, []string{"NULL", "bytes", "7", "text"}, cells)
}
