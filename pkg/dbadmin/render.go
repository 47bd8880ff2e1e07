package dbadmin

import (
	"fmt"
	"strings"
)

// renderTable renders query results as a pipe-delimited table with a
// separator rule line. capped indicates the row cap was hit, which adds a
// trailing annotation. Safe on zero rows and zero columns.
func renderTable(columns []string, rows [][]string, capped bool) string {
	if len(rows) == 0 {
		return "Query returned no results"
	}
	if len(columns) == 0 {
		return "Query returned no results"
	}

	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i > 0 {
				sb.WriteString(" | ")
			}
			fmt.Fprintf(&sb, "%-*s", w, cell)
		}
		sb.WriteString("\n")
	}

	writeRow(columns)
	for i, w := range widths {
		if i > 0 {
			sb.WriteString("-+-")
		}
		sb.WriteString(strings.Repeat("-", w))
	}
	sb.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}

	fmt.Fprintf(&sb, "\n%d row(s)", len(rows))
	if capped {
		fmt.Fprintf(&sb, " (limited to %d rows)", maxQueryRows)
	}
	return sb.String()
}

// renderBulletList renders names as a bullet list, or the given empty
// message when there are none.
func renderBulletList(names []string, emptyMessage string) string {
	if len(names) == 0 {
		return emptyMessage
	}
	var sb strings.Builder
	for _, name := range names {
		fmt.Fprintf(&sb, "- %s\n", name)
	}
	return strings.TrimRight(sb.String(), "\n")
}
