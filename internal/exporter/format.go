package exporter

import (
	"strconv"
	"strings"

	"boxcli/internal/analytics"
)

// isNumericColumn reports whether every non-empty cell of a column parses as
// a number. Numeric columns right-align in markdown and text output.
func isNumericColumn(t analytics.Table, col int) bool {
	sawValue := false
	for _, row := range t.Rows {
		if col >= len(row) || row[col] == "" {
			continue
		}
		if _, err := strconv.ParseFloat(row[col], 64); err != nil {
			return false
		}
		sawValue = true
	}
	return sawValue
}

// columnWidths returns the rendered width of each column including header.
func columnWidths(t analytics.Table) []int {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = len(c)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

// FormatMarkdown renders a table as a GitHub pipe table; numeric columns are
// right-aligned. An empty table renders as a placeholder line.
func FormatMarkdown(t analytics.Table) string {
	if t.Empty() {
		return "_(no data)_\n"
	}

	numeric := make([]bool, len(t.Columns))
	for i := range t.Columns {
		numeric[i] = isNumericColumn(t, i)
	}
	widths := columnWidths(t)

	var b strings.Builder
	b.WriteString("|")
	for i, c := range t.Columns {
		b.WriteString(" " + pad(c, widths[i], false) + " |")
	}
	b.WriteString("\n|")
	for i := range t.Columns {
		if numeric[i] {
			b.WriteString(strings.Repeat("-", widths[i]+1) + ":|")
		} else {
			b.WriteString(":" + strings.Repeat("-", widths[i]+1) + "|")
		}
	}
	b.WriteString("\n")
	for _, row := range t.Rows {
		b.WriteString("|")
		for i := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(" " + pad(cell, widths[i], numeric[i]) + " |")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatText renders a table as a width-aligned plain-text block for console
// output.
func FormatText(t analytics.Table) string {
	if t.Empty() {
		return "(no data)\n"
	}

	numeric := make([]bool, len(t.Columns))
	for i := range t.Columns {
		numeric[i] = isNumericColumn(t, i)
	}
	widths := columnWidths(t)

	var b strings.Builder
	for i, c := range t.Columns {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(pad(c, widths[i], numeric[i]))
	}
	b.WriteString("\n")
	for _, row := range t.Rows {
		for i := range t.Columns {
			if i > 0 {
				b.WriteString("  ")
			}
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(pad(cell, widths[i], numeric[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// pad space-pads a cell to width; right-aligned when rightAlign.
func pad(s string, width int, rightAlign bool) string {
	if len(s) >= width {
		return s
	}
	fill := strings.Repeat(" ", width-len(s))
	if rightAlign {
		return fill + s
	}
	return s + fill
}
