// Package preview renders small display-width-aligned text tables for
// console summaries.
package preview

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table renders headers and rows as a plain text table with two-space
// column gaps. Column widths follow terminal display width rather than
// byte or rune count, so values with umlauts or wide characters line up.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}

			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	writeRow := func(cells []string) {
		var line strings.Builder

		for i, width := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}

			line.WriteString(runewidth.FillRight(cell, width))

			if i < len(widths)-1 {
				line.WriteString("  ")
			}
		}

		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}

	writeRow(headers)

	separators := make([]string, len(widths))
	for i, width := range widths {
		separators[i] = strings.Repeat("-", width)
	}
	writeRow(separators)

	for _, row := range rows {
		writeRow(row)
	}

	return b.String()
}
