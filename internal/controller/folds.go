package controller

import (
	"fmt"
	"strings"
)

// foldRow is one visible row of a folded buffer.
type foldRow struct {
	Line  int // 1-based number of the first line shown by the row
	Level int
	Text  string
	// Hidden is the number of lines collapsed into the row, 0 for a plain line.
	Hidden int
}

// foldRows collapses every run of lines deeper than foldLevel into a single
// placeholder row, the way an editor shows closed folds.
func foldRows(lines []string, levels []int, foldLevel int) []foldRow {
	rows := make([]foldRow, 0, len(lines))

	for i := 0; i < len(lines); {
		level := levelAt(levels, i)
		if level <= foldLevel {
			rows = append(rows, foldRow{Line: i + 1, Level: level, Text: lines[i]})
			i++

			continue
		}

		j := i + 1
		for j < len(lines) && levelAt(levels, j) > foldLevel {
			j++
		}

		rows = append(rows, foldRow{
			Line:   i + 1,
			Level:  foldLevel + 1,
			Text:   strings.TrimSpace(lines[i]),
			Hidden: j - i,
		})
		i = j
	}

	return rows
}

func levelAt(levels []int, i int) int {
	if i < len(levels) {
		return levels[i]
	}

	return 0
}

// plain renders a row without styling.
func (r foldRow) plain(numberWidth int) string {
	if r.Hidden > 0 {
		return fmt.Sprintf("%*d %d +--%s %d lines: %s", numberWidth, r.Line, r.Level, strings.Repeat("-", r.Level-1), r.Hidden, r.Text)
	}

	return fmt.Sprintf("%*d %d %s", numberWidth, r.Line, r.Level, r.Text)
}

func numberWidth(lines int) int {
	return len(fmt.Sprintf("%d", max(lines, 1)))
}
