package domain

import (
	"sort"

	m "exfold.dev/pkg/exfold/internal/model"
)

// Ranges turns a level array into folds: for every level k each maximal run
// of lines with level >= k is a fold at level k. Ranges are ordered by start
// line, outer folds first.
func Ranges(levels []int) []m.FoldRange {
	var (
		ranges []m.FoldRange
		starts []int // starts[k-1] is where the open level-k fold began
	)

	closeAbove := func(level, line int) {
		for len(starts) > level {
			k := len(starts)
			ranges = append(ranges, m.FoldRange{StartLine: starts[k-1], EndLine: line, Level: k})
			starts = starts[:k-1]
		}
	}

	for i, level := range levels {
		if level < 0 {
			level = 0
		}

		closeAbove(level, i)

		for len(starts) < level {
			starts = append(starts, i+1)
		}
	}

	closeAbove(0, len(levels))

	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].StartLine != ranges[j].StartLine {
			return ranges[i].StartLine < ranges[j].StartLine
		}

		return ranges[i].Level < ranges[j].Level
	})

	return ranges
}

// MaxLevel returns the deepest level, 0 for an empty array.
func MaxLevel(levels []int) int {
	maxLevel := 0

	for _, level := range levels {
		if level > maxLevel {
			maxLevel = level
		}
	}

	return maxLevel
}
