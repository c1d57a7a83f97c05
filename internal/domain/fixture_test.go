package domain

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var fixtureLine = regexp.MustCompile(`^(\d+)(.*)$`)

// parseFixture splits a fixture where every line is prefixed by its expected
// fold level, e.g. "1   def asd() do".
func parseFixture(t *testing.T, fixture string) ([]int, []string) {
	t.Helper()

	var (
		levels []int
		lines  []string
	)

	for _, raw := range strings.Split(strings.TrimSuffix(fixture, "\n"), "\n") {
		match := fixtureLine.FindStringSubmatch(raw)
		require.NotNil(t, match, "fixture line %q lacks a level prefix", raw)

		level, err := strconv.Atoi(match[1])
		require.NoError(t, err)

		levels = append(levels, level)
		lines = append(lines, match[2])
	}

	return levels, lines
}

// splitSource splits a plain source snippet into lines.
func splitSource(src string) []string {
	return strings.Split(strings.TrimSuffix(src, "\n"), "\n")
}
