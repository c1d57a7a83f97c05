package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "exfold.dev/pkg/exfold/internal/model"
)

func newTestUI() (*SimpleUI, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	return NewSimpleUI(cmd), &out
}

var sampleReport = m.FoldReport{
	Path:     "lib/app.ex",
	Hash:     "abc",
	Lines:    3,
	Levels:   []int{1, 1, 1},
	Ranges:   []m.FoldRange{{StartLine: 1, EndLine: 3, Level: 1}},
	MaxLevel: 1,
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatText},
		{in: "text", want: FormatText},
		{in: "JSON", want: FormatJSON},
		{in: " yaml ", want: FormatYAML},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSimpleUI_DisplayLevels(t *testing.T) {
	lines := []string{"def asd() do", "  :ok", "end"}

	t.Run("text", func(t *testing.T) {
		ui, out := newTestUI()

		require.NoError(t, ui.DisplayLevels(context.Background(), sampleReport, lines, FormatText))
		assert.Equal(t, "1 def asd() do\n1   :ok\n1 end\n", out.String())
	})

	t.Run("json", func(t *testing.T) {
		ui, out := newTestUI()

		require.NoError(t, ui.DisplayLevels(context.Background(), sampleReport, lines, FormatJSON))

		var decoded m.FoldReport
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, sampleReport.Levels, decoded.Levels)
		assert.Equal(t, sampleReport.Ranges, decoded.Ranges)
	})

	t.Run("yaml", func(t *testing.T) {
		ui, out := newTestUI()

		require.NoError(t, ui.DisplayLevels(context.Background(), sampleReport, lines, FormatYAML))

		var decoded m.FoldReport
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, sampleReport.Path, decoded.Path)
		assert.Equal(t, 1, decoded.MaxLevel)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ui, out := newTestUI()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, ui.DisplayLevels(ctx, sampleReport, lines, FormatText), context.Canceled)
		assert.Empty(t, out.String())
	})
}

func TestSimpleUI_DisplayReports(t *testing.T) {
	ui, out := newTestUI()

	cached := sampleReport
	cached.Path = "lib/cached.ex"
	cached.Cached = true

	require.NoError(t, ui.DisplayReports(context.Background(), []m.FoldReport{sampleReport, cached}))

	output := out.String()
	assert.Contains(t, output, "PATH")
	assert.Contains(t, output, "lib/app.ex")
	assert.Contains(t, output, "lib/cached.ex")
	assert.Contains(t, output, "yes")
	assert.Contains(t, output, "TOTAL FILES 2")
}

func TestSimpleUI_DisplayEdit(t *testing.T) {
	t.Run("with changes", func(t *testing.T) {
		ui, out := newTestUI()

		err := ui.DisplayEdit(context.Background(), m.EditResult{
			Path:      "app.ex",
			Lines:     []string{"def a() do", "  :new", "end"},
			Levels:    []int{1, 1, 1},
			Changes:   []m.LevelChange{{Line: 2, Before: -1, After: 1}},
			Rescanned: 2,
			Reused:    true,
		})
		require.NoError(t, err)

		output := out.String()
		assert.Contains(t, output, "re-scanned 2 of 3 line(s), tail reused: yes")
		assert.Contains(t, output, "new")
		assert.Contains(t, output, ":new")
	})

	t.Run("no changes", func(t *testing.T) {
		ui, out := newTestUI()

		require.NoError(t, ui.DisplayEdit(context.Background(), m.EditResult{Path: "app.ex"}))
		assert.Contains(t, out.String(), "no level changes")
	})
}

func TestSimpleUI_DisplayDiff(t *testing.T) {
	ui, out := newTestUI()

	require.NoError(t, ui.DisplayDiff(context.Background(), ""))
	require.NoError(t, ui.DisplayDiff(context.Background(), "-0 x\n+1 x\n"))

	assert.Equal(t, "no level changes\n-0 x\n+1 x\n", out.String())
}

func TestSimpleUI_DisplayWatchUpdate(t *testing.T) {
	ui, out := newTestUI()

	err := ui.DisplayWatchUpdate(context.Background(), "app.ex", []m.LevelChange{
		{Line: 3, Before: 0, After: 1},
		{Line: 4, Before: -1, After: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "app.ex: 2 line(s) changed level\n  3: 0 -> 1\n  4: new -> 1\n", out.String())
}

func TestSimpleUI_View(t *testing.T) {
	ui, out := newTestUI()

	err := ui.View(context.Background(), "app.ex", []string{"def a() do", "end"}, []int{1, 1})
	require.NoError(t, err)

	assert.Equal(t, "app.ex\n1 1 def a() do\n2 1 end\n", out.String())
}
