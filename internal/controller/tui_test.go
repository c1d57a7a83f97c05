package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var viewerLines = []string{
	"defmodule Test do",
	"  def a() do",
	"    def b() do",
	"      :ok",
	"    end",
	"  end",
	"end",
}

var viewerLevels = []int{0, 1, 2, 2, 2, 1, 0}

func press(t *testing.T, model tea.Model, keys ...string) viewerModel {
	t.Helper()

	for _, k := range keys {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		model, _ = model.Update(msg)
	}

	vm, ok := model.(viewerModel)
	require.True(t, ok)

	return vm
}

func TestViewerModel_FoldLevelKeys(t *testing.T) {
	vm := newViewerModel("app.ex", viewerLines, viewerLevels)
	assert.Equal(t, 2, vm.foldLevel)

	vm = press(t, vm, "-")
	assert.Equal(t, 1, vm.foldLevel)
	assert.Contains(t, vm.renderContent(), "3 lines: def b() do")

	vm = press(t, vm, "M")
	assert.Equal(t, 0, vm.foldLevel)
	assert.Contains(t, vm.renderContent(), "5 lines: def a() do")

	vm = press(t, vm, "-")
	assert.Equal(t, 0, vm.foldLevel)

	vm = press(t, vm, "+", "+", "+")
	assert.Equal(t, 2, vm.foldLevel)

	vm = press(t, vm, "M", "R")
	assert.Equal(t, 2, vm.foldLevel)
	assert.NotContains(t, vm.renderContent(), "lines:")
}

func TestViewerModel_Quit(t *testing.T) {
	vm := newViewerModel("app.ex", viewerLines, viewerLevels)

	model, cmd := vm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, model.View())
}

func TestViewerModel_Resize(t *testing.T) {
	vm := newViewerModel("app.ex", viewerLines, viewerLevels)

	model, _ := vm.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	resized, ok := model.(viewerModel)
	require.True(t, ok)

	assert.Equal(t, 100, resized.viewport.Width)
	assert.Equal(t, 28, resized.viewport.Height)
	assert.Contains(t, resized.View(), "fold level 2/2")
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(nil))
}
