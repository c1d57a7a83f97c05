package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "exfold.dev/pkg/exfold/internal/model"
)

// TUI implements UI with an interactive Bubble Tea fold viewer. Everything
// except View is printed the same way as SimpleUI.
type TUI struct {
	*SimpleUI
	output io.Writer
	input  io.Reader
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		output:   cmd.OutOrStdout(),
		input:    cmd.InOrStdin(),
	}
}

// View runs the interactive viewer until the user quits or ctx ends.
func (t *TUI) View(ctx context.Context, path m.Path, lines []string, levels []int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newViewerModel(path, lines, levels)
	if width, height, ok := terminalSize(t.output); ok {
		model = model.resize(width, height)
	}

	program := tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(t.input),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}

		return fmt.Errorf("run viewer: %w", err)
	}

	return nil
}

var (
	viewerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	viewerGutter     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	viewerFolded     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	viewerHelp       = lipgloss.NewStyle().Faint(true)
	levelColors      = []lipgloss.Color{"8", "12", "10", "13", "9", "6"}
)

const viewerChromeHeight = 2 // title and help lines

type viewerKeyMap struct {
	Open     key.Binding
	Close    key.Binding
	OpenAll  key.Binding
	CloseAll key.Binding
	Quit     key.Binding
}

func defaultViewerKeys() viewerKeyMap {
	return viewerKeyMap{
		Open:     key.NewBinding(key.WithKeys("+", "=", "r"), key.WithHelp("+", "open")),
		Close:    key.NewBinding(key.WithKeys("-", "_", "m"), key.WithHelp("-", "close")),
		OpenAll:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "open all")),
		CloseAll: key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "close all")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k viewerKeyMap) help() string {
	bindings := []key.Binding{k.Open, k.Close, k.OpenAll, k.CloseAll, k.Quit}
	parts := make([]string, 0, len(bindings))

	for _, b := range bindings {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}

	return strings.Join(parts, " • ")
}

// viewerModel shows a buffer with folds deeper than foldLevel closed.
type viewerModel struct {
	path      m.Path
	lines     []string
	levels    []int
	foldLevel int
	maxLevel  int
	keys      viewerKeyMap
	viewport  viewport.Model
	quitting  bool
}

func newViewerModel(path m.Path, lines []string, levels []int) viewerModel {
	maxLevel := maxInt(levels)

	vm := viewerModel{
		path:      path,
		lines:     lines,
		levels:    levels,
		foldLevel: maxLevel,
		maxLevel:  maxLevel,
		keys:      defaultViewerKeys(),
		viewport:  viewport.New(80, 20),
	}
	vm.viewport.SetContent(vm.renderContent())

	return vm
}

func (vm viewerModel) resize(width, height int) viewerModel {
	vm.viewport.Width = width
	vm.viewport.Height = max(height-viewerChromeHeight, 1)
	vm.viewport.SetContent(vm.renderContent())

	return vm
}

func (vm viewerModel) setFoldLevel(level int) viewerModel {
	vm.foldLevel = min(max(level, 0), vm.maxLevel)
	vm.viewport.SetContent(vm.renderContent())

	return vm
}

func (vm viewerModel) Init() tea.Cmd {
	return nil
}

func (vm viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return vm.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, vm.keys.Quit):
			vm.quitting = true
			return vm, tea.Quit
		case key.Matches(msg, vm.keys.Open):
			return vm.setFoldLevel(vm.foldLevel + 1), nil
		case key.Matches(msg, vm.keys.Close):
			return vm.setFoldLevel(vm.foldLevel - 1), nil
		case key.Matches(msg, vm.keys.OpenAll):
			return vm.setFoldLevel(vm.maxLevel), nil
		case key.Matches(msg, vm.keys.CloseAll):
			return vm.setFoldLevel(0), nil
		}
	}

	var cmd tea.Cmd

	vm.viewport, cmd = vm.viewport.Update(msg)

	return vm, cmd
}

func (vm viewerModel) View() string {
	if vm.quitting {
		return ""
	}

	title := viewerTitleStyle.Render(fmt.Sprintf("%s  fold level %d/%d", vm.path, vm.foldLevel, vm.maxLevel))

	return title + "\n" + vm.viewport.View() + "\n" + viewerHelp.Render(vm.keys.help())
}

func (vm viewerModel) renderContent() string {
	width := numberWidth(len(vm.lines))
	rows := foldRows(vm.lines, vm.levels, vm.foldLevel)

	var b strings.Builder

	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}

		gutter := viewerGutter.Render(fmt.Sprintf("%*d", width, row.Line))
		level := lipgloss.NewStyle().Foreground(levelColor(row.Level)).Render(fmt.Sprintf("%d", row.Level))

		text := row.Text
		if row.Hidden > 0 {
			text = viewerFolded.Render(fmt.Sprintf("+--%s %d lines: %s", strings.Repeat("-", row.Level-1), row.Hidden, row.Text))
		}

		b.WriteString(gutter + " " + level + " " + text)
	}

	return b.String()
}

func levelColor(level int) lipgloss.Color {
	if level < 0 {
		level = 0
	}

	return levelColors[level%len(levelColors)]
}
