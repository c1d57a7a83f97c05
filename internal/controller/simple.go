package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "exfold.dev/pkg/exfold/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayLevels prints the levels of one file in the requested format.
func (s *SimpleUI) DisplayLevels(ctx context.Context, report m.FoldReport, lines []string, format Format) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal levels: %w", err)
		}

		s.printf("%s\n", data)
	case FormatYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshal levels: %w", err)
		}

		s.printf("%s", data)
	case FormatText:
		s.printf("%s", renderLevelsText(lines, report.Levels))
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	return nil
}

// renderLevelsText prints one "<level> <line>" row per line.
func renderLevelsText(lines []string, levels []int) string {
	var b strings.Builder

	for i, line := range lines {
		fmt.Fprintf(&b, "%d %s\n", levelAt(levels, i), line)
	}

	return b.String()
}

// DisplayReports prints a summary table of fold reports.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.FoldReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderReportsTable(reports))

	return nil
}

func renderReportsTable(reports []m.FoldReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Lines", "Folds", "Max level", "Cached"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	totalLines, totalFolds, maxLevel := 0, 0, 0

	for _, report := range reports {
		cached := ""
		if report.Cached {
			cached = "yes"
		}

		table.Append([]string{
			string(report.Path),
			fmt.Sprintf("%d", report.Lines),
			fmt.Sprintf("%d", report.TopLevelFolds()),
			fmt.Sprintf("%d", report.MaxLevel),
			cached,
		})

		totalLines += report.Lines
		totalFolds += report.TopLevelFolds()
		maxLevel = max(maxLevel, report.MaxLevel)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(reports)),
		fmt.Sprintf("%d", totalLines),
		fmt.Sprintf("%d", totalFolds),
		fmt.Sprintf("%d", maxLevel),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayEdit prints the lines whose level changed after an edit.
func (s *SimpleUI) DisplayEdit(ctx context.Context, result m.EditResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	reused := "no"
	if result.Reused {
		reused = "yes"
	}

	s.printf("%s: re-scanned %d of %d line(s), tail reused: %s\n", result.Path, result.Rescanned, len(result.Lines), reused)

	if len(result.Changes) == 0 {
		s.printf("no level changes\n")
		return nil
	}

	s.printf("\n%s", renderChangesTable(result.Changes, result.Lines))

	return nil
}

func renderChangesTable(changes []m.LevelChange, lines []string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Line", "Before", "After", "Text"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	for _, change := range changes {
		before := "new"
		if change.Before >= 0 {
			before = fmt.Sprintf("%d", change.Before)
		}

		text := ""
		if change.Line-1 < len(lines) {
			text = lines[change.Line-1]
		}

		table.Append([]string{
			fmt.Sprintf("%d", change.Line),
			before,
			fmt.Sprintf("%d", change.After),
			text,
		})
	}

	table.Render()

	return tableBuffer.String()
}

// DisplayDiff prints a unified diff of annotated levels.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		s.printf("no level changes\n")
		return nil
	}

	s.printf("%s", diff)

	return nil
}

// DisplayWatchUpdate prints the level changes seen after a file write.
func (s *SimpleUI) DisplayWatchUpdate(ctx context.Context, path m.Path, changes []m.LevelChange) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s: %d line(s) changed level\n", path, len(changes))

	for _, change := range changes {
		if change.Before < 0 {
			s.printf("  %d: new -> %d\n", change.Line, change.After)
			continue
		}

		s.printf("  %d: %d -> %d\n", change.Line, change.Before, change.After)
	}

	return nil
}

// View prints the file with every fold open.
func (s *SimpleUI) View(ctx context.Context, path m.Path, lines []string, levels []int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", path)

	width := numberWidth(len(lines))
	for _, row := range foldRows(lines, levels, maxInt(levels)) {
		s.printf("%s\n", row.plain(width))
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func maxInt(values []int) int {
	result := 0
	for _, v := range values {
		result = max(result, v)
	}

	return result
}
