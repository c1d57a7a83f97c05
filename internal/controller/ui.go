// Package controller provides output adapters for displaying fold levels.
package controller

import (
	"context"
	"fmt"
	"strings"

	m "exfold.dev/pkg/exfold/internal/model"
)

// Format selects how levels are printed.
type Format string

// Available output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or yaml)", value)
	}
}

// UI defines the interface for displaying fold results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayLevels(ctx context.Context, report m.FoldReport, lines []string, format Format) error
	DisplayReports(ctx context.Context, reports []m.FoldReport) error
	DisplayEdit(ctx context.Context, result m.EditResult) error
	DisplayDiff(ctx context.Context, diff string) error
	DisplayWatchUpdate(ctx context.Context, path m.Path, changes []m.LevelChange) error
	// View shows the file with its folds. Interactive implementations block
	// until the user quits.
	View(ctx context.Context, path m.Path, lines []string, levels []int) error
}
