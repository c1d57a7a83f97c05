package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"

	"exfold.dev/pkg/exfold/internal/adapter"
	"exfold.dev/pkg/exfold/internal/controller"
	m "exfold.dev/pkg/exfold/internal/model"
)

// LevelsArgs contains the arguments for printing the levels of one file.
type LevelsArgs struct {
	Path   m.Path
	Format controller.Format
}

// ListArgs contains the arguments for summarising the folds of a tree.
type ListArgs struct {
	Paths    []m.Path
	Exclude  []string
	Include  []string
	UseCache bool
	Reports  m.Path
	Threads  int
	// SpillDir holds the temporary report spill. Empty uses the system
	// temp directory.
	SpillDir string
}

// EditArgs contains the arguments for replaying an edit.
type EditArgs struct {
	Path m.Path
	// Position is the 0-based line the edit starts at.
	Position int
	Remove   int
	Insert   []string
	// Write stores the edited buffer back to Path.
	Write bool
	// Diff prints a unified diff of the annotated levels instead of the
	// change table.
	Diff bool
	// FullRescan disables the incremental re-scan.
	FullRescan bool
}

// WatchArgs contains the arguments for watching a file.
type WatchArgs struct {
	Path m.Path
}

// ViewArgs contains the arguments for the fold viewer.
type ViewArgs struct {
	Path m.Path
}

// Workflow defines the use cases behind the exfold commands.
type Workflow interface {
	Levels(ctx context.Context, args LevelsArgs) error
	List(ctx context.Context, args ListArgs) error
	Edit(ctx context.Context, args EditArgs) error
	Watch(ctx context.Context, args WatchArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	adapter.Watcher
	controller.UI

	classifier Classifier
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	watcher adapter.Watcher,
	ui controller.UI,
	classifier Classifier,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		Watcher:         watcher,
		UI:              ui,
		classifier:      classifier,
	}
}

func (w *workflow) Levels(ctx context.Context, args LevelsArgs) error {
	lines, err := w.ReadLines(args.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", args.Path, err)
	}

	hash, err := w.HashFile(args.Path)
	if err != nil {
		return fmt.Errorf("hash %s: %w", args.Path, err)
	}

	report := w.buildReport(args.Path, hash, lines)

	if err := w.DisplayLevels(ctx, report, lines, args.Format); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) Edit(ctx context.Context, args EditArgs) error {
	lines, err := w.ReadLines(args.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", args.Path, err)
	}

	opts := []BufferOption{WithClassifier(w.classifier)}
	if args.FullRescan {
		opts = append(opts, WithFullRescan())
	}

	buffer := NewBuffer(lines, opts...)
	before := buffer.Levels()

	edit := m.Edit{Position: args.Position, Remove: args.Remove, Insert: args.Insert}

	after, err := buffer.Apply(edit)
	if err != nil {
		return fmt.Errorf("apply edit to %s: %w", args.Path, err)
	}

	stats := buffer.LastStats()
	slog.Info("applied edit",
		"path", args.Path,
		"position", edit.Position,
		"removed", edit.Remove,
		"inserted", len(edit.Insert),
		"rescanned", stats.To-stats.From,
		"reused", stats.Reused)

	if args.Diff {
		diff, err := LevelDiff(args.Path, lines, before, buffer.Lines(), after)
		if err != nil {
			return err
		}

		if err := w.DisplayDiff(ctx, diff); err != nil {
			return fmt.Errorf("display: %w", err)
		}
	} else {
		result := m.EditResult{
			Path:      args.Path,
			Edit:      edit,
			Lines:     buffer.Lines(),
			Levels:    after,
			Changes:   Changes(before, after, edit),
			Rescanned: stats.To - stats.From,
			Reused:    stats.Reused,
		}

		if err := w.DisplayEdit(ctx, result); err != nil {
			return fmt.Errorf("display: %w", err)
		}
	}

	if args.Write {
		if err := w.WriteLines(args.Path, buffer.Lines()); err != nil {
			return fmt.Errorf("write %s: %w", args.Path, err)
		}
	}

	return nil
}

func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	lines, err := w.ReadLines(args.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", args.Path, err)
	}

	buffer := NewBuffer(lines, WithClassifier(w.classifier))

	changes, errs, err := w.Watcher.Watch(ctx, args.Path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", args.Path, err)
	}

	slog.Info("watching file", "path", args.Path, "lines", buffer.Len())

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}

			return fmt.Errorf("watch %s: %w", args.Path, err)
		case _, ok := <-changes:
			if !ok {
				return nil
			}

			if err := w.applyChange(ctx, args.Path, buffer); err != nil {
				return err
			}
		}
	}
}

// applyChange reloads path and feeds the difference to buffer as one edit.
func (w *workflow) applyChange(ctx context.Context, path m.Path, buffer *Buffer) error {
	lines, err := w.ReadLines(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("watched file disappeared", "path", path)
		return nil
	}

	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	edit, changed := DiffEdit(buffer.Lines(), lines)
	if !changed {
		return nil
	}

	before := buffer.Levels()

	after, err := buffer.Apply(edit)
	if err != nil {
		return fmt.Errorf("apply edit to %s: %w", path, err)
	}

	changes := Changes(before, after, edit)
	if len(changes) == 0 {
		slog.Debug("edit kept every level", "path", path, "position", edit.Position)
		return nil
	}

	if err := w.DisplayWatchUpdate(ctx, path, changes); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	lines, err := w.ReadLines(args.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", args.Path, err)
	}

	if err := w.UI.View(ctx, args.Path, lines, w.classifier.Classify(lines)); err != nil {
		return fmt.Errorf("view: %w", err)
	}

	return nil
}

func (w *workflow) buildReport(path m.Path, hash string, lines []string) m.FoldReport {
	levels := w.classifier.Classify(lines)

	return m.FoldReport{
		Path:     path,
		Hash:     hash,
		Lines:    len(lines),
		Levels:   levels,
		Ranges:   Ranges(levels),
		MaxLevel: MaxLevel(levels),
	}
}

// LevelDiff renders a unified diff between two versions of a buffer where
// every line is prefixed with its fold level. It returns "" when neither the
// text nor the levels changed.
func LevelDiff(path m.Path, beforeLines []string, beforeLevels []int, afterLines []string, afterLevels []int) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        annotateLevels(beforeLines, beforeLevels),
		B:        annotateLevels(afterLines, afterLevels),
		FromFile: string(path),
		ToFile:   string(path) + " (edited)",
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff levels: %w", err)
	}

	return text, nil
}

func annotateLevels(lines []string, levels []int) []string {
	annotated := make([]string, len(lines))

	for i, line := range lines {
		level := 0
		if i < len(levels) {
			level = levels[i]
		}

		annotated[i] = fmt.Sprintf("%d %s\n", level, line)
	}

	return annotated
}
