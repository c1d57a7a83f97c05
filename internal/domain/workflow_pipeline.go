package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"exfold.dev/pkg/exfold/internal/adapter"
	m "exfold.dev/pkg/exfold/internal/model"
	"exfold.dev/pkg/exfold/pkg"
)

// listItem is a discovered source with the cached report that still matches
// its hash, if any.
type listItem struct {
	source m.Source
	cached *m.FoldReport
}

// List classifies every source under args.Paths on a worker pool and prints
// a summary table. Reports whose hash matches the cache are reused.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	reports, err := w.collectReports(ctx, args)
	if err != nil {
		slog.Error("Failed to collect fold reports", "error", err)
		return fmt.Errorf("collect reports: %w", err)
	}

	if args.Reports != "" {
		if err := w.SaveReports(args.Reports, reports); err != nil {
			return fmt.Errorf("save reports: %w", err)
		}
	}

	if err := w.DisplayReports(ctx, reports); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) collectReports(ctx context.Context, args ListArgs) ([]m.FoldReport, error) {
	threads := max(args.Threads, 1)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	spill, err := pkg.NewFileSpill[m.FoldReport](args.SpillDir)
	if err != nil {
		return nil, fmt.Errorf("create spill: %w", err)
	}

	defer func() {
		if err := spill.Remove(); err != nil {
			slog.Warn("Failed to remove report spill", "path", spill.Path(), "error", err)
		}
	}()

	filter := adapter.SourceFilter{Exclude: args.Exclude, Include: args.Include}

	sourcesChannel, sourcesErrorChannel := w.GetChannel(ctx, args.Paths, threads, filter)
	itemsChannel, itemsErrorChannel := w.getChangedSourcesChannel(ctx, args, threads, sourcesChannel)
	reportsChannel, reportsErrorChannel := w.classifyChannel(ctx, itemsChannel, threads)

	errorChannel := mergeErrorChannels(
		mergeErrorChannels(sourcesErrorChannel, itemsErrorChannel),
		reportsErrorChannel,
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		for {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			case report, ok := <-reportsChannel:
				if !ok {
					return nil
				}

				if err := spill.Append(report); err != nil {
					return fmt.Errorf("spill report %s: %w", report.Path, err)
				}
			}
		}
	})

	group.Go(func() error {
		select {
		case <-groupCtx.Done():
			return groupCtx.Err()
		case err, ok := <-errorChannel:
			if !ok {
				return nil
			}

			return err
		}
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	reports := make([]m.FoldReport, 0, spill.Len())

	err = spill.Range(func(_ uint64, report m.FoldReport) error {
		reports = append(reports, report)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read spill: %w", err)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Path < reports[j].Path
	})

	slog.Info("collected fold reports", "count", len(reports))

	return reports, nil
}

// getChangedSourcesChannel attaches the cached report to every source whose
// hash did not change since the last run.
func (w *workflow) getChangedSourcesChannel(ctx context.Context, args ListArgs, threads int, sources <-chan m.Source) (<-chan listItem, <-chan error) {
	itemsChannel := make(chan listItem, threads)
	errorChannel := make(chan error, 1)

	go func() {
		defer close(itemsChannel)
		defer close(errorChannel)

		var allSources []m.Source

		for source := range sources {
			if !args.UseCache || args.Reports == "" {
				if !sendItem(ctx, itemsChannel, listItem{source: source}) {
					errorChannel <- ctx.Err()
					return
				}

				continue
			}

			allSources = append(allSources, source)
		}

		if len(allSources) == 0 {
			return
		}

		items, err := w.matchCachedReports(args.Reports, allSources)
		if err != nil {
			errorChannel <- err
			return
		}

		for _, item := range items {
			if !sendItem(ctx, itemsChannel, item) {
				errorChannel <- ctx.Err()
				return
			}
		}
	}()

	return itemsChannel, errorChannel
}

func (w *workflow) matchCachedReports(dir m.Path, sources []m.Source) ([]listItem, error) {
	changed, err := w.CheckUpdates(dir, sources)
	if err != nil {
		return nil, fmt.Errorf("check cache: %w", err)
	}

	changedPaths := make(map[m.Path]struct{}, len(changed))
	for _, source := range changed {
		changedPaths[source.Origin.FullPath] = struct{}{}
	}

	var cached map[m.Path]m.FoldReport

	if len(changed) < len(sources) {
		reports, err := w.LoadReports(dir)
		if err != nil {
			return nil, fmt.Errorf("load cache: %w", err)
		}

		cached = make(map[m.Path]m.FoldReport, len(reports))
		for _, report := range reports {
			cached[report.Path] = report
		}
	}

	items := make([]listItem, 0, len(sources))
	hits := 0

	for _, source := range sources {
		item := listItem{source: source}

		if _, isChanged := changedPaths[source.Origin.FullPath]; !isChanged {
			if report, ok := cached[source.Origin.FullPath]; ok {
				report.Cached = true
				item.cached = &report
				hits++
			}
		}

		items = append(items, item)
	}

	slog.Debug("matched cached reports", "sources", len(sources), "hits", hits)

	return items, nil
}

func (w *workflow) classifyChannel(ctx context.Context, items <-chan listItem, threads int) (<-chan m.FoldReport, <-chan error) {
	reportsChannel := make(chan m.FoldReport, threads)
	errorChannel := make(chan error, 1)

	var group errgroup.Group
	group.SetLimit(threads)

	go func() {
		defer close(errorChannel)
		defer close(reportsChannel)

		for item := range items {
			if ctx.Err() != nil {
				break
			}

			current := item

			group.Go(func() error {
				report, err := w.classifySource(current)
				if err != nil {
					return err
				}

				select {
				case <-ctx.Done():
					return ctx.Err()
				case reportsChannel <- report:
					return nil
				}
			})
		}

		if err := group.Wait(); err != nil {
			errorChannel <- err
		}
	}()

	return reportsChannel, errorChannel
}

func (w *workflow) classifySource(item listItem) (m.FoldReport, error) {
	if item.cached != nil {
		return *item.cached, nil
	}

	path := item.source.Origin.FullPath

	lines, err := w.ReadLines(path)
	if err != nil {
		return m.FoldReport{}, fmt.Errorf("read %s: %w", item.source.Origin.ShortPath, err)
	}

	return w.buildReport(path, item.source.Origin.Hash, lines), nil
}

func sendItem(ctx context.Context, items chan<- listItem, item listItem) bool {
	select {
	case <-ctx.Done():
		return false
	case items <- item:
		return true
	}
}

func mergeErrorChannels(ch1, ch2 <-chan error) <-chan error {
	merged := make(chan error, 1)

	go func() {
		defer close(merged)

		for ch1 != nil || ch2 != nil {
			select {
			case err, ok := <-ch1:
				if !ok {
					ch1 = nil
				} else {
					merged <- err
					return // first error wins
				}
			case err, ok := <-ch2:
				if !ok {
					ch2 = nil
				} else {
					merged <- err
					return
				}
			}
		}
	}()

	return merged
}
