package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	m "exfold.dev/pkg/exfold/internal/model"
)

// DefaultDebounce is the quiet period after the last write before a change
// is reported.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports content changes of a single file.
type Watcher interface {
	// Watch emits the path every time the file settles after a change. Both
	// channels are closed when ctx is cancelled.
	Watch(ctx context.Context, path m.Path) (<-chan m.Path, <-chan error, error)
}

// FSWatcher implements Watcher with fsnotify. It watches the parent
// directory so editors that save through rename are seen too.
type FSWatcher struct {
	debounce time.Duration
}

// NewFSWatcher constructs an FSWatcher. A non-positive debounce uses
// DefaultDebounce.
func NewFSWatcher(debounce time.Duration) *FSWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &FSWatcher{debounce: debounce}
}

// Watch starts watching path.
func (w *FSWatcher) Watch(ctx context.Context, path m.Path) (<-chan m.Path, <-chan error, error) {
	absPath, err := filepath.Abs(string(path))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, nil, fmt.Errorf("failed to watch path: %w", err)
	}

	changes := make(chan m.Path, 1)
	errs := make(chan error, 1)

	go w.loop(ctx, fsw, absPath, changes, errs)

	return changes, errs, nil
}

func (w *FSWatcher) loop(ctx context.Context, fsw *fsnotify.Watcher, path string, changes chan<- m.Path, errs chan<- error) {
	logger := slog.Default().With(slog.String("component", "watcher"), slog.String("path", path))

	defer close(errs)
	defer close(changes)
	defer func() {
		if err := fsw.Close(); err != nil {
			logger.Error("failed to close watcher", "error", err)
		}
	}()

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("watcher stopped")
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != path {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				logger.Debug("ignoring event", "op", event.Op.String())
				continue
			}

			timer.Reset(w.debounce)

		case <-timer.C:
			select {
			case changes <- m.Path(path):
			case <-ctx.Done():
				return
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}

			logger.Error("watcher error", "error", err)

			select {
			case errs <- err:
			default:
			}
		}
	}
}
