package adapter

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	m "exfold.dev/pkg/exfold/internal/model"
)

func TestFSWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.ex")
	other := filepath.Join(dir, "other.ex")
	writeTestFile(t, path, "defmodule App do\nend\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, errs, err := NewFSWatcher(20*time.Millisecond).Watch(ctx, m.Path(path))
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	writeTestFile(t, other, "ignored\n")
	writeTestFile(t, path, "defmodule App do\n  def a, do: 1\nend\n")

	select {
	case got := <-changes:
		if string(got) != path {
			t.Fatalf("Watch() reported %s, want %s", got, path)
		}
	case err := <-errs:
		t.Fatalf("Watch() error = %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("Watch() did not report the write")
	}

	cancel()

	for range changes {
	}
}

func TestFSWatcher_MissingDirectory(t *testing.T) {
	_, _, err := NewFSWatcher(0).Watch(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing", "app.ex")))
	if err == nil {
		t.Fatalf("Watch() expected error for missing directory")
	}
}
