// Package pkg provides reusable utilities for exfold.
package pkg

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// ErrSpillClosed is returned when a closed spill is written to.
var ErrSpillClosed = errors.New("filespill closed")

// FileSpill is a generic interface for spilling items of type T to disk.
type FileSpill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Get(index uint64) (T, error)
	Range(f func(index uint64, item T) error) error
	Close() error
	// Remove closes the spill and deletes its file.
	Remove() error
}

// fileSpillImpl stores every item as a self-contained gob record so items can
// be decoded from their offset without replaying the stream.
type fileSpillImpl[T any] struct {
	path    string
	file    *os.File
	mu      sync.Mutex
	offsets []int64 // offsets[i] is where record i starts; one extra entry marks the end
	closed  bool
}

// NewFileSpill creates a spill file in dir. An empty dir uses a directory
// under os.TempDir.
func NewFileSpill[T any](dir string) (FileSpill[T], error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "exfold-spill")
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Error("failed to create spill directory", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spill directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "spill-*.gob")
	if err != nil {
		slog.Error("failed to create spill file", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spill file: %w", err)
	}

	slog.Debug("created filespill", "path", file.Name())

	return &fileSpillImpl[T]{
		path:    file.Name(),
		file:    file,
		offsets: []int64{0},
	}, nil
}

// Append implements FileSpill.
func (f *fileSpillImpl[T]) Append(item T) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(item); err != nil {
		slog.Error("failed to encode item", "path", f.path, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrSpillClosed
	}

	end := f.offsets[len(f.offsets)-1]

	if _, err := f.file.WriteAt(buf.Bytes(), end); err != nil {
		slog.Error("failed to write item", "path", f.path, "index", len(f.offsets)-1, "error", err)
		return fmt.Errorf("failed to write item: %w", err)
	}

	f.offsets = append(f.offsets, end+int64(buf.Len()))

	return nil
}

// AppendBatch implements FileSpill.
func (f *fileSpillImpl[T]) AppendBatch(items []T) error {
	for _, item := range items {
		if err := f.Append(item); err != nil {
			return err
		}
	}

	return nil
}

// Path implements FileSpill.
func (f *fileSpillImpl[T]) Path() string {
	return f.path
}

// Len implements FileSpill.
func (f *fileSpillImpl[T]) Len() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return uint64(len(f.offsets) - 1)
}

// Get implements FileSpill.
func (f *fileSpillImpl[T]) Get(index uint64) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var zero T

	length := uint64(len(f.offsets) - 1)
	if index >= length {
		slog.Warn("get index out of bounds", "path", f.path, "index", index, "length", length)
		return zero, fmt.Errorf("index %d out of bounds (length %d)", index, length)
	}

	item, err := f.decodeAt(index)
	if err != nil {
		return zero, err
	}

	return item, nil
}

// Range implements FileSpill.
func (f *fileSpillImpl[T]) Range(fn func(index uint64, item T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range uint64(len(f.offsets) - 1) {
		item, err := f.decodeAt(i)
		if err != nil {
			return err
		}

		if err := fn(i, item); err != nil {
			slog.Warn("range callback error", "path", f.path, "index", i, "error", err)
			return err
		}
	}

	return nil
}

// decodeAt reads record index. The caller holds f.mu.
func (f *fileSpillImpl[T]) decodeAt(index uint64) (T, error) {
	var item T

	var reader io.ReaderAt = f.file

	if f.closed {
		// Data outlives Close until Remove.
		file, err := os.Open(f.path)
		if err != nil {
			slog.Error("failed to open file for read", "path", f.path, "error", err)
			return item, fmt.Errorf("failed to open file: %w", err)
		}

		defer func() {
			_ = file.Close()
		}()

		reader = file
	}

	start, end := f.offsets[index], f.offsets[index+1]
	section := io.NewSectionReader(reader, start, end-start)

	if err := gob.NewDecoder(section).Decode(&item); err != nil {
		slog.Error("failed to decode item", "path", f.path, "index", index, "error", err)
		return item, fmt.Errorf("failed to decode item at index %d: %w", index, err)
	}

	return item, nil
}

// Close implements FileSpill.
func (f *fileSpillImpl[T]) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.closeLocked()
}

func (f *fileSpillImpl[T]) closeLocked() error {
	if f.closed {
		return nil
	}

	f.closed = true

	if err := f.file.Close(); err != nil {
		slog.Error("failed to close file", "path", f.path, "error", err)
		return err
	}

	slog.Debug("closed filespill", "path", f.path, "length", len(f.offsets)-1)

	return nil
}

// Remove implements FileSpill.
func (f *fileSpillImpl[T]) Remove() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.closeLocked(); err != nil {
		return err
	}

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove spill: %w", err)
	}

	return nil
}
