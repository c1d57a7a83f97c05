// Package adapter contains the filesystem, cache and watcher adapters used by
// the exfold workflows.
package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	m "exfold.dev/pkg/exfold/internal/model"
)

// SourceFilter narrows the files returned by SourceFSAdapter.Get.
type SourceFilter struct {
	// Exclude holds regular expressions matched against the full path.
	Exclude []string
	// Include holds doublestar globs matched against the path relative to
	// the working directory. Empty means every Elixir file.
	Include []string
}

// SourceFSAdapter hides direct `os` access so the workflow logic can be
// tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Get collects Elixir sources for the provided roots. Roots may use the
	// Go-style "/..." suffix to recurse.
	Get(ctx context.Context, roots []m.Path, filter SourceFilter) ([]m.Source, error)

	// GetChannel streams the sources of Get.
	GetChannel(ctx context.Context, roots []m.Path, threads int, filter SourceFilter) (<-chan m.Source, <-chan error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadLines loads a file as lines without their terminators.
	ReadLines(path m.Path) ([]string, error)

	// WriteLines replaces the file contents with lines, using the line
	// endings and final newline of the last ReadLines of path.
	WriteLines(path m.Path, lines []string) error

	// HashFile returns a stable fingerprint (e.g. SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

var elixirExtensions = map[string]struct{}{
	".ex":  {},
	".exs": {},
}

// skippedDirs are never descended into when walking recursively.
var skippedDirs = map[string]struct{}{
	".git":   {},
	"_build": {},
	"deps":   {},
}

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct {
	mu      sync.Mutex
	formats map[m.Path]LineFormat
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects Elixir source files for the provided roots.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, roots []m.Path, filter SourceFilter) ([]m.Source, error) {
	if len(roots) == 0 {
		return []m.Source{}, nil
	}

	matcher, err := newPathMatcher(filter)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})

	var sources []m.Source

	add := func(path string) error {
		source, ok, err := a.processFilePath(path, matcher)
		if err != nil || !ok {
			return err
		}

		if _, exists := seen[string(source.Origin.FullPath)]; exists {
			return nil
		}

		seen[string(source.Origin.FullPath)] = struct{}{}
		sources = append(sources, source)

		return nil
	}

	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := add(rootPath); err != nil {
				return nil, err
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if err := ctx.Err(); err != nil {
				return err
			}

			if info.IsDir() {
				if _, skip := skippedDirs[info.Name()]; skip && path != rootPath {
					return filepath.SkipDir
				}

				return nil
			}

			return add(path)
		})
		if err != nil {
			return nil, err
		}
	}

	slog.Debug("collected sources", "roots", len(roots), "count", len(sources))

	return sources, nil
}

// GetChannel runs Get in the background and streams its result.
func (a *LocalSourceFSAdapter) GetChannel(
	ctx context.Context,
	roots []m.Path,
	threads int,
	filter SourceFilter,
) (<-chan m.Source, <-chan error) {
	if threads < 1 {
		threads = 1
	}

	sourcesChannel := make(chan m.Source, threads)
	errorChannel := make(chan error, 1)

	go func() {
		defer close(sourcesChannel)
		defer close(errorChannel)

		sources, err := a.Get(ctx, roots, filter)
		if err != nil {
			errorChannel <- err
			return
		}

		for _, source := range sources {
			select {
			case <-ctx.Done():
				errorChannel <- ctx.Err()
				return
			case sourcesChannel <- source:
			}
		}
	}()

	return sourcesChannel, errorChannel
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadLines loads a file and splits it into lines. The line format is
// remembered so WriteLines can restore it.
func (a *LocalSourceFSAdapter) ReadLines(path m.Path) ([]string, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	lines, format := SplitLines(string(data))

	a.mu.Lock()
	if a.formats == nil {
		a.formats = make(map[m.Path]LineFormat)
	}
	a.formats[path] = format
	a.mu.Unlock()

	return lines, nil
}

// WriteLines writes lines back to path, keeping the permissions of an
// existing file. Paths never read are written with "\n" endings and a final
// newline.
func (a *LocalSourceFSAdapter) WriteLines(path m.Path, lines []string) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(string(path)); err == nil {
		perm = info.Mode().Perm()
	}

	a.mu.Lock()
	format, ok := a.formats[path]
	a.mu.Unlock()

	if !ok {
		format = LineFormat{FinalNewline: true}
	}

	if err := os.WriteFile(string(path), []byte(JoinLines(lines, format)), perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// LineFormat is how a file terminates its lines.
type LineFormat struct {
	// CRLF is set when every line terminator is "\r\n". Mixed files keep
	// their "\r" in the line text.
	CRLF bool
	// FinalNewline is set when the last line is terminated.
	FinalNewline bool
}

func (f LineFormat) separator() string {
	if f.CRLF {
		return "\r\n"
	}

	return "\n"
}

// SplitLines splits text into lines the way ReadLines does. A trailing
// newline does not produce an empty last line.
func SplitLines(text string) ([]string, LineFormat) {
	if text == "" {
		return []string{}, LineFormat{}
	}

	newlines := strings.Count(text, "\n")
	format := LineFormat{
		CRLF:         newlines > 0 && strings.Count(text, "\r\n") == newlines,
		FinalNewline: strings.HasSuffix(text, "\n"),
	}

	sep := format.separator()
	text = strings.TrimSuffix(text, sep)

	return strings.Split(text, sep), format
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string, format LineFormat) string {
	if len(lines) == 0 {
		return ""
	}

	sep := format.separator()

	text := strings.Join(lines, sep)
	if format.FinalNewline {
		text += sep
	}

	return text
}

func (a *LocalSourceFSAdapter) processFilePath(path string, matcher pathMatcher) (m.Source, bool, error) {
	if _, ok := elixirExtensions[filepath.Ext(path)]; !ok {
		return m.Source{}, false, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return m.Source{}, false, err
	}

	shortPath := shortenPath(absPath)
	if !matcher.match(absPath, shortPath) {
		slog.Debug("skipping filtered source", "path", shortPath)
		return m.Source{}, false, nil
	}

	hash, err := a.HashFile(m.Path(absPath))
	if err != nil {
		return m.Source{}, false, fmt.Errorf("hash %s: %w", shortPath, err)
	}

	return m.Source{
		Origin: &m.File{
			FullPath:  m.Path(absPath),
			ShortPath: m.Path(shortPath),
			Hash:      hash,
		},
	}, true, nil
}

type pathMatcher struct {
	exclude []*regexp.Regexp
	include []string
}

func newPathMatcher(filter SourceFilter) (pathMatcher, error) {
	matcher := pathMatcher{include: filter.Include}

	for _, pattern := range filter.Include {
		if !doublestar.ValidatePattern(pattern) {
			return pathMatcher{}, fmt.Errorf("invalid include pattern %q", pattern)
		}
	}

	for _, pattern := range filter.Exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return pathMatcher{}, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		matcher.exclude = append(matcher.exclude, re)
	}

	return matcher, nil
}

func (p pathMatcher) match(absPath, shortPath string) bool {
	for _, re := range p.exclude {
		if re.MatchString(absPath) {
			return false
		}
	}

	if len(p.include) == 0 {
		return true
	}

	slashed := filepath.ToSlash(shortPath)

	for _, pattern := range p.include {
		if ok, _ := doublestar.Match(pattern, slashed); ok {
			return true
		}
	}

	return false
}

// shortenPath returns path relative to the working directory when it lives
// below it, and path unchanged otherwise.
func shortenPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(wd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}

	return rel
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if strings.HasSuffix(rootStr, "/...") {
		return strings.TrimSuffix(rootStr, "/..."), true
	}

	return rootStr, false
}
