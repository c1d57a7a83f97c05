package domain

import (
	"errors"
	"fmt"
	"log/slog"

	m "exfold.dev/pkg/exfold/internal/model"
)

// ErrInvalidEdit is returned when an edit does not fit the buffer.
var ErrInvalidEdit = errors.New("invalid edit")

// RescanStats describes the work done by the last Apply.
type RescanStats struct {
	From   int  // first re-scanned line, 0-based in the edited buffer
	To     int  // one past the last re-scanned line
	Reused bool // the tail of the previous result was reused
	Full   bool // the whole buffer was re-scanned
}

// Buffer keeps the fold levels of a buffer current across edits. It caches
// the scanner state before every line and re-scans only from the edit to the
// first line where the state matches the previous scan again.
type Buffer struct {
	groups     GroupingTable
	fullRescan bool

	lines  []string
	levels []int
	snaps  []snapshot // snaps[i] is the state before line i, len(lines)+1 entries
	nextID uint64
	stats  RescanStats
}

// BufferOption configures a Buffer.
type BufferOption func(*Buffer)

// WithFullRescan makes every Apply re-scan the whole buffer.
func WithFullRescan() BufferOption {
	return func(b *Buffer) {
		b.fullRescan = true
	}
}

// WithClassifier uses the grouping rules of c.
func WithClassifier(c Classifier) BufferOption {
	return func(b *Buffer) {
		b.groups = c.groups
	}
}

// NewBuffer classifies lines and prepares the buffer for incremental edits.
func NewBuffer(lines []string, opts ...BufferOption) *Buffer {
	b := &Buffer{groups: DefaultGroupingTable(), nextID: 1}
	for _, opt := range opts {
		opt(b)
	}

	b.lines = append([]string(nil), lines...)
	b.rescanAll()

	return b
}

// Lines returns a copy of the buffer contents.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)

	return out
}

// Levels returns a copy of the current fold levels. An empty buffer has an
// empty, non-nil result.
func (b *Buffer) Levels() []int {
	out := make([]int, len(b.levels))
	copy(out, b.levels)

	return out
}

// Len returns the number of lines in the buffer.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// LastStats reports what the last Apply re-scanned.
func (b *Buffer) LastStats() RescanStats {
	return b.stats
}

// Replace swaps the whole buffer contents and re-scans everything.
func (b *Buffer) Replace(lines []string) []int {
	b.lines = append([]string(nil), lines...)
	b.rescanAll()

	return b.Levels()
}

// Apply performs the edit and returns the new fold levels, which always equal
// a full Classify of the edited buffer.
func (b *Buffer) Apply(edit m.Edit) ([]int, error) {
	if err := b.validate(edit); err != nil {
		return nil, err
	}

	oldLines := b.lines

	newLines := make([]string, 0, len(oldLines)-edit.Remove+len(edit.Insert))
	newLines = append(newLines, oldLines[:edit.Position]...)
	newLines = append(newLines, edit.Insert...)
	newLines = append(newLines, oldLines[edit.Position+edit.Remove:]...)

	b.lines = newLines

	if b.fullRescan {
		b.rescanAll()
		return b.Levels(), nil
	}

	b.rescanFrom(edit)

	slog.Debug("applied edit",
		"position", edit.Position,
		"removed", edit.Remove,
		"inserted", len(edit.Insert),
		"from", b.stats.From,
		"to", b.stats.To,
		"reused", b.stats.Reused)

	return b.Levels(), nil
}

func (b *Buffer) validate(edit m.Edit) error {
	if edit.Position < 0 || edit.Position > len(b.lines) {
		return fmt.Errorf("%w: position %d outside buffer of %d lines", ErrInvalidEdit, edit.Position, len(b.lines))
	}

	if edit.Remove < 0 || edit.Position+edit.Remove > len(b.lines) {
		return fmt.Errorf("%w: cannot remove %d lines at %d from buffer of %d lines",
			ErrInvalidEdit, edit.Remove, edit.Position, len(b.lines))
	}

	return nil
}

func (b *Buffer) rescanAll() {
	s := newScanner(b.groups)
	s.nextID = b.nextID

	b.levels = make([]int, len(b.lines))
	b.snaps = make([]snapshot, len(b.lines)+1)

	for i, text := range b.lines {
		b.snaps[i] = s.snapshot(i)
		s.step(b.levels, i, text)
	}

	b.snaps[len(b.lines)] = s.snapshot(len(b.lines))
	b.nextID = s.nextID
	b.stats = RescanStats{From: 0, To: len(b.lines), Full: true}
}

// rescanFrom re-scans after b.lines was spliced by edit, reusing the levels
// and snapshots before and, once the state converges, after the edit.
func (b *Buffer) rescanFrom(edit m.Edit) {
	oldLevels, oldSnaps := b.levels, b.snaps
	delta := len(edit.Insert) - edit.Remove
	insertedEnd := edit.Position + len(edit.Insert)

	// A clause after the edit may patch the gap that precedes it, and a header
	// closing after it patches its own first lines, so the re-scan starts
	// where the pending marker or the open header alive at the edit begins.
	start := edit.Position

	snap := oldSnaps[edit.Position]
	if snap.pending {
		start = edit.Position - snap.pendingBack
	}

	if snap.lex.InHeader() && edit.Position-snap.headerBack < start {
		start = edit.Position - snap.headerBack
	}

	if start < 0 {
		start = 0
	}

	s := newScanner(b.groups)
	s.nextID = b.nextID
	s.restore(oldSnaps[start], start)

	levels := make([]int, len(b.lines))
	snaps := make([]snapshot, len(b.lines)+1)

	copy(levels, oldLevels[:start])
	copy(snaps, oldSnaps[:start])

	b.stats = RescanStats{From: start}

	for i := start; i <= len(b.lines); i++ {
		snaps[i] = s.snapshot(i)

		if i >= insertedEnd && !snaps[i].pending && !snaps[i].lex.InHeader() {
			old := i - delta
			if snaps[i].equal(oldSnaps[old]) {
				copy(levels[i:], oldLevels[old:])
				copy(snaps[i:], oldSnaps[old:])

				b.stats.To = i
				b.stats.Reused = i < len(b.lines)

				break
			}
		}

		if i == len(b.lines) {
			b.stats.To = i
			break
		}

		s.step(levels, i, b.lines[i])
	}

	b.levels = levels
	b.snaps = snaps
	b.nextID = s.nextID
}

// DiffEdit reduces two versions of a buffer to the single edit that replaces
// the lines between their common prefix and common suffix. ok is false when
// the versions are identical.
func DiffEdit(before, after []string) (edit m.Edit, ok bool) {
	prefix := 0
	for prefix < len(before) && prefix < len(after) && before[prefix] == after[prefix] {
		prefix++
	}

	suffix := 0
	for suffix < len(before)-prefix && suffix < len(after)-prefix &&
		before[len(before)-1-suffix] == after[len(after)-1-suffix] {
		suffix++
	}

	removed := len(before) - prefix - suffix
	inserted := after[prefix : len(after)-suffix]

	if removed == 0 && len(inserted) == 0 {
		return m.Edit{}, false
	}

	return m.Edit{
		Position: prefix,
		Remove:   removed,
		Insert:   append([]string(nil), inserted...),
	}, true
}

// Changes lists the lines whose level differs from before after edit was
// applied. Lines inside the inserted region report Before as -1.
func Changes(before, after []int, edit m.Edit) []m.LevelChange {
	var changes []m.LevelChange

	insertedEnd := edit.Position + len(edit.Insert)
	delta := len(edit.Insert) - edit.Remove

	for i, level := range after {
		prev := -1

		switch {
		case i < edit.Position:
			prev = before[i]
		case i >= insertedEnd && i-delta < len(before):
			prev = before[i-delta]
		}

		if prev != level {
			changes = append(changes, m.LevelChange{Line: i + 1, Before: prev, After: level})
		}
	}

	return changes
}
