package domain

import (
	"exfold.dev/pkg/exfold/internal/domain/lexer"
	m "exfold.dev/pkg/exfold/internal/model"
)

// Classifier assigns fold levels to the lines of a buffer.
type Classifier struct {
	groups GroupingTable
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithNeverGroup replaces the reserved callback names whose clauses never
// fold together.
func WithNeverGroup(names ...string) ClassifierOption {
	return func(c *Classifier) {
		c.groups = NewGroupingTable(names...)
	}
}

// WithGroupingTable sets the grouping table used by the classifier.
func WithGroupingTable(table GroupingTable) ClassifierOption {
	return func(c *Classifier) {
		c.groups = table
	}
}

// NewClassifier creates a Classifier using DefaultGroupingTable unless
// overridden.
func NewClassifier(opts ...ClassifierOption) Classifier {
	c := Classifier{groups: DefaultGroupingTable()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Classify returns one fold level per line. It never fails: unbalanced input
// leaves residual depth and stray closers are ignored.
func (c Classifier) Classify(lines []string) []int {
	levels := make([]int, len(lines))
	s := newScanner(c.groups)

	for i, text := range lines {
		s.step(levels, i, text)
	}

	return levels
}

// Classify runs the default Classifier over lines.
func Classify(lines []string) []int {
	return NewClassifier().Classify(lines)
}

// Annotate returns the lines with their lexical facts, numbered from 1.
func Annotate(lines []string) []m.Line {
	out := make([]m.Line, len(lines))

	var state lexer.State

	for i, text := range lines {
		var facts m.Facts

		facts, state = lexer.Analyze(text, state)
		out[i] = m.Line{Number: i + 1, Text: text, Facts: facts}
	}

	return out
}
