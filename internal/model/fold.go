package model

// BlockKind classifies an entry of the block stack.
type BlockKind int

const (
	// BlockControl is any do/fn block that is not a module or function.
	BlockControl BlockKind = iota
	// BlockModule is opened by defmodule, defprotocol or defimpl.
	BlockModule
	// BlockFunction is opened by a def-family header or test/describe.
	// Only function blocks add fold depth.
	BlockFunction
)

func (k BlockKind) String() string {
	switch k {
	case BlockModule:
		return "module"
	case BlockFunction:
		return "function"
	case BlockControl:
		return "control"
	default:
		return "unknown"
	}
}

// Block is an open block on the classifier stack.
type Block struct {
	Kind BlockKind
	// ID identifies the block across scanner snapshots. It is unique per buffer.
	ID      uint64
	Keyword string
	Name    string
	// Groupable is set for function clauses that may merge with the next
	// same-named clause once this block closes.
	Groupable bool
}

// Edit replaces Remove lines starting at the 0-based Position with Insert.
type Edit struct {
	Position int
	Remove   int
	Insert   []string
}

// FoldRange is a foldable region, 1-based and inclusive.
type FoldRange struct {
	StartLine int `json:"startLine" yaml:"start_line"`
	EndLine   int `json:"endLine"   yaml:"end_line"`
	Level     int `json:"level"     yaml:"level"`
}

// Lines returns the number of lines covered by the range.
func (r FoldRange) Lines() int {
	return r.EndLine - r.StartLine + 1
}
