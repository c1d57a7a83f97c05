package model

// DefinitionForm describes how a definition line carries its body.
type DefinitionForm int

const (
	// FormNone marks a line that is not a definition.
	FormNone DefinitionForm = iota
	// FormBlock is a header whose body follows in a do ... end block.
	FormBlock
	// FormInline is a one-liner such as `def name(args), do: expr`.
	FormInline
	// FormHead is a bodiless head such as `def name(arg \\ default)`.
	FormHead
	// FormUnsupported is a definition with unparenthesized arguments.
	// Such definitions are never folded.
	FormUnsupported
	// FormOpen is a header whose argument list continues on the next line.
	// The line that closes it carries the final form.
	FormOpen
)

var definitionFormNames = map[DefinitionForm]string{
	FormNone:        "none",
	FormBlock:       "block",
	FormInline:      "inline",
	FormHead:        "head",
	FormUnsupported: "unsupported",
	FormOpen:        "open",
}

func (f DefinitionForm) String() string {
	if name, ok := definitionFormNames[f]; ok {
		return name
	}

	return "unknown"
}

// Definition is the lexical summary of a def/defp/test/describe/defmodule line.
type Definition struct {
	Keyword string
	Name    string
	Form    DefinitionForm
	Guard   bool // carries a `when` guard
}

// EventKind is a block structure event found on a line.
type EventKind int

const (
	// EventOpen is a `do` or `fn` that opens a block.
	EventOpen EventKind = iota
	// EventClose is an `end` that closes a block.
	EventClose
)

// Event is one opener or closer, in source order.
type Event struct {
	Kind EventKind
	// Header is true for the `do` that ends a definition or module header.
	Header bool
}

// Facts are the lexical facts derived from a single line.
type Facts struct {
	Blank     bool
	Comment   bool // comment-only line
	InLiteral bool // line starts inside a heredoc or a multi-line string
	// Continuation is set for lines after the first of a multi-line header.
	Continuation bool
	Events       []Event
	Definition   *Definition
}

// Significant reports whether the line breaks a run of clauses.
func (f Facts) Significant() bool {
	return !f.Blank && !f.Comment
}

// Line is a buffer line with its 1-based position and derived facts.
type Line struct {
	Number int
	Text   string
	Facts  Facts
}
