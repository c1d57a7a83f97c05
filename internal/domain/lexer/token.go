// Package lexer tokenizes Elixir-like source one line at a time and derives the
// lexical facts the fold classifier works from.
package lexer

// TokenKind is the category of a token.
type TokenKind int

const (
	// TokIdent is an identifier or a keyword such as do, end, fn, when.
	TokIdent TokenKind = iota
	// TokKey is a keyword-list key such as `do:`. Text excludes the colon.
	TokKey
	// TokString is a string, charlist, sigil or heredoc opener.
	TokString
	// TokAtom is an atom such as `:end` or `:"quoted"`.
	TokAtom
	// TokNumber is a numeric literal.
	TokNumber
	// TokChar is a character literal such as `?#`.
	TokChar
	TokLParen
	TokRParen
	TokComma
	// TokPunct is any other operator or punctuation character.
	TokPunct
)

// Token is a lexical token of a single line.
type Token struct {
	Kind TokenKind
	Text string
	// AfterDot is set for identifiers written as field access (`map.end`).
	AfterDot bool
}

// Is reports whether the token is the bare keyword kw. Field access never
// counts as a keyword.
func (t Token) Is(kw string) bool {
	return t.Kind == TokIdent && !t.AfterDot && t.Text == kw
}

// State is the lexer state carried from one line to the next.
type State struct {
	// Heredoc is the closing delimiter of an open heredoc, `"""` or `'''`.
	Heredoc string
	// Closer is the closing character of a string or sigil left open at the
	// end of the previous line. Interp is set when its body interpolates
	// `#{...}` and Sigil when modifiers may follow the closer.
	Closer byte
	Interp bool
	Sigil  bool
	// Keyword and Name identify a function header whose argument list is
	// still open, with Parens unclosed parentheses.
	Keyword string
	Name    string
	Parens  int
}

// InHeredoc reports whether the next line starts inside a heredoc.
func (s State) InHeredoc() bool {
	return s.Heredoc != ""
}

// InString reports whether the next line starts inside a string or sigil.
func (s State) InString() bool {
	return s.Closer != 0
}

// InHeader reports whether the next line continues a function header.
func (s State) InHeader() bool {
	return s.Keyword != ""
}

func (s State) inLiteral() bool {
	return s.InHeredoc() || s.InString()
}
