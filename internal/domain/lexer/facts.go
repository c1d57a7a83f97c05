package lexer

import (
	"strings"

	m "exfold.dev/pkg/exfold/internal/model"
)

// Keyword families recognised at the start of a line.
var (
	functionKeywords = map[string]struct{}{
		"def":       {},
		"defp":      {},
		"defmacro":  {},
		"defmacrop": {},
		"defguard":  {},
		"defguardp": {},
		"defn":      {},
		"defnp":     {},
	}

	testKeywords = map[string]struct{}{
		"test":     {},
		"describe": {},
	}

	moduleKeywords = map[string]struct{}{
		"defmodule":   {},
		"defprotocol": {},
		"defimpl":     {},
	}
)

// IsFunctionKeyword reports whether kw starts a function clause.
func IsFunctionKeyword(kw string) bool {
	_, ok := functionKeywords[kw]
	return ok
}

// IsTestKeyword reports whether kw starts an ExUnit test or group.
func IsTestKeyword(kw string) bool {
	_, ok := testKeywords[kw]
	return ok
}

// IsModuleKeyword reports whether kw starts a module-like block.
func IsModuleKeyword(kw string) bool {
	_, ok := moduleKeywords[kw]
	return ok
}

// Analyze derives the facts of one line given the state left by the previous
// line, and returns the state for the next one.
func Analyze(text string, state State) (m.Facts, State) {
	scan, next := tokenize(text, state)

	facts := m.Facts{InLiteral: scan.startsInLiteral}

	if !scan.startsInLiteral {
		facts.Blank = strings.TrimSpace(text) == ""
		facts.Comment = scan.comment && len(scan.tokens) == 0
	}

	switch {
	case state.InHeader() && (scan.startsInLiteral || !startsDefinition(scan.tokens)):
		facts.Continuation = true
		facts.Definition, next = continueHeader(scan.tokens, next)
	case !scan.startsInLiteral:
		// Clears a header abandoned by a new definition.
		next.Keyword, next.Name, next.Parens = "", "", 0

		facts.Definition = parseDefinition(scan.tokens)
		if def := facts.Definition; def != nil && def.Form == m.FormOpen {
			next.Keyword, next.Name, next.Parens = def.Keyword, def.Name, parenDepth(scan.tokens)
		}
	}

	facts.Events = blockEvents(scan.tokens, facts.Definition)

	return facts, next
}

// continueHeader feeds the tokens of a continuation line to the open header in
// state. The definition is returned once its argument list closes.
func continueHeader(tokens []Token, state State) (*m.Definition, State) {
	depth := state.Parens

	for i, tok := range tokens {
		switch tok.Kind {
		case TokLParen:
			depth++
		case TokRParen:
			depth--
			if depth > 0 {
				continue
			}

			rest := tokens[i+1:]
			def := &m.Definition{
				Keyword: state.Keyword,
				Name:    state.Name,
				Guard:   len(rest) > 0 && rest[0].Is("when"),
				Form:    bodyForm(rest),
			}

			state.Keyword, state.Name, state.Parens = "", "", 0

			return def, state
		default:
		}
	}

	state.Parens = depth

	return nil, state
}

func startsDefinition(tokens []Token) bool {
	if len(tokens) == 0 || tokens[0].Kind != TokIdent || tokens[0].AfterDot {
		return false
	}

	kw := tokens[0].Text

	return IsFunctionKeyword(kw) || IsTestKeyword(kw) || IsModuleKeyword(kw)
}

func blockEvents(tokens []Token, def *m.Definition) []m.Event {
	var events []m.Event

	for _, tok := range tokens {
		switch {
		case tok.Is("do"), tok.Is("fn"):
			events = append(events, m.Event{Kind: m.EventOpen})
		case tok.Is("end"):
			events = append(events, m.Event{Kind: m.EventClose})
		}
	}

	if def != nil && def.Form == m.FormBlock && len(events) > 0 {
		// The trailing `do` of the header opens the definition itself.
		events[len(events)-1].Header = true
	}

	return events
}

func parseDefinition(tokens []Token) *m.Definition {
	if len(tokens) == 0 || tokens[0].Kind != TokIdent || tokens[0].AfterDot {
		return nil
	}

	keyword := tokens[0].Text

	switch {
	case IsFunctionKeyword(keyword):
		return parseFunction(keyword, tokens[1:])
	case IsTestKeyword(keyword), IsModuleKeyword(keyword):
		return parseLabelled(keyword, tokens[1:])
	default:
		return nil
	}
}

// parseFunction recognises the clause forms of def-family keywords. Arguments
// must be parenthesized; `def name arg do` is reported as unsupported.
func parseFunction(keyword string, tokens []Token) *m.Definition {
	if len(tokens) == 0 || tokens[0].Kind != TokIdent || isReserved(tokens[0]) {
		return nil
	}

	def := &m.Definition{Keyword: keyword, Name: tokens[0].Text}
	rest := tokens[1:]

	hasParens := len(rest) > 0 && rest[0].Kind == TokLParen
	if hasParens {
		closing := matchParen(rest)
		if closing < 0 {
			def.Form = m.FormOpen
			return def
		}

		rest = rest[closing+1:]
	}

	if !hasParens && len(rest) > 0 && !rest[0].Is("do") && !rest[0].Is("when") && rest[0].Kind != TokComma {
		def.Form = m.FormUnsupported
		return def
	}

	def.Guard = len(rest) > 0 && rest[0].Is("when")
	def.Form = bodyForm(rest)

	return def
}

func bodyForm(rest []Token) m.DefinitionForm {
	if len(rest) == 0 {
		return m.FormHead
	}

	if rest[len(rest)-1].Is("do") {
		return m.FormBlock
	}

	for _, tok := range rest {
		if (tok.Kind == TokKey && tok.Text == "do") || tok.Is("do") {
			return m.FormInline
		}
	}

	return m.FormUnsupported
}

// parseLabelled handles `test "name" do`, `describe "name" do` and
// `defmodule Name do`. Only the block form is a definition.
func parseLabelled(keyword string, tokens []Token) *m.Definition {
	if len(tokens) < 2 || !tokens[len(tokens)-1].Is("do") {
		return nil
	}

	label := tokens[0].Text
	if tokens[0].Kind == TokString {
		label = strings.Trim(label, `"'`)
	} else if IsModuleKeyword(keyword) {
		label = joinAlias(tokens[:len(tokens)-1])
	}

	return &m.Definition{Keyword: keyword, Name: label, Form: m.FormBlock}
}

func joinAlias(tokens []Token) string {
	var b strings.Builder

	for _, tok := range tokens {
		if tok.Kind == TokComma {
			break
		}

		b.WriteString(tok.Text)
	}

	return b.String()
}

// matchParen returns the index of the parenthesis closing tokens[0], or -1.
func matchParen(tokens []Token) int {
	depth := 0

	for i, tok := range tokens {
		switch tok.Kind {
		case TokLParen:
			depth++
		case TokRParen:
			depth--
			if depth == 0 {
				return i
			}
		default:
		}
	}

	return -1
}

// parenDepth counts the parentheses left open by tokens.
func parenDepth(tokens []Token) int {
	depth := 0

	for _, tok := range tokens {
		switch tok.Kind {
		case TokLParen:
			depth++
		case TokRParen:
			depth--
		default:
		}
	}

	return depth
}

func isReserved(tok Token) bool {
	return tok.Is("do") || tok.Is("end") || tok.Is("fn") || tok.Is("when")
}
