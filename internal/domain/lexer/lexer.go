package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	doubleHeredoc = `"""`
	singleHeredoc = `'''`
)

var sigilClosers = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

// lineScan is the raw result of tokenizing one line.
type lineScan struct {
	tokens []Token
	// comment is set when the line carries a `#` comment outside strings.
	comment bool
	// startsInLiteral is set when the line began inside a heredoc or a
	// string continued from the previous line.
	startsInLiteral bool
}

// Tokenize splits a line into tokens, dropping whitespace, comments and the
// contents of strings. It returns the state for the following line.
func Tokenize(text string, state State) ([]Token, State) {
	scan, next := tokenize(text, state)
	return scan.tokens, next
}

//nolint:cyclop,funlen,gocognit // A flat switch over the first byte reads best for a lexer.
func tokenize(text string, state State) (lineScan, State) {
	var scan lineScan

	pos := 0

	switch {
	case state.InHeredoc():
		scan.startsInLiteral = true

		idx := strings.Index(text, state.Heredoc)
		if idx < 0 {
			return scan, state
		}

		pos = idx + len(state.Heredoc)
		state.Heredoc = ""

	case state.InString():
		scan.startsInLiteral = true

		end, closed := skipBody(text, 0, state.Closer, state.Interp)
		if !closed {
			return scan, state
		}

		pos = end
		if state.Sigil {
			pos = skipModifiers(text, pos)
		}

		state.Closer, state.Interp, state.Sigil = 0, false, false
	}

	for pos < len(text) {
		c := text[pos]

		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			pos++

		case c == '#':
			scan.comment = true
			return scan, state

		case c == '"' || c == '\'':
			if delim, ok := heredocAt(text, pos); ok {
				scan.tokens = append(scan.tokens, Token{Kind: TokString, Text: delim})
				state.Heredoc = delim

				return scan, state
			}

			end, closed := skipString(text, pos+1, c)
			scan.tokens = append(scan.tokens, Token{Kind: TokString, Text: text[pos:end]})

			if !closed {
				state.Closer, state.Interp = c, c == '"'
				return scan, state
			}

			pos = end

		case c == '~' && pos+1 < len(text) && isLetter(text[pos+1]):
			end, open := skipSigil(text, pos)
			scan.tokens = append(scan.tokens, Token{Kind: TokString, Text: text[pos:end]})

			if open.inLiteral() {
				state.Heredoc = open.Heredoc
				state.Closer, state.Interp, state.Sigil = open.Closer, open.Interp, open.Sigil

				return scan, state
			}

			pos = end

		case c == '?' && pos+1 < len(text):
			end := pos + 2
			if text[pos+1] == '\\' && pos+2 < len(text) {
				end = pos + 3
			}

			scan.tokens = append(scan.tokens, Token{Kind: TokChar, Text: text[pos:end]})
			pos = end

		case c == ':':
			tok, end := scanColon(text, pos)
			scan.tokens = append(scan.tokens, tok)
			pos = end

		case isIdentStart(text, pos):
			tok, end := scanIdent(text, pos)
			scan.tokens = append(scan.tokens, tok)
			pos = end

		case isDigit(c):
			end := pos + 1
			for end < len(text) && (isNumberChar(text[end]) || (text[end] == '.' && end+1 < len(text) && isDigit(text[end+1]))) {
				end++
			}

			scan.tokens = append(scan.tokens, Token{Kind: TokNumber, Text: text[pos:end]})
			pos = end

		case c == '(':
			scan.tokens = append(scan.tokens, Token{Kind: TokLParen, Text: "("})
			pos++

		case c == ')':
			scan.tokens = append(scan.tokens, Token{Kind: TokRParen, Text: ")"})
			pos++

		case c == ',':
			scan.tokens = append(scan.tokens, Token{Kind: TokComma, Text: ","})
			pos++

		default:
			_, size := utf8.DecodeRuneInString(text[pos:])
			scan.tokens = append(scan.tokens, Token{Kind: TokPunct, Text: text[pos : pos+size]})
			pos += size
		}
	}

	return scan, state
}

func heredocAt(text string, pos int) (string, bool) {
	switch {
	case strings.HasPrefix(text[pos:], doubleHeredoc):
		return doubleHeredoc, true
	case strings.HasPrefix(text[pos:], singleHeredoc):
		return singleHeredoc, true
	default:
		return "", false
	}
}

// skipString returns the index just past the closing quote of a string that
// starts before pos. closed is false when the string runs past the line.
func skipString(text string, pos int, quote byte) (end int, closed bool) {
	return skipBody(text, pos, quote, quote == '"')
}

// skipBody scans a string or sigil body for closer, honouring escapes and,
// when interp is set, `#{...}` interpolation.
func skipBody(text string, pos int, closer byte, interp bool) (end int, closed bool) {
	for pos < len(text) {
		switch text[pos] {
		case '\\':
			pos += 2
		case closer:
			return pos + 1, true
		case '#':
			if interp && pos+1 < len(text) && text[pos+1] == '{' {
				pos = skipInterpolation(text, pos+2)
				continue
			}

			pos++
		default:
			pos++
		}
	}

	return len(text), false
}

// skipInterpolation skips the body of `#{...}`, including nested strings.
func skipInterpolation(text string, pos int) int {
	depth := 1

	for pos < len(text) {
		switch text[pos] {
		case '{':
			depth++
			pos++
		case '}':
			depth--
			pos++

			if depth == 0 {
				return pos
			}
		case '"', '\'':
			pos, _ = skipString(text, pos+1, text[pos])
		default:
			pos++
		}
	}

	return len(text)
}

// skipSigil skips `~r/.../i` style sigils. The returned state is set when the
// sigil opens a heredoc or its body continues on the next line.
func skipSigil(text string, pos int) (int, State) {
	pos++ // '~'
	interp := pos < len(text) && text[pos] >= 'a' && text[pos] <= 'z'

	for pos < len(text) && isLetter(text[pos]) {
		pos++
	}

	if pos >= len(text) {
		return pos, State{}
	}

	if delim, ok := heredocAt(text, pos); ok {
		return len(text), State{Heredoc: delim}
	}

	open := text[pos]

	closing, ok := sigilClosers[open]
	if !ok {
		closing = open
	}

	end, closed := skipBody(text, pos+1, closing, interp)
	if !closed {
		return len(text), State{Closer: closing, Interp: interp, Sigil: true}
	}

	return skipModifiers(text, end), State{}
}

func skipModifiers(text string, pos int) int {
	for pos < len(text) && isLetter(text[pos]) {
		pos++
	}

	return pos
}

func scanColon(text string, pos int) (Token, int) {
	next := pos + 1

	switch {
	case next < len(text) && text[next] == ':':
		return Token{Kind: TokPunct, Text: "::"}, next + 1
	case next < len(text) && (text[next] == '"' || text[next] == '\''):
		end, _ := skipString(text, next+1, text[next])
		return Token{Kind: TokAtom, Text: text[pos:end]}, end
	case next < len(text) && isIdentStart(text, next):
		end := identEnd(text, next)
		if end < len(text) && (text[end] == '?' || text[end] == '!') {
			end++
		}

		return Token{Kind: TokAtom, Text: text[pos:end]}, end
	default:
		return Token{Kind: TokPunct, Text: ":"}, next
	}
}

func scanIdent(text string, pos int) (Token, int) {
	end := identEnd(text, pos)
	if end < len(text) && (text[end] == '?' || text[end] == '!') {
		end++
	}

	word := text[pos:end]

	// `do:` is a keyword-list key, `do::` is not.
	if end < len(text) && text[end] == ':' && (end+1 >= len(text) || text[end+1] != ':') {
		return Token{Kind: TokKey, Text: word}, end + 1
	}

	afterDot := pos > 0 && text[pos-1] == '.' && (pos < 2 || text[pos-2] != '.')

	return Token{Kind: TokIdent, Text: word, AfterDot: afterDot}, end
}

// identEnd returns the index just past the identifier characters at pos.
func identEnd(text string, pos int) int {
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if !isIdentRune(r) {
			break
		}

		pos += size
	}

	return pos
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNumberChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

func isIdentStart(text string, pos int) bool {
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return r == '_' || unicode.IsLetter(r)
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}
