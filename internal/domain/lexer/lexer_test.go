package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "exfold.dev/pkg/exfold/internal/model"
)

func keywords(tokens []Token) []string {
	var out []string

	for _, tok := range tokens {
		if tok.Is("do") || tok.Is("end") || tok.Is("fn") {
			out = append(out, tok.Text)
		}
	}

	return out
}

func TestTokenize_HidesKeywords(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "plain block", line: "if x do :a end", want: []string{"do", "end"}},
		{name: "string", line: `IO.puts("do end")`},
		{name: "charlist", line: `'do end'`},
		{name: "interpolation", line: `"a #{f("end")} do"`},
		{name: "escaped quote", line: `"\" do"`},
		{name: "sigil with parens", line: `~w(do end)a`},
		{name: "sigil with slashes", line: `~r/do|end/i`},
		{name: "atom", line: `x = :end`},
		{name: "quoted atom", line: `x = :"do"`},
		{name: "keyword key", line: `[do: 1, end: 2]`},
		{name: "field access", line: `map.end`},
		{name: "char literal", line: `?#`},
		{name: "comment", line: `x # do end`},
		{name: "anonymous function", line: `fn x -> x end`, want: []string{"fn", "end"}},
		{name: "unicode identifier", line: `énd = dö`},
		{name: "unicode operator", line: `x → do`, want: []string{"do"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, state := Tokenize(tt.line, State{})

			assert.Equal(t, tt.want, keywords(tokens))
			assert.False(t, state.InHeredoc())
			assert.False(t, state.InString())
		})
	}
}

func TestTokenize_MultiLineLiterals(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  [][]string
	}{
		{
			name:  "string",
			lines: []string{`x = "multi`, `  end of string" do`, `end`},
			want:  [][]string{nil, {"do"}, {"end"}},
		},
		{
			name:  "charlist",
			lines: []string{`x = 'a`, `do end`, `' end`},
			want:  [][]string{nil, nil, {"end"}},
		},
		{
			name:  "escaped closer",
			lines: []string{`x = "a`, `\" end`, `" do`},
			want:  [][]string{nil, nil, {"do"}},
		},
		{
			name:  "interpolation hides closer",
			lines: []string{`x = "a`, `#{"end"} end`, `" do`},
			want:  [][]string{nil, nil, {"do"}},
		},
		{
			name:  "sigil with modifiers",
			lines: []string{`~w(one`, `do end`, `)a end`},
			want:  [][]string{nil, nil, {"end"}},
		},
		{
			name:  "uppercase sigil does not interpolate",
			lines: []string{`~S/a`, `#{/ do`},
			want:  [][]string{nil, {"do"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				state State
				got   [][]string
			)

			for _, line := range tt.lines {
				var tokens []Token

				tokens, state = Tokenize(line, state)
				got = append(got, keywords(tokens))
			}

			assert.Equal(t, tt.want, got)
			assert.False(t, state.InString())
		})
	}
}

func TestTokenize_Heredoc(t *testing.T) {
	lines := []string{
		`@doc """`,
		`if x do`,
		`""" <> "end"`,
		`end`,
	}

	var (
		state State
		got   [][]string
	)

	for _, line := range lines {
		var tokens []Token

		tokens, state = Tokenize(line, state)
		got = append(got, keywords(tokens))
	}

	assert.Equal(t, [][]string{nil, nil, nil, {"end"}}, got)
	assert.False(t, state.InHeredoc())
}

func TestTokenize_SigilHeredoc(t *testing.T) {
	_, state := Tokenize(`~S'''`, State{})
	require.True(t, state.InHeredoc())

	_, state = Tokenize(`'''`, state)
	assert.False(t, state.InHeredoc())
}

func TestAnalyze_Definitions(t *testing.T) {
	tests := []struct {
		name string
		line string
		want *m.Definition
	}{
		{
			name: "block clause",
			line: "  def asd(a, b) do",
			want: &m.Definition{Keyword: "def", Name: "asd", Form: m.FormBlock},
		},
		{
			name: "block without arguments",
			line: "  defp   asd    do",
			want: &m.Definition{Keyword: "defp", Name: "asd", Form: m.FormBlock},
		},
		{
			name: "guarded block",
			line: "def asd(v) when is_atom(v) do",
			want: &m.Definition{Keyword: "def", Name: "asd", Form: m.FormBlock, Guard: true},
		},
		{
			name: "keyword one-liner",
			line: "def asd(), do: true",
			want: &m.Definition{Keyword: "def", Name: "asd", Form: m.FormInline},
		},
		{
			name: "one-liner without parentheses",
			line: "defmacro asd, do: true",
			want: &m.Definition{Keyword: "defmacro", Name: "asd", Form: m.FormInline},
		},
		{
			name: "do end on one line",
			line: "def asd(x) do x end",
			want: &m.Definition{Keyword: "def", Name: "asd", Form: m.FormInline},
		},
		{
			name: "bodiless head",
			line: `def asd(var \\ "")`,
			want: &m.Definition{Keyword: "def", Name: "asd", Form: m.FormHead},
		},
		{
			name: "unparenthesized arguments",
			line: "def asd v when is_atom(v) do",
			want: &m.Definition{Keyword: "def", Name: "asd", Form: m.FormUnsupported},
		},
		{
			name: "header split over lines",
			line: "def asd(a,",
			want: &m.Definition{Keyword: "def", Name: "asd", Form: m.FormOpen},
		},
		{
			name: "unicode name",
			line: "def café(ß) do",
			want: &m.Definition{Keyword: "def", Name: "café", Form: m.FormBlock},
		},
		{
			name: "test block",
			line: `  test "truth" do`,
			want: &m.Definition{Keyword: "test", Name: "truth", Form: m.FormBlock},
		},
		{
			name: "module",
			line: "defmodule Foo.Bar do",
			want: &m.Definition{Keyword: "defmodule", Name: "Foo.Bar", Form: m.FormBlock},
		},
		{name: "keyword alone", line: "def"},
		{name: "keyword with space", line: "def "},
		{name: "call", line: "IO.puts(x)"},
		{name: "field named def", line: "x.def(1) do"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts, _ := Analyze(tt.line, State{})
			assert.Equal(t, tt.want, facts.Definition)
		})
	}
}

func TestAnalyze_Facts(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		significant bool
		events      []m.Event
	}{
		{name: "blank", line: "   "},
		{name: "comment", line: "  # def asd do"},
		{
			name:        "header marks its do",
			line:        "def asd() do",
			significant: true,
			events:      []m.Event{{Kind: m.EventOpen, Header: true}},
		},
		{
			name:        "inline do end is not a header",
			line:        "def asd(x) do x end",
			significant: true,
			events:      []m.Event{{Kind: m.EventOpen}, {Kind: m.EventClose}},
		},
		{
			name:        "header with anonymous function",
			line:        "def asd(f \\\\ fn -> 1 end) do",
			significant: true,
			events: []m.Event{
				{Kind: m.EventOpen},
				{Kind: m.EventClose},
				{Kind: m.EventOpen, Header: true},
			},
		},
		{
			name:        "code with trailing comment",
			line:        "end # done",
			significant: true,
			events:      []m.Event{{Kind: m.EventClose}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts, _ := Analyze(tt.line, State{})

			assert.Equal(t, tt.significant, facts.Significant())
			assert.Equal(t, tt.events, facts.Events)
		})
	}
}

func TestAnalyze_HeredocBody(t *testing.T) {
	facts, state := Analyze(`  @moduledoc """`, State{})
	assert.False(t, facts.InLiteral)

	facts, state = Analyze(`  def asd() do`, state)
	assert.True(t, facts.InLiteral)
	assert.Nil(t, facts.Definition)
	assert.Empty(t, facts.Events)

	facts, state = Analyze(``, state)
	assert.True(t, facts.InLiteral)
	assert.True(t, facts.Significant())

	_, state = Analyze(`  """`, state)
	assert.False(t, state.InHeredoc())
}

func TestAnalyze_StringBody(t *testing.T) {
	facts, state := Analyze(`  x = "multi`, State{})
	assert.False(t, facts.InLiteral)
	require.True(t, state.InString())

	facts, state = Analyze(`def asd() do`, state)
	assert.True(t, facts.InLiteral)
	assert.Nil(t, facts.Definition)
	assert.Empty(t, facts.Events)

	facts, state = Analyze(`  end of string"`, state)
	assert.True(t, facts.InLiteral)
	assert.Empty(t, facts.Events)
	assert.False(t, state.InString())
}

func TestAnalyze_MultiLineHeader(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []*m.Definition
	}{
		{
			name:  "block",
			lines: []string{"def asd(a,", "  b) do"},
			want: []*m.Definition{
				{Keyword: "def", Name: "asd", Form: m.FormOpen},
				{Keyword: "def", Name: "asd", Form: m.FormBlock},
			},
		},
		{
			name:  "nested parentheses and comment",
			lines: []string{"defp asd(a \\\\ f(1,", "  # note", "  2), b)", "  when is_atom(b), do: b"},
			want: []*m.Definition{
				{Keyword: "defp", Name: "asd", Form: m.FormOpen},
				nil,
				{Keyword: "defp", Name: "asd", Form: m.FormHead},
				nil,
			},
		},
		{
			name:  "guard on closing line",
			lines: []string{"def asd(", "  v", ") when is_atom(v) do"},
			want: []*m.Definition{
				{Keyword: "def", Name: "asd", Form: m.FormOpen},
				nil,
				{Keyword: "def", Name: "asd", Form: m.FormBlock, Guard: true},
			},
		},
		{
			name:  "abandoned by the next definition",
			lines: []string{"def asd(a,", "def qwe() do"},
			want: []*m.Definition{
				{Keyword: "def", Name: "asd", Form: m.FormOpen},
				{Keyword: "def", Name: "qwe", Form: m.FormBlock},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				state State
				got   []*m.Definition
			)

			for _, line := range tt.lines {
				var facts m.Facts

				facts, state = Analyze(line, state)
				got = append(got, facts.Definition)
			}

			assert.Equal(t, tt.want, got)
			assert.False(t, state.InHeader())
		})
	}
}

func TestKeywordFamilies(t *testing.T) {
	assert.True(t, IsFunctionKeyword("defguardp"))
	assert.True(t, IsFunctionKeyword("defnp"))
	assert.False(t, IsFunctionKeyword("defmodule"))
	assert.True(t, IsTestKeyword("describe"))
	assert.True(t, IsModuleKeyword("defimpl"))
	assert.False(t, IsModuleKeyword("def"))
}
