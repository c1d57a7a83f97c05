package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_SimpleFunctions(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
	}{
		{
			name: "simple function",
			fixture: `1   def asd() do
1      something
1   end
`,
		},
		{
			name: "simple function with blank lines",
			fixture: `1   def asd() do
1
1      something()
1      {:ok, 123}
1
1   end
`,
		},
		{
			name: "function with if and case",
			fixture: `1   def asd() do
1
1     if true do
1       :ok
1     else
1       :not_ok
1     end
1
1     case %{} do
1       %{:asd => value} -> value
1     end
1   end
`,
		},
		{
			name: "functions with trailing comments",
			fixture: `1   def asd1() do#
1      something1
1   end#
0
1   def asd2() do
1      something2
1   end
`,
		},
		{
			name: "two clauses fold together",
			fixture: `1   def asd1() do
1      something1
1   end
1
1   def asd1() do
1      something2
1   end
`,
		},
		{
			name: "two functions fold separately",
			fixture: `1   def asd1() do
1      something1
1   end
0
1   def asd2() do
1      something2
1   end
`,
		},
		{
			name: "comment before a different function",
			fixture: `1   def asd1() do
1      something1
1   end
0
0   # some comment
1   def asd2() do
1      something2
1   end
`,
		},
		{
			name: "comment surrounded by blanks before a different function",
			fixture: `1   def asd1() do
1      something1
1   end
0
0   # some comment
0
1   def asd2() do
1      something2
1   end
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, lines := parseFixture(t, tt.fixture)
			assert.Equal(t, want, Classify(lines))
		})
	}
}

func TestClassify_OneLiners(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
	}{
		{
			name: "lonely one-liner does not fold",
			fixture: `0 defmodule Test do
0   def asd1(), do: true
0
1   def asd2() do
1      something2
1   end
0 end
`,
		},
		{
			name: "one-liner followed by a body",
			fixture: `0 defmodule Test do
1   def asd1(), do: true
1
1   def asd1() do
1      something2
1   end
0 end
`,
		},
		{
			name: "one-liner followed by a guarded body",
			fixture: `0 defmodule Test do
1   def asd1(), do: true
1
1   def asd1(v) when is_atom(v) do
1      something2
1   end
0 end
`,
		},
		{
			name: "body followed by a one-liner",
			fixture: `0 defmodule Test do
1   def asd1() do
1      something2
1   end
1
1   def asd1(), do: true
0 end
`,
		},
		{
			name: "bodies with a one-liner in between",
			fixture: `0 defmodule Test do
1   def asd1() do
1      something2
1   end
1
1   def asd1(), do: true
1
1   def asd1() do
1      something2
1   end
0 end
`,
		},
		{
			name: "body with one-liner but not the next function",
			fixture: `0 defmodule Test do
1   def asd1() do
1      something2
1   end
1
1   def asd1(), do: true
0
1   def asd2() do
1      something2
1   end
0 end
`,
		},
		{
			name: "default argument head followed by a body",
			fixture: `0 defmodule Test do
1   def asd1(var1 \\ "")
1
1   def asd1(var1) do
1      something2
1   end
0 end
`,
		},
		{
			name: "one-liner without arguments and parentheses",
			fixture: `0 defmodule Test do
0   def asd1, do: true
0 end
`,
		},
		{
			name: "two one-liners of the same function",
			fixture: `0 defmodule Test do
1   def fact(0), do: 1
1   def fact(n), do: n * fact(n - 1)
0 end
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, lines := parseFixture(t, tt.fixture)
			assert.Equal(t, want, Classify(lines))
		})
	}
}

func TestClassify_Modules(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
	}{
		{
			name: "clauses and comments fold together",
			fixture: `0 defmodule Test do
1   def asd1() do
1      something1
1   end
1
1   # some comment
1
1   def asd1() do
1      something2
1   end
0 end
`,
		},
		{
			name: "function head without arguments and parentheses",
			fixture: `0 defmodule Test do
1   def   asd1    do
1     true
1   end
0 end
`,
		},
		{
			name: "control flow inside a module",
			fixture: `0   defmodule Test do
1     def asd() do
1
1       if true do
1         :ok
1       else
1         :not_ok
1       end
1
1       case %{} do
1         %{:asd => value} -> value
1       end
1     end
0   end
`,
		},
		{
			name: "empty case",
			fixture: `0   defmodule Test do
1     def fix(data) do
1       case data do
1       end
1     end
0   end
`,
		},
		{
			name: "function in a module",
			fixture: `0   defmodule Test do
1     def asd() do
1        something
1     end
0   end
`,
		},
		{
			name: "functions in two modules",
			fixture: `0   defmodule Test do
1     def asd4() do
1        something
1     end
0   end
0
0   defmodule Test1 do
1     def asd5() do
1        something
1     end
0   end
`,
		},
		{
			name: "nested functions",
			fixture: `0   defmodule Test do
1     def asd() do
1        something
1     end
0
1     defp asd2(v1, v2) do
2       def asd3 do
3         def asd4(v4) do
3           true
3         end
2
2         true
2
2       end
1     end
0   end
`,
		},
		{
			name: "ExUnit tests never group",
			fixture: `0   defmodule Test do
1      test "truth" do
1        assert 1 == 1
1      end
0 
1      test "truth" do
1        assert 1 == 1
1      end
0   end
`,
		},
		{
			name: "ExUnit describe block",
			fixture: `0   defmodule Test do
1     describe "test group" do
2        test "truth" do
2          assert 1 == 1
2        end
1
2        test "truth" do
2          assert 1 == 1
2        end
1     end
0   end
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, lines := parseFixture(t, tt.fixture)
			assert.Equal(t, want, Classify(lines))
		})
	}
}

func TestClassify_ReservedCallbacksNeverGroup(t *testing.T) {
	for _, callback := range []string{"handle_call", "handle_cast", "handle_info"} {
		t.Run(callback, func(t *testing.T) {
			fixture := `0 defmodule Test do
1   def ` + callback + `() do
1      something1
1   end
0
1   def ` + callback + `() do
1      something2
1   end
0 end
`
			want, lines := parseFixture(t, fixture)
			assert.Equal(t, want, Classify(lines))
		})
	}
}

func TestClassify_UnparenthesizedArgumentsStayUnfolded(t *testing.T) {
	want, lines := parseFixture(t, `0 defmodule Test do
0   def asd1(), do: true
0
0   def asd1 v  when is_atom(v) do
0      something2
0   end
0 end
`)

	assert.Equal(t, want, Classify(lines))
}

func TestClassify_MultiLineHeaders(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
	}{
		{
			name: "block header",
			fixture: `1 def a(x,
1       y) do
1   x + y
1 end
`,
		},
		{
			name: "guarded header in a module",
			fixture: `0 defmodule Test do
1   defp asd(
1          v
1        ) when is_atom(v) do
1     v
1   end
0 end
`,
		},
		{
			name: "clauses group across split headers",
			fixture: `0 defmodule Test do
1   def asd(a,
1           b) do
1     a
1   end
1
1   def asd(
1         a
1       ), do: a
0 end
`,
		},
		{
			name: "split bodiless head joins the next clause",
			fixture: `0 defmodule Test do
1   def asd(a,
1           b \\ nil)
1
1   def asd(a, b) do
1     a
1   end
0 end
`,
		},
		{
			name: "split inline clause stays unfolded alone",
			fixture: `0 defmodule Test do
0   def asd(a,
0           b), do: a
0 end
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, lines := parseFixture(t, tt.fixture)
			assert.Equal(t, want, Classify(lines))
		})
	}
}

func TestClassify_LexicalNoise(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
	}{
		{
			name: "keywords inside strings, atoms and comments",
			fixture: `0 defmodule Test do
1   def asd() do
1     IO.puts("do")
1     x = :end
1     y = ~w(do end fn)
1     z = map.end
1     c = ?#
1     # end
1     [do: 1, end: 2]
1   end
0 end
`,
		},
		{
			name: "heredoc with block keywords",
			fixture: `0 defmodule Test do
0   @doc """
0   iex> if true do
0   ...>   :ok
0   ...> end
0   """
1   def asd() do
1     :ok
1   end
0 end
`,
		},
		{
			name: "anonymous functions",
			fixture: `0 defmodule Test do
1   def asd(list) do
1     Enum.map(list, fn x ->
1       x * 2
1     end)
1   end
0 end
`,
		},
		{
			name: "inline do end on one line",
			fixture: `0 defmodule Test do
0   def asd(x) do x end
1   def qwe(x) do
1     if x do :a else :b end
1   end
0 end
`,
		},
		{
			name: "interpolation with nested quotes",
			fixture: `1 def asd(x) do
1   "value #{inspect("do")} end"
1 end
`,
		},
		{
			name: "string spanning lines",
			fixture: `1 def a() do
1   x = "multi
1   end of string"
1   y
1 end
0 z
`,
		},
		{
			name: "charlist spanning lines with a definition",
			fixture: `0 defmodule Test do
1   def asd() do
1     x = 'first
1   def qwe() do
1     last'
1   end
0 end
`,
		},
		{
			name: "sigil spanning lines",
			fixture: `0 defmodule Test do
1   def asd() do
1     words = ~w(
1       do end fn
1     )a
1   end
0 end
`,
		},
		{
			name: "unicode names",
			fixture: `0 defmodule Café do
1   def café() do
1     :ok
1   end
0
1   def größe(1), do: :eins
1   def größe(2), do: :zwei
0 end
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, lines := parseFixture(t, tt.fixture)
			assert.Equal(t, want, Classify(lines))
		})
	}
}

func TestClassify_MalformedInput(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
	}{
		{
			name: "stray end on empty stack",
			fixture: `0 end
0 end
1 def asd() do
1 end
`,
		},
		{
			name: "unclosed function leaves residual depth",
			fixture: `0 defmodule Test do
1   def asd() do
1     something
`,
		},
		{
			name: "header abandoned by the next definition",
			fixture: `0 def asd(a,
0   b
1 def qwe() do
1 end
`,
		},
		{
			name: "header that never closes",
			fixture: `0 def asd(a,
0   if x do
0     y
0   end
`,
		},
		{
			name: "partial header",
			fixture: `0 defmodule Test do
1   def asd() do
1       something
1   end
0 def
0 end
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, lines := parseFixture(t, tt.fixture)
			assert.Equal(t, want, Classify(lines))
		})
	}
}

func TestClassify_LengthAndIdempotence(t *testing.T) {
	inputs := [][]string{
		nil,
		{""},
		{"end", "end", "end"},
		{"def a() do", "def b() do", "def c() do"},
		splitSource(`defmodule A do
  def a(), do: 1
  def a(x) do
    x
  end
end`),
	}

	for _, lines := range inputs {
		first := Classify(lines)
		second := Classify(lines)

		require.Len(t, first, len(lines))
		assert.Equal(t, first, second)

		for _, level := range first {
			assert.GreaterOrEqual(t, level, 0)
		}
	}
}

func TestClassifier_WithNeverGroup(t *testing.T) {
	lines := splitSource(`defmodule Test do
  def handle_event() do
    :a
  end

  def handle_event() do
    :b
  end
end`)

	assert.Equal(t, []int{0, 1, 1, 1, 1, 1, 1, 1, 0}, Classify(lines))

	classifier := NewClassifier(WithNeverGroup("handle_event"))
	assert.Equal(t, []int{0, 1, 1, 1, 0, 1, 1, 1, 0}, classifier.Classify(lines))
}

func TestAnnotate(t *testing.T) {
	lines := Annotate([]string{"def asd(x), do: x", "", "  # note"})

	require.Len(t, lines, 3)
	assert.Equal(t, 1, lines[0].Number)
	require.NotNil(t, lines[0].Facts.Definition)
	assert.Equal(t, "asd", lines[0].Facts.Definition.Name)
	assert.True(t, lines[1].Facts.Blank)
	assert.True(t, lines[2].Facts.Comment)
}
