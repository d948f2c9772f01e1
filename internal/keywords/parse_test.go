package keywords

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single quotes", "['great','fast']", []string{"great", "fast"}},
		{"double quotes", `["slow", "bad"]`, []string{"slow", "bad"}},
		{"mixed quotes and spacing", ` [ 'a' ,"b" ] `, []string{"a", "b"}},
		{"empty list", "[]", []string{}},
		{"empty list with spaces", "[   ]", []string{}},
		{"trailing comma", "['a', 'b',]", []string{"a", "b"}},
		{"quote inside other quote", `["don't", 'say "hi"']`, []string{"don't", `say "hi"`}},
		{"escaped quote", `['don\'t']`, []string{"don't"}},
		{"escape sequences", `['a\tb\nc\\d']`, []string{"a\tb\nc\\d"}},
		{"unknown escape kept", `['\d+']`, []string{`\d+`}},
		{"line continuation", "['ab\\\ncd']", []string{"abcd"}},
		{"raw string", `[r'\d+', R"\n"]`, []string{`\d+`, `\n`}},
		{"raw string escaped quote", `[r'a\'b']`, []string{`a\'b`}},
		{"unicode prefix", "[u'caf\u00e9', U\"na\u00efve\"]", []string{"caf\u00e9", "na\u00efve"}},
		{"multiline list", "[\n  'a',\n  'b'\n]", []string{"a", "b"}},
		{"duplicates preserved", "['a', 'a']", []string{"a", "a"}},
		{"empty string element", "['']", []string{""}},
		{"hex escape", `['caf\xe9']`, []string{"caf\u00e9"}},
		{"octal escapes", `["a\0b", '\101\1010']`, []string{"a\x00b", "AA0"}},
		{"unicode escapes", `['\u00e9\U0001F600']`, []string{"\u00e9\U0001F600"}},
		{"control escapes", `['\a\b\f\v']`, []string{"\a\b\f\v"}},
		{"raw string keeps hex escape", `[r'\x41']`, []string{`\x41`}},
		{"adjacent literals concatenate", `['a' 'b', "c" r'\d']`, []string{"ab", `c\d`}},
		{"concatenation across lines", "['a'\n 'b']", []string{"ab"}},
		{"triple quoted", "['''it's''', \"\"\"two\nlines\"\"\"]", []string{"it's", "two\nlines"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseList(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseListNotList(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"'just a string'",
		`"quoted"`,
		"42",
		"-3.5",
		"True",
		"None",
		"'a' 'b'",
		"'''doc'''",
	} {
		_, err := ParseList(input)
		assert.ErrorIs(t, err, ErrNotList, "input %q", input)
	}
}

func TestParseListSyntaxErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		offset int
	}{
		{"empty input", "", 0},
		{"blank input", "   ", 3},
		{"bare words", "not a list", 0},
		{"unterminated list", "['a'", 4},
		{"unterminated string", "['a", 3},
		{"missing comma", "['a' x]", 5},
		{"invalid hex escape", `['\x4']`, 2},
		{"code point out of range", `['\U00110000']`, 2},
		{"truncated unicode escape", `['\u00`, 2},
		{"named escape", `['\N{BULLET}']`, 2},
		{"unterminated triple quote", "['''a']", 7},
		{"number element", "[1, 2]", 1},
		{"nested list", "[['a']]", 1},
		{"trailing garbage", "['a'] x", 6},
		{"double comma", "['a',,'b']", 5},
		{"leading comma", "[,'a']", 1},
		{"tuple", "('a', 'b')", 0},
		{"dict", "{'a': 'b'}", 0},
		{"newline in string", "['a\nb']", 3},
		{"bad prefix", "[x'a']", 1},
		{"u after r", "[ru'a']", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseList(tt.input)
			require.Error(t, err)

			var syn *SyntaxError
			require.True(t, errors.As(err, &syn), "want *SyntaxError, got %T", err)
			assert.Equal(t, tt.offset, syn.Offset)
			assert.False(t, errors.Is(err, ErrNotList))
		})
	}
}

func TestSyntaxErrorMessage(t *testing.T) {
	t.Parallel()

	err := &SyntaxError{Offset: 4, Msg: "unterminated list"}
	assert.Equal(t, "keywords: syntax error at offset 4: unterminated list", err.Error())
}
