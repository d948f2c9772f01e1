package keywords

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrNotList is returned by ParseList when the cell holds a well-formed
// literal that is not a list, such as a bare string or a number.
var ErrNotList = errors.New("keywords: literal is not a list")

// SyntaxError describes a malformed list literal.
type SyntaxError struct {
	Offset int // byte offset into the input
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("keywords: syntax error at offset %d: %s", e.Offset, e.Msg)
}

// ParseList parses a list-of-strings literal such as
//
//	['great', "fast", u'cheap',]
//
// Strings may be single, double or triple quoted and carry an r or u prefix.
// Adjacent literals are concatenated. Non-raw strings decode the usual
// backslash escapes, including octal, \x, \u and \U; an unrecognized escape
// keeps its backslash and \N{...} is rejected. Elements other than string
// literals make the input malformed.
func ParseList(s string) ([]string, error) {
	p := &parser{src: s}
	p.skipSpace()

	if p.eof() {
		return nil, p.errorf("empty input")
	}
	if p.peek() != '[' {
		if p.scalar() {
			return nil, ErrNotList
		}
		return nil, p.errorf("expected '['")
	}
	p.pos++

	items := []string{}
loop:
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errorf("unterminated list")
		}
		if p.peek() == ']' {
			p.pos++
			break loop
		}

		item, err := p.strs()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		p.skipSpace()
		if p.eof() {
			return nil, p.errorf("unterminated list")
		}
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			break loop
		default:
			return nil, p.errorf("expected ',' or ']'")
		}
	}

	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected trailing input")
	}
	return items, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool  { return p.pos >= len(p.src) }
func (p *parser) peek() byte { return p.src[p.pos] }

func (p *parser) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.peek() {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			p.pos++
		default:
			return
		}
	}
}

// strs parses one or more adjacent string literals and joins them, so
// 'a' 'b' reads as "ab".
func (p *parser) strs() (string, error) {
	s, err := p.str()
	if err != nil {
		return "", err
	}
	for {
		save := p.pos
		p.skipSpace()
		if p.eof() || !p.atString() {
			p.pos = save
			return s, nil
		}
		next, err := p.str()
		if err != nil {
			return "", err
		}
		s += next
	}
}

// atString reports whether a string literal, prefix included, starts here.
func (p *parser) atString() bool {
	switch p.peek() {
	case '\'', '"':
		return true
	case 'r', 'R', 'u', 'U':
		return p.pos+1 < len(p.src) && isQuote(p.src[p.pos+1])
	}
	return false
}

// str parses one string literal with an optional r/u prefix. Both quote
// styles may be tripled, in which case the literal can span lines.
func (p *parser) str() (string, error) {
	raw := false
	for !p.eof() {
		c := p.peek()
		if c == 'r' || c == 'R' {
			if raw {
				return "", p.errorf("repeated string prefix")
			}
			raw = true
			p.pos++
			continue
		}
		if c == 'u' || c == 'U' {
			// u only stands alone and only before the quote.
			if raw || p.pos+1 >= len(p.src) || !isQuote(p.src[p.pos+1]) {
				return "", p.errorf("invalid string prefix")
			}
			p.pos++
		}
		break
	}

	if p.eof() || !isQuote(p.peek()) {
		return "", p.errorf("expected string literal")
	}
	quote := p.peek()
	closing := string(quote)
	if triple := strings.Repeat(closing, 3); strings.HasPrefix(p.src[p.pos:], triple) {
		closing = triple
	}
	long := len(closing) == 3
	p.pos += len(closing)

	var b strings.Builder
	for {
		if p.eof() {
			return "", p.errorf("unterminated string")
		}
		c := p.peek()
		switch {
		case c == quote && strings.HasPrefix(p.src[p.pos:], closing):
			p.pos += len(closing)
			return b.String(), nil
		case c == '\n' && !long:
			return "", p.errorf("newline in string")
		case c == '\\':
			if err := p.escape(&b, raw); err != nil {
				return "", err
			}
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
}

// escape consumes the escape sequence at the current backslash. Raw strings
// keep the backslash, which still protects a following quote. Unrecognized
// escapes keep their backslash as well.
func (p *parser) escape(b *strings.Builder, raw bool) error {
	start := p.pos
	if p.pos+1 >= len(p.src) {
		return p.errorf("unterminated string")
	}
	next := p.src[p.pos+1]
	p.pos += 2

	if raw {
		b.WriteByte('\\')
		b.WriteByte(next)
		return nil
	}

	switch next {
	case '\n':
	case '\\', '\'', '"':
		b.WriteByte(next)
	case 'a':
		b.WriteByte('\a')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'v':
		b.WriteByte('\v')
	case '0', '1', '2', '3', '4', '5', '6', '7':
		v := rune(next - '0')
		for i := 0; i < 2 && !p.eof() && isOctal(p.peek()); i++ {
			v = v*8 + rune(p.peek()-'0')
			p.pos++
		}
		b.WriteRune(v)
	case 'x', 'u', 'U':
		n := map[byte]int{'x': 2, 'u': 4, 'U': 8}[next]
		if p.pos+n > len(p.src) {
			return &SyntaxError{Offset: start, Msg: fmt.Sprintf("truncated \\%c escape", next)}
		}
		v, err := strconv.ParseUint(p.src[p.pos:p.pos+n], 16, 32)
		if err != nil || v > unicode.MaxRune {
			return &SyntaxError{Offset: start, Msg: fmt.Sprintf("invalid \\%c escape", next)}
		}
		p.pos += n
		b.WriteRune(rune(v))
	case 'N':
		return &SyntaxError{Offset: start, Msg: "named unicode escapes are not supported"}
	default:
		b.WriteByte('\\')
		b.WriteByte(next)
	}
	return nil
}

// scalar reports whether the rest of the input is a single well-formed
// non-list literal: a string, a number, or one of True/False/None.
func (p *parser) scalar() bool {
	save := p.pos
	defer func() { p.pos = save }()

	if _, err := p.strs(); err == nil {
		p.skipSpace()
		return p.eof()
	}
	p.pos = save

	rest := strings.TrimSpace(p.src[p.pos:])
	switch rest {
	case "True", "False", "None":
		return true
	}
	return isNumber(rest)
}

func isQuote(c byte) bool {
	return c == '\'' || c == '"'
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	digits, dots := 0, 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
			dots++
		case s[i] == '_' && i > 0 && i < len(s)-1:
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}
