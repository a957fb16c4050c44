package qrpath

import "fmt"

// TokenKind classifies a path data lexeme.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenNumber
	TokenComma
	TokenCommand
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of path"
	case TokenNumber:
		return "number"
	case TokenComma:
		return "comma"
	case TokenCommand:
		return "command"
	}
	return "unknown"
}

// Token is a single lexeme of SVG path data.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int // 0-based byte offset in the path string
}

// commands is the full SVG path command alphabet. All of these tokenize;
// only M, m and h are executable (see Draw).
const commands = "MmZzLlHhVvCcSsQqTtAa"

// Tokenizer is a pull cursor over SVG path data.
// See https://svgwg.org/svg2-draft/paths.html#PathDataBNF
type Tokenizer struct {
	input string
	pos   int
}

func NewTokenizer(path string) *Tokenizer {
	return &Tokenizer{input: path}
}

// Next returns the next token, dropping whitespace. At the end of input it
// returns a token of kind TokenEOF. An unrecognized character is a syntax
// error naming its offset.
func (t *Tokenizer) Next() (Token, error) {
	for t.pos < len(t.input) && isSpace(t.input[t.pos]) {
		t.pos++
	}
	if t.pos >= len(t.input) {
		return Token{Kind: TokenEOF, Pos: t.pos}, nil
	}
	start := t.pos
	c := t.input[t.pos]
	if c == ',' {
		t.pos++
		return Token{Kind: TokenComma, Text: ",", Pos: start}, nil
	}
	if n := scanNumber(t.input[start:]); n > 0 {
		t.pos += n
		return Token{Kind: TokenNumber, Text: t.input[start:t.pos], Pos: start}, nil
	}
	if isCommand(c) {
		t.pos++
		return Token{Kind: TokenCommand, Text: t.input[start:t.pos], Pos: start}, nil
	}
	return Token{}, fmt.Errorf("SVG path syntax error at position %d: %c", start, c)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isCommand(c byte) bool {
	for i := 0; i < len(commands); i++ {
		if commands[i] == c {
			return true
		}
	}
	return false
}

// scanNumber returns the length of the number at the start of s, or 0.
// The accepted form is [+-]?(digits '.' digits | '.' digits | digits)
// with an optional [eE][+-]?digits exponent; the fractional alternative
// wins over a bare integer prefix, so "2.5" is one token, not two.
func scanNumber(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	frac := false
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > i+1 {
			i = j
			frac = true
		}
	}
	if digits == 0 && !frac {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}
