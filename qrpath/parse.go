package qrpath

import (
	"fmt"
	"strconv"
)

// Command is one drawing command: a command letter and its numeric
// arguments. Argument counts are command specific and are only validated
// when the command is executed, not here.
type Command struct {
	Letter byte
	Args   []float64
}

// Parser groups a token stream into drawing commands.
type Parser struct {
	tok     *Tokenizer
	pending byte
	args    []float64
	done    bool
}

func NewParser(path string) *Parser {
	return &Parser{tok: NewTokenizer(path)}
}

// Next returns the next drawing command. ok is false once the path data is
// exhausted. Commas are purely cosmetic and are dropped; a number before
// the first command letter is a syntax error.
func (p *Parser) Next() (cmd Command, ok bool, err error) {
	if p.done {
		return Command{}, false, nil
	}
	for {
		t, err := p.tok.Next()
		if err != nil {
			p.done = true
			return Command{}, false, err
		}
		switch t.Kind {
		case TokenCommand:
			if p.pending != 0 {
				cmd := Command{Letter: p.pending, Args: p.args}
				p.pending, p.args = t.Text[0], nil
				return cmd, true, nil
			}
			p.pending = t.Text[0]
		case TokenNumber:
			if p.pending == 0 {
				p.done = true
				return Command{}, false, fmt.Errorf("SVG path should start with a command: %s", t.Text)
			}
			v, err := strconv.ParseFloat(t.Text, 64)
			if err != nil {
				// unreachable: the tokenizer only matches valid floats
				p.done = true
				return Command{}, false, fmt.Errorf("SVG path syntax error at position %d: %s", t.Pos, t.Text)
			}
			p.args = append(p.args, v)
		case TokenComma:
		case TokenEOF:
			p.done = true
			if p.pending != 0 {
				return Command{Letter: p.pending, Args: p.args}, true, nil
			}
			return Command{}, false, nil
		}
	}
}
