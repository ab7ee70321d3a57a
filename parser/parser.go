// Package parser consumes the lexer's token stream, validates statement
// shape, builds the label table, and resolves label references into
// concrete 16-bit addresses across two passes.
package parser

import (
	"github.com/adolfohw/m8asm/asmerr"
	"github.com/adolfohw/m8asm/lexer"
	"github.com/adolfohw/m8asm/token"
)

// Parser accumulates pass-1 output (cells and the label table) as it
// drains a lexer's Result channel, then resolves it into a final byte
// vector.
type Parser struct {
	labels map[string]uint16
	cells  []cell
}

// New returns an empty Parser.
func New() *Parser {
	return &Parser{labels: make(map[string]uint16)}
}

// Run drains in to completion, translating each line into cells as it
// goes (pass 1). If it encounters its own error it keeps draining in
// until the channel closes, so a still-running lexer is never left
// blocked on a send, before returning that error.
func (p *Parser) Run(in <-chan lexer.Result) error {
	var line []token.Token
	var failure error

	for res := range in {
		if failure != nil {
			continue
		}
		switch res.Kind {
		case lexer.ResToken:
			line = append(line, res.Token)
		case lexer.ResEOL:
			if err := p.translateLine(line); err != nil {
				failure = err
			}
			line = line[:0]
		case lexer.ResErr:
			failure = asmerr.New(res.Err.Tok, asmerr.CodeTokenizing(res.Err.Code))
		}
	}
	return failure
}

// Resolve runs pass 2, replacing every placeholder cell with the two
// bytes of its label's resolved address, in big-endian order.
func (p *Parser) Resolve() ([]byte, error) {
	out := make([]byte, 0, len(p.cells))
	for _, c := range p.cells {
		switch c.kind {
		case cellByte:
			out = append(out, c.b)
		case cellPlaceholderHi:
			addr, ok := p.labels[c.label]
			if !ok {
				return nil, asmerr.New(c.tok, asmerr.CodeUnknownLabel(c.label))
			}
			out = append(out, byte(addr>>8))
		case cellPlaceholderLo:
			addr, ok := p.labels[c.label]
			if !ok {
				return nil, asmerr.New(c.tok, asmerr.CodeUnknownLabel(c.label))
			}
			out = append(out, byte(addr))
		}
	}
	return out, nil
}
