package parser

import (
	"errors"
	"strings"

	"github.com/adolfohw/m8asm/asmerr"
	"github.com/adolfohw/m8asm/encoder"
	"github.com/adolfohw/m8asm/token"
)

// operand is one parsed operand token, kept alongside its source token
// for error attribution.
type operand struct {
	tok  token.Token
	prim token.Primitive
}

// translateLine validates one line's tokens against the ISA's statement
// shape (at most one mnemonic, the mnemonic's exact operand arity) and,
// for a mnemonic line, appends the encoded instruction's cells. Every
// label on the line is recorded at the current offset; label-only and
// blank lines are no-ops beyond that.
func (p *Parser) translateLine(line []token.Token) error {
	var mnemonicTok *token.Token
	var mnemonic token.Mnemonic
	var operandsReq int
	var operands []operand

	for _, tok := range line {
		switch tok.Kind {
		case token.Label:
			name := strings.TrimSuffix(tok.Text, ":")
			if _, exists := p.labels[name]; exists {
				return asmerr.New(tok, asmerr.CodeRedefinedLabel())
			}
			p.labels[name] = uint16(len(p.cells))

		case token.Mnemonic:
			if mnemonicTok != nil {
				return asmerr.New(tok, asmerr.CodeMultipleMnemonics())
			}
			t := tok
			mnemonicTok = &t
			mnemonic = tok.Mn
			operandsReq = tok.Mn.OperandsRequired()

		case token.Operand:
			operands = append(operands, operand{tok: tok, prim: tok.Prim})

		case token.Comma:
			if mnemonicTok == nil {
				return asmerr.New(tok, asmerr.CodeNoMnemonic())
			}
			if len(operands) == 0 {
				return asmerr.New(tok, asmerr.CodeUnexpectedComma())
			}
			if len(operands) == operandsReq {
				return asmerr.New(*mnemonicTok, asmerr.CodeExcessiveOperands(operandsReq))
			}
		}
	}

	if mnemonicTok == nil {
		return nil
	}
	if len(operands) != operandsReq {
		return asmerr.New(*mnemonicTok, asmerr.CodeNotEnoughOperands(len(operands), operandsReq))
	}

	inst := encoder.New().EncodeMnemonic(mnemonic)

	switch len(operands) {
	case 0:
		p.emitBytes(inst.Finalize())

	case 1:
		dest := operands[0]
		if dest.prim.Kind != token.PLabel {
			return asmerr.New(*mnemonicTok, asmerr.CodeNoLabel())
		}
		p.emitBytes(inst.Finalize())
		p.emitPlaceholder(dest.tok, dest.prim.Label)

	case 2:
		dest, origin := operands[0], operands[1]
		encoded, err := inst.EncodeDataFlow(origin.prim, dest.prim)
		if err != nil {
			if errors.Is(err, encoder.ErrBadOrigin) {
				return asmerr.New(origin.tok, asmerr.CodeBadOrigin())
			}
			return asmerr.New(dest.tok, asmerr.CodeBadDestination())
		}
		p.emitBytes(encoded.Finalize())
	}

	return nil
}

func (p *Parser) emitBytes(bs []byte) {
	for _, b := range bs {
		p.cells = append(p.cells, cell{kind: cellByte, b: b})
	}
}

func (p *Parser) emitPlaceholder(tok token.Token, label string) {
	p.cells = append(p.cells,
		cell{kind: cellPlaceholderHi, tok: tok, label: label},
		cell{kind: cellPlaceholderLo, tok: tok, label: label},
	)
}
