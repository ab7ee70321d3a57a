// Package asmerr carries the assembler's error model: the offending
// token, a structured error code, and the diagnostic renderer that turns
// both into a human-readable message.
package asmerr

import (
	"fmt"

	"github.com/adolfohw/m8asm/token"
)

// CodeKind is the closed set of assembly-level error kinds, plus the two
// wrapper kinds for tokenizing and I/O failures that bubble up through the
// same error type.
type CodeKind int

const (
	BadOrigin CodeKind = iota
	BadDestination
	ExcessiveOperands
	MultipleMnemonics
	NoLabel
	NoMnemonic
	NotEnoughOperands
	RedefinedLabel
	UnexpectedComma
	UnexpectedLabel
	UnknownLabel
	TokenizingErr
	IOErr
)

// ErrorCode is a structured assembly error: a kind tag plus whatever
// payload that kind carries (operand counts, a label name, or a wrapped
// lower-level error).
type ErrorCode struct {
	Kind CodeKind

	Req   int    // ExcessiveOperands, NotEnoughOperands
	Found int    // NotEnoughOperands
	Label string // UnknownLabel

	TokErr token.TokenizingError // TokenizingErr
	Cause  error                 // IOErr
}

// Error returns the code's short, fixed description.
func (c ErrorCode) Error() string {
	switch c.Kind {
	case BadOrigin:
		return "Invalid data origin"
	case BadDestination:
		return "Invalid data destination"
	case ExcessiveOperands:
		return "Too many operands found"
	case MultipleMnemonics:
		return "Multiple mnemonics in a single statement"
	case NoLabel:
		return "Destination label not found"
	case NoMnemonic:
		return "No mnemonic found"
	case NotEnoughOperands:
		return "Too few operands provided"
	case RedefinedLabel:
		return "Redefined label"
	case UnexpectedComma:
		return "Unexpected comma"
	case UnexpectedLabel:
		return "Unexpected label"
	case UnknownLabel:
		return "Undefined label"
	case TokenizingErr:
		return c.TokErr.Error()
	case IOErr:
		return c.Cause.Error()
	default:
		return "unknown error"
	}
}

// HelpMsg returns the one or more lines of help text shown beneath the
// diagnostic caret run.
func (c ErrorCode) HelpMsg() []string {
	switch c.Kind {
	case BadOrigin, BadDestination:
		return []string{
			"valid data flows are: `ROM -> Acc | Register | RAM`,",
			"`Acc -> Acc | Register | RAM | Output`,",
			"`Register -> Acc`,",
			"`RAM -> Acc`,",
			"and `Input -> Acc`",
		}
	case ExcessiveOperands:
		noun := "is"
		if c.Req > 1 {
			noun = "are"
		}
		plural := ""
		if c.Req > 1 {
			plural = "s"
		}
		return []string{fmt.Sprintf("only %d operand%s %s required", c.Req, plural, noun)}
	case MultipleMnemonics:
		return []string{"remove this mnemonic"}
	case NoLabel:
		return []string{"add a label operand"}
	case NoMnemonic:
		return []string{"add a mnemonic"}
	case NotEnoughOperands:
		amt := c.Req - c.Found
		plural := ""
		if amt > 1 {
			plural = "s"
		}
		return []string{fmt.Sprintf("add %d operand%s", amt, plural)}
	case RedefinedLabel:
		return []string{"remove this label or rename it"}
	case UnexpectedComma:
		return []string{"remove this comma"}
	case UnexpectedLabel:
		return []string{"this mnemonic does not accept labels"}
	case UnknownLabel:
		return []string{fmt.Sprintf("add this label somewhere either before a mnemonic, or alone, as `%s:`", c.Label)}
	case TokenizingErr:
		return []string{c.TokErr.HelpMsg()}
	case IOErr:
		return []string{c.Cause.Error()}
	default:
		return []string{"???"}
	}
}

// Constructors mirror the shape of each ErrorCode variant.

func CodeBadOrigin() ErrorCode      { return ErrorCode{Kind: BadOrigin} }
func CodeBadDestination() ErrorCode { return ErrorCode{Kind: BadDestination} }
func CodeExcessiveOperands(req int) ErrorCode {
	return ErrorCode{Kind: ExcessiveOperands, Req: req}
}
func CodeMultipleMnemonics() ErrorCode { return ErrorCode{Kind: MultipleMnemonics} }
func CodeNoLabel() ErrorCode           { return ErrorCode{Kind: NoLabel} }
func CodeNoMnemonic() ErrorCode        { return ErrorCode{Kind: NoMnemonic} }
func CodeNotEnoughOperands(found, req int) ErrorCode {
	return ErrorCode{Kind: NotEnoughOperands, Found: found, Req: req}
}
func CodeRedefinedLabel() ErrorCode { return ErrorCode{Kind: RedefinedLabel} }
func CodeUnexpectedComma() ErrorCode { return ErrorCode{Kind: UnexpectedComma} }
func CodeUnexpectedLabel() ErrorCode { return ErrorCode{Kind: UnexpectedLabel} }
func CodeUnknownLabel(name string) ErrorCode {
	return ErrorCode{Kind: UnknownLabel, Label: name}
}
func CodeTokenizing(err token.TokenizingError) ErrorCode {
	return ErrorCode{Kind: TokenizingErr, TokErr: err}
}
func CodeIO(err error) ErrorCode { return ErrorCode{Kind: IOErr, Cause: err} }
