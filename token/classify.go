package token

import "strings"

// Classify parses a raw, case-folded identifier string (as produced by the
// lexer's accumulator) into a Token's kind-specific fields, applying the
// priority order: comma, label, mnemonic, then primitive.
func Classify(src string) (Kind, Token, error) {
	switch {
	case src == ",":
		return Comma, Token{Kind: Comma}, nil

	case strings.HasSuffix(src, ":"):
		name := src[:len(src)-1]
		if !isLabel(name) {
			return Error, Token{}, BadLabel
		}
		return Label, Token{Kind: Label, Text: src}, nil

	default:
		if mn, ok := ParseMnemonic(src); ok {
			return Mnemonic, Token{Kind: Mnemonic, Mn: mn}, nil
		}
		prim, err := ParsePrimitive(src)
		if err != nil {
			return Error, Token{}, err
		}
		return Operand, Token{Kind: Operand, Prim: prim}, nil
	}
}
