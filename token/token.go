// Package token defines the lexical categories produced by the lexer and
// consumed by the parser: mnemonics, operand primitives, and the token
// envelope that carries source position for diagnostics.
package token

// Kind tags which field of a Token is meaningful.
type Kind int

const (
	// Label is an identifier followed by ':' at source, e.g. "loop:".
	Label Kind = iota
	// Mnemonic is one of the recognized opcodes.
	Mnemonic
	// Operand is a Primitive.
	Operand
	// Comma separates operands.
	Comma
	// Error is a reserved sentinel; never produced on the happy path.
	Error
)

// Span is a half-open range of character offsets within a source line.
type Span struct {
	Start int
	End   int
}

// Len reports the number of characters the span covers.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Token is a single lexical unit with its source position.
type Token struct {
	Kind Kind
	Line int
	Span Span

	// Text holds the label's name (including the trailing colon) when
	// Kind == Label.
	Text string
	// Mn holds the parsed mnemonic when Kind == Mnemonic.
	Mn Mnemonic
	// Prim holds the parsed operand when Kind == Operand.
	Prim Primitive
}
