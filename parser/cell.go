package parser

import "github.com/adolfohw/m8asm/token"

// cellKind tags what a cell contributes to the final byte vector.
type cellKind int

const (
	cellByte cellKind = iota
	// cellPlaceholderHi and cellPlaceholderLo together form the two-slot
	// reservation for an unresolved label's 16-bit address: one cell per
	// final byte, so label offsets computed from cell counts always match
	// final byte offsets, even across forward references.
	cellPlaceholderHi
	cellPlaceholderLo
)

// cell is one slot of the pass-1 intermediate: either a finished byte, or
// half of a pending label address.
type cell struct {
	kind  cellKind
	b     byte
	tok   token.Token
	label string
}
