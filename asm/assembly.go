// Package asm wires the lexer and parser into the assembler's public
// pipeline and carries the resulting program bytes.
package asm

import (
	"fmt"
	"os"

	"github.com/adolfohw/m8asm/asmerr"
	"github.com/adolfohw/m8asm/lexer"
	"github.com/adolfohw/m8asm/parser"
	"github.com/adolfohw/m8asm/token"
)

// Assembly is a finished (or in-progress, pre-ToLogisim) assembled
// program: a byte buffer plus an optional path to write it to on Close.
type Assembly struct {
	data     []byte
	savePath string
}

// Assemble runs the full pipeline against an in-memory source string:
// the lexer scans src on its own goroutine while the parser drains its
// output, then resolves label placeholders in a second pass.
func Assemble(src string) (*Assembly, error) {
	out := make(chan lexer.Result)
	go lexer.Scan(src, out)

	p := parser.New()
	if err := p.Run(out); err != nil {
		return nil, err
	}

	data, err := p.Resolve()
	if err != nil {
		return nil, err
	}
	return &Assembly{data: data}, nil
}

// FromPath reads the file at path and assembles it.
func FromPath(path string) (*Assembly, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, asmerr.New(token.Token{}, asmerr.CodeIO(fmt.Errorf("reading %s: %w", path, err)))
	}
	return Assemble(string(raw))
}

// Bytes returns the assembled program.
func (a *Assembly) Bytes() []byte { return a.data }

// BytesMut returns the assembled program as a mutable slice, for
// in-place rewrites such as ToLogisim.
func (a *Assembly) BytesMut() []byte { return a.data }

// Equal reports whether two Assembly values hold identical bytes.
func (a *Assembly) Equal(other *Assembly) bool {
	if len(a.data) != len(other.data) {
		return false
	}
	for i, b := range a.data {
		if other.data[i] != b {
			return false
		}
	}
	return true
}

// SaveOnClose attaches a path that Close will write the current bytes
// to. Passing an empty string cancels a previously attached path. This
// is the explicit stand-in for the deferred-save-on-drop mechanism the
// pipeline this was ported from expresses via a destructor; Go has no
// destructors, so the save is instead triggered by an explicit Close
// call, in the style of io.Closer.
func (a *Assembly) SaveOnClose(path string) {
	a.savePath = path
}

// Close writes the assembly's current bytes to its attached save path,
// if any. It is a no-op, returning nil, when no path is attached.
func (a *Assembly) Close() error {
	if a.savePath == "" {
		return nil
	}
	if err := os.WriteFile(a.savePath, a.data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", a.savePath, err)
	}
	return nil
}
