// Package lexer walks assembly source text and emits a stream of
// classified tokens, delimited by end-of-line markers, over a channel —
// concurrently with whatever consumes it.
package lexer

import (
	"strings"

	"github.com/adolfohw/m8asm/token"
)

// ResultKind tags which field of a Result is meaningful.
type ResultKind int

const (
	// ResToken carries a successfully classified Token.
	ResToken ResultKind = iota
	// ResEOL marks the end of a source line.
	ResEOL
	// ResErr carries a classification failure; no further Results follow
	// it on the channel.
	ResErr
)

// Error is a tokenizing failure attributed to a span of source.
type Error struct {
	Tok  token.Token
	Code token.TokenizingError
}

func (e *Error) Error() string { return e.Code.Error() }

// Result is one item of the lexer's output stream: a Token, an end-of-line
// sentinel, or a terminal Error.
type Result struct {
	Kind  ResultKind
	Token token.Token
	Err   *Error
}

// Scan walks src and sends a Result per token plus one ResEOL per line,
// in source order, closing out when done. It is meant to run in its own
// goroutine, with the caller ranging over out until it closes.
func Scan(src string, out chan<- Result) {
	defer close(out)

	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.TrimSuffix(src, "\n")
	for i, line := range strings.Split(src, "\n") {
		lineNo := i + 1
		if !scanLine(line, lineNo, out) {
			return
		}
		out <- Result{Kind: ResEOL}
	}
}

// scanLine walks one line's bytes with a trailing virtual space (to flush
// any in-progress token at end of line), reporting false if a
// classification error terminated the scan.
func scanLine(line string, lineNo int, out chan<- Result) bool {
	var acc []byte
	n := len(line)
	for col := 0; col <= n; col++ {
		ch := byte(' ')
		if col < n {
			ch = line[col]
		}
		start := col - len(acc)

		switch {
		case ch == ';':
			ok := flush(&acc, start, col, lineNo, out)
			return ok
		case ch == ',':
			if !flush(&acc, start, col, lineNo, out) {
				return false
			}
			acc = append(acc, ',')
			if !flush(&acc, col, col+1, lineNo, out) {
				return false
			}
		case isSpace(ch):
			if !flush(&acc, start, col, lineNo, out) {
				return false
			}
		default:
			acc = append(acc, lowerByte(ch))
		}
	}
	return true
}

// flush classifies the accumulated bytes (if any) as a token spanning
// [start, end) and sends it, resetting the accumulator. Returns false if
// classification failed, after sending the terminal Error.
func flush(acc *[]byte, start, end, lineNo int, out chan<- Result) bool {
	if len(*acc) == 0 {
		return true
	}
	raw := string(*acc)
	*acc = (*acc)[:0]

	span := token.Span{Start: start, End: end}
	kind, tok, err := token.Classify(raw)
	if err != nil {
		out <- Result{Kind: ResErr, Err: &Error{
			Tok:  token.Token{Kind: token.Error, Line: lineNo, Span: span},
			Code: err.(token.TokenizingError),
		}}
		return false
	}
	tok.Kind = kind
	tok.Line = lineNo
	tok.Span = span
	out <- Result{Kind: ResToken, Token: tok}
	return true
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\v' || c == '\f' }

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
