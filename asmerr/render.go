package asmerr

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const tabSize = 4

// Render writes a human-readable diagnostic for err against src (the full
// original source text) and path (shown for display only). note, if
// non-nil, is appended as a trailing "= note: ..." line.
//
// Output shape:
//
//	<code> @ <path>:<line>:<col>
//	<gutter> │ <source line, tabs expanded>
//	<gutter> │ <padding><caret run> help: <message>
//	                                      <further message lines, aligned>
func Render(w io.Writer, src, path string, err *AssemblyError, note *string) {
	tok := err.Token
	lines := strings.Split(src, "\n")
	var lineSrc string
	if tok.Line-1 >= 0 && tok.Line-1 < len(lines) {
		lineSrc = lines[tok.Line-1]
	}

	// Span offsets are 0-based offsets into the raw line; errCol tracks the
	// same position in the tab-expanded line.
	errCol := tok.Span.Start
	var expanded strings.Builder
	for i, ch := range lineSrc {
		if ch == '\t' {
			amt := tabSize - ((expanded.Len() + 1) % tabSize)
			expanded.WriteString(strings.Repeat(" ", amt))
			if i < tok.Span.Start {
				errCol += amt - 1
			}
		} else {
			expanded.WriteRune(ch)
		}
	}

	rulerWidth := len(strconv.Itoa(tok.Line))
	help := err.Code.HelpMsg()
	indicatorWidth := tok.Span.Len()
	colPad := errCol
	if colPad < 0 {
		colPad = 0
	}

	fmt.Fprintf(w, "%s @ %s:%d:%d\n", err.Code.Error(), path, tok.Line, errCol+1)
	fmt.Fprintf(w, "%*d │ %s\n", rulerWidth, tok.Line, expanded.String())
	fmt.Fprintf(w, "%*s │ %s%s help: %s\n",
		rulerWidth, "", strings.Repeat(" ", colPad), strings.Repeat("^", indicatorWidth), help[0])
	for _, m := range help[1:] {
		padWidth := indicatorWidth + 7
		fmt.Fprintf(w, "%*s │ %s%s%s\n",
			rulerWidth, "", strings.Repeat(" ", colPad), strings.Repeat(" ", padWidth), m)
	}
	if note != nil {
		fmt.Fprintf(w, "%*s = note: %s\n", rulerWidth, "", *note)
	}
}
