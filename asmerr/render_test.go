package asmerr_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/adolfohw/m8asm/asmerr"
	"github.com/adolfohw/m8asm/token"
)

func TestRenderBasicShape(t *testing.T) {
	src := "mov al, bogus\n"
	tok := token.Token{Line: 1, Span: token.Span{Start: 8, End: 13}}
	err := asmerr.New(tok, asmerr.CodeBadOrigin())

	var buf bytes.Buffer
	asmerr.Render(&buf, src, "prog.asm", err, nil)
	out := buf.String()

	if !strings.Contains(out, "Invalid data origin @ prog.asm:1:9") {
		t.Fatalf("missing header line, got:\n%s", out)
	}
	if !strings.Contains(out, "mov al, bogus") {
		t.Fatalf("missing source line, got:\n%s", out)
	}
	if !strings.Contains(out, "^^^^^") {
		t.Fatalf("missing caret run, got:\n%s", out)
	}
	if !strings.Contains(out, "help:") {
		t.Fatalf("missing help text, got:\n%s", out)
	}
}

func TestRenderWithNote(t *testing.T) {
	tok := token.Token{Line: 1, Span: token.Span{Start: 0, End: 4}}
	err := asmerr.New(tok, asmerr.CodeUnknownLabel("done"))

	note := "labels must be defined somewhere in the source"
	var buf bytes.Buffer
	asmerr.Render(&buf, "jmp done\n", "prog.asm", err, &note)

	out := buf.String()
	if !strings.Contains(out, "= note: "+note) {
		t.Fatalf("missing note line, got:\n%s", out)
	}
}

func TestRenderMultiLineHelp(t *testing.T) {
	tok := token.Token{Line: 2, Span: token.Span{Start: 4, End: 8}}
	err := asmerr.New(tok, asmerr.CodeBadDestination())

	var buf bytes.Buffer
	asmerr.Render(&buf, "mov al, al\nmov out0, al\n", "prog.asm", err, nil)
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 6 {
		t.Fatalf("expected multiple help lines, got %d:\n%s", len(lines), out)
	}
}
