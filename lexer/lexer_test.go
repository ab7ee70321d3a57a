package lexer_test

import (
	"testing"

	"github.com/adolfohw/m8asm/lexer"
	"github.com/adolfohw/m8asm/token"
)

// collect drains Scan's output into a slice of Results.
func collect(src string) []lexer.Result {
	out := make(chan lexer.Result)
	go lexer.Scan(src, out)
	var results []lexer.Result
	for r := range out {
		results = append(results, r)
	}
	return results
}

func TestScanTokensAndEOL(t *testing.T) {
	results := collect("mov al, bl")

	var kinds []lexer.ResultKind
	for _, r := range results {
		kinds = append(kinds, r.Kind)
	}
	want := []lexer.ResultKind{
		lexer.ResToken, lexer.ResToken, lexer.ResToken, lexer.ResToken, lexer.ResEOL,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %d results, want %d: %+v", len(kinds), len(want), results)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("result %d: got kind %v, want %v", i, kinds[i], want[i])
		}
	}

	if results[0].Token.Kind != token.Mnemonic || results[0].Token.Mn != token.Mov {
		t.Errorf("expected first token to be mov, got %+v", results[0].Token)
	}
	if results[1].Token.Kind != token.Operand || results[1].Token.Prim.Kind != token.PAccumulator {
		t.Errorf("expected second token to be al, got %+v", results[1].Token)
	}
	if results[2].Token.Kind != token.Comma {
		t.Errorf("expected third token to be a comma, got %+v", results[2].Token)
	}
}

func TestScanMultipleLines(t *testing.T) {
	results := collect("ret\nret")
	var eols int
	for _, r := range results {
		if r.Kind == lexer.ResEOL {
			eols++
		}
	}
	if eols != 2 {
		t.Fatalf("expected 2 end-of-line markers, got %d", eols)
	}
}

func TestScanComment(t *testing.T) {
	results := collect("ret ; a trailing comment")
	if len(results) != 2 {
		t.Fatalf("expected [Token, EOL], got %+v", results)
	}
	if results[0].Token.Mn != token.Ret {
		t.Errorf("got %+v", results[0].Token)
	}
}

func TestScanClassificationError(t *testing.T) {
	results := collect("mov #foo, bl")
	last := results[len(results)-1]
	if last.Kind != lexer.ResErr {
		t.Fatalf("expected a terminal error, got %+v", results)
	}
	if last.Err.Code != token.BadLabel {
		t.Errorf("got error code %v, want BadLabel", last.Err.Code)
	}
}

func TestScanBlankLine(t *testing.T) {
	results := collect("\n")
	if len(results) != 1 || results[0].Kind != lexer.ResEOL {
		t.Fatalf("expected a single EOL for a blank line, got %+v", results)
	}
}
