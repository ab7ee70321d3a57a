package token_test

import (
	"testing"

	"github.com/adolfohw/m8asm/token"
)

func TestClassifyComma(t *testing.T) {
	kind, tok, err := token.Classify(",")
	if err != nil || kind != token.Comma || tok.Kind != token.Comma {
		t.Fatalf("got %v, %+v, %v", kind, tok, err)
	}
}

func TestClassifyLabel(t *testing.T) {
	kind, tok, err := token.Classify("loop:")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != token.Label || tok.Text != "loop:" {
		t.Fatalf("got %v, %+v", kind, tok)
	}
}

func TestClassifyBadLabel(t *testing.T) {
	if _, _, err := token.Classify("1loop:"); err != token.BadLabel {
		t.Fatalf("got %v, want BadLabel", err)
	}
}

func TestClassifyMnemonic(t *testing.T) {
	kind, tok, err := token.Classify("jc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != token.Mnemonic || tok.Mn != token.Jmpc {
		t.Fatalf("got %v, %+v, want Jmpc", kind, tok)
	}
}

func TestClassifyOperand(t *testing.T) {
	kind, tok, err := token.Classify("al")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != token.Operand || tok.Prim.Kind != token.PAccumulator {
		t.Fatalf("got %v, %+v", kind, tok)
	}
}

func TestOperandsRequired(t *testing.T) {
	tests := []struct {
		m    token.Mnemonic
		want int
	}{
		{token.Add, 2},
		{token.Mov, 2},
		{token.Jmp, 1},
		{token.Call, 1},
		{token.Ret, 0},
		{token.Pusha, 0},
	}
	for _, tc := range tests {
		if got := tc.m.OperandsRequired(); got != tc.want {
			t.Errorf("%v.OperandsRequired() = %d, want %d", tc.m, got, tc.want)
		}
	}
}
