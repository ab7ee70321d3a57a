package asmerr_test

import (
	"testing"

	"github.com/adolfohw/m8asm/asmerr"
)

func TestErrorCodeMessages(t *testing.T) {
	tests := []struct {
		code asmerr.ErrorCode
		want string
	}{
		{asmerr.CodeBadOrigin(), "Invalid data origin"},
		{asmerr.CodeBadDestination(), "Invalid data destination"},
		{asmerr.CodeMultipleMnemonics(), "Multiple mnemonics in a single statement"},
		{asmerr.CodeRedefinedLabel(), "Redefined label"},
		{asmerr.CodeUnexpectedComma(), "Unexpected comma"},
		{asmerr.CodeUnknownLabel("done"), "Undefined label"},
	}
	for _, tc := range tests {
		if got := tc.code.Error(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}

func TestExcessiveOperandsHelpPluralization(t *testing.T) {
	one := asmerr.CodeExcessiveOperands(1)
	if got := one.HelpMsg()[0]; got != "only 1 operand is required" {
		t.Errorf("got %q", got)
	}
	two := asmerr.CodeExcessiveOperands(2)
	if got := two.HelpMsg()[0]; got != "only 2 operands are required" {
		t.Errorf("got %q", got)
	}
}

func TestNotEnoughOperandsHelp(t *testing.T) {
	c := asmerr.CodeNotEnoughOperands(1, 2)
	if got := c.HelpMsg()[0]; got != "add 1 operand" {
		t.Errorf("got %q", got)
	}
}

func TestUnknownLabelHelp(t *testing.T) {
	c := asmerr.CodeUnknownLabel("done")
	want := "add this label somewhere either before a mnemonic, or alone, as `done:`"
	if got := c.HelpMsg()[0]; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBadOriginBadDestinationShareHelp(t *testing.T) {
	a := asmerr.CodeBadOrigin().HelpMsg()
	b := asmerr.CodeBadDestination().HelpMsg()
	if len(a) != len(b) || len(a) != 5 {
		t.Fatalf("expected 5-line shared help, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("line %d differs: %q vs %q", i, a[i], b[i])
		}
	}
}
